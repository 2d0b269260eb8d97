// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/dualindex/record"
)

// Search - find the back-reference stored with a specific key
func (tree *Tree) Search(key record.Key) (record.Handle, bool) {
	p := tree.search(key)
	if p.IsNil() {
		return record.Nil, false
	}
	return tree.nodes[p].ref, true
}

// Repoint - replace the back-reference stored with a key
//
// returns false if the key is not present
func (tree *Tree) Repoint(key record.Key, ref record.Handle) bool {
	p := tree.search(key)
	if p.IsNil() {
		return false
	}
	tree.nodes[p].ref = ref
	return true
}

// internal: slot of the node holding the key
func (tree *Tree) search(key record.Key) record.Handle {
	p := tree.root
	for !p.IsNil() {
		switch tree.nodes[p].key.Compare(key) {
		case +1: // p.key > key
			p = tree.nodes[p].left
		case -1: // p.key < key
			p = tree.nodes[p].right
		default:
			return p
		}
	}
	return record.Nil
}
