// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package primary

import (
	"github.com/bitmark-inc/dualindex/record"
)

// Insert - add a key as a new leaf
//
// returns the handle of the node holding the key and true if the
// node was created, or the existing node's handle and false if the
// key was already present (the tree is not modified)
func (tree *Tree) Insert(key record.Key) (record.Handle, bool) {
	parent := record.Nil
	goLeft := false
	p := tree.root
	for !p.IsNil() {
		switch tree.nodes[p].key.Compare(key) {
		case +1: // p.key > key
			parent = p
			goLeft = true
			p = tree.nodes[p].left
		case -1: // p.key < key
			parent = p
			goLeft = false
			p = tree.nodes[p].right
		default:
			return p, false
		}
	}

	// allocation may grow the slice, so links are set by index afterwards
	h := tree.newNode(key)
	switch {
	case parent.IsNil():
		tree.root = h
	case goLeft:
		tree.nodes[parent].left = h
	default:
		tree.nodes[parent].right = h
	}
	tree.count += 1
	return h, true
}
