// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package primary

import (
	"github.com/bitmark-inc/dualindex/record"
)

// Search - find the node holding a specific key
func (tree *Tree) Search(key record.Key) (record.Handle, bool) {
	p := tree.root
	for !p.IsNil() {
		switch tree.nodes[p].key.Compare(key) {
		case +1: // p.key > key
			p = tree.nodes[p].left
		case -1: // p.key < key
			p = tree.nodes[p].right
		default:
			return p, true
		}
	}
	return record.Nil, false
}
