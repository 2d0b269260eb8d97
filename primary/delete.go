// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package primary

import (
	"github.com/bitmark-inc/dualindex/record"
)

// Removal - what a successful delete did to the tree
type Removal struct {
	Key   record.Key    // the key that is no longer present
	Freed record.Handle // slot that was released

	// set when the deleted node had two children: its slot survives
	// (Holder) and now holds its in-order successor's key (PromotedKey)
	Promoted    bool
	PromotedKey record.Key
	Holder      record.Handle
}

// Delete - removes a specific key from the tree
//
// returns false if the key was not present (the tree is not modified)
func (tree *Tree) Delete(key record.Key) (Removal, bool) {

	// link that refers to the node being deleted; no allocation
	// happens during a delete so pointers into the slice stay valid
	pp := &tree.root
search:
	for {
		p := *pp
		if p.IsNil() {
			return Removal{}, false
		}
		switch tree.nodes[p].key.Compare(key) {
		case +1: // p.key > key
			pp = &tree.nodes[p].left
		case -1: // p.key < key
			pp = &tree.nodes[p].right
		default:
			break search
		}
	}

	q := *pp
	removal := Removal{
		Key:    key,
		Freed:  q,
		Holder: record.Nil,
	}

	switch {
	case tree.nodes[q].left.IsNil():
		*pp = tree.nodes[q].right

	case tree.nodes[q].right.IsNil():
		*pp = tree.nodes[q].left

	default:
		// in-order successor: leftmost node of the right sub-tree,
		// which never has a left child of its own
		sp := &tree.nodes[q].right
		for !tree.nodes[*sp].left.IsNil() {
			sp = &tree.nodes[*sp].left
		}
		s := *sp
		tree.nodes[q].key = tree.nodes[s].key
		*sp = tree.nodes[s].right

		removal.Freed = s
		removal.Promoted = true
		removal.PromotedKey = tree.nodes[q].key
		removal.Holder = q
	}

	tree.freeNode(removal.Freed)
	tree.count -= 1
	return removal, true
}
