// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/dualindex/record"
)

// Delete - removes a specific key from the tree
//
// returns the back-reference that was stored with the key and true,
// or false if the key was not present
func (tree *Tree) Delete(key record.Key) (record.Handle, bool) {
	ref := record.Nil
	r := tree.delete(tree.root, key, &ref)
	if unchanged == r.outcome {
		return record.Nil, false
	}
	tree.root = r.root
	tree.count -= 1
	return ref, true
}

// internal delete routine
func (tree *Tree) delete(p record.Handle, key record.Key, ref *record.Handle) result {
	if p.IsNil() { // key not in tree
		return result{root: p, outcome: unchanged}
	}

	switch tree.nodes[p].key.Compare(key) {
	case +1: // p.key > key
		r := tree.delete(tree.nodes[p].left, key, ref)
		if unchanged == r.outcome {
			return result{root: p, outcome: unchanged}
		}
		tree.nodes[p].left = r.root

	case -1: // p.key < key
		r := tree.delete(tree.nodes[p].right, key, ref)
		if unchanged == r.outcome {
			return result{root: p, outcome: unchanged}
		}
		tree.nodes[p].right = r.root

	default: // found: delete p
		*ref = tree.nodes[p].ref
		l := tree.nodes[p].left
		r := tree.nodes[p].right

		if l.IsNil() || r.IsNil() {
			// the remaining child is already balanced
			child := l
			if child.IsNil() {
				child = r
			}
			tree.freeNode(p)
			return result{root: child, outcome: replaced}
		}

		// two children: take over the in-order successor's key and
		// back-reference, then remove the successor's node
		s := tree.first(r)
		successor := tree.nodes[s].key
		tree.nodes[p].key = successor
		tree.nodes[p].ref = tree.nodes[s].ref

		discard := record.Nil
		rr := tree.delete(r, successor, &discard)
		tree.nodes[p].right = rr.root
	}

	// after a delete the lean is read from the taller child itself
	return tree.rebalance(p, func(balance int) int {
		if balance > 1 {
			return tree.balance(tree.nodes[p].left)
		}
		return tree.balance(tree.nodes[p].right)
	})
}
