// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/dualindex/record"
)

// Insert - add a key with its back-reference
//
// returns false if the key was already present, in which case the
// tree and the existing back-reference are not modified
func (tree *Tree) Insert(key record.Key, ref record.Handle) bool {
	r := tree.insert(tree.root, key, ref)
	if unchanged == r.outcome {
		return false
	}
	tree.root = r.root
	tree.count += 1
	return true
}

// internal routine for insert
func (tree *Tree) insert(p record.Handle, key record.Key, ref record.Handle) result {
	if p.IsNil() { // insert new node
		return result{root: tree.newNode(key, ref), outcome: replaced}
	}

	// no pointers into the slice are held across the recursive calls
	// since allocating the new node may move it
	switch tree.nodes[p].key.Compare(key) {
	case +1: // p.key > key
		r := tree.insert(tree.nodes[p].left, key, ref)
		if unchanged == r.outcome {
			return result{root: p, outcome: unchanged}
		}
		tree.nodes[p].left = r.root
	case -1: // p.key < key
		r := tree.insert(tree.nodes[p].right, key, ref)
		if unchanged == r.outcome {
			return result{root: p, outcome: unchanged}
		}
		tree.nodes[p].right = r.root
	default:
		return result{root: p, outcome: unchanged}
	}

	// after an insert the side that grew is the side the new key
	// went down, so the lean follows from the key alone
	return tree.rebalance(p, func(balance int) int {
		if balance > 1 {
			if key < tree.nodes[tree.nodes[p].left].key {
				return +1
			}
			return -1
		}
		if key > tree.nodes[tree.nodes[p].right].key {
			return -1
		}
		return +1
	})
}
