// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/dualindex/record"
)

// a node in the tree
//
// left and right are slots of this tree; ref is a slot of the
// primary store
type node struct {
	key    record.Key    // key part for ordering
	ref    record.Handle // back-reference to the primary node
	height int           // of the sub-tree rooted here, leaf = 1
	left   record.Handle // left sub-tree
	right  record.Handle // right sub-tree
}

// allocate a new leaf, reuses reclaimed slots if any are available
func (tree *Tree) newNode(key record.Key, ref record.Handle) record.Handle {
	h, reused := tree.slots.Allocate()
	n := node{
		key:    key,
		ref:    ref,
		height: 1,
		left:   record.Nil,
		right:  record.Nil,
	}
	if reused {
		tree.nodes[h] = n
	} else {
		tree.nodes = append(tree.nodes, n)
	}
	return h
}

// reclaim a slot so a later insert can reuse it
func (tree *Tree) freeNode(h record.Handle) {
	tree.nodes[h] = node{}
	tree.slots.Release(h)
}
