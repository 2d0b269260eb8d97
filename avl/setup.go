// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/dualindex/arena"
	"github.com/bitmark-inc/dualindex/record"
)

// Tree - type to hold the root node of a tree
type Tree struct {
	nodes     []node
	slots     arena.FreeList
	root      record.Handle
	count     int
	rotations uint64
}

// New - create an initially empty tree
func New() *Tree {
	return &Tree{
		nodes: make([]node, 1), // slot zero is never used
		root:  record.Nil,
		count: 0,
	}
}

// IsEmpty - true if tree contains no keys
func (tree *Tree) IsEmpty() bool {
	return tree.root.IsNil()
}

// Count - number of nodes currently in the tree
func (tree *Tree) Count() int {
	return tree.count
}

// Height - height of the whole tree, zero when empty
func (tree *Tree) Height() int {
	return tree.height(tree.root)
}

// Rotations - number of single rotations performed so far, a double
// rotation counts as two
func (tree *Tree) Rotations() uint64 {
	return tree.rotations
}

// Slots - number of slots ever created and number waiting for reuse
func (tree *Tree) Slots() (int, int) {
	return tree.slots.Total(), tree.slots.Free()
}
