// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package primary

import (
	"github.com/bitmark-inc/dualindex/arena"
	"github.com/bitmark-inc/dualindex/record"
)

// Tree - type to hold the root node of a tree
type Tree struct {
	nodes []node
	slots arena.FreeList
	root  record.Handle
	count int
}

// New - create an initially empty tree
func New() *Tree {
	return &Tree{
		nodes: make([]node, 1), // slot zero is never used
		root:  record.Nil,
		count: 0,
	}
}

// IsEmpty - true if tree contains no records
func (tree *Tree) IsEmpty() bool {
	return tree.root.IsNil()
}

// Count - number of nodes currently in the tree
func (tree *Tree) Count() int {
	return tree.count
}

// Slots - number of slots ever created and number waiting for reuse
func (tree *Tree) Slots() (int, int) {
	return tree.slots.Total(), tree.slots.Free()
}

// Key - read the key held by a live node
func (tree *Tree) Key(h record.Handle) (record.Key, bool) {
	if !tree.slots.IsLive(h) {
		return 0, false
	}
	return tree.nodes[h].key, true
}

// Height - number of nodes on the longest root to leaf path
func (tree *Tree) Height() int {
	if tree.root.IsNil() {
		return 0
	}

	type level struct {
		h     record.Handle
		depth int
	}
	height := 0
	stack := []level{{tree.root, 1}}
	for 0 != len(stack) {
		n := len(stack) - 1
		l := stack[n]
		stack = stack[:n]
		if l.depth > height {
			height = l.depth
		}
		p := &tree.nodes[l.h]
		if !p.left.IsNil() {
			stack = append(stack, level{p.left, l.depth + 1})
		}
		if !p.right.IsNil() {
			stack = append(stack, level{p.right, l.depth + 1})
		}
	}
	return height
}
