// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/dualindex/record"
)

// internal: lowest node in a sub-tree
func (tree *Tree) first(p record.Handle) record.Handle {
	if p.IsNil() {
		return p
	}
	for !tree.nodes[p].left.IsNil() {
		p = tree.nodes[p].left
	}
	return p
}

// Cursor - lazy in-order walk over a tree
//
// the walk is invalidated by any insert or delete; call Reset to
// start again from the lowest key
type Cursor struct {
	tree  *Tree
	stack []record.Handle
	at    record.Handle
}

// Cursor - create a cursor positioned before the lowest key
func (tree *Tree) Cursor() *Cursor {
	c := &Cursor{
		tree:  tree,
		stack: make([]record.Handle, 0, tree.Height()),
	}
	c.Reset()
	return c
}

// Reset - restart the walk
func (c *Cursor) Reset() {
	c.stack = c.stack[:0]
	c.at = record.Nil
	c.descend(c.tree.root)
}

// push a node and all of its left descendants
func (c *Cursor) descend(p record.Handle) {
	for !p.IsNil() {
		c.stack = append(c.stack, p)
		p = c.tree.nodes[p].left
	}
}

// Next - move to the next highest key, false when there are no more
func (c *Cursor) Next() bool {
	n := len(c.stack)
	if 0 == n {
		c.at = record.Nil
		return false
	}
	c.at = c.stack[n-1]
	c.stack = c.stack[:n-1]
	c.descend(c.tree.nodes[c.at].right)
	return true
}

// Key - key at the cursor
func (c *Cursor) Key() record.Key {
	return c.tree.nodes[c.at].key
}

// Reference - back-reference at the cursor
func (c *Cursor) Reference() record.Handle {
	return c.tree.nodes[c.at].ref
}

// Keys - all keys in ascending order
func (tree *Tree) Keys() []record.Key {
	keys := make([]record.Key, 0, tree.count)
	for c := tree.Cursor(); c.Next(); {
		keys = append(keys, c.Key())
	}
	return keys
}

// Each - call f for every key in ascending order until it returns false
func (tree *Tree) Each(f func(key record.Key, ref record.Handle) bool) {
	for c := tree.Cursor(); c.Next(); {
		if !f(c.Key(), c.Reference()) {
			return
		}
	}
}
