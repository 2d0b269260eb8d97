// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/dualindex/record"
)

func TestRotationFor(t *testing.T) {
	items := []struct {
		balance  int
		lean     int
		expected rotation
	}{
		{0, 0, noRotation},
		{1, 1, noRotation},
		{-1, -1, noRotation},
		{2, 1, singleRight},
		{2, 0, singleRight},
		{2, -1, doubleLeftRight},
		{-2, -1, singleLeft},
		{-2, 0, singleLeft},
		{-2, 1, doubleRightLeft},
		{2, 5, singleRight},
		{-2, -7, singleLeft},
	}
	for i, item := range items {
		actual := rotationFor(item.balance, item.lean)
		assert.Equal(t, item.expected, actual, "%d: balance: %d  lean: %d", i, item.balance, item.lean)
	}
}

// rotations move nodes but must leave every back-reference in place
func TestRotationKeepsReferences(t *testing.T) {
	tree := New()
	a := tree.newNode(1, 101)
	b := tree.newNode(2, 102)
	c := tree.newNode(3, 103)

	// right leaning chain 1 -> 2 -> 3
	tree.nodes[a].right = b
	tree.nodes[b].right = c
	tree.update(c)
	tree.update(b)
	tree.update(a)
	assert.Equal(t, -2, tree.balance(a), "balance before rotation")

	top := tree.rotateLeft(a)
	assert.Equal(t, b, top, "new root")
	assert.Equal(t, a, tree.nodes[b].left, "left child")
	assert.Equal(t, c, tree.nodes[b].right, "right child")
	assert.Equal(t, 2, tree.nodes[b].height, "root height")
	assert.Equal(t, 1, tree.nodes[a].height, "left height")

	for h, ref := range map[record.Handle]record.Handle{a: 101, b: 102, c: 103} {
		assert.Equal(t, ref, tree.nodes[h].ref, "back-reference of slot %v", h)
	}

	top = tree.rotateRight(b)
	assert.Equal(t, a, top, "root after reverse rotation")
	assert.Equal(t, b, tree.nodes[a].right, "right child after reverse")
	assert.Equal(t, 3, tree.nodes[a].height, "height after reverse")
	assert.Equal(t, uint64(2), tree.rotations, "rotation count")
}
