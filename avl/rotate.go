// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/dualindex/record"
)

// height of a sub-tree, nil sub-tree is zero
func (tree *Tree) height(h record.Handle) int {
	if h.IsNil() {
		return 0
	}
	return tree.nodes[h].height
}

// balance factor: left height - right height
func (tree *Tree) balance(h record.Handle) int {
	if h.IsNil() {
		return 0
	}
	return tree.height(tree.nodes[h].left) - tree.height(tree.nodes[h].right)
}

// recompute a cached height from the children
func (tree *Tree) update(h record.Handle) {
	hl := tree.height(tree.nodes[h].left)
	hr := tree.height(tree.nodes[h].right)
	if hl > hr {
		tree.nodes[h].height = 1 + hl
	} else {
		tree.nodes[h].height = 1 + hr
	}
}

// single right rotation, returns the new sub-tree root
//
//         y              x
//        / \            / \
//       x   c    =>    a   y
//      / \                / \
//     a   b              b   c
func (tree *Tree) rotateRight(y record.Handle) record.Handle {
	x := tree.nodes[y].left
	b := tree.nodes[x].right

	tree.nodes[x].right = y
	tree.nodes[y].left = b

	tree.update(y)
	tree.update(x)
	tree.rotations += 1
	return x
}

// single left rotation, returns the new sub-tree root
//
//       x                  y
//      / \                / \
//     a   y      =>      x   c
//        / \            / \
//       b   c          a   b
func (tree *Tree) rotateLeft(x record.Handle) record.Handle {
	y := tree.nodes[x].right
	b := tree.nodes[y].left

	tree.nodes[y].left = x
	tree.nodes[x].right = b

	tree.update(x)
	tree.update(y)
	tree.rotations += 1
	return y
}

// which rotations restore balance at a node
type rotation int

const (
	noRotation rotation = iota
	singleRight
	singleLeft
	doubleLeftRight
	doubleRightLeft
)

// indexed by [side][lean+1]: side 0 when the left sub-tree is too
// tall, 1 when the right is; lean is the direction in which the
// taller child leans, +1 left, 0 even, -1 right
var rotationTable = [2][3]rotation{
	{doubleLeftRight, singleRight, singleRight},
	{singleLeft, singleLeft, doubleRightLeft},
}

// rotationFor - the rotation needed for a node with the given balance
// factor whose taller child leans as given
func rotationFor(balance int, lean int) rotation {
	switch {
	case lean > 0:
		lean = 1
	case lean < 0:
		lean = -1
	}
	switch {
	case balance > 1:
		return rotationTable[0][lean+1]
	case balance < -1:
		return rotationTable[1][lean+1]
	default:
		return noRotation
	}
}

// perform a rotation, returns the new sub-tree root
func (tree *Tree) apply(h record.Handle, r rotation) record.Handle {
	switch r {
	case singleRight:
		return tree.rotateRight(h)
	case singleLeft:
		return tree.rotateLeft(h)
	case doubleLeftRight:
		tree.nodes[h].left = tree.rotateLeft(tree.nodes[h].left)
		return tree.rotateRight(h)
	case doubleRightLeft:
		tree.nodes[h].right = tree.rotateRight(tree.nodes[h].right)
		return tree.rotateLeft(h)
	default:
		return h
	}
}
