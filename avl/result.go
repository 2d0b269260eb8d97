// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/dualindex/record"
)

// what a recursive step did to its sub-tree
type outcome int

const (
	unchanged  outcome = iota // nothing below was modified
	replaced                  // a node was added or removed below
	rebalanced                // as replaced, and this level rotated
)

// result of a recursive step: the (possibly new) sub-tree root
type result struct {
	root    record.Handle
	outcome outcome
}

// recompute height at a node and restore its balance; lean gives the
// direction the taller child leans when the node is out of balance
func (tree *Tree) rebalance(h record.Handle, lean func(balance int) int) result {
	tree.update(h)
	b := tree.balance(h)
	r := noRotation
	if b > 1 || b < -1 {
		r = rotationFor(b, lean(b))
	}
	if noRotation == r {
		return result{root: h, outcome: replaced}
	}
	return result{root: tree.apply(h, r), outcome: rebalanced}
}
