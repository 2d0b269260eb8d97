// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/dualindex/fault"
	"github.com/bitmark-inc/dualindex/record"
)

// Check - verify order, cached heights, balance and node count
func (tree *Tree) Check() error {
	n := 0
	if _, err := tree.check(tree.root, nil, nil, &n); nil != err {
		return err
	}
	if n != tree.count || n != tree.slots.Live() {
		return fault.ErrCountMismatch
	}
	return nil
}

// internal: consistency checker, returns the real sub-tree height;
// low and high are exclusive bounds, nil when unbounded
func (tree *Tree) check(p record.Handle, low *record.Key, high *record.Key, n *int) (int, error) {
	if p.IsNil() {
		return 0, nil
	}
	if !tree.slots.IsLive(p) {
		return 0, fault.ErrCountMismatch
	}
	*n += 1

	key := tree.nodes[p].key
	if (nil != low && key <= *low) || (nil != high && key >= *high) {
		return 0, fault.ErrOrderViolation
	}

	hl, err := tree.check(tree.nodes[p].left, low, &key, n)
	if nil != err {
		return 0, err
	}
	hr, err := tree.check(tree.nodes[p].right, &key, high, n)
	if nil != err {
		return 0, err
	}

	h := 1 + hl
	if hr > hl {
		h = 1 + hr
	}
	if h != tree.nodes[p].height {
		return 0, fault.ErrHeightMismatch
	}
	if d := hl - hr; d > 1 || d < -1 {
		return 0, fault.ErrIndexUnbalanced
	}
	return h, nil
}
