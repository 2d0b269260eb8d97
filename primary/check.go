// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package primary

import (
	"github.com/bitmark-inc/dualindex/fault"
	"github.com/bitmark-inc/dualindex/record"
)

// Check - verify the search order and the node count
//
// an in-order walk of a binary search tree must produce strictly
// ascending keys, so any step that does not is an order violation
func (tree *Tree) Check() error {
	n := 0
	last := record.Key(0)
	for c := tree.Cursor(); c.Next(); {
		if !tree.slots.IsLive(c.Handle()) {
			return fault.ErrCountMismatch
		}
		if 0 != n && c.Key() <= last {
			return fault.ErrOrderViolation
		}
		last = c.Key()
		n += 1
	}
	if n != tree.count || n != tree.slots.Live() {
		return fault.ErrCountMismatch
	}
	return nil
}
