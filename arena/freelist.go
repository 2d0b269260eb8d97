// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package arena

import (
	"github.com/bitmark-inc/dualindex/fault"
	"github.com/bitmark-inc/dualindex/record"
)

// FreeList - tracks which slots are in use and which can be reused
type FreeList struct {
	used []bool          // indexed by slot, slot zero is reserved
	free []record.Handle // stack of reclaimed slots
}

// Allocate - reserve a slot, reusing a reclaimed one if any are
// available.  The second result is false when the slot is new, in
// which case its number is always one past the previous highest slot
// so the caller can append to its node slice.
func (f *FreeList) Allocate() (record.Handle, bool) {
	if 0 == len(f.used) {
		f.used = append(f.used, false)
	}

	n := len(f.free)
	if 0 == n {
		f.used = append(f.used, true)
		return record.Handle(len(f.used) - 1), false
	}

	h := f.free[n-1]
	f.free = f.free[:n-1]
	if f.used[h] {
		fault.Panicf("arena: free list corrupt at slot: %v", h)
	}
	f.used[h] = true
	return h, true
}

// Release - return a slot for later reuse
func (f *FreeList) Release(h record.Handle) {
	if !f.IsLive(h) {
		fault.Panicf("arena: release of slot that is not in use: %v", h)
	}
	f.used[h] = false
	f.free = append(f.free, h)
}

// IsLive - true if the slot is currently allocated
func (f *FreeList) IsLive(h record.Handle) bool {
	if h.IsNil() || int(h) >= len(f.used) {
		return false
	}
	return f.used[h]
}

// Total - number of slots ever created
func (f *FreeList) Total() int {
	if 0 == len(f.used) {
		return 0
	}
	return len(f.used) - 1
}

// Free - number of slots waiting to be reused
func (f *FreeList) Free() int {
	return len(f.free)
}

// Live - number of slots in use
func (f *FreeList) Live() int {
	return f.Total() - f.Free()
}
