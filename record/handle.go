// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"strconv"
)

// Handle - slot number of a node in an arena
type Handle uint32

// Nil - the handle that refers to nothing
const Nil Handle = 0

// IsNil - true if the handle does not refer to any node
func (h Handle) IsNil() bool {
	return Nil == h
}

// String - "@N" for a slot, "@nil" for the nil handle
func (h Handle) String() string {
	if h.IsNil() {
		return "@nil"
	}
	return "@" + strconv.FormatUint(uint64(h), 10)
}
