// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package record - the key and handle types shared by the primary
// store and the balanced index
//
// A Handle is the slot number of a primary store node.  It stays the
// same for the lifetime of the node so an index entry can refer to
// it without owning it.  Handle zero is never allocated and stands
// for "no node".
package record
