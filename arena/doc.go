// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package arena - slot bookkeeping for trees stored in slices
//
// A tree keeps its nodes in a slice and refers to them by slot
// number (record.Handle).  The free list decides which slot a new
// node goes into: released slots are reused last-in first-out, and
// only when none are waiting is a fresh slot appended.  Slot zero is
// reserved so that the zero handle can mean "no node".
//
// Note: a free list is not thread safe, it belongs to exactly one
//       tree and is protected by whatever protects that tree.
package arena
