// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package repository - a record store paired with a balanced index
//
//  ***** Structure *****
//
//  Repository
//  |___ store   primary.Tree   unbalanced, owns one node per record
//  |___ index   avl.Tree       balanced, key → handle of store node
//
//
//  index node ---- back-reference ----> store node
//   (may move on rotation)               (never rotated)
//
//  ***** Synchronisation *****
//
//  Insert:
//    the store node is created first and its handle is given to the
//    index exactly once
//
//  Delete:
//    both trees drop the key; when the store promoted the in-order
//    successor into the deleted node's slot the index entry of the
//    successor key is repointed to that slot, since the successor's
//    own slot has been released
//
// Every public method holds one lock for its whole duration, so a
// repository can be shared between go routines although each call is
// still applied one at a time.
package repository
