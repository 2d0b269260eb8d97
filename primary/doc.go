// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package primary - the record store: an unbalanced binary search
// tree that owns one node per live record
//
// Nodes live in a slice and are addressed by record.Handle, so a
// handle taken by the index remains valid until the node holding it
// is deleted.  The tree is never rotated; a node only moves when a
// two-child delete copies its in-order successor's key into it.  In
// that case the successor's slot is the one released and the
// original slot keeps its handle while taking the successor's key.
//
// Every operation, including Print, is iterative since nothing bounds
// the depth of an unbalanced tree.
//
// Note: a tree is not thread safe, so either access only in a single
//       go routine or use mutex/rwmutex to restrict access.
package primary
