// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree used as a lookup index into
// the primary record store
//
// Each node holds a key, the cached height of its sub-tree and a
// back-reference: the record.Handle of the primary store node that
// holds the same key.  The index never owns that node; it only
// remembers where to find it.  Rotations move index nodes around but
// never alter a back-reference, and when a delete promotes the
// in-order successor the successor's key and back-reference travel
// together.
//
// Nodes are kept in a slice and linked by slot number, reclaimed
// slots are reused by later inserts.
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
package avl
