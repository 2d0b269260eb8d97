// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package shell - line oriented commands against a repository
//
//   insert KEY...            add records
//   delete KEY...            remove records
//   lookup KEY...            find records through the index
//   order [primary|index]    keys in ascending order, default both
//   print [primary|index]    draw a tree, default index
//   check                    verify both trees agree
//   stats                    counters as JSON
//   help                     list the commands
//   quit                     end the session
//
// Keys are parsed before anything is sent to the store, so a line
// with one bad key changes nothing.  Duplicate inserts and missing
// keys are ordinary results and are printed as such.
package shell
