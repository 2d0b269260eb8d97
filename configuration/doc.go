// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - parse a Lua configuration file
//
// most of base Lua is available such as reading files to set key data
// and getenv to extract environment supplied items.  The file must
// return a table, for example:
//
//   local M = {}
//   M.data_directory = "."
//   M.insert = { 30, 10, 20, 5, 40, 25 }
//   M.delete = { 10 }
//   M.lookup = { 20 }
//   M.check = true
//   M.print = { "index" }
//   M.logging = {
//       directory = "log",
//       file = "dualindex.log",
//       size = 1048576,
//       count = 10,
//       levels = { DEFAULT = "info" },
//   }
//   return M
package configuration
