// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of errors to allow easy comparison
// without having to resort to partial string matches
//
// Duplicate keys and missing keys are ordinary results of the index
// operations, they are reported with ExistsError and NotFoundError.
// A ProcessError from a consistency check means the trees have
// diverged and is a program defect.
package fault
