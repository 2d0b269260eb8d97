// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package repository

import (
	"io"

	"github.com/bitmark-inc/dualindex/fault"
)

// names of the two trees
const (
	PrimaryTree = "primary"
	IndexTree   = "index"
)

// Print - draw one of the trees, returns its depth
func (r *Repository) Print(w io.Writer, tree string) (int, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	switch tree {
	case PrimaryTree:
		return r.store.Print(w), nil
	case IndexTree:
		return r.index.Print(w, true), nil
	default:
		return 0, fault.ErrInvalidTree
	}
}
