// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package shell

import (
	"io"

	"github.com/bitmark-inc/dualindex/record"
	"github.com/bitmark-inc/dualindex/repository"
)

//go:generate mockgen -destination=mocks/mock_store.go -package=mocks github.com/bitmark-inc/dualindex/shell Store

// Store - the operations the shell needs, satisfied by
// *repository.Repository
type Store interface {
	Insert(record.Key) error
	Delete(record.Key) error
	Lookup(record.Key) (record.Handle, error)
	Resolve(record.Handle) (record.Key, error)
	PrimaryOrder() []record.Key
	IndexOrder() []record.Key
	Check() error
	Statistics() repository.Statistics
	Print(io.Writer, string) (int, error)
}
