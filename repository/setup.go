// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package repository

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/dualindex/avl"
	"github.com/bitmark-inc/dualindex/counter"
	"github.com/bitmark-inc/dualindex/primary"
)

// Repository - the store and its index, kept consistent
type Repository struct {
	mutex sync.Mutex
	log   *logger.L

	store *primary.Tree
	index *avl.Tree

	inserts    counter.Counter
	duplicates counter.Counter
	deletes    counter.Counter
	missing    counter.Counter
	lookups    counter.Counter
	unknown    counter.Counter
	promotions counter.Counter
}

// New - create an empty repository that logs to the given channel
func New(log *logger.L) *Repository {
	return &Repository{
		log:   log,
		store: primary.New(),
		index: avl.New(),
	}
}

// Count - number of records
func (r *Repository) Count() int {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	return r.store.Count()
}
