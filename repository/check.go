// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package repository

import (
	"github.com/bitmark-inc/dualindex/fault"
	"github.com/bitmark-inc/dualindex/record"
)

// Check - verify that both trees are well formed, hold the same keys
// and that every index entry refers to the store node with its key
//
// any error returned is a program defect, not a usage error
func (r *Repository) Check() error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	err := r.check()
	if nil != err {
		r.log.Warnf("check failed: %s", err)
	}
	return err
}

func (r *Repository) check() error {
	if err := r.store.Check(); nil != err {
		return err
	}
	if err := r.index.Check(); nil != err {
		return err
	}
	if r.store.Count() != r.index.Count() {
		return fault.ErrKeySetMismatch
	}

	// both walks are ascending so equal sets give equal sequences
	var err error
	s := r.store.Cursor()
	r.index.Each(func(key record.Key, ref record.Handle) bool {
		if !s.Next() || s.Key() != key {
			err = fault.ErrKeySetMismatch
			return false
		}
		held, ok := r.store.Key(ref)
		if !ok || held != key {
			err = fault.ErrDanglingReference
			return false
		}
		return true
	})
	if nil != err {
		return err
	}
	if s.Next() {
		return fault.ErrKeySetMismatch
	}
	return nil
}
