// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package repository

import (
	"github.com/bitmark-inc/dualindex/fault"
	"github.com/bitmark-inc/dualindex/record"
)

// Insert - add a record
//
// returns fault.ErrDuplicateKey if the key is already present, in
// which case neither tree is modified
func (r *Repository) Insert(key record.Key) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	return r.insert(key)
}

// InsertKeys - add several records, one result per key
func (r *Repository) InsertKeys(keys []record.Key) []error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	results := make([]error, len(keys))
	for i, key := range keys {
		results[i] = r.insert(key)
	}
	return results
}

func (r *Repository) insert(key record.Key) error {
	h, added := r.store.Insert(key)
	if !added {
		r.duplicates.Increment()
		r.log.Debugf("insert: %d already present at: %v", key, h)
		return fault.ErrDuplicateKey
	}

	// the handle of the new leaf, never an ancestor's
	if !r.index.Insert(key, h) {
		fault.Panicf("repository: insert: key: %d already in index", key)
	}

	r.inserts.Increment()
	r.log.Debugf("insert: %d at: %v", key, h)
	return nil
}

// Delete - remove a record
//
// returns fault.ErrKeyNotFound if the key is not present, in which
// case neither tree is modified
func (r *Repository) Delete(key record.Key) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	return r.delete(key)
}

// DeleteKeys - remove several records, one result per key
func (r *Repository) DeleteKeys(keys []record.Key) []error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	results := make([]error, len(keys))
	for i, key := range keys {
		results[i] = r.delete(key)
	}
	return results
}

func (r *Repository) delete(key record.Key) error {
	removal, ok := r.store.Delete(key)
	if !ok {
		r.missing.Increment()
		r.log.Debugf("delete: %d not found", key)
		return fault.ErrKeyNotFound
	}

	ref, ok := r.index.Delete(key)
	if !ok {
		fault.Panicf("repository: delete: key: %d missing from index", key)
	}

	// the index entry must have referred to the slot that held the key
	expected := removal.Freed
	if removal.Promoted {
		expected = removal.Holder
	}
	if ref != expected {
		fault.Panicf("repository: delete: key: %d index referred to: %v  expected: %v", key, ref, expected)
	}

	if removal.Promoted {
		if !r.index.Repoint(removal.PromotedKey, removal.Holder) {
			fault.Panicf("repository: delete: promoted key: %d missing from index", removal.PromotedKey)
		}
		r.promotions.Increment()
		r.log.Debugf("delete: %d promoted: %d from: %v to: %v", key, removal.PromotedKey, removal.Freed, removal.Holder)
	}

	r.deletes.Increment()
	r.log.Debugf("delete: %d freed: %v", key, removal.Freed)
	return nil
}

// Lookup - find the handle of the store node holding a key using
// the balanced index
func (r *Repository) Lookup(key record.Key) (record.Handle, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.lookups.Increment()
	h, ok := r.index.Search(key)
	if !ok {
		r.unknown.Increment()
		return record.Nil, fault.ErrKeyNotFound
	}
	return h, nil
}

// Resolve - read the key held by the store node behind a handle
func (r *Repository) Resolve(h record.Handle) (record.Key, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	key, ok := r.store.Key(h)
	if !ok {
		return 0, fault.ErrInvalidHandle
	}
	return key, nil
}

// PrimaryOrder - keys of the store in ascending order
func (r *Repository) PrimaryOrder() []record.Key {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	return r.store.Keys()
}

// IndexOrder - keys of the index in ascending order
func (r *Repository) IndexOrder() []record.Key {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	return r.index.Keys()
}
