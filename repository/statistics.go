// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package repository

// Slots - arena usage of one tree
type Slots struct {
	Total int `json:"total"`
	Free  int `json:"free"`
}

// Statistics - counters and shape of a repository
type Statistics struct {
	Count         int    `json:"count"`
	Inserts       uint64 `json:"inserts"`
	Duplicates    uint64 `json:"duplicates"`
	Deletes       uint64 `json:"deletes"`
	Missing       uint64 `json:"missing"`
	Lookups       uint64 `json:"lookups"`
	Unknown       uint64 `json:"unknown"`
	Promotions    uint64 `json:"promotions"`
	Rotations     uint64 `json:"rotations"`
	PrimaryHeight int    `json:"primary_height"`
	IndexHeight   int    `json:"index_height"`
	PrimarySlots  Slots  `json:"primary_slots"`
	IndexSlots    Slots  `json:"index_slots"`
}

// Statistics - snapshot of the counters
func (r *Repository) Statistics() Statistics {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	s := Statistics{
		Count:         r.store.Count(),
		Inserts:       r.inserts.Uint64(),
		Duplicates:    r.duplicates.Uint64(),
		Deletes:       r.deletes.Uint64(),
		Missing:       r.missing.Uint64(),
		Lookups:       r.lookups.Uint64(),
		Unknown:       r.unknown.Uint64(),
		Promotions:    r.promotions.Uint64(),
		Rotations:     r.index.Rotations(),
		PrimaryHeight: r.store.Height(),
		IndexHeight:   r.index.Height(),
	}
	s.PrimarySlots.Total, s.PrimarySlots.Free = r.store.Slots()
	s.IndexSlots.Total, s.IndexSlots.Free = r.index.Slots()
	return s
}
