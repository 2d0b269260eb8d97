// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package repository_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/dualindex/fault"
	"github.com/bitmark-inc/dualindex/record"
	"github.com/bitmark-inc/dualindex/repository"
)

func newRepository(t *testing.T, keys ...record.Key) *repository.Repository {
	r := repository.New(logger.New(category))
	for _, key := range keys {
		require.NoError(t, r.Insert(key), "insert %d", key)
		require.NoError(t, r.Check(), "check after insert %d", key)
	}
	return r
}

// insert 10 20 30 40 50 25 then delete 10
func TestDemoScenario(t *testing.T) {
	r := newRepository(t, 10, 20, 30, 40, 50, 25)

	expected := []record.Key{10, 20, 25, 30, 40, 50}
	assert.Equal(t, expected, r.PrimaryOrder(), "primary order")
	assert.Equal(t, expected, r.IndexOrder(), "index order")

	require.NoError(t, r.Delete(10), "delete 10")
	require.NoError(t, r.Check(), "check")

	expected = []record.Key{20, 25, 30, 40, 50}
	assert.Equal(t, expected, r.PrimaryOrder(), "primary order after delete")
	assert.Equal(t, expected, r.IndexOrder(), "index order after delete")
}

func TestRoundTrip(t *testing.T) {
	r := newRepository(t, 30, 10, 20, 5, 40, 25)

	require.NoError(t, r.Delete(10), "delete 10")
	require.NoError(t, r.Check(), "check")

	expected := []record.Key{5, 20, 25, 30, 40}
	assert.Equal(t, expected, r.PrimaryOrder(), "primary order")
	assert.Equal(t, expected, r.IndexOrder(), "index order")
	assert.Equal(t, 5, r.Count(), "count")
}

// 10 has two children so 20 is promoted into its slot and the index
// entry for 20 has to follow
func TestPromotionRepointsIndex(t *testing.T) {
	r := newRepository(t, 30, 10, 20, 5, 40, 25)

	h10, err := r.Lookup(10)
	require.NoError(t, err, "lookup 10")
	h20, err := r.Lookup(20)
	require.NoError(t, err, "lookup 20")

	require.NoError(t, r.Delete(10), "delete 10")

	h, err := r.Lookup(20)
	require.NoError(t, err, "lookup 20 after delete")
	assert.Equal(t, h10, h, "20 not repointed to the surviving slot")

	key, err := r.Resolve(h)
	assert.NoError(t, err, "resolve")
	assert.Equal(t, record.Key(20), key, "resolved key")

	_, err = r.Resolve(h20)
	assert.Equal(t, fault.ErrInvalidHandle, err, "successor slot still live")

	_, err = r.Lookup(10)
	assert.Equal(t, fault.ErrKeyNotFound, err, "deleted key found")

	s := r.Statistics()
	assert.Equal(t, uint64(1), s.Promotions, "promotions")
}

func TestDuplicateInsert(t *testing.T) {
	r := newRepository(t, 3, 1, 2)

	var primaryBefore, indexBefore bytes.Buffer
	r.Print(&primaryBefore, repository.PrimaryTree)
	r.Print(&indexBefore, repository.IndexTree)

	err := r.Insert(2)
	assert.Equal(t, fault.ErrDuplicateKey, err, "duplicate insert")
	assert.True(t, fault.IsErrExists(err), "error class")

	var primaryAfter, indexAfter bytes.Buffer
	r.Print(&primaryAfter, repository.PrimaryTree)
	r.Print(&indexAfter, repository.IndexTree)

	assert.Equal(t, primaryBefore.String(), primaryAfter.String(), "primary shape changed")
	assert.Equal(t, indexBefore.String(), indexAfter.String(), "index shape changed")
	assert.Equal(t, 3, r.Count(), "count")
	assert.NoError(t, r.Check(), "check")
}

func TestDeleteNotFound(t *testing.T) {
	r := newRepository(t)

	err := r.Delete(99)
	assert.Equal(t, fault.ErrKeyNotFound, err, "delete on empty")
	assert.True(t, fault.IsErrNotFound(err), "error class")
	assert.Empty(t, r.PrimaryOrder(), "primary order")
	assert.Empty(t, r.IndexOrder(), "index order")
	assert.NoError(t, r.Check(), "check")

	r = newRepository(t, 1, 2)
	var before bytes.Buffer
	r.Print(&before, repository.IndexTree)
	assert.Equal(t, fault.ErrKeyNotFound, r.Delete(99), "delete absent key")
	var after bytes.Buffer
	r.Print(&after, repository.IndexTree)
	assert.Equal(t, before.String(), after.String(), "index changed")

	s := r.Statistics()
	assert.Equal(t, uint64(1), s.Missing, "missing")
}

func TestAscendingInserts(t *testing.T) {
	r := newRepository(t, 1, 2, 3, 4, 5, 6, 7)

	expected := []record.Key{1, 2, 3, 4, 5, 6, 7}
	assert.Equal(t, expected, r.IndexOrder(), "index order")
	assert.Equal(t, expected, r.PrimaryOrder(), "primary order")

	s := r.Statistics()
	assert.Equal(t, 7, s.PrimaryHeight, "primary tree is a list")
	assert.Equal(t, 3, s.IndexHeight, "index tree is perfect")
}

func TestBatch(t *testing.T) {
	r := newRepository(t)

	results := r.InsertKeys([]record.Key{5, 3, 5, 8})
	assert.Equal(t, []error{nil, nil, fault.ErrDuplicateKey, nil}, results, "insert results")

	results = r.DeleteKeys([]record.Key{3, 3, 9})
	assert.Equal(t, []error{nil, fault.ErrKeyNotFound, fault.ErrKeyNotFound}, results, "delete results")

	assert.Equal(t, []record.Key{5, 8}, r.PrimaryOrder(), "primary order")
	assert.NoError(t, r.Check(), "check")
}

func TestLookupUnknown(t *testing.T) {
	r := newRepository(t, 1)

	_, err := r.Lookup(2)
	assert.Equal(t, fault.ErrKeyNotFound, err, "lookup absent key")

	_, err = r.Resolve(record.Nil)
	assert.Equal(t, fault.ErrInvalidHandle, err, "resolve nil handle")

	s := r.Statistics()
	assert.Equal(t, uint64(1), s.Lookups, "lookups")
	assert.Equal(t, uint64(1), s.Unknown, "unknown")
}

func TestPrintInvalidTree(t *testing.T) {
	r := newRepository(t, 1)
	var b bytes.Buffer
	_, err := r.Print(&b, "other")
	assert.Equal(t, fault.ErrInvalidTree, err, "invalid tree name")
}

func TestStatisticsJSON(t *testing.T) {
	r := newRepository(t, 2, 1, 3)
	require.NoError(t, r.Delete(2), "delete 2")

	b, err := json.Marshal(r.Statistics())
	require.NoError(t, err, "marshal")

	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(b, &m), "unmarshal")
	assert.Equal(t, float64(2), m["count"], "count")
	assert.Equal(t, float64(3), m["inserts"], "inserts")
	assert.Equal(t, float64(1), m["deletes"], "deletes")
	assert.Equal(t, float64(1), m["promotions"], "promotions")
	assert.Contains(t, m, "primary_slots", "slots")
}
