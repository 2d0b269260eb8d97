// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/dualindex/fault"
	"github.com/bitmark-inc/dualindex/record"
)

func TestCompare(t *testing.T) {
	assert.Equal(t, -1, record.Key(1).Compare(2), "1 < 2")
	assert.Equal(t, 0, record.Key(7).Compare(7), "7 == 7")
	assert.Equal(t, 1, record.Key(-3).Compare(-9), "-3 > -9")
}

func TestParseKey(t *testing.T) {
	items := []struct {
		text string
		key  record.Key
		err  error
	}{
		{"10", 10, nil},
		{"  -42 ", -42, nil},
		{"+5", 5, nil},
		{"9223372036854775807", 9223372036854775807, nil},
		{"9223372036854775808", 0, fault.ErrInvalidKey},
		{"", 0, fault.ErrInvalidKey},
		{"ten", 0, fault.ErrInvalidKey},
		{"1.5", 0, fault.ErrInvalidKey},
		{"0x10", 0, fault.ErrInvalidKey},
	}

	for i, item := range items {
		k, err := record.ParseKey(item.text)
		assert.Equal(t, item.err, err, "%d: error for %q", i, item.text)
		assert.Equal(t, item.key, k, "%d: key for %q", i, item.text)
	}
}

func TestParseKeys(t *testing.T) {
	keys, err := record.ParseKeys([]string{"3", "1", "2"})
	assert.Nil(t, err, "parse error")
	assert.Equal(t, []record.Key{3, 1, 2}, keys, "keys")

	keys, err = record.ParseKeys([]string{"3", "x", "2"})
	assert.Equal(t, fault.ErrInvalidKey, err, "parse error")
	assert.Nil(t, keys, "keys after error")
}

func TestNumberKey(t *testing.T) {
	items := []struct {
		number float64
		key    record.Key
		err    error
	}{
		{30, 30, nil},
		{-2, -2, nil},
		{0, 0, nil},
		{9007199254740991, 9007199254740991, nil},
		{-9007199254740991, -9007199254740991, nil},
		{1.5, 0, fault.ErrInvalidKey},
		{-2.9, 0, fault.ErrInvalidKey},
		{9007199254740992, 0, fault.ErrInvalidKey},
		{-9007199254740992, 0, fault.ErrInvalidKey},
		{1e300, 0, fault.ErrInvalidKey},
		{math.NaN(), 0, fault.ErrInvalidKey},
		{math.Inf(1), 0, fault.ErrInvalidKey},
		{math.Inf(-1), 0, fault.ErrInvalidKey},
	}

	for i, item := range items {
		k, err := record.NumberKey(item.number)
		assert.Equal(t, item.err, err, "%d: error for %v", i, item.number)
		assert.Equal(t, item.key, k, "%d: key for %v", i, item.number)
	}
}

func TestHandleString(t *testing.T) {
	assert.Equal(t, "@nil", record.Nil.String(), "nil handle")
	assert.True(t, record.Nil.IsNil(), "nil handle is nil")
	assert.Equal(t, "@12", record.Handle(12).String(), "handle 12")
	assert.False(t, record.Handle(12).IsNil(), "handle 12 is nil")
}
