// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"math"
	"strconv"
	"strings"

	"github.com/bitmark-inc/dualindex/fault"
)

// Key - the identity of a record
type Key int64

// Compare - three way comparison: -1 if k < x, 0 if equal, +1 if k > x
func (k Key) Compare(x Key) int {
	switch {
	case k < x:
		return -1
	case k > x:
		return +1
	default:
		return 0
	}
}

// String - decimal representation
func (k Key) String() string {
	return strconv.FormatInt(int64(k), 10)
}

// ParseKey - convert text to a key, rejecting anything that is not a
// base 10 signed 64 bit integer
func ParseKey(s string) (Key, error) {
	s = strings.TrimSpace(s)
	if "" == s {
		return 0, fault.ErrInvalidKey
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if nil != err {
		return 0, fault.ErrInvalidKey
	}
	return Key(n), nil
}

// ParseKeys - convert a list of strings, stops at the first bad one
func ParseKeys(list []string) ([]Key, error) {
	keys := make([]Key, 0, len(list))
	for _, s := range list {
		k, err := ParseKey(s)
		if nil != err {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, nil
}

// numbers at or beyond this magnitude may already have been rounded
const exactLimit = 1 << 53

// NumberKey - convert a floating point number, as produced by
// configuration files, rejecting fractions, NaN, infinities and
// magnitudes where float64 cannot hold every integer
func NumberKey(f float64) (Key, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fault.ErrInvalidKey
	}
	if f != math.Trunc(f) || f >= exactLimit || f <= -exactLimit {
		return 0, fault.ErrInvalidKey
	}
	return Key(f), nil
}
