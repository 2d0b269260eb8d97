// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/dualindex/configuration"
	"github.com/bitmark-inc/dualindex/fault"
	"github.com/bitmark-inc/dualindex/record"
	"github.com/bitmark-inc/dualindex/repository"
)

// outcome strings of a single operation
const (
	resultInserted  = "inserted"
	resultDuplicate = "already present"
	resultDeleted   = "deleted"
	resultNotFound  = "not found"
	resultFound     = "found"
)

type operation struct {
	Key    record.Key `json:"key"`
	Result string     `json:"result"`
}

type lookup struct {
	Key     record.Key    `json:"key"`
	Result  string        `json:"result"`
	Handle  record.Handle `json:"handle"`
	Holding record.Key    `json:"holding"`
}

// the JSON report of one replay
type report struct {
	Inserts      []operation           `json:"inserts"`
	Deletes      []operation           `json:"deletes"`
	Lookups      []lookup              `json:"lookups"`
	PrimaryOrder []record.Key          `json:"primary_order"`
	IndexOrder   []record.Key          `json:"index_order"`
	Check        string                `json:"check,omitempty"`
	Trees        map[string]string     `json:"trees,omitempty"`
	Statistics   repository.Statistics `json:"statistics"`
}

// replay the configured operations into a fresh repository
//
// inserts are applied before deletes, lookups run last
func replay(options *configuration.Configuration, log *logger.L) (*report, error) {

	inserts, err := options.InsertKeys()
	if nil != err {
		return nil, err
	}
	deletes, err := options.DeleteKeys()
	if nil != err {
		return nil, err
	}
	lookups, err := options.LookupKeys()
	if nil != err {
		return nil, err
	}

	r := repository.New(log)

	rpt := &report{
		Inserts: make([]operation, 0, len(inserts)),
		Deletes: make([]operation, 0, len(deletes)),
		Lookups: make([]lookup, 0, len(lookups)),
	}

	for _, key := range inserts {
		err := r.Insert(key)
		switch {
		case nil == err:
			rpt.Inserts = append(rpt.Inserts, operation{Key: key, Result: resultInserted})
		case fault.IsErrExists(err):
			rpt.Inserts = append(rpt.Inserts, operation{Key: key, Result: resultDuplicate})
		default:
			return nil, err
		}
	}

	for _, key := range deletes {
		err := r.Delete(key)
		switch {
		case nil == err:
			rpt.Deletes = append(rpt.Deletes, operation{Key: key, Result: resultDeleted})
		case fault.IsErrNotFound(err):
			rpt.Deletes = append(rpt.Deletes, operation{Key: key, Result: resultNotFound})
		default:
			return nil, err
		}
	}

	for _, key := range lookups {
		h, err := r.Lookup(key)
		if fault.IsErrNotFound(err) {
			rpt.Lookups = append(rpt.Lookups, lookup{Key: key, Result: resultNotFound})
			continue
		} else if nil != err {
			return nil, err
		}
		holding, err := r.Resolve(h)
		if nil != err {
			return nil, err
		}
		rpt.Lookups = append(rpt.Lookups, lookup{
			Key:     key,
			Result:  resultFound,
			Handle:  h,
			Holding: holding,
		})
	}

	rpt.PrimaryOrder = r.PrimaryOrder()
	rpt.IndexOrder = r.IndexOrder()

	if options.Check {
		if err := r.Check(); nil != err {
			rpt.Check = err.Error()
		} else {
			rpt.Check = "ok"
		}
	}

	if 0 != len(options.Print) {
		rpt.Trees = make(map[string]string)
		for _, tree := range options.Print {
			buffer := &bytes.Buffer{}
			if _, err := r.Print(buffer, tree); nil != err {
				return nil, err
			}
			rpt.Trees[tree] = buffer.String()
		}
	}

	rpt.Statistics = r.Statistics()

	log.Infof("replayed: %d inserts  %d deletes  %d lookups  count: %d", len(rpt.Inserts), len(rpt.Deletes), len(rpt.Lookups), rpt.Statistics.Count)

	return rpt, nil
}
