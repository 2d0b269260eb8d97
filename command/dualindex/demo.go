// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/dualindex/fault"
	"github.com/bitmark-inc/dualindex/record"
	"github.com/bitmark-inc/dualindex/repository"
)

var (
	demoInserts = []record.Key{10, 20, 30, 40, 50, 25}
	demoDelete  = record.Key(10)
)

type demoStage struct {
	PrimaryOrder []record.Key `json:"primary_order"`
	IndexOrder   []record.Key `json:"index_order"`
}

type demoReport struct {
	Inserted   demoStage             `json:"inserted"`
	Deleted    demoStage             `json:"deleted"`
	Statistics repository.Statistics `json:"statistics"`
}

func runDemo(c *cli.Context) error {

	directory, err := ioutil.TempDir("", "dualindex")
	if nil != err {
		return err
	}
	defer os.RemoveAll(directory)

	level := "critical"
	if c.GlobalBool("verbose") {
		level = "info"
	}
	logging := logger.Configuration{
		Directory: directory,
		File:      "demo.log",
		Size:      1048576,
		Count:     1,
		Console:   c.GlobalBool("verbose"),
		Levels: map[string]string{
			logger.DefaultTag: level,
		},
	}
	if err := logger.Initialise(logging); nil != err {
		return err
	}
	defer logger.Finalise()

	if err := fault.Initialise(); nil != err {
		return err
	}
	defer fault.Finalise()

	rpt, err := demo(logger.New("main"))
	if nil != err {
		return err
	}
	return printJson(c.App.Writer, rpt)
}

func demo(log *logger.L) (*demoReport, error) {
	r := repository.New(log)

	for _, key := range demoInserts {
		if err := r.Insert(key); nil != err {
			return nil, fmt.Errorf("insert: %d  error: %s", key, err)
		}
	}

	rpt := &demoReport{
		Inserted: demoStage{
			PrimaryOrder: r.PrimaryOrder(),
			IndexOrder:   r.IndexOrder(),
		},
	}

	if err := r.Delete(demoDelete); nil != err {
		return nil, fmt.Errorf("delete: %d  error: %s", demoDelete, err)
	}

	rpt.Deleted = demoStage{
		PrimaryOrder: r.PrimaryOrder(),
		IndexOrder:   r.IndexOrder(),
	}
	rpt.Statistics = r.Statistics()

	return rpt, r.Check()
}
