// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/dualindex/configuration"
	"github.com/bitmark-inc/dualindex/fault"
)

func runReplay(c *cli.Context) error {

	fileName := c.String("config")
	if "" == fileName {
		return fault.ErrMissingArguments
	}

	options, err := configuration.GetConfiguration(fileName)
	if nil != err {
		return err
	}

	if err := logger.Initialise(options.Logging); nil != err {
		return err
	}
	defer logger.Finalise()

	if err := fault.Initialise(); nil != err {
		return err
	}
	defer fault.Finalise()

	log := logger.New("main")
	log.Infof("configuration: %s", fileName)

	if c.GlobalBool("verbose") {
		fmt.Fprintf(c.App.ErrWriter, "data directory: %s\n", options.DataDirectory)
		fmt.Fprintf(c.App.ErrWriter, "log directory:  %s\n", options.Logging.Directory)
	}

	rpt, err := replay(options, log)
	if nil != err {
		return err
	}
	if err := printJson(c.App.Writer, rpt); nil != err {
		return err
	}

	if !c.Bool("watch") {
		return nil
	}

	channels := watcherChannels{
		change: make(chan struct{}, 1),
		remove: make(chan struct{}, 1),
	}
	watcher, err := newFileWatcher(fileName, logger.New(watcherLoggerPrefix), channels)
	if nil != err {
		return err
	}
	if err := watcher.Start(); nil != err {
		return err
	}
	defer watcher.Stop()

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(ch)

	for {
		select {
		case <-channels.change:
			updated, err := configuration.GetConfiguration(fileName)
			if nil != err {
				log.Warnf("reload error: %s", err)
				fmt.Fprintf(c.App.ErrWriter, "reload error: %s\n", err)
				continue
			}
			rpt, err := replay(updated, log)
			if nil != err {
				return err
			}
			if err := printJson(c.App.Writer, rpt); nil != err {
				return err
			}

		case <-channels.remove:
			return fault.ErrNotFoundConfigFile

		case sig := <-ch:
			log.Infof("received signal: %v", sig)
			return nil
		}
	}
}
