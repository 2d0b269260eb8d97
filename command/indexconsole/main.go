// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"
	"github.com/mattn/go-isatty"

	"github.com/bitmark-inc/dualindex/configuration"
	"github.com/bitmark-inc/dualindex/fault"
	"github.com/bitmark-inc/dualindex/repository"
	"github.com/bitmark-inc/dualindex/shell"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

const prompt = "index> "

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--quiet] [--config-file=FILE] [script-file]", program)
	}

	if len(arguments) > 1 {
		exitwithstatus.Message("%s: at most one script file is allowed", program)
	}

	verbose := len(options["verbose"]) > 0
	quiet := len(options["quiet"]) > 0

	// ------------------
	// start of real main
	// ------------------

	var preload *configuration.Configuration
	if len(options["config-file"]) > 0 {
		preload, err = configuration.GetConfiguration(options["config-file"][0])
		if nil != err {
			exitwithstatus.Message("%s: configuration error: %s", program, err)
		}
		err = logger.Initialise(preload.Logging)
	} else {
		var directory string
		directory, err = initialiseTemporaryLogger(verbose)
		defer os.RemoveAll(directory)
	}
	if nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	fault.PanicIfError("fault.Initialise", fault.Initialise())
	defer fault.Finalise()

	log := logger.New("main")
	log.Infof("starting: %s", program)

	r := repository.New(logger.New("repository"))

	if nil != preload {
		keys, err := preload.InsertKeys()
		if nil != err {
			exitwithstatus.Message("%s: preload error: %s", program, err)
		}
		for i, err := range r.InsertKeys(keys) {
			if nil != err && !quiet {
				fmt.Fprintf(os.Stderr, "preload: %d  error: %s\n", keys[i], err)
			}
		}
		log.Infof("preloaded: %d records", r.Count())
	}

	if 1 == len(arguments) {
		f, err := os.Open(arguments[0])
		if nil != err {
			exitwithstatus.Message("%s: open script: %q  error: %s", program, arguments[0], err)
		}
		defer f.Close()
		runScript(f, os.Stdout, r)
		return
	}

	if !isatty.IsTerminal(os.Stdin.Fd()) {
		runScript(os.Stdin, os.Stdout, r)
		return
	}

	if !quiet {
		fmt.Printf("%s %s: type help for commands\n", program, version)
	}
	if err := runConsole(os.Stdin, os.Stdout, r); nil != err {
		exitwithstatus.Message("%s: terminal error: %s", program, err)
	}
}

// non-interactive input
func runScript(in io.Reader, out io.Writer, r *repository.Repository) {
	interpreter := shell.New(r, out, logger.New("shell"))
	if err := interpreter.Run(in); nil != err {
		exitwithstatus.Message("read error: %s", err)
	}
}

// log to a directory removed at exit
func initialiseTemporaryLogger(verbose bool) (string, error) {
	directory, err := ioutil.TempDir("", "indexconsole")
	if nil != err {
		return "", err
	}

	level := "critical"
	if verbose {
		level = "info"
	}
	logging := logger.Configuration{
		Directory: directory,
		File:      "indexconsole.log",
		Size:      1048576,
		Count:     1,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: level,
		},
	}
	return directory, logger.Initialise(logging)
}
