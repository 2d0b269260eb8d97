// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"os"

	"github.com/bitmark-inc/logger"
	"golang.org/x/crypto/ssh/terminal"

	"github.com/bitmark-inc/dualindex/repository"
	"github.com/bitmark-inc/dualindex/shell"
)

type tty struct {
	io.Reader
	io.Writer
}

// interactive line editing on a raw terminal
func runConsole(in *os.File, out io.Writer, r *repository.Repository) error {

	fd := int(in.Fd())
	oldState, err := terminal.MakeRaw(fd)
	if nil != err {
		return err
	}
	defer terminal.Restore(fd, oldState)

	console := terminal.NewTerminal(tty{Reader: in, Writer: out}, prompt)

	// the terminal translates newlines for raw mode
	interpreter := shell.New(r, console, logger.New("shell"))

	for {
		line, err := console.ReadLine()
		if io.EOF == err {
			return nil
		} else if nil != err {
			return err
		}

		quit, err := interpreter.Execute(line)
		interpreter.Report(err)
		if quit {
			return nil
		}
	}
}
