// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
	"runtime"
	"time"

	"github.com/bitmark-inc/logger"
)

const panicTag = "PANIC"

// time for the logger to write the final message
const flushDelay = 100 * time.Millisecond

// channel for the last message before a panic
var log *logger.L

// Initialise - open the panic channel, logger must already be set up
func Initialise() error {
	if nil != log {
		return ErrAlreadyInitialised
	}
	log = logger.New(panicTag)
	if nil == log {
		return ErrInvalidLoggerChannel
	}
	return nil
}

// Finalise - flush and detach the panic channel
func Finalise() {
	if nil == log {
		return
	}
	log.Flush()
	log = nil
}

// Panicf - record the caller and message then panic with the message
//
// only for states that cannot occur unless the trees are corrupt
func Panicf(format string, arguments ...interface{}) {
	message := fmt.Sprintf(format, arguments...)
	critical(where(2), message)
	if nil != log {
		time.Sleep(flushDelay)
	}
	panic(message)
}

// PanicIfError - Panicf when err is not nil
func PanicIfError(message string, err error) {
	if nil != err {
		Panicf("%s failed with error: %s", message, err)
	}
}

// file:line of a caller, empty if unknown
func where(skip int) string {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return ""
	}
	return fmt.Sprintf("(%q:%d) ", file, line)
}

// falls back to stdout before Initialise
func critical(location string, message string) {
	if nil == log {
		fmt.Printf("*** %s%s\n", location, message)
		return
	}
	log.Criticalf("%s%s", location, message)
	log.Flush()
}
