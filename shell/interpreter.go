// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package shell

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/dualindex/fault"
	"github.com/bitmark-inc/dualindex/record"
	"github.com/bitmark-inc/dualindex/repository"
)

const usage = `commands:
  insert KEY...            add records
  delete KEY...            remove records
  lookup KEY...            find records through the index
  order [primary|index]    keys in ascending order
  print [primary|index]    draw a tree
  check                    verify both trees agree
  stats                    counters as JSON
  help                     this message
  quit                     end the session
`

// Interpreter - executes command lines against a store
type Interpreter struct {
	store Store
	w     io.Writer
	log   *logger.L
}

// New - create an interpreter writing its results to w
func New(store Store, w io.Writer, log *logger.L) *Interpreter {
	return &Interpreter{
		store: store,
		w:     w,
		log:   log,
	}
}

// Run - execute every line from r until end of input or quit
//
// invalid commands are reported and skipped
func (i *Interpreter) Run(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		quit, err := i.Execute(scanner.Text())
		i.Report(err)
		if quit {
			return nil
		}
	}
	return scanner.Err()
}

// Report - print a command error, a failed check is also logged as
// critical since it means the trees have diverged
func (i *Interpreter) Report(err error) {
	if nil == err {
		return
	}
	switch {
	case fault.IsErrProcess(err):
		i.log.Criticalf("integrity failure: %s", err)
	case fault.IsErrInvalid(err):
		i.log.Debugf("rejected: %s", err)
	}
	fmt.Fprintf(i.w, "error: %s\n", err)
}

// Execute - run one command line, returns true when the session
// should end
func (i *Interpreter) Execute(line string) (bool, error) {
	words := strings.Fields(line)
	if 0 == len(words) || strings.HasPrefix(words[0], "#") {
		return false, nil
	}

	command := strings.ToLower(words[0])
	arguments := words[1:]
	i.log.Debugf("command: %s  arguments: %v", command, arguments)

	switch command {
	case "insert", "i", "add":
		return false, i.keys(arguments, i.insert)
	case "delete", "d", "del", "remove":
		return false, i.keys(arguments, i.delete)
	case "lookup", "l", "find":
		return false, i.keys(arguments, i.lookup)
	case "order", "o":
		return false, i.order(arguments)
	case "print", "p":
		return false, i.print(arguments)
	case "check", "c":
		return false, i.check()
	case "stats", "s":
		return false, i.stats()
	case "help", "h", "?":
		fmt.Fprint(i.w, usage)
		return false, nil
	case "quit", "q", "exit":
		return true, nil
	default:
		i.log.Warnf("invalid command: %q", command)
		return false, fault.ErrInvalidCommand
	}
}

// parse all keys first, then apply the action to each
func (i *Interpreter) keys(arguments []string, action func(record.Key)) error {
	if 0 == len(arguments) {
		return fault.ErrMissingArguments
	}
	keys, err := record.ParseKeys(arguments)
	if nil != err {
		return err
	}
	for _, key := range keys {
		action(key)
	}
	return nil
}

func (i *Interpreter) insert(key record.Key) {
	err := i.store.Insert(key)
	switch {
	case nil == err:
		fmt.Fprintf(i.w, "inserted: %d\n", key)
	case fault.IsErrExists(err):
		fmt.Fprintf(i.w, "already present: %d\n", key)
	default:
		fmt.Fprintf(i.w, "insert: %d error: %s\n", key, err)
	}
}

func (i *Interpreter) delete(key record.Key) {
	err := i.store.Delete(key)
	switch {
	case nil == err:
		fmt.Fprintf(i.w, "deleted: %d\n", key)
	case fault.IsErrNotFound(err):
		fmt.Fprintf(i.w, "not found: %d\n", key)
	default:
		fmt.Fprintf(i.w, "delete: %d error: %s\n", key, err)
	}
}

func (i *Interpreter) lookup(key record.Key) {
	h, err := i.store.Lookup(key)
	if fault.IsErrNotFound(err) {
		fmt.Fprintf(i.w, "not found: %d\n", key)
		return
	}
	if nil != err {
		fmt.Fprintf(i.w, "lookup: %d error: %s\n", key, err)
		return
	}

	// show what the handle really holds so a stale reference is visible
	held, err := i.store.Resolve(h)
	if nil != err {
		fmt.Fprintf(i.w, "found: %d → %v error: %s\n", key, h, err)
		return
	}
	fmt.Fprintf(i.w, "found: %d → %v holding: %d\n", key, h, held)
}

// optional tree name argument, empty when absent
func treeName(arguments []string) (string, error) {
	switch len(arguments) {
	case 0:
		return "", nil
	case 1:
		name := strings.ToLower(arguments[0])
		if repository.PrimaryTree != name && repository.IndexTree != name {
			return "", fault.ErrInvalidTree
		}
		return name, nil
	default:
		return "", fault.ErrInvalidCommand
	}
}

func (i *Interpreter) order(arguments []string) error {
	name, err := treeName(arguments)
	if nil != err {
		return err
	}
	if "" == name || repository.PrimaryTree == name {
		fmt.Fprintf(i.w, "%s: %s\n", repository.PrimaryTree, join(i.store.PrimaryOrder()))
	}
	if "" == name || repository.IndexTree == name {
		fmt.Fprintf(i.w, "%s: %s\n", repository.IndexTree, join(i.store.IndexOrder()))
	}
	return nil
}

func (i *Interpreter) print(arguments []string) error {
	name, err := treeName(arguments)
	if nil != err {
		return err
	}
	if "" == name {
		name = repository.IndexTree
	}
	depth, err := i.store.Print(i.w, name)
	if nil != err {
		return err
	}
	fmt.Fprintf(i.w, "depth: %d\n", depth)
	return nil
}

func (i *Interpreter) check() error {
	// the caller reports the error
	if err := i.store.Check(); nil != err {
		i.log.Errorf("check failed: %s", err)
		return err
	}
	fmt.Fprintf(i.w, "ok\n")
	return nil
}

func (i *Interpreter) stats() error {
	b, err := json.MarshalIndent(i.store.Statistics(), "", "  ")
	if nil != err {
		return err
	}
	fmt.Fprintf(i.w, "%s\n", b)
	return nil
}

// space separated keys, "(empty)" for none
func join(keys []record.Key) string {
	if 0 == len(keys) {
		return "(empty)"
	}
	s := make([]string, len(keys))
	for i, k := range keys {
		s[i] = k.String()
	}
	return strings.Join(s, " ")
}
