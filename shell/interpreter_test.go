// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package shell_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/dualindex/fault"
	"github.com/bitmark-inc/dualindex/record"
	"github.com/bitmark-inc/dualindex/repository"
	"github.com/bitmark-inc/dualindex/shell"
	"github.com/bitmark-inc/dualindex/shell/mocks"
)

func TestInsertReportsEachKey(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	m := mocks.NewMockStore(ctl)

	gomock.InOrder(
		m.EXPECT().Insert(record.Key(5)).Return(nil).Times(1),
		m.EXPECT().Insert(record.Key(-2)).Return(fault.ErrDuplicateKey).Times(1),
	)

	var b bytes.Buffer
	quit, err := shell.New(m, &b, logger.New(category)).Execute("insert 5 -2")
	assert.False(t, quit, "quit")
	assert.NoError(t, err, "execute")
	assert.Equal(t, "inserted: 5\nalready present: -2\n", b.String(), "output")
}

// one bad key rejects the whole line before the store sees anything
func TestBadKeyRejected(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	m := mocks.NewMockStore(ctl)

	m.EXPECT().Insert(gomock.Any()).Times(0)
	m.EXPECT().Delete(gomock.Any()).Times(0)

	var b bytes.Buffer
	i := shell.New(m, &b, logger.New(category))

	_, err := i.Execute("insert 1 two 3")
	assert.Equal(t, fault.ErrInvalidKey, err, "insert with bad key")

	_, err = i.Execute("delete 1.5")
	assert.Equal(t, fault.ErrInvalidKey, err, "delete with bad key")

	_, err = i.Execute("delete")
	assert.Equal(t, fault.ErrMissingArguments, err, "delete without keys")

	assert.Empty(t, b.String(), "output")
}

func TestDeleteAndLookup(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	m := mocks.NewMockStore(ctl)

	m.EXPECT().Delete(record.Key(9)).Return(fault.ErrKeyNotFound).Times(1)
	m.EXPECT().Delete(record.Key(3)).Return(nil).Times(1)
	m.EXPECT().Lookup(record.Key(4)).Return(record.Handle(2), nil).Times(1)
	m.EXPECT().Resolve(record.Handle(2)).Return(record.Key(4), nil).Times(1)
	m.EXPECT().Lookup(record.Key(8)).Return(record.Nil, fault.ErrKeyNotFound).Times(1)

	var b bytes.Buffer
	i := shell.New(m, &b, logger.New(category))

	_, err := i.Execute("delete 9 3")
	assert.NoError(t, err, "delete")
	_, err = i.Execute("LOOKUP 4 8")
	assert.NoError(t, err, "lookup")

	expected := "not found: 9\n" +
		"deleted: 3\n" +
		"found: 4 → @2 holding: 4\n" +
		"not found: 8\n"
	assert.Equal(t, expected, b.String(), "output")
}

func TestOrderAndPrint(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	m := mocks.NewMockStore(ctl)

	m.EXPECT().PrimaryOrder().Return([]record.Key{1, 2}).Times(2)
	m.EXPECT().IndexOrder().Return([]record.Key{}).Times(1)
	m.EXPECT().Print(gomock.Any(), repository.IndexTree).DoAndReturn(
		func(w io.Writer, tree string) (int, error) {
			_, _ = io.WriteString(w, "<tree>\n")
			return 4, nil
		}).Times(1)

	var b bytes.Buffer
	i := shell.New(m, &b, logger.New(category))

	_, err := i.Execute("order")
	assert.NoError(t, err, "order")
	_, err = i.Execute("order primary")
	assert.NoError(t, err, "order primary")
	_, err = i.Execute("print")
	assert.NoError(t, err, "print")
	_, err = i.Execute("print other")
	assert.Equal(t, fault.ErrInvalidTree, err, "print other")
	_, err = i.Execute("order primary index")
	assert.Equal(t, fault.ErrInvalidCommand, err, "order with two trees")

	expected := "primary: 1 2\n" +
		"index: (empty)\n" +
		"primary: 1 2\n" +
		"<tree>\n" +
		"depth: 4\n"
	assert.Equal(t, expected, b.String(), "output")
}

func TestCheckFailure(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	m := mocks.NewMockStore(ctl)

	m.EXPECT().Check().Return(fault.ErrKeySetMismatch).Times(1)

	var b bytes.Buffer
	_, err := shell.New(m, &b, logger.New(category)).Execute("check")
	assert.Equal(t, fault.ErrKeySetMismatch, err, "check")
	assert.Equal(t, "", b.String(), "nothing printed by the command itself")
}

// a failed check is reported once, by the session loop
func TestCheckFailureReportedOnce(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	m := mocks.NewMockStore(ctl)

	m.EXPECT().Check().Return(fault.ErrKeySetMismatch).Times(1)

	var b bytes.Buffer
	err := shell.New(m, &b, logger.New(category)).Run(strings.NewReader("check\n"))
	assert.Nil(t, err, "run")
	assert.Equal(t, "error: primary and index key sets differ\n", b.String(), "output")
}

func TestMiscellaneous(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	m := mocks.NewMockStore(ctl)

	var b bytes.Buffer
	i := shell.New(m, &b, logger.New(category))

	quit, err := i.Execute("   ")
	assert.False(t, quit, "blank line")
	assert.NoError(t, err, "blank line")

	quit, err = i.Execute("# a comment")
	assert.False(t, quit, "comment")
	assert.NoError(t, err, "comment")

	_, err = i.Execute("frobnicate 1")
	assert.Equal(t, fault.ErrInvalidCommand, err, "unknown command")

	_, err = i.Execute("help")
	assert.NoError(t, err, "help")
	assert.True(t, strings.HasPrefix(b.String(), "commands:\n"), "help text")

	quit, err = i.Execute("quit")
	assert.True(t, quit, "quit")
	assert.NoError(t, err, "quit")
}

// a whole session against a real repository
func TestRunScript(t *testing.T) {
	r := repository.New(logger.New(category))

	script := strings.Join([]string{
		"# demo scenario",
		"insert 10 20 30 40 50 25",
		"order",
		"delete 10",
		"order",
		"lookup 20 10",
		"insert x",
		"check",
		"quit",
		"insert 99",
	}, "\n")

	var b bytes.Buffer
	err := shell.New(r, &b, logger.New(category)).Run(strings.NewReader(script))
	assert.NoError(t, err, "run")

	h, err := r.Lookup(20)
	assert.NoError(t, err, "lookup 20")

	expected := "inserted: 10\ninserted: 20\ninserted: 30\ninserted: 40\ninserted: 50\ninserted: 25\n" +
		"primary: 10 20 25 30 40 50\n" +
		"index: 10 20 25 30 40 50\n" +
		"deleted: 10\n" +
		"primary: 20 25 30 40 50\n" +
		"index: 20 25 30 40 50\n" +
		"found: 20 → " + h.String() + " holding: 20\n" +
		"not found: 10\n" +
		"error: key is not a valid integer\n" +
		"ok\n"
	assert.Equal(t, expected, b.String(), "output")

	// nothing after quit is executed
	_, err = r.Lookup(99)
	assert.Equal(t, fault.ErrKeyNotFound, err, "line after quit executed")
}

func TestStats(t *testing.T) {
	r := repository.New(logger.New(category))
	var b bytes.Buffer
	i := shell.New(r, &b, logger.New(category))

	_, err := i.Execute("insert 2 1 3")
	assert.NoError(t, err, "insert")
	b.Reset()

	_, err = i.Execute("stats")
	assert.NoError(t, err, "stats")
	assert.Contains(t, b.String(), "\"count\": 3", "count")
	assert.Contains(t, b.String(), "\"inserts\": 3", "inserts")
}
