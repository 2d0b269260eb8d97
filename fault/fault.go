// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised   = ProcessError("already initialised")
	ErrCountMismatch        = ProcessError("node count does not match the tree")
	ErrDanglingReference    = ProcessError("index back-reference does not resolve to its key")
	ErrDuplicateKey         = ExistsError("key is already present")
	ErrHeightMismatch       = ProcessError("cached index height is wrong")
	ErrIndexUnbalanced      = ProcessError("index is not height balanced")
	ErrInvalidCommand       = InvalidError("invalid command")
	ErrInvalidConfiguration = InvalidError("configuration must return a table")
	ErrInvalidHandle        = InvalidError("handle does not refer to a live record")
	ErrInvalidKey           = InvalidError("key is not a valid integer")
	ErrInvalidLoggerChannel = ProcessError("invalid logger channel")
	ErrInvalidStructPointer = InvalidError("invalid struct pointer")
	ErrInvalidTree          = InvalidError("tree name must be primary or index")
	ErrKeyNotFound          = NotFoundError("key not found")
	ErrKeySetMismatch       = ProcessError("primary and index key sets differ")
	ErrMissingArguments     = InvalidError("missing arguments")
	ErrNotFoundConfigFile   = NotFoundError("config file is not found")
	ErrOrderViolation       = ProcessError("binary search tree order violated")
)

// Error - the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
