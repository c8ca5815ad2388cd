// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
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
	ErrAlreadyInitialised     = ExistsError("already initialised")
	ErrCountMismatch          = ProcessError("node count does not match tree count")
	ErrDuplicateKey           = ExistsError("duplicate key")
	ErrInconsistentParent     = ProcessError("parent link is inconsistent")
	ErrInvalidDataDirectory   = InvalidError("invalid data directory")
	ErrInvalidConfiguration   = InvalidError("configuration must return a table")
	ErrInvalidFileName        = InvalidError("file name must not contain a path")
	ErrInvalidInputLine       = InvalidError("input line must be: key value")
	ErrInvalidLoggerChannel   = InvalidError("invalid logger channel")
	ErrInvalidRepeat          = InvalidError("repeat count must be positive")
	ErrInvalidSize            = InvalidError("size must be positive")
	ErrInvalidStructPointer   = InvalidError("invalid struct pointer")
	ErrKeyNotFound            = NotFoundError("key not found")
	ErrLookupFailed           = ProcessError("lookup did not find an inserted key")
	ErrMissingArguments       = InvalidError("missing arguments")
	ErrNilOrdering            = InvalidError("ordering relation is nil")
	ErrNotBalanced            = ProcessError("tree is not balanced")
	ErrOrderViolation         = ProcessError("keys are not in ascending order")
	ErrUnknownReportFormat    = NotFoundError("unknown report format")
	ErrUnknownWorkload        = NotFoundError("unknown workload")
	ErrWorkloadsNotConfigured = InvalidError("no workloads configured")
)

// the error interface base method
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
