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
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RangeError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised   = ExistsError("already initialised")
	ErrDatabaseClosed       = ProcessError("database is closed")
	ErrIndexOutOfRange      = RangeError("index out of range")
	ErrInvalidCommand       = InvalidError("invalid command")
	ErrInvalidConfiguration = InvalidError("configuration file must return a table")
	ErrInvalidDirectory     = InvalidError("invalid directory")
	ErrInvalidFanOut        = InvalidError("fan out must be at least one")
	ErrInvalidLoggerChannel = InvalidError("invalid logger channel")
	ErrInvalidRecordFile    = RecordError("invalid record file header")
	ErrInvalidStructPointer = InvalidError("invalid struct pointer")
	ErrInvalidStructure     = InvalidError("invalid structure name")
	ErrInvalidWeight        = InvalidError("invalid weight")
	ErrIteratorInvalidated  = InvalidError("iterator invalidated by tree modification")
	ErrIteratorOutOfRange   = RangeError("iterator out of range")
	ErrKeyNotFound          = NotFoundError("key not found")
	ErrKeyTooLong           = LengthError("key too long")
	ErrMissingArgument      = InvalidError("missing argument")
	ErrNotInitialised       = ProcessError("not initialised")
	ErrRecordCorrupt        = RecordError("record is corrupt")
	ErrRecordDeleted        = NotFoundError("record deleted")
	ErrRecordSizeMismatch   = RecordError("record size mismatch")
	ErrRecordTooLarge       = LengthError("record too large")
	ErrSelfLoop             = InvalidError("cannot go from a vertex to itself")
	ErrValueTooLong         = LengthError("value too long")
	ErrVertexExists         = ExistsError("vertex already exists")
	ErrVertexNotFound       = NotFoundError("vertex does not exist")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RangeError) Error() string    { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
func IsErrRange(e error) bool    { _, ok := e.(RangeError); return ok }
func IsErrRecord(e error) bool   { _, ok := e.(RecordError); return ok }
