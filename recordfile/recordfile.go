// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package recordfile - a file of fixed size records with a header
// tracking whether the file needs compaction
//
// Removing a record only clears its valid byte, so record indexes
// stay stable until Rewrite compacts the file.
package recordfile

import (
	"bytes"
	"encoding/binary"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/bitmark-inc/avlkit/fault"
)

// Flags - header state bits
type Flags uint32

// header flag values
const (
	Clean Flags = 1 << iota // no removed records in the file
	Empty                   // no records have been written
)

// byte sizes for the header fields
const (
	MagicSize      = 4
	FlagsSize      = 4
	RecordSizeSize = 4
	ValidSize      = 1
)

// offsets of the header fields
const (
	magicOffset      = 0
	flagsOffset      = magicOffset + MagicSize
	recordSizeOffset = flagsOffset + FlagsSize

	// first record starts here
	headerSize = recordSizeOffset + RecordSizeSize
)

const (
	recordValid   = 1
	recordInvalid = 0
)

var magic = []byte("AVLR")

// File - an open record file
type File struct {
	path       string
	handle     *os.File
	flags      Flags
	recordSize int
	count      int
}

// Open - open a record file, creating an empty one if it does not exist
func Open(path string, recordSize int) (*File, error) {
	if recordSize <= 0 {
		return nil, fault.ErrRecordSizeMismatch
	}

	handle, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0600)
	if nil != err {
		return nil, err
	}

	f := &File{
		path:       path,
		handle:     handle,
		recordSize: recordSize,
	}

	info, err := handle.Stat()
	if nil != err {
		handle.Close()
		return nil, err
	}

	if 0 == info.Size() {
		f.flags = Clean | Empty
		err = writeHeader(handle, f.flags, recordSize)
	} else {
		err = f.readHeader(info.Size())
	}
	if nil != err {
		handle.Close()
		return nil, err
	}
	return f, nil
}

func writeHeader(w io.WriterAt, flags Flags, recordSize int) error {
	header := make([]byte, headerSize)
	copy(header[magicOffset:], magic)
	binary.LittleEndian.PutUint32(header[flagsOffset:], uint32(flags))
	binary.LittleEndian.PutUint32(header[recordSizeOffset:], uint32(recordSize))
	_, err := w.WriteAt(header, 0)
	return err
}

func (f *File) readHeader(size int64) error {
	if size < headerSize {
		return fault.ErrInvalidRecordFile
	}
	header := make([]byte, headerSize)
	if _, err := f.handle.ReadAt(header, 0); nil != err {
		return err
	}
	if !bytes.Equal(magic, header[magicOffset:magicOffset+MagicSize]) {
		return fault.ErrInvalidRecordFile
	}
	if uint32(f.recordSize) != binary.LittleEndian.Uint32(header[recordSizeOffset:]) {
		return fault.ErrRecordSizeMismatch
	}
	body := size - headerSize
	if 0 != body%int64(f.stride()) {
		return fault.ErrRecordCorrupt
	}
	f.flags = Flags(binary.LittleEndian.Uint32(header[flagsOffset:]))
	f.count = int(body / int64(f.stride()))
	return nil
}

func (f *File) setFlags(flags Flags) error {
	if flags == f.flags {
		return nil
	}
	buffer := make([]byte, FlagsSize)
	binary.LittleEndian.PutUint32(buffer, uint32(flags))
	if _, err := f.handle.WriteAt(buffer, flagsOffset); nil != err {
		return err
	}
	f.flags = flags
	return nil
}

func (f *File) stride() int {
	return ValidSize + f.recordSize
}

func (f *File) offset(index int) int64 {
	return headerSize + int64(index)*int64(f.stride())
}

// Path - file name
func (f *File) Path() string {
	return f.path
}

// RecordSize - payload bytes per record
func (f *File) RecordSize() int {
	return f.recordSize
}

// Flags - current header flags
func (f *File) Flags() Flags {
	return f.flags
}

// IsClean - true if no record has been removed since the last Rewrite
func (f *File) IsClean() bool {
	return 0 != f.flags&Clean
}

// IsEmpty - true if the file holds no records
func (f *File) IsEmpty() bool {
	return 0 != f.flags&Empty
}

// Count - number of record slots, including removed records
func (f *File) Count() int {
	return f.count
}

// Write - store a record at an index, or append when the index is
// negative; returns the index written
func (f *File) Write(data []byte, index int) (int, error) {
	if len(data) > f.recordSize {
		return 0, fault.ErrRecordTooLarge
	}
	if index > f.count {
		return 0, fault.ErrIndexOutOfRange
	}
	if index < 0 {
		index = f.count
	}

	buffer := make([]byte, f.stride())
	buffer[0] = recordValid
	copy(buffer[ValidSize:], data)

	if _, err := f.handle.WriteAt(buffer, f.offset(index)); nil != err {
		return 0, err
	}
	if index == f.count {
		f.count += 1
	}
	if err := f.setFlags(f.flags &^ Empty); nil != err {
		return 0, err
	}
	return index, nil
}

func (f *File) readSlot(index int) ([]byte, error) {
	if index < 0 || index >= f.count {
		return nil, fault.ErrIndexOutOfRange
	}
	buffer := make([]byte, f.stride())
	if _, err := f.handle.ReadAt(buffer, f.offset(index)); nil != err {
		return nil, err
	}
	return buffer, nil
}

// Read - the payload of a valid record
func (f *File) Read(index int) ([]byte, error) {
	buffer, err := f.readSlot(index)
	if nil != err {
		return nil, err
	}
	switch buffer[0] {
	case recordValid:
		return buffer[ValidSize:], nil
	case recordInvalid:
		return nil, fault.ErrRecordDeleted
	default:
		return nil, fault.ErrRecordCorrupt
	}
}

// Remove - mark a record as removed
func (f *File) Remove(index int) error {
	buffer, err := f.readSlot(index)
	if nil != err {
		return err
	}
	if recordInvalid == buffer[0] {
		return fault.ErrRecordDeleted
	}
	if _, err := f.handle.WriteAt([]byte{recordInvalid}, f.offset(index)); nil != err {
		return err
	}
	return f.setFlags(f.flags &^ Clean)
}

// ForEach - visit each valid record in index order until fn returns false
func (f *File) ForEach(fn func(index int, data []byte) bool) error {
	for index := 0; index < f.count; index += 1 {
		buffer, err := f.readSlot(index)
		if nil != err {
			return err
		}
		if recordValid != buffer[0] {
			continue
		}
		if !fn(index, buffer[ValidSize:]) {
			break
		}
	}
	return nil
}

// Rewrite - compact the file by dropping removed records
//
// returns the indexes, in ascending order, of the records that were
// dropped; use NewIndex to translate the index of a surviving record
func (f *File) Rewrite() ([]int, error) {
	tmp, err := os.CreateTemp(filepath.Dir(f.path), filepath.Base(f.path)+".*")
	if nil != err {
		return nil, err
	}
	tmpName := tmp.Name()
	abandon := func(err error) ([]int, error) {
		tmp.Close()
		os.Remove(tmpName)
		return nil, err
	}

	invalidated := make([]int, 0)
	kept := 0
	for index := 0; index < f.count; index += 1 {
		buffer, err := f.readSlot(index)
		if nil != err {
			return abandon(err)
		}
		if recordValid != buffer[0] {
			invalidated = append(invalidated, index)
			continue
		}
		if _, err := tmp.WriteAt(buffer, f.offset(kept)); nil != err {
			return abandon(err)
		}
		kept += 1
	}

	flags := Clean
	if 0 == kept {
		flags |= Empty
	}
	if err := writeHeader(tmp, flags, f.recordSize); nil != err {
		return abandon(err)
	}
	if err := tmp.Sync(); nil != err {
		return abandon(err)
	}

	if err := os.Rename(tmpName, f.path); nil != err {
		return abandon(err)
	}

	f.handle.Close()
	f.handle = tmp
	f.flags = flags
	f.count = kept
	return invalidated, nil
}

// NewIndex - the index of a record after a Rewrite that dropped the
// given indexes; -1 if the record itself was dropped
func NewIndex(invalidated []int, index int) int {
	n := sort.SearchInts(invalidated, index)
	if n < len(invalidated) && index == invalidated[n] {
		return -1
	}
	return index - n
}

// Close - close the file
func (f *File) Close() error {
	if nil == f.handle {
		return nil
	}
	err := f.handle.Close()
	f.handle = nil
	return err
}
