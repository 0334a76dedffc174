// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package database

import (
	"encoding/binary"
	"math"

	"github.com/bitmark-inc/avlkit/fault"
)

// Body - record storage for encoded key/value pairs
//
// satisfied by *recordfile.File
type Body interface {
	Write([]byte, int) (int, error)
	Read(int) ([]byte, error)
	Remove(int) error
	ForEach(func(int, []byte) bool) error
	Rewrite() ([]int, error)
	Count() int
	RecordSize() int
	IsClean() bool
	Close() error
}

// byte sizes for the record fields
const (
	KeyLengthSize   = 2
	ValueLengthSize = 2
)

// minimum record size able to hold an empty key and value
const MinimumRecordSize = KeyLengthSize + ValueLengthSize

// pack a key and value into a single record
func packRecord(key string, value []byte, recordSize int) ([]byte, error) {
	if len(key) > math.MaxUint16 || KeyLengthSize+len(key)+ValueLengthSize > recordSize {
		return nil, fault.ErrKeyTooLong
	}
	if len(value) > math.MaxUint16 || KeyLengthSize+len(key)+ValueLengthSize+len(value) > recordSize {
		return nil, fault.ErrValueTooLong
	}

	record := make([]byte, 0, KeyLengthSize+len(key)+ValueLengthSize+len(value))
	record = binary.LittleEndian.AppendUint16(record, uint16(len(key)))
	record = append(record, key...)
	record = binary.LittleEndian.AppendUint16(record, uint16(len(value)))
	record = append(record, value...)
	return record, nil
}

// unpack a record; trailing padding is ignored
func unpackRecord(record []byte) (string, []byte, error) {
	n := 0
	if len(record) < n+KeyLengthSize {
		return "", nil, fault.ErrRecordCorrupt
	}
	keyLength := int(binary.LittleEndian.Uint16(record[n:]))
	n += KeyLengthSize

	if len(record) < n+keyLength+ValueLengthSize {
		return "", nil, fault.ErrRecordCorrupt
	}
	key := string(record[n : n+keyLength])
	n += keyLength

	valueLength := int(binary.LittleEndian.Uint16(record[n:]))
	n += ValueLengthSize

	if len(record) < n+valueLength {
		return "", nil, fault.ErrRecordCorrupt
	}
	value := make([]byte, valueLength)
	copy(value, record[n:])
	return key, value, nil
}
