// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package database

import (
	"encoding/binary"
	"fmt"
	"math"
	"strings"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/avlkit/fault"
	"github.com/bitmark-inc/avlkit/recordfile"
	"github.com/bitmark-inc/avlkit/util"
)

// for index version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const currentIndexVersion = 0x100

// all record index entries use this prefix
const keyPrefix = 'K'

// in-memory copy of a LevelDB index entry, ordered by key
type indexEntry struct {
	key   string
	index int
}

func compareEntries(a indexEntry, b indexEntry) int {
	return strings.Compare(a.key, b.key)
}

func indexKey(key string) []byte {
	return append([]byte{keyPrefix}, key...)
}

func packIndex(index int) []byte {
	return util.ToVarint64(uint64(index))
}

func unpackIndex(value []byte) (int, error) {
	index, n := util.ClippedVarint64(value, 0, math.MaxInt32)
	if 0 == n || n != len(value) {
		return 0, fault.ErrRecordCorrupt
	}
	return index, nil
}

// return:
//   database handle
//   version number
func getDB(name string) (*leveldb.DB, int, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: false,
	}

	db, err := leveldb.OpenFile(name, opt)
	if nil != err {
		return nil, 0, err
	}

	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return db, 0, nil
	} else if nil != err {
		db.Close()
		return nil, 0, err
	}

	if 4 != len(versionValue) {
		db.Close()
		return nil, 0, fmt.Errorf("incompatible index version length: expected: %d  actual: %d", 4, len(versionValue))
	}

	version := int(binary.BigEndian.Uint32(versionValue))
	return db, version, nil
}

func putVersion(db *leveldb.DB, version int) error {
	currentVersion := make([]byte, 4)
	binary.BigEndian.PutUint32(currentVersion, uint32(version))

	return db.Put(versionKey, currentVersion, nil)
}

// fill the tree from LevelDB
func (d *Database) loadIndex() error {
	iter := d.index.NewIterator(ldb_util.BytesPrefix([]byte{keyPrefix}), nil)
	defer iter.Release()

	for iter.Next() {
		index, err := unpackIndex(iter.Value())
		if nil != err {
			return err
		}
		key := string(iter.Key()[1:])
		d.tree.Insert(indexEntry{key: key, index: index})
	}
	return iter.Error()
}

// recreate LevelDB and the tree from the body records
//
// if a key occurs more than once the last record wins and the others
// are marked deleted
func (d *Database) rebuildIndex() error {
	superseded := make([]int, 0)
	var decodeError error

	err := d.body.ForEach(func(index int, record []byte) bool {
		key, _, err := unpackRecord(record)
		if nil != err {
			decodeError = err
			return false
		}
		entry := indexEntry{key: key, index: index}
		it := d.tree.Find(entry)
		if it.AtEnd() {
			d.tree.Insert(entry)
			return true
		}
		previous, err := it.Value()
		fault.PanicIfError("database.rebuildIndex: value", err)
		superseded = append(superseded, previous.index)
		fault.PanicIfError("database.rebuildIndex: replace", it.Replace(entry))
		return true
	})
	if nil != err {
		return err
	}
	if nil != decodeError {
		return decodeError
	}

	for _, index := range superseded {
		if err := d.body.Remove(index); nil != err {
			return err
		}
	}

	batch := new(leveldb.Batch)
	d.tree.ForEach(func(e indexEntry) bool {
		batch.Put(indexKey(e.key), packIndex(e.index))
		return true
	})
	return d.index.Write(batch, &ldb_opt.WriteOptions{Sync: true})
}

// a renumbered entry whose record was dropped
func checkIndex(e indexEntry) error {
	if e.index < 0 {
		return fault.ErrRecordCorrupt
	}
	return nil
}

// compact the body and renumber every index entry
//
// returns the number of records dropped
func (d *Database) rewrite() (int, error) {
	// every entry must refer to a live record before any renumbering
	entries := d.tree.Slice()
	for _, e := range entries {
		if _, err := d.body.Read(e.index); nil != err {
			d.log.Criticalf("rewrite: key: %q  record: %d  error: %s", e.key, e.index, err)
			return 0, fault.ErrRecordCorrupt
		}
	}

	invalidated, err := d.body.Rewrite()
	if nil != err {
		return 0, err
	}
	d.removed = 0
	if 0 == len(invalidated) {
		return 0, nil
	}

	batch := new(leveldb.Batch)
	d.tree.Clear()
	for _, e := range entries {
		e.index = recordfile.NewIndex(invalidated, e.index)
		fault.PanicIfError("database.rewrite: renumber", checkIndex(e))
		d.tree.Insert(e)
		batch.Put(indexKey(e.key), packIndex(e.index))
	}

	// the tree now matches the body even if the index write fails
	if err := d.index.Write(batch, &ldb_opt.WriteOptions{Sync: true}); nil != err {
		d.log.Criticalf("rewrite: index write error: %s", err)
		return 0, err
	}

	d.log.Debugf("rewrite dropped: %d  records: %d", len(invalidated), len(entries))
	return len(invalidated), nil
}
