// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package database

import (
	"github.com/bitmark-inc/avlkit/fault"
	"github.com/bitmark-inc/avlkit/util"
)

func duplicate(value []byte) []byte {
	result := make([]byte, len(value))
	copy(result, value)
	return result
}

// Put - store a value, replacing any existing value for the key
func (d *Database) Put(key string, value []byte) error {
	d.Lock()
	defer d.Unlock()

	if d.closed {
		return fault.ErrDatabaseClosed
	}

	record, err := packRecord(key, value, d.body.RecordSize())
	if nil != err {
		return err
	}

	if e, ok := d.tree.Get(indexEntry{key: key}); ok {
		// overwrite in place
		if _, err := d.body.Write(record, e.index); nil != err {
			return err
		}
	} else {
		index, err := d.body.Write(record, -1)
		if nil != err {
			return err
		}
		if err := d.index.Put(indexKey(key), packIndex(index), nil); nil != err {
			d.log.Errorf("put: key: %q  index error: %s", key, err)
			if nil == d.body.Remove(index) {
				d.removed += 1
			}
			return err
		}
		d.tree.Insert(indexEntry{key: key, index: index})
	}

	d.cache.Set(dbPut, key, duplicate(value))
	return nil
}

// Get - fetch the value for a key
func (d *Database) Get(key string) ([]byte, error) {
	d.Lock()
	defer d.Unlock()

	if d.closed {
		return nil, fault.ErrDatabaseClosed
	}
	return d.get(key)
}

func (d *Database) get(key string) ([]byte, error) {
	if value, ok := d.cache.Get(key); ok {
		return duplicate(value), nil
	}

	e, ok := d.tree.Get(indexEntry{key: key})
	if !ok {
		return nil, fault.ErrKeyNotFound
	}

	value, err := d.read(e)
	if nil != err {
		return nil, err
	}
	d.cache.Set(dbPut, key, value)
	return duplicate(value), nil
}

// read and check the record for an index entry
func (d *Database) read(e indexEntry) ([]byte, error) {
	record, err := d.body.Read(e.index)
	if nil != err {
		return nil, err
	}
	key, value, err := unpackRecord(record)
	if nil != err {
		return nil, err
	}
	if key != e.key {
		d.log.Criticalf("record: %d  key: %q  expected: %q", e.index, key, e.key)
		return nil, fault.ErrRecordCorrupt
	}
	return value, nil
}

// Delete - remove a key, false if it was not present
func (d *Database) Delete(key string) (bool, error) {
	d.Lock()
	defer d.Unlock()

	if d.closed {
		return false, fault.ErrDatabaseClosed
	}

	e, ok := d.tree.Get(indexEntry{key: key})
	if !ok {
		return false, nil
	}

	// the durable index goes first so a failure leaves the record live
	if err := d.index.Delete(indexKey(key), nil); nil != err {
		return false, err
	}
	if err := d.body.Remove(e.index); nil != err {
		d.log.Errorf("delete: key: %q  record: %d  error: %s", key, e.index, err)
		if restoreErr := d.index.Put(indexKey(key), packIndex(e.index), nil); nil != restoreErr {
			d.log.Criticalf("delete: key: %q  restore index error: %s", key, restoreErr)
		}
		return false, err
	}
	d.removed += 1

	d.tree.Remove(e)
	d.cache.Set(dbDelete, key, nil)
	return true, nil
}

// Keys - all keys in order
func (d *Database) Keys() []string {
	d.Lock()
	defer d.Unlock()

	keys := make([]string, 0, d.tree.Count())
	d.tree.ForEach(func(e indexEntry) bool {
		keys = append(keys, e.key)
		return true
	})
	return keys
}

// ForEach - visit each key and value in key order until fn returns false
//
// the database is locked for the duration so fn must not call back
// into it
func (d *Database) ForEach(fn func(key string, value []byte) bool) error {
	d.Lock()
	defer d.Unlock()

	if d.closed {
		return fault.ErrDatabaseClosed
	}

	var err error
	d.tree.ForEach(func(e indexEntry) bool {
		var value []byte
		value, err = d.get(e.key)
		if nil != err {
			return false
		}
		return fn(e.key, value)
	})
	return err
}

// Fingerprint - digest of every key and value in key order
func (d *Database) Fingerprint() (util.FingerprintBytes, error) {
	f := util.NewFingerprinter()
	err := d.ForEach(func(key string, value []byte) bool {
		f.Add([]byte(key))
		f.Add(value)
		return true
	})
	if nil != err {
		return util.FingerprintBytes{}, err
	}
	return f.Sum(), nil
}

// Count - number of keys
func (d *Database) Count() int {
	d.Lock()
	defer d.Unlock()
	return d.tree.Count()
}

// Height - height of the in-memory index tree
func (d *Database) Height() int {
	d.Lock()
	defer d.Unlock()
	return d.tree.Height()
}

// Slots - number of records in the body including deleted ones
func (d *Database) Slots() int {
	d.Lock()
	defer d.Unlock()
	return d.body.Count()
}

// IsClean - true if the body holds no deleted records
func (d *Database) IsClean() bool {
	d.Lock()
	defer d.Unlock()
	return d.body.IsClean()
}

// Rewrite - compact the body now, returns the number of records dropped
func (d *Database) Rewrite() (int, error) {
	d.Lock()
	defer d.Unlock()

	if d.closed {
		return 0, fault.ErrDatabaseClosed
	}
	return d.rewrite()
}
