// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package database

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/avlkit/avl"
	"github.com/bitmark-inc/avlkit/background"
	"github.com/bitmark-inc/avlkit/fault"
	"github.com/bitmark-inc/avlkit/recordfile"
)

// file names inside the database directory
const (
	bodyFileName  = "body.rec"
	indexFileName = "index.leveldb"
)

// defaults for unset configuration values
const (
	DefaultRecordSize = 256
	DefaultDirtyRatio = 0.25
)

// Configuration - database settings
type Configuration struct {
	Directory       string  `gluamapper:"directory" json:"directory"`
	RecordSize      int     `gluamapper:"record_size" json:"record_size"`
	CacheExpiry     int     `gluamapper:"cache_expiry" json:"cache_expiry"`         // seconds
	CompactInterval int     `gluamapper:"compact_interval" json:"compact_interval"` // seconds, zero disables the compactor
	DirtyRatio      float64 `gluamapper:"dirty_ratio" json:"dirty_ratio"`
}

// Database - an open key/value database
type Database struct {
	sync.Mutex

	log   *logger.L
	body  Body
	index *leveldb.DB
	cache Cache
	tree  *avl.Tree[indexEntry]

	removed    int // records marked deleted since the last rewrite
	dirtyRatio float64
	compactor  *background.T
	closed     bool
}

// Open - open or create a database
func Open(configuration Configuration, log *logger.L) (*Database, error) {
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}

	directory := configuration.Directory
	if "" == directory {
		return nil, fault.ErrMissingArgument
	}
	if err := os.MkdirAll(directory, 0700); nil != err {
		return nil, err
	}

	recordSize := configuration.RecordSize
	if 0 == recordSize {
		recordSize = DefaultRecordSize
	}
	if recordSize < MinimumRecordSize {
		return nil, fault.ErrRecordSizeMismatch
	}

	body, err := recordfile.Open(filepath.Join(directory, bodyFileName), recordSize)
	if nil != err {
		return nil, err
	}

	index, version, err := getDB(filepath.Join(directory, indexFileName))
	if nil != err {
		body.Close()
		return nil, err
	}
	if version > currentIndexVersion {
		log.Criticalf("index version: %d > current version: %d", version, currentIndexVersion)
		index.Close()
		body.Close()
		return nil, fault.ErrInvalidRecordFile
	}

	cache := newCache(time.Duration(configuration.CacheExpiry) * time.Second)

	d, err := newDatabase(body, index, cache, log)
	if nil != err {
		index.Close()
		body.Close()
		return nil, err
	}

	d.dirtyRatio = configuration.DirtyRatio
	if d.dirtyRatio <= 0 {
		d.dirtyRatio = DefaultDirtyRatio
	}

	if configuration.CompactInterval > 0 {
		c := &compactor{
			database: d,
			interval: time.Duration(configuration.CompactInterval) * time.Second,
		}
		d.compactor = background.Start(background.Processes{c}, log)
	}

	log.Infof("opened: %q  records: %d  slots: %d", directory, d.tree.Count(), body.Count())
	return d, nil
}

// set up a database from its parts and load the in-memory index
func newDatabase(body Body, index *leveldb.DB, cache Cache, log *logger.L) (*Database, error) {
	d := &Database{
		log:        log,
		body:       body,
		index:      index,
		cache:      cache,
		tree:       avl.New(compareEntries),
		dirtyRatio: DefaultDirtyRatio,
	}

	if err := d.loadIndex(); nil != err {
		return nil, err
	}
	if 0 == d.tree.Count() && 0 != body.Count() {
		log.Warnf("index empty: rebuild from: %d record slots", body.Count())
		if err := d.rebuildIndex(); nil != err {
			return nil, err
		}
	}
	if err := putVersion(index, currentIndexVersion); nil != err {
		return nil, err
	}

	d.removed = body.Count() - d.tree.Count()
	return d, nil
}

// Close - stop the compactor, compact any deleted records and close
// all files
func (d *Database) Close() error {
	d.compactor.Stop()

	d.Lock()
	defer d.Unlock()

	if d.closed {
		return nil
	}
	d.closed = true

	var err error
	if !d.body.IsClean() {
		n, e := d.rewrite()
		if nil != e {
			d.log.Errorf("close: rewrite error: %s", e)
			err = e
		} else {
			d.log.Infof("close: rewrite dropped: %d records", n)
		}
	}

	if e := d.index.Close(); nil != e && nil == err {
		err = e
	}
	if e := d.body.Close(); nil != e && nil == err {
		err = e
	}
	d.cache.Clear()
	d.log.Flush()
	return err
}
