// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package database

import (
	"time"

	cache "github.com/patrickmn/go-cache"
)

// Cache - recently read or written values
type Cache interface {
	Get(string) ([]byte, bool)
	Set(dbOperation, string, []byte)
	Clear()
}

type dbOperation int

const (
	dbPut dbOperation = iota
	dbDelete
)

const (
	defaultExpiration = 2 * time.Minute
	cleanupInterval   = 5 * time.Minute
)

type dbCache struct {
	cache      *cache.Cache
	expiration time.Duration
}

type cacheData struct {
	op    dbOperation
	value []byte
}

func newCache(expiration time.Duration) *dbCache {
	if expiration <= 0 {
		expiration = defaultExpiration
	}
	return &dbCache{
		cache:      cache.New(expiration, cleanupInterval),
		expiration: expiration,
	}
}

func (c *dbCache) Get(key string) ([]byte, bool) {
	obj, found := c.cache.Get(key)
	if !found {
		return nil, false
	}

	// a deleted key is reported as not found
	data := obj.(cacheData)
	if dbDelete == data.op {
		return nil, false
	}
	return data.value, true
}

func (c *dbCache) Set(op dbOperation, key string, value []byte) {
	cached := cacheData{
		op:    op,
		value: value,
	}
	c.cache.Set(key, cached, c.expiration)
}

func (c *dbCache) Clear() {
	c.cache.Flush()
}
