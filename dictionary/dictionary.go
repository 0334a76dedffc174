// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package dictionary - an ordered key/value map kept in an AVL tree
//
// Keys are unique; inserting an existing key replaces its value.
// Like the tree it is built on, a dictionary is not thread safe.
package dictionary

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/bitmark-inc/avlkit/avl"
	"github.com/bitmark-inc/avlkit/fault"
)

// a key/value pair ordered only by key
type entry[K any, V any] struct {
	key   K
	value V
}

// Dictionary - ordered map from K to V
type Dictionary[K any, V any] struct {
	tree *avl.Tree[entry[K, V]]
}

// New - empty dictionary using the natural ordering of the keys
func New[K cmp.Ordered, V any]() *Dictionary[K, V] {
	return NewWithCompare[K, V](cmp.Compare[K])
}

// NewWithCompare - empty dictionary ordered by a key comparison
func NewWithCompare[K any, V any](compare func(a K, b K) int) *Dictionary[K, V] {
	return &Dictionary[K, V]{
		tree: avl.New(func(a entry[K, V], b entry[K, V]) int {
			return compare(a.key, b.key)
		}),
	}
}

// entry holding only a key, for searching
func searchEntry[K any, V any](key K) entry[K, V] {
	return entry[K, V]{key: key}
}

// Insert - store a value, replacing any previous value for the key
func (d *Dictionary[K, V]) Insert(key K, value V) {
	e := entry[K, V]{key: key, value: value}
	it := d.tree.Find(e)
	if it.AtEnd() {
		d.tree.Insert(e)
		return
	}
	fault.PanicIfError("dictionary.Insert", it.Replace(e))
}

// Get - the value for a key
func (d *Dictionary[K, V]) Get(key K) (V, bool) {
	e, ok := d.tree.Get(searchEntry[K, V](key))
	return e.value, ok
}

// At - the value for a key, fault.ErrKeyNotFound if absent
func (d *Dictionary[K, V]) At(key K) (V, error) {
	e, ok := d.tree.Get(searchEntry[K, V](key))
	if !ok {
		return e.value, fault.ErrKeyNotFound
	}
	return e.value, nil
}

// GetOrInsert - the value for a key, first storing the result of
// create if the key is absent
func (d *Dictionary[K, V]) GetOrInsert(key K, create func() V) V {
	if e, ok := d.tree.Get(searchEntry[K, V](key)); ok {
		return e.value
	}
	value := create()
	d.tree.Insert(entry[K, V]{key: key, value: value})
	return value
}

// Remove - delete a key, false if it was not present
func (d *Dictionary[K, V]) Remove(key K) bool {
	return d.tree.Remove(searchEntry[K, V](key))
}

// RemoveWhere - delete every entry accepted by the predicate, returns
// the number removed
func (d *Dictionary[K, V]) RemoveWhere(predicate func(key K, value V) bool) int {
	doomed := make([]K, 0)
	d.tree.ForEach(func(e entry[K, V]) bool {
		if predicate(e.key, e.value) {
			doomed = append(doomed, e.key)
		}
		return true
	})
	for _, key := range doomed {
		d.tree.Remove(searchEntry[K, V](key))
	}
	return len(doomed)
}

// ContainsKey - true if the key is present
func (d *Dictionary[K, V]) ContainsKey(key K) bool {
	return d.tree.Contains(searchEntry[K, V](key))
}

// Len - number of keys
func (d *Dictionary[K, V]) Len() int {
	return d.tree.Count()
}

// IsEmpty - true if no keys are stored
func (d *Dictionary[K, V]) IsEmpty() bool {
	return d.tree.IsEmpty()
}

// Height - height of the underlying tree
func (d *Dictionary[K, V]) Height() int {
	return d.tree.Height()
}

// ForEach - visit entries in key order until fn returns false
func (d *Dictionary[K, V]) ForEach(fn func(key K, value V) bool) {
	d.tree.ForEach(func(e entry[K, V]) bool {
		return fn(e.key, e.value)
	})
}

// Keys - all keys in order
func (d *Dictionary[K, V]) Keys() []K {
	keys := make([]K, 0, d.tree.Count())
	d.tree.ForEach(func(e entry[K, V]) bool {
		keys = append(keys, e.key)
		return true
	})
	return keys
}

// String - [(key:value)(key:value)…]
func (d *Dictionary[K, V]) String() string {
	s := strings.Builder{}
	s.WriteString("[")
	d.tree.ForEach(func(e entry[K, V]) bool {
		fmt.Fprintf(&s, "(%v:%v)", e.key, e.value)
		return true
	})
	s.WriteString("]")
	return s.String()
}
