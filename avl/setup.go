// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"

	"github.com/bitmark-inc/avlkit/counter"
)

// CompareFunc - ordering of items, must return <0, 0 or >0 when a is
// less than, equal to or greater than b
type CompareFunc[T any] func(a T, b T) int

// Tree - type to hold the root slot and the nodes of a tree
type Tree[T any] struct {
	compare    CompareFunc[T]
	arena      arena[T]
	root       handle
	count      int
	generation counter.Counter // bumped on every structural change
}

// New - create an initially empty tree ordered by compare
func New[T any](compare CompareFunc[T]) *Tree[T] {
	if nil == compare {
		panic("avl: nil compare function")
	}
	return &Tree[T]{
		compare: compare,
		arena:   newArena[T](),
		root:    0,
		count:   0,
	}
}

// NewOrdered - create an empty tree using the natural ordering of T
func NewOrdered[T cmp.Ordered]() *Tree[T] {
	return New[T](cmp.Compare[T])
}

// IsEmpty - true if tree contains no data
func (tree *Tree[T]) IsEmpty() bool {
	return 0 == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree[T]) Count() int {
	return tree.count
}

// Height - height of the whole tree, zero when empty
func (tree *Tree[T]) Height() int {
	return int(tree.height(tree.root))
}

// Clear - drop all items, invalidates iterators
func (tree *Tree[T]) Clear() {
	tree.arena = newArena[T]()
	tree.root = 0
	tree.count = 0
	tree.generation.Increment()
}

// Clone - independent copy of the tree with the same ordering
func (tree *Tree[T]) Clone() *Tree[T] {
	return &Tree[T]{
		compare: tree.compare,
		arena:   tree.arena.clone(),
		root:    tree.root,
		count:   tree.count,
	}
}

// First - the lowest item
func (tree *Tree[T]) First() (T, bool) {
	var zero T
	h := tree.first(tree.root)
	if 0 == h {
		return zero, false
	}
	return tree.arena.nodes[h].data, true
}

// Last - the highest item
func (tree *Tree[T]) Last() (T, bool) {
	var zero T
	h := tree.last(tree.root)
	if 0 == h {
		return zero, false
	}
	return tree.arena.nodes[h].data, true
}

// ForEach - call fn for every item in order until it returns false
func (tree *Tree[T]) ForEach(fn func(item T) bool) {
	tree.each(tree.root, fn)
}

// Slice - all items in order
func (tree *Tree[T]) Slice() []T {
	items := make([]T, 0, tree.count)
	tree.each(tree.root, func(item T) bool {
		items = append(items, item)
		return true
	})
	return items
}

// internal: in-order walk, false means stopped early
func (tree *Tree[T]) each(p handle, fn func(item T) bool) bool {
	if 0 == p {
		return true
	}
	n := &tree.arena.nodes[p]
	if !tree.each(n.left, fn) {
		return false
	}
	if !fn(n.data) {
		return false
	}
	return tree.each(n.right, fn)
}

// internal: lowest node in a sub-tree
func (tree *Tree[T]) first(p handle) handle {
	if 0 == p {
		return 0
	}
	for 0 != tree.arena.nodes[p].left {
		p = tree.arena.nodes[p].left
	}
	return p
}

// internal: highest node in a sub-tree
func (tree *Tree[T]) last(p handle) handle {
	if 0 == p {
		return 0
	}
	for 0 != tree.arena.nodes[p].right {
		p = tree.arena.nodes[p].right
	}
	return p
}
