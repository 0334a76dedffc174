// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avlkit/fault"
)

// Iterator - a position in the in-order sequence of a tree
//
// the stack holds the path from the root to the current node, an
// empty stack is the end position
type Iterator[T any] struct {
	tree       *Tree[T]
	stack      []handle
	generation uint64
}

// Begin - iterator at the lowest item, equal to End for an empty tree
func (tree *Tree[T]) Begin() *Iterator[T] {
	it := tree.newIterator()
	it.pushLeft(tree.root)
	return it
}

// End - iterator one past the highest item
func (tree *Tree[T]) End() *Iterator[T] {
	return tree.newIterator()
}

func (tree *Tree[T]) newIterator() *Iterator[T] {
	return &Iterator[T]{
		tree:       tree,
		stack:      make([]handle, 0, tree.height(tree.root)),
		generation: tree.generation.Uint64(),
	}
}

// internal: iterator at a specific node, the path is recovered from
// the back-references
func (tree *Tree[T]) iteratorAt(p handle) *Iterator[T] {
	it := tree.newIterator()
	for ; 0 != p; p = tree.arena.nodes[p].up {
		it.stack = append(it.stack, p)
	}
	for i, j := 0, len(it.stack)-1; i < j; i, j = i+1, j-1 {
		it.stack[i], it.stack[j] = it.stack[j], it.stack[i]
	}
	return it
}

// push p and its chain of left children
func (it *Iterator[T]) pushLeft(p handle) {
	for ; 0 != p; p = it.tree.arena.nodes[p].left {
		it.stack = append(it.stack, p)
	}
}

// push p and its chain of right children
func (it *Iterator[T]) pushRight(p handle) {
	for ; 0 != p; p = it.tree.arena.nodes[p].right {
		it.stack = append(it.stack, p)
	}
}

// fail if the tree changed since the iterator was created
func (it *Iterator[T]) check() error {
	if 0 != it.tree.generation.Since(it.generation) {
		return fault.ErrIteratorInvalidated
	}
	return nil
}

// AtEnd - true if positioned past the last item
func (it *Iterator[T]) AtEnd() bool {
	return 0 == len(it.stack)
}

// Value - the item at the current position
func (it *Iterator[T]) Value() (T, error) {
	var zero T
	if err := it.check(); nil != err {
		return zero, err
	}
	if it.AtEnd() {
		return zero, fault.ErrIteratorOutOfRange
	}
	return it.tree.arena.nodes[it.stack[len(it.stack)-1]].data, nil
}

// Next - advance to the next higher item, moving past the last item
// reaches the end position, advancing from the end is an error
func (it *Iterator[T]) Next() error {
	if err := it.check(); nil != err {
		return err
	}
	n := len(it.stack)
	if 0 == n {
		return fault.ErrIteratorOutOfRange
	}
	nodes := it.tree.arena.nodes

	if r := nodes[it.stack[n-1]].right; 0 != r {
		it.pushLeft(r)
		return nil
	}

	// climb until coming up from a left child, that parent is next
	for depth := n - 1; depth > 0; depth -= 1 {
		if leftSide == nodes[it.stack[depth]].side {
			it.stack = it.stack[:depth]
			return nil
		}
	}
	it.stack = it.stack[:0]
	return nil
}

// Prev - move back to the next lower item, from the end position this
// is the highest item; retreating from the first item is an error and
// leaves the iterator where it was
func (it *Iterator[T]) Prev() error {
	if err := it.check(); nil != err {
		return err
	}
	n := len(it.stack)
	if 0 == n {
		if 0 == it.tree.root {
			return fault.ErrIteratorOutOfRange
		}
		it.pushRight(it.tree.root)
		return nil
	}
	nodes := it.tree.arena.nodes

	if l := nodes[it.stack[n-1]].left; 0 != l {
		it.pushRight(l)
		return nil
	}

	// climb until coming up from a right child, that parent is previous
	for depth := n - 1; depth > 0; depth -= 1 {
		if rightSide == nodes[it.stack[depth]].side {
			it.stack = it.stack[:depth]
			return nil
		}
	}
	return fault.ErrIteratorOutOfRange
}

// Equal - true if both iterators are at the same position of the same tree
func (it *Iterator[T]) Equal(other *Iterator[T]) bool {
	if it.tree != other.tree || len(it.stack) != len(other.stack) {
		return false
	}
	if 0 == len(it.stack) {
		return true
	}
	return it.stack[len(it.stack)-1] == other.stack[len(other.stack)-1]
}

// Clone - an independent iterator at the same position
func (it *Iterator[T]) Clone() *Iterator[T] {
	stack := make([]handle, len(it.stack), cap(it.stack))
	copy(stack, it.stack)
	return &Iterator[T]{
		tree:       it.tree,
		stack:      stack,
		generation: it.generation,
	}
}

// Replace - swap the current item for a new one
//
// this is the same as removing the current item and inserting the new
// one; afterwards the iterator is at the first item equal to the new
// item.  All other iterators on the tree become invalid.
func (it *Iterator[T]) Replace(item T) error {
	if err := it.check(); nil != err {
		return err
	}
	if it.AtEnd() {
		return fault.ErrIteratorOutOfRange
	}
	tree := it.tree
	tree.delete(it.stack[len(it.stack)-1])
	tree.Insert(item)
	*it = *tree.Find(item)
	return nil
}
