// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Find - iterator at the first item equal to the given one, or the
// end iterator if there is no such item
func (tree *Tree[T]) Find(item T) *Iterator[T] {
	p := tree.search(item)
	if 0 == p {
		return tree.End()
	}
	return tree.iteratorAt(p)
}

// Contains - true if some item compares equal
func (tree *Tree[T]) Contains(item T) bool {
	return 0 != tree.search(item)
}

// Get - the first stored item equal to item
//
// useful when the comparison only looks at part of the item
func (tree *Tree[T]) Get(item T) (T, bool) {
	p := tree.search(item)
	if 0 == p {
		var zero T
		return zero, false
	}
	return tree.arena.nodes[p].data, true
}

// leftmost node equal to item, zero if none
func (tree *Tree[T]) search(item T) handle {
	p := lowerBound(tree, item, tree.root, 0)
	if 0 != p && 0 == tree.compare(item, tree.arena.nodes[p].data) {
		return p
	}
	return 0
}

// first node not less than item
func lowerBound[T any](tree *Tree[T], item T, p handle, best handle) handle {
	if 0 == p {
		return best
	}
	n := &tree.arena.nodes[p]
	if tree.compare(item, n.data) <= 0 {
		return lowerBound(tree, item, n.left, p)
	}
	return lowerBound(tree, item, n.right, best)
}
