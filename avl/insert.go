// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - add an item to the tree, duplicates are kept and an item
// equal to an existing one is placed after it
func (tree *Tree[T]) Insert(item T) {
	if 0 == tree.root {
		tree.root = tree.arena.newNode(item, 0, rootSide)
	} else {
		tree.insert(item, tree.root)
	}
	tree.count += 1
	tree.generation.Increment()
}

// internal routine for insert
//
// the entry at p never changes identity, so nothing needs to be
// returned to the caller after rebalancing
func (tree *Tree[T]) insert(item T, p handle) {
	s := rightSide
	child := tree.arena.nodes[p].right
	if tree.compare(item, tree.arena.nodes[p].data) < 0 {
		s = leftSide
		child = tree.arena.nodes[p].left
	}

	if 0 == child {
		tree.link(p, s, tree.arena.newNode(item, p, s))
	} else {
		tree.insert(item, child)
	}

	tree.recalcHeight(p)
	tree.balance(p)
}
