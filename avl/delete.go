// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Remove - delete the first item equal to the given one
//
// returns false and leaves the tree untouched if no item matched
func (tree *Tree[T]) Remove(item T) bool {
	p := tree.search(item)
	if 0 == p {
		return false
	}
	tree.delete(p)
	return true
}

// internal delete routine
func (tree *Tree[T]) delete(p handle) {
	nodes := tree.arena.nodes
	if 0 != nodes[p].left && 0 != nodes[p].right {
		// move the successor's item here and remove the successor,
		// which has no left child
		s := tree.first(nodes[p].right)
		nodes[p].data = nodes[s].data
		p = s
	}
	up := tree.excise(p)

	// rebalance every ancestor on the way back to the root
	for 0 != up {
		tree.recalcHeight(up)
		tree.balance(up)
		up = tree.arena.nodes[up].up
	}

	tree.count -= 1
	tree.generation.Increment()
}

// splice the only child (if any) into the slot holding p and release
// p, returns the parent of the vacated slot
func (tree *Tree[T]) excise(p handle) handle {
	n := tree.arena.nodes[p]
	if 0 != n.left && 0 != n.right {
		panic("avl: excise of node with two children")
	}
	child := n.left
	if 0 == child {
		child = n.right
	}
	tree.link(n.up, n.side, child)
	tree.arena.freeNode(p)
	return n.up
}
