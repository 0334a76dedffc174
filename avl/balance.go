// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// cached height of a sub-tree, zero for the empty slot
func (tree *Tree[T]) height(p handle) uint32 {
	if 0 == p {
		return 0
	}
	return tree.arena.nodes[p].height
}

// height(right) - height(left)
func (tree *Tree[T]) balanceFactor(p handle) int {
	n := &tree.arena.nodes[p]
	return int(tree.height(n.right)) - int(tree.height(n.left))
}

// recompute the cached height from the two children
func (tree *Tree[T]) recalcHeight(p handle) {
	n := &tree.arena.nodes[p]
	lh := tree.height(n.left)
	rh := tree.height(n.right)
	if lh > rh {
		n.height = lh + 1
	} else {
		n.height = rh + 1
	}
}

// store child in a slot and point the child's back-reference at it
//
// parent is ignored for the root slot
func (tree *Tree[T]) link(parent handle, s side, child handle) {
	switch s {
	case rootSide:
		parent = 0
		tree.root = child
	case leftSide:
		tree.arena.nodes[parent].left = child
	case rightSide:
		tree.arena.nodes[parent].right = child
	}
	if 0 != child {
		c := &tree.arena.nodes[child]
		c.up = parent
		c.side = s
	}
}

// exchange everything except the back-references
func (tree *Tree[T]) swapContents(a handle, b handle) {
	na := &tree.arena.nodes[a]
	nb := &tree.arena.nodes[b]
	na.data, nb.data = nb.data, na.data
	na.left, nb.left = nb.left, na.left
	na.right, nb.right = nb.right, na.right
	na.height, nb.height = nb.height, na.height
}

// restore |balance factor| <= 1 at p, children must already be balanced
func (tree *Tree[T]) balance(p handle) {
	bf := tree.balanceFactor(p)
	if bf > 1 { // right heavy
		r := tree.arena.nodes[p].right
		if tree.balanceFactor(r) <= -1 { // RL case
			tree.rotateRight(r)
		}
		tree.rotateLeft(p)
	} else if bf < -1 { // left heavy
		l := tree.arena.nodes[p].left
		if tree.balanceFactor(l) >= 1 { // LR case
			tree.rotateLeft(l)
		}
		tree.rotateRight(p)
	}
}

// right rotation at p, p keeps its slot and receives the left child's content
//
//	    p            p
//	   / \          / \
//	  l   c   →    a   l
//	 / \              / \
//	a   b            b   c
func (tree *Tree[T]) rotateRight(p handle) {
	l := tree.arena.nodes[p].left
	tree.arena.nodes[p].left = tree.arena.nodes[l].right
	tree.swapContents(p, l)

	tree.link(p, leftSide, tree.arena.nodes[p].left)
	tree.link(p, rightSide, l)
	tree.link(l, leftSide, tree.arena.nodes[l].left)
	tree.link(l, rightSide, tree.arena.nodes[l].right)

	tree.recalcHeight(l)
	tree.recalcHeight(p)
}

// left rotation at p, p keeps its slot and receives the right child's content
//
//	  p              p
//	 / \            / \
//	a   r     →    r   c
//	   / \        / \
//	  b   c      a   b
func (tree *Tree[T]) rotateLeft(p handle) {
	r := tree.arena.nodes[p].right
	tree.arena.nodes[p].right = tree.arena.nodes[r].left
	tree.swapContents(p, r)

	tree.link(p, rightSide, tree.arena.nodes[p].right)
	tree.link(p, leftSide, r)
	tree.link(r, leftSide, tree.arena.nodes[r].left)
	tree.link(r, rightSide, tree.arena.nodes[r].right)

	tree.recalcHeight(r)
	tree.recalcHeight(p)
}
