// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
)

// CheckSlots - check the back-references for consistency
func (tree *Tree[T]) CheckSlots() bool {
	if 0 == tree.root {
		return true
	}
	n := &tree.arena.nodes[tree.root]
	if 0 != n.up || rootSide != n.side {
		fmt.Printf("fail at root: %v  up: %d  side: %d\n", n.data, n.up, n.side)
		return false
	}
	return tree.checkSlots(tree.root)
}

// internal: back-reference checker
func (tree *Tree[T]) checkSlots(p handle) bool {
	if 0 == p {
		return true
	}
	n := &tree.arena.nodes[p]
	if 0 != n.left {
		l := &tree.arena.nodes[n.left]
		if l.up != p || leftSide != l.side {
			fmt.Printf("fail at node: %v  left: %v  up: %d  expected: %d\n", n.data, l.data, l.up, p)
			return false
		}
	}
	if 0 != n.right {
		r := &tree.arena.nodes[n.right]
		if r.up != p || rightSide != r.side {
			fmt.Printf("fail at node: %v  right: %v  up: %d  expected: %d\n", n.data, r.data, r.up, p)
			return false
		}
	}
	return tree.checkSlots(n.left) && tree.checkSlots(n.right)
}

// CheckHeights - check the cached heights and that every node is balanced
func (tree *Tree[T]) CheckHeights() bool {
	_, ok := tree.checkHeights(tree.root)
	return ok
}

// internal: height and balance checker, returns the computed height
func (tree *Tree[T]) checkHeights(p handle) (uint32, bool) {
	if 0 == p {
		return 0, true
	}
	n := &tree.arena.nodes[p]
	lh, ok := tree.checkHeights(n.left)
	if !ok {
		return 0, false
	}
	rh, ok := tree.checkHeights(n.right)
	if !ok {
		return 0, false
	}
	h := lh + 1
	if rh > lh {
		h = rh + 1
	}
	if h != n.height {
		fmt.Printf("fail at node: %v  height: %d  expected: %d\n", n.data, n.height, h)
		return 0, false
	}
	if bf := int(rh) - int(lh); bf < -1 || bf > 1 {
		fmt.Printf("fail at node: %v  balance: %+d\n", n.data, bf)
		return 0, false
	}
	return h, true
}

// CheckOrder - check the in-order sequence never decreases and that
// the node count matches
func (tree *Tree[T]) CheckOrder() bool {
	ok := true
	n := 0
	var previous T
	tree.ForEach(func(item T) bool {
		if n > 0 && tree.compare(previous, item) > 0 {
			fmt.Printf("fail at item: %v  follows: %v\n", item, previous)
			ok = false
			return false
		}
		previous = item
		n += 1
		return true
	})
	if ok && n != tree.count {
		fmt.Printf("fail count: %d  expected: %d\n", tree.count, n)
		return false
	}
	return ok
}
