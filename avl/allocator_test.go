// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"testing"
)

// rotations swap contents, so the entry in the root slot never changes
func TestRootIdentityKeptByRotation(t *testing.T) {
	tree := NewOrdered[int]()
	tree.Insert(1)
	root := tree.root

	tree.Insert(2)
	tree.Insert(3) // single left rotation at the root

	if root != tree.root {
		t.Fatalf("root moved from: %d to: %d", root, tree.root)
	}
	if 2 != tree.arena.nodes[tree.root].data {
		t.Fatalf("root item: %d  expected: 2", tree.arena.nodes[tree.root].data)
	}

	tree.Insert(0)
	tree.Insert(-1) // rotation below the root
	if root != tree.root {
		t.Fatalf("root moved from: %d to: %d", root, tree.root)
	}
	if !tree.CheckSlots() || !tree.CheckHeights() {
		t.Fatal("inconsistent tree")
	}
}

// excised nodes return to the pool and are reused
func TestNodeReuse(t *testing.T) {
	tree := NewOrdered[int]()
	for i := 0; i < 10; i += 1 {
		tree.Insert(i)
	}
	if 10 != tree.arena.totalNodes {
		t.Fatalf("total nodes: %d  expected: 10", tree.arena.totalNodes)
	}

	for i := 0; i < 4; i += 1 {
		tree.Remove(i)
	}
	if 4 != tree.arena.freeNodes {
		t.Fatalf("free nodes: %d  expected: 4", tree.arena.freeNodes)
	}

	for i := 20; i < 26; i += 1 {
		tree.Insert(i)
	}
	if 0 != tree.arena.freeNodes {
		t.Fatalf("free nodes: %d  expected: 0", tree.arena.freeNodes)
	}
	if 12 != tree.arena.totalNodes {
		t.Fatalf("total nodes: %d  expected: 12", tree.arena.totalNodes)
	}
	if !tree.CheckSlots() || !tree.CheckHeights() || !tree.CheckOrder() {
		t.Fatal("inconsistent tree")
	}
}

// the slot holding the excised node receives its only child
func TestExciseRelinksChild(t *testing.T) {
	tree := NewOrdered[int]()
	for _, v := range []int{20, 10, 30, 25} {
		tree.Insert(v)
	}
	p := tree.search(30)
	child := tree.arena.nodes[p].left
	up := tree.arena.nodes[p].up

	tree.Remove(30)

	if tree.arena.nodes[up].right != child {
		t.Fatalf("parent right: %d  expected: %d", tree.arena.nodes[up].right, child)
	}
	c := tree.arena.nodes[child]
	if c.up != up || rightSide != c.side {
		t.Fatalf("child back-reference: up: %d side: %d", c.up, c.side)
	}
}
