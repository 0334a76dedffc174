// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"math"
)

// handle - index of a node in the arena, zero means no node
type handle uint32

// which slot currently holds a node
type side uint8

const (
	rootSide  side = iota // the tree's root slot
	leftSide  side = iota // parent's left slot
	rightSide side = iota // parent's right slot
)

// a node in the tree
type node[T any] struct {
	data   T      // the item
	left   handle // left sub-tree
	right  handle // right sub-tree
	up     handle // parent node (also the free list link)
	side   side   // slot of the parent that holds this node
	height uint32 // height of sub-tree rooted here, leaf = 1
}

// node storage for a single tree
type arena[T any] struct {
	nodes      []node[T] // entry zero is reserved
	pool       handle    // linked list of reclaimed nodes
	totalNodes int       // total nodes created
	freeNodes  int       // number of nodes in the pool
}

// create an arena with the reserved zero entry
func newArena[T any]() arena[T] {
	return arena[T]{
		nodes: make([]node[T], 1),
	}
}

// allocate a new leaf node, reuses reclaimed nodes if any are available
func (a *arena[T]) newNode(data T, up handle, s side) handle {
	if 0 == a.pool {
		if 0 != a.freeNodes {
			panic("pool corrupt")
		}
		if uint64(len(a.nodes)) >= math.MaxUint32 {
			panic("arena full")
		}
		a.nodes = append(a.nodes, node[T]{
			data:   data,
			up:     up,
			side:   s,
			height: 1,
		})
		a.totalNodes += 1
		return handle(len(a.nodes) - 1)
	}
	h := a.pool
	p := &a.nodes[h]
	a.pool = p.up
	*p = node[T]{
		data:   data,
		up:     up,
		side:   s,
		height: 1,
	}
	a.freeNodes -= 1
	return h
}

// reclaim a node and keep it in the pool
func (a *arena[T]) freeNode(h handle) {
	if 0 == h {
		panic("node zero is reserved")
	}
	a.nodes[h] = node[T]{
		up: a.pool, // use as free list pointer
	}
	a.freeNodes += 1
	a.pool = h
}

// copy of the arena that shares no storage with this one
func (a *arena[T]) clone() arena[T] {
	nodes := make([]node[T], len(a.nodes))
	copy(nodes, a.nodes)
	return arena[T]{
		nodes:      nodes,
		pool:       a.pool,
		totalNodes: a.totalNodes,
		freeNodes:  a.freeNodes,
	}
}
