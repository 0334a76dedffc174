// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package multiway - unbalanced search tree with a fixed fan out
//
// Every node holds up to fanOut sorted values and fanOut+1 child
// links. A value goes into the first node on its search path that
// still has room; nodes are never split, so the shape depends on the
// insertion order.
//
// An equal value is placed before those already stored (it descends
// to the left of its match), so equals come out in reverse insertion
// order.
//
// Removing from an interior node refills the gap from the nearest
// child, so only leaves are ever less than full.
package multiway

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/bitmark-inc/avlkit/fault"
)

type node[T any] struct {
	values   []T
	children []*node[T]
}

// Tree - multiway search tree
type Tree[T any] struct {
	fanOut  int
	compare func(a T, b T) int
	root    *node[T]
	count   int
}

// New - empty tree; fanOut must be at least one
func New[T any](fanOut int, compare func(a T, b T) int) (*Tree[T], error) {
	if fanOut < 1 {
		return nil, fault.ErrInvalidFanOut
	}
	if nil == compare {
		return nil, fault.ErrMissingArgument
	}
	return &Tree[T]{
		fanOut:  fanOut,
		compare: compare,
	}, nil
}

// NewOrdered - empty tree using the natural ordering
func NewOrdered[T cmp.Ordered](fanOut int) (*Tree[T], error) {
	return New[T](fanOut, cmp.Compare[T])
}

func (tree *Tree[T]) newNode() *node[T] {
	return &node[T]{
		values:   make([]T, 0, tree.fanOut),
		children: make([]*node[T], tree.fanOut+1),
	}
}

// position of the first value not less than v
func (tree *Tree[T]) position(n *node[T], v T) (int, bool) {
	return slices.BinarySearchFunc(n.values, v, tree.compare)
}

// FanOut - maximum values per node
func (tree *Tree[T]) FanOut() int {
	return tree.fanOut
}

func (n *node[T]) isEmpty() bool {
	return 0 == len(n.values)
}

func (n *node[T]) isLeaf() bool {
	for _, c := range n.children {
		if nil != c {
			return false
		}
	}
	return true
}

// Insert - add a value; duplicates are kept
//
// a node that is not full is always a leaf, so a value only descends
// through full nodes
func (tree *Tree[T]) Insert(v T) {
	if nil == tree.root {
		tree.root = tree.newNode()
	}
	n := tree.root
	for len(n.values) >= tree.fanOut {
		i, _ := tree.position(n, v)
		if nil == n.children[i] {
			n.children[i] = tree.newNode()
		}
		n = n.children[i]
	}
	i, _ := tree.position(n, v)
	n.values = slices.Insert(n.values, i, v)
	tree.count += 1
}

// Contains - true if an equal value is present
func (tree *Tree[T]) Contains(v T) bool {
	for n := tree.root; nil != n; {
		i, found := tree.position(n, v)
		if found {
			return true
		}
		n = n.children[i]
	}
	return false
}

// Remove - delete one value equal to v, false if none is present
func (tree *Tree[T]) Remove(v T) bool {
	if nil == tree.root || !tree.remove(tree.root, v) {
		return false
	}
	tree.count -= 1
	if tree.root.isEmpty() {
		tree.root = nil
	}
	return true
}

// PopMin - remove and return the smallest value
func (tree *Tree[T]) PopMin() (T, bool) {
	if nil == tree.root {
		var zero T
		return zero, false
	}
	v := tree.popMin(tree.root)
	tree.count -= 1
	if tree.root.isEmpty() {
		tree.root = nil
	}
	return v, true
}

// PopMax - remove and return the largest value
func (tree *Tree[T]) PopMax() (T, bool) {
	if nil == tree.root {
		var zero T
		return zero, false
	}
	v := tree.popMax(tree.root)
	tree.count -= 1
	if tree.root.isEmpty() {
		tree.root = nil
	}
	return v, true
}

// emptied children are unlinked on the way back up
func (tree *Tree[T]) remove(n *node[T], v T) bool {
	i, found := tree.position(n, v)
	if found {
		tree.removeAt(n, i)
		return true
	}
	c := n.children[i]
	if nil == c {
		return false
	}
	ok := tree.remove(c, v)
	if c.isEmpty() {
		n.children[i] = nil
	}
	return ok
}

// take the value at index out of n
//
// a leaf just closes the gap; otherwise the values between the gap
// and the nearest child shift over and the child gives up its
// adjacent extreme, leaving n full
func (tree *Tree[T]) removeAt(n *node[T], index int) T {
	v := n.values[index]
	if n.isLeaf() {
		n.values = slices.Delete(n.values, index, index+1)
		return v
	}

	for i := index; i >= 0; i -= 1 {
		if c := n.children[i]; nil != c {
			copy(n.values[i+1:index+1], n.values[i:index])
			n.values[i] = tree.popMax(c)
			if c.isEmpty() {
				n.children[i] = nil
			}
			return v
		}
	}

	for i := index; i < len(n.values); i += 1 {
		if c := n.children[i+1]; nil != c {
			copy(n.values[index:i], n.values[index+1:i+1])
			n.values[i] = tree.popMin(c)
			if c.isEmpty() {
				n.children[i+1] = nil
			}
			return v
		}
	}
	return v
}

func (tree *Tree[T]) popMax(n *node[T]) T {
	last := len(n.values)
	if c := n.children[last]; nil != c {
		v := tree.popMax(c)
		if c.isEmpty() {
			n.children[last] = nil
		}
		return v
	}
	return tree.removeAt(n, last-1)
}

func (tree *Tree[T]) popMin(n *node[T]) T {
	if c := n.children[0]; nil != c {
		v := tree.popMin(c)
		if c.isEmpty() {
			n.children[0] = nil
		}
		return v
	}
	return tree.removeAt(n, 0)
}

// Count - number of values
func (tree *Tree[T]) Count() int {
	return tree.count
}

// IsEmpty - true if there are no values
func (tree *Tree[T]) IsEmpty() bool {
	return 0 == tree.count
}

// Height - number of nodes on the longest path, zero for an empty tree
func (tree *Tree[T]) Height() int {
	return height(tree.root)
}

func height[T any](n *node[T]) int {
	if nil == n {
		return 0
	}
	h := 0
	for _, c := range n.children {
		h = max(h, height(c))
	}
	return h + 1
}

// ForEach - visit values in order until fn returns false
func (tree *Tree[T]) ForEach(fn func(v T) bool) {
	each(tree.root, fn)
}

func each[T any](n *node[T], fn func(v T) bool) bool {
	if nil == n {
		return true
	}
	for i, v := range n.values {
		if !each(n.children[i], fn) || !fn(v) {
			return false
		}
	}
	return each(n.children[len(n.values)], fn)
}

// Slice - all values in order
func (tree *Tree[T]) Slice() []T {
	result := make([]T, 0, tree.count)
	tree.ForEach(func(v T) bool {
		result = append(result, v)
		return true
	})
	return result
}

// String - nested form: "(" child " v " child " v " … child ")"
func (tree *Tree[T]) String() string {
	s := strings.Builder{}
	if nil == tree.root {
		s.WriteString("()")
	} else {
		writeNode(&s, tree.root)
	}
	return s.String()
}

func writeNode[T any](s *strings.Builder, n *node[T]) {
	s.WriteByte('(')
	for i, v := range n.values {
		if nil != n.children[i] {
			writeNode(s, n.children[i])
		}
		fmt.Fprintf(s, " %v ", v)
	}
	if last := n.children[len(n.values)]; nil != last {
		writeNode(s, last)
	}
	s.WriteByte(')')
}
