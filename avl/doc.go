// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - a generic AVL balanced tree whose nodes live in an
// arena and carry a back-reference to the slot that holds them
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Each node caches the height of its sub-tree and records which slot
// (the root slot, or the left/right slot of its parent) currently
// holds it.  This allows a node to be excised in O(1) once found, and
// rotations are performed by swapping the contents of two arena
// entries so that the entry occupying a slot never changes; a parent
// never needs to be told that its sub-tree root moved.
//
// Duplicates are permitted: an item comparing equal to a node is
// inserted to its right, Find returns the leftmost (first in-order)
// equal item and Remove deletes that same item.
//
// Iterators hold the path from the root to the current item as an
// explicit stack.  Any structural change to the tree (Insert, Remove,
// Clear) invalidates every existing iterator; using one afterwards
// returns fault.ErrIteratorInvalidated.
package avl
