// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package graph - directed weighted graph with named vertices
//
// Each vertex is given the next free row/column of an adjacency
// matrix when it is added. Indexes are never reused, so removing a
// vertex only clears its row and column.
package graph

import (
	"fmt"
	"strings"

	"github.com/bitmark-inc/avlkit/dictionary"
	"github.com/bitmark-inc/avlkit/fault"
	"github.com/bitmark-inc/avlkit/sparsematrix"
)

// NoEdge - matrix value for a missing edge
const NoEdge float32 = -1

// Edge - an outgoing edge
type Edge struct {
	To     string
	Weight float32
}

// Graph - vertices and weighted edges
type Graph struct {
	names   *dictionary.Dictionary[string, int]
	indexes *dictionary.Dictionary[int, string]
	matrix  *sparsematrix.Matrix[float32]
}

// New - empty graph
func New() *Graph {
	return &Graph{
		names:   dictionary.New[string, int](),
		indexes: dictionary.New[int, string](),
		matrix:  sparsematrix.New(NoEdge, 0, 0),
	}
}

// AddVertex - add a named vertex
func (g *Graph) AddVertex(name string) error {
	if g.names.ContainsKey(name) {
		return fault.ErrVertexExists
	}

	index := g.matrix.Width()
	g.names.Insert(name, index)
	g.indexes.Insert(index, name)
	g.matrix.Resize(index+1, g.matrix.Height()+1)
	return nil
}

// RemoveVertex - remove a vertex with all of its edges
func (g *Graph) RemoveVertex(name string) error {
	index, err := g.names.At(name)
	if nil != err {
		return fault.ErrVertexNotFound
	}

	g.matrix.PurgeRow(index)
	g.matrix.PurgeColumn(index)
	g.names.Remove(name)
	g.indexes.Remove(index)
	return nil
}

func (g *Graph) pair(from string, to string) (int, int, error) {
	f, ok := g.names.Get(from)
	if !ok {
		return 0, 0, fault.ErrVertexNotFound
	}
	t, ok := g.names.Get(to)
	if !ok {
		return 0, 0, fault.ErrVertexNotFound
	}
	return f, t, nil
}

// AddEdge - add or re-weight the edge from one vertex to another
func (g *Graph) AddEdge(from string, to string, weight float32) error {
	f, t, err := g.pair(from, to)
	if nil != err {
		return err
	}
	if from == to {
		return fault.ErrSelfLoop
	}
	if weight < 0 {
		return fault.ErrInvalidWeight
	}
	return g.matrix.Set(f, t, weight)
}

// RemoveEdge - remove an edge; removing a missing edge is not an error
func (g *Graph) RemoveEdge(from string, to string) error {
	f, t, err := g.pair(from, to)
	if nil != err {
		return err
	}
	g.matrix.Clear(f, t)
	return nil
}

// Cost - weight of an edge, NoEdge if the vertices are not joined
func (g *Graph) Cost(from string, to string) (float32, error) {
	f, t, err := g.pair(from, to)
	if nil != err {
		return NoEdge, err
	}
	return g.matrix.At(f, t), nil
}

// HasVertex - true if the vertex exists
func (g *Graph) HasVertex(name string) bool {
	return g.names.ContainsKey(name)
}

// Vertices - vertex names in sorted order
func (g *Graph) Vertices() []string {
	return g.names.Keys()
}

// EdgeCount - total number of edges
func (g *Graph) EdgeCount() int {
	return g.matrix.Count()
}

// Neighbours - outgoing edges of a vertex in the order the targets
// were added
func (g *Graph) Neighbours(name string) ([]Edge, error) {
	index, ok := g.names.Get(name)
	if !ok {
		return nil, fault.ErrVertexNotFound
	}

	edges := make([]Edge, 0)
	g.matrix.ForEach(func(row int, col int, weight float32) bool {
		if row > index {
			return false
		}
		if row == index {
			to, _ := g.indexes.Get(col)
			edges = append(edges, Edge{To: to, Weight: weight})
		}
		return true
	})
	return edges, nil
}

// String - vertex table followed by the adjacency matrix
func (g *Graph) String() string {
	s := strings.Builder{}
	g.names.ForEach(func(name string, index int) bool {
		fmt.Fprintf(&s, "%s: %d\n", name, index)
		return true
	})
	s.WriteString(g.matrix.String())
	return s.String()
}
