// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avlkit/fault"
	"github.com/bitmark-inc/avlkit/graph"
)

func triangle(t *testing.T) *graph.Graph {
	g := graph.New()
	for _, name := range []string{"b", "a", "c"} {
		require.NoError(t, g.AddVertex(name))
	}
	require.NoError(t, g.AddEdge("a", "b", 1.5))
	require.NoError(t, g.AddEdge("b", "c", 2))
	require.NoError(t, g.AddEdge("c", "a", 0))
	return g
}

func TestAddVertex(t *testing.T) {
	g := graph.New()

	assert.NoError(t, g.AddVertex("x"))
	assert.Equal(t, fault.ErrVertexExists, g.AddVertex("x"))
	assert.True(t, g.HasVertex("x"))
	assert.False(t, g.HasVertex("y"))
}

func TestEdges(t *testing.T) {
	g := triangle(t)

	cost, err := g.Cost("a", "b")
	assert.NoError(t, err)
	assert.Equal(t, float32(1.5), cost)

	cost, err = g.Cost("b", "a")
	assert.NoError(t, err)
	assert.Equal(t, graph.NoEdge, cost)

	cost, err = g.Cost("c", "a")
	assert.NoError(t, err)
	assert.Equal(t, float32(0), cost)

	assert.Equal(t, 3, g.EdgeCount())

	assert.NoError(t, g.RemoveEdge("a", "b"))
	assert.NoError(t, g.RemoveEdge("a", "b"))
	cost, _ = g.Cost("a", "b")
	assert.Equal(t, graph.NoEdge, cost)
	assert.Equal(t, 2, g.EdgeCount())
}

func TestEdgeErrors(t *testing.T) {
	g := triangle(t)

	assert.Equal(t, fault.ErrVertexNotFound, g.AddEdge("a", "z", 1))
	assert.Equal(t, fault.ErrVertexNotFound, g.AddEdge("z", "a", 1))
	assert.Equal(t, fault.ErrSelfLoop, g.AddEdge("a", "a", 1))
	assert.Equal(t, fault.ErrInvalidWeight, g.AddEdge("a", "c", -0.5))
	assert.Equal(t, fault.ErrVertexNotFound, g.RemoveEdge("a", "z"))

	_, err := g.Cost("q", "a")
	assert.True(t, fault.IsErrNotFound(err))
}

func TestRemoveVertex(t *testing.T) {
	g := triangle(t)

	assert.NoError(t, g.RemoveVertex("b"))
	assert.Equal(t, fault.ErrVertexNotFound, g.RemoveVertex("b"))
	assert.Equal(t, []string{"a", "c"}, g.Vertices())
	assert.Equal(t, 1, g.EdgeCount())

	// indexes are not reused so a new vertex starts with no edges
	assert.NoError(t, g.AddVertex("b"))
	cost, err := g.Cost("a", "b")
	assert.NoError(t, err)
	assert.Equal(t, graph.NoEdge, cost)
	cost, err = g.Cost("b", "c")
	assert.NoError(t, err)
	assert.Equal(t, graph.NoEdge, cost)
}

func TestNeighbours(t *testing.T) {
	g := triangle(t)
	require.NoError(t, g.AddVertex("d"))
	require.NoError(t, g.AddEdge("a", "d", 4))
	require.NoError(t, g.AddEdge("a", "c", 3))

	edges, err := g.Neighbours("a")
	assert.NoError(t, err)
	expected := []graph.Edge{
		{To: "b", Weight: 1.5},
		{To: "c", Weight: 3},
		{To: "d", Weight: 4},
	}
	assert.Equal(t, expected, edges)

	_, err = g.Neighbours("z")
	assert.Equal(t, fault.ErrVertexNotFound, err)
}

func TestString(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddVertex("a"))
	require.NoError(t, g.AddVertex("b"))
	require.NoError(t, g.AddEdge("a", "b", 2))

	assert.Equal(t, "a: 0\nb: 1\n-1 2\n-1 -1\n", g.String())
}
