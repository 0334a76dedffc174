// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/bitmark-inc/avlkit/avl"
	"github.com/bitmark-inc/avlkit/dictionary"
	"github.com/bitmark-inc/avlkit/fault"
	"github.com/bitmark-inc/avlkit/graph"
	"github.com/bitmark-inc/avlkit/multiway"
	"github.com/bitmark-inc/avlkit/sparsematrix"
)

// tree of integers
// ----------------

type treeShell struct {
	tree *avl.Tree[int]
}

func newTreeShell(c *Configuration) (structure, error) {
	return &treeShell{tree: avl.NewOrdered[int]()}, nil
}

func (s *treeShell) usage() string { return treeCommands }

func (s *treeShell) execute(w io.Writer, op string, arguments []string) error {
	switch op {
	case "i":
		n, err := integers(arguments, 1)
		if nil != err {
			return err
		}
		s.tree.Insert(n[0])

	case "r":
		n, err := integers(arguments, 1)
		if nil != err {
			return err
		}
		if !s.tree.Remove(n[0]) {
			fmt.Fprintf(w, "not found: %d\n", n[0])
		}

	case "f":
		n, err := integers(arguments, 1)
		if nil != err {
			return err
		}
		it := s.tree.Find(n[0])
		if it.AtEnd() {
			fmt.Fprintf(w, "not found: %d\n", n[0])
			return nil
		}
		fmt.Fprintf(w, "found: %d", n[0])
		if err := it.Next(); nil != err {
			return err
		}
		if v, err := it.Value(); nil == err {
			fmt.Fprintf(w, "  next: %d\n", v)
		} else {
			fmt.Fprintf(w, "  next: end\n")
		}

	case "p":
		items := make([]string, 0, s.tree.Count())
		for it := s.tree.Begin(); !it.AtEnd(); {
			v, err := it.Value()
			if nil != err {
				return err
			}
			items = append(items, strconv.Itoa(v))
			if err := it.Next(); nil != err {
				return err
			}
		}
		fmt.Fprintf(w, "%s\n", strings.Join(items, " "))

	case "h":
		s.tree.Print(w, true)

	default:
		return fault.ErrInvalidCommand
	}
	return nil
}

func (s *treeShell) display(w io.Writer) {
	fmt.Fprintf(w, "%s\nheight: %d\n", s.tree, s.tree.Height())
}

func (s *treeShell) check() bool {
	return s.tree.CheckSlots() && s.tree.CheckHeights() && s.tree.CheckOrder()
}

// dictionary of strings
// ---------------------

type dictionaryShell struct {
	d *dictionary.Dictionary[string, string]
}

func newDictionaryShell(c *Configuration) (structure, error) {
	return &dictionaryShell{d: dictionary.New[string, string]()}, nil
}

func (s *dictionaryShell) usage() string { return dictionaryCommands }

func (s *dictionaryShell) execute(w io.Writer, op string, arguments []string) error {
	switch op {
	case "i":
		if err := need(arguments, 2); nil != err {
			return err
		}
		s.d.Insert(arguments[0], strings.Join(arguments[1:], " "))

	case "r":
		if err := need(arguments, 1); nil != err {
			return err
		}
		if !s.d.Remove(arguments[0]) {
			fmt.Fprintf(w, "not found: %s\n", arguments[0])
		}

	case "g":
		if err := need(arguments, 1); nil != err {
			return err
		}
		v, err := s.d.At(arguments[0])
		if nil != err {
			return err
		}
		fmt.Fprintf(w, "%s: %s\n", arguments[0], v)

	case "p":
		s.d.ForEach(func(key string, value string) bool {
			fmt.Fprintf(w, "%s: %s\n", key, value)
			return true
		})

	default:
		return fault.ErrInvalidCommand
	}
	return nil
}

func (s *dictionaryShell) display(w io.Writer) {
	fmt.Fprintf(w, "%s\n", s.d)
}

func (s *dictionaryShell) check() bool {
	return s.d.Height() <= maximumHeight(s.d.Len())
}

// sparse matrix of integers
// -------------------------

type matrixShell struct {
	m *sparsematrix.Matrix[int]
}

func newMatrixShell(c *Configuration) (structure, error) {
	m := sparsematrix.New(c.Matrix.Default, c.Matrix.Width, c.Matrix.Height)
	return &matrixShell{m: m}, nil
}

func (s *matrixShell) usage() string { return matrixCommands }

func (s *matrixShell) execute(w io.Writer, op string, arguments []string) error {
	switch op {
	case "i":
		n, err := integers(arguments, 3)
		if nil != err {
			return err
		}
		return s.m.Set(n[0], n[1], n[2])

	case "c":
		n, err := integers(arguments, 2)
		if nil != err {
			return err
		}
		if !s.m.Clear(n[0], n[1]) {
			fmt.Fprintf(w, "not set: %d %d\n", n[0], n[1])
		}

	case "g":
		n, err := integers(arguments, 2)
		if nil != err {
			return err
		}
		fmt.Fprintf(w, "value: %d\n", s.m.At(n[0], n[1]))

	case "p":
		s.m.ForEach(func(row int, col int, value int) bool {
			fmt.Fprintf(w, "(%d, %d): %d\n", row, col, value)
			return true
		})

	default:
		return fault.ErrInvalidCommand
	}
	return nil
}

func (s *matrixShell) display(w io.Writer) {
	fmt.Fprintf(w, "%s", s.m)
}

func (s *matrixShell) check() bool {
	ok := true
	s.m.ForEach(func(row int, col int, value int) bool {
		ok = row < s.m.Height() && col < s.m.Width()
		return ok
	})
	return ok
}

// weighted graph
// --------------

type graphShell struct {
	g *graph.Graph
}

func newGraphShell(c *Configuration) (structure, error) {
	return &graphShell{g: graph.New()}, nil
}

func (s *graphShell) usage() string { return graphCommands }

func (s *graphShell) execute(w io.Writer, op string, arguments []string) error {
	switch op {
	case "I":
		if err := need(arguments, 1); nil != err {
			return err
		}
		return s.g.AddVertex(arguments[0])

	case "R":
		if err := need(arguments, 1); nil != err {
			return err
		}
		return s.g.RemoveVertex(arguments[0])

	case "i":
		if err := need(arguments, 3); nil != err {
			return err
		}
		weight, err := strconv.ParseFloat(arguments[2], 32)
		if nil != err {
			return err
		}
		return s.g.AddEdge(arguments[0], arguments[1], float32(weight))

	case "r":
		if err := need(arguments, 2); nil != err {
			return err
		}
		return s.g.RemoveEdge(arguments[0], arguments[1])

	case "c":
		if err := need(arguments, 2); nil != err {
			return err
		}
		cost, err := s.g.Cost(arguments[0], arguments[1])
		if nil != err {
			return err
		}
		fmt.Fprintf(w, "cost: %v\n", cost)

	case "p":
		for _, name := range s.g.Vertices() {
			edges, err := s.g.Neighbours(name)
			if nil != err {
				return err
			}
			fmt.Fprintf(w, "%s:", name)
			for _, e := range edges {
				fmt.Fprintf(w, " %s(%v)", e.To, e.Weight)
			}
			fmt.Fprintf(w, "\n")
		}

	default:
		return fault.ErrInvalidCommand
	}
	return nil
}

func (s *graphShell) display(w io.Writer) {
	fmt.Fprintf(w, "%s", s.g)
}

func (s *graphShell) check() bool {
	for _, name := range s.g.Vertices() {
		if _, err := s.g.Neighbours(name); nil != err {
			return false
		}
	}
	return true
}

// multiway tree of integers
// -------------------------

type multiwayShell struct {
	tree *multiway.Tree[int]
}

func newMultiwayShell(c *Configuration) (structure, error) {
	tree, err := multiway.NewOrdered[int](c.FanOut)
	if nil != err {
		return nil, err
	}
	return &multiwayShell{tree: tree}, nil
}

func (s *multiwayShell) usage() string { return multiwayCommands }

func (s *multiwayShell) execute(w io.Writer, op string, arguments []string) error {
	switch op {
	case "i":
		n, err := integers(arguments, 1)
		if nil != err {
			return err
		}
		s.tree.Insert(n[0])

	case "r":
		n, err := integers(arguments, 1)
		if nil != err {
			return err
		}
		if !s.tree.Remove(n[0]) {
			fmt.Fprintf(w, "not found: %d\n", n[0])
		}

	case "f":
		n, err := integers(arguments, 1)
		if nil != err {
			return err
		}
		if s.tree.Contains(n[0]) {
			fmt.Fprintf(w, "found: %d\n", n[0])
		} else {
			fmt.Fprintf(w, "not found: %d\n", n[0])
		}

	case "p":
		items := make([]string, 0, s.tree.Count())
		for _, v := range s.tree.Slice() {
			items = append(items, strconv.Itoa(v))
		}
		fmt.Fprintf(w, "%s\n", strings.Join(items, " "))

	default:
		return fault.ErrInvalidCommand
	}
	return nil
}

func (s *multiwayShell) display(w io.Writer) {
	fmt.Fprintf(w, "%s\nheight: %d\n", s.tree, s.tree.Height())
}

func (s *multiwayShell) check() bool {
	values := s.tree.Slice()
	return s.tree.Count() == len(values) && slices.IsSorted(values)
}

// upper bound on the height of an AVL tree holding n items
func maximumHeight(n int) int {
	// minimum node counts: N(h) = N(h-1) + N(h-2) + 1
	h := 0
	a, b := 0, 1
	for b <= n {
		a, b = b, a+b+1
		h += 1
	}
	return h
}
