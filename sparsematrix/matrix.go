// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package sparsematrix - a bounded two dimensional matrix that only
// stores cells holding an explicitly set value
//
// Rows are kept in a dictionary of row number to a dictionary of
// column number to value, so empty rows cost nothing.
package sparsematrix

import (
	"fmt"
	"strings"

	"github.com/bitmark-inc/avlkit/dictionary"
	"github.com/bitmark-inc/avlkit/fault"
)

// Matrix - sparse matrix with a default value for unset cells
type Matrix[T any] struct {
	defaultValue T
	width        int
	height       int
	rows         *dictionary.Dictionary[int, *dictionary.Dictionary[int, T]]
}

// New - create a width x height matrix; negative sizes are treated as zero
func New[T any](defaultValue T, width int, height int) *Matrix[T] {
	return &Matrix[T]{
		defaultValue: defaultValue,
		width:        max(width, 0),
		height:       max(height, 0),
		rows:         dictionary.New[int, *dictionary.Dictionary[int, T]](),
	}
}

// Width - number of columns
func (m *Matrix[T]) Width() int {
	return m.width
}

// Height - number of rows
func (m *Matrix[T]) Height() int {
	return m.height
}

// Default - value reported for unset cells
func (m *Matrix[T]) Default() T {
	return m.defaultValue
}

// Resize - change the bounds, dropping any cells that fall outside
func (m *Matrix[T]) Resize(width int, height int) {
	m.width = max(width, 0)
	m.height = max(height, 0)

	m.rows.RemoveWhere(func(row int, cols *dictionary.Dictionary[int, T]) bool {
		return row >= m.height
	})
	emptied := make([]int, 0)
	m.rows.ForEach(func(row int, cols *dictionary.Dictionary[int, T]) bool {
		cols.RemoveWhere(func(col int, _ T) bool {
			return col >= m.width
		})
		if cols.IsEmpty() {
			emptied = append(emptied, row)
		}
		return true
	})
	for _, row := range emptied {
		m.rows.Remove(row)
	}
}

func (m *Matrix[T]) inside(row int, col int) bool {
	return row >= 0 && row < m.height && col >= 0 && col < m.width
}

// At - the value of a cell, the default when unset or out of bounds
func (m *Matrix[T]) At(row int, col int) T {
	cols, ok := m.rows.Get(row)
	if !ok {
		return m.defaultValue
	}
	v, ok := cols.Get(col)
	if !ok {
		return m.defaultValue
	}
	return v
}

// IsSet - true if the cell holds an explicitly set value
func (m *Matrix[T]) IsSet(row int, col int) bool {
	cols, ok := m.rows.Get(row)
	return ok && cols.ContainsKey(col)
}

// Set - store a value in a cell
func (m *Matrix[T]) Set(row int, col int, value T) error {
	if !m.inside(row, col) {
		return fault.ErrIndexOutOfRange
	}
	cols := m.rows.GetOrInsert(row, dictionary.New[int, T])
	cols.Insert(col, value)
	return nil
}

// Clear - return a cell to the default value, false if it was not set
func (m *Matrix[T]) Clear(row int, col int) bool {
	cols, ok := m.rows.Get(row)
	if !ok {
		return false
	}
	if !cols.Remove(col) {
		return false
	}
	if cols.IsEmpty() {
		m.rows.Remove(row)
	}
	return true
}

// PurgeRow - clear every cell of a row
func (m *Matrix[T]) PurgeRow(row int) {
	m.rows.Remove(row)
}

// PurgeColumn - clear every cell of a column
func (m *Matrix[T]) PurgeColumn(col int) {
	m.rows.RemoveWhere(func(row int, cols *dictionary.Dictionary[int, T]) bool {
		cols.Remove(col)
		return cols.IsEmpty()
	})
}

// Count - number of set cells
func (m *Matrix[T]) Count() int {
	n := 0
	m.rows.ForEach(func(row int, cols *dictionary.Dictionary[int, T]) bool {
		n += cols.Len()
		return true
	})
	return n
}

// ForEach - visit the set cells in row then column order until fn
// returns false
func (m *Matrix[T]) ForEach(fn func(row int, col int, value T) bool) {
	more := true
	m.rows.ForEach(func(row int, cols *dictionary.Dictionary[int, T]) bool {
		cols.ForEach(func(col int, value T) bool {
			more = fn(row, col, value)
			return more
		})
		return more
	})
}

// String - one line per row with cells separated by spaces
func (m *Matrix[T]) String() string {
	s := strings.Builder{}
	for row := 0; row < m.height; row += 1 {
		for col := 0; col < m.width; col += 1 {
			if col > 0 {
				s.WriteByte(' ')
			}
			fmt.Fprintf(&s, "%v", m.At(row, col))
		}
		s.WriteByte('\n')
	}
	return s.String()
}
