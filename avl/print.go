// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"io"
	"strings"
)

// Print - display an ASCII graphic representation of the tree
//
// returns the maximum depth of the tree
func (tree *Tree[T]) Print(w io.Writer, printData bool) int {
	return tree.printTree(w, tree.root, "", rootSide, printData)
}

// internal print - returns the maximum depth of the tree
func (tree *Tree[T]) printTree(w io.Writer, p handle, prefix string, br side, printData bool) int {
	if 0 == p {
		return 0
	}
	n := &tree.arena.nodes[p]
	rd := 0
	ld := 0
	if 0 != n.right {
		t := "       "
		if leftSide == br {
			t = "|      "
		}
		rd = tree.printTree(w, n.right, prefix+t, rightSide, printData)
	}
	switch br {
	case rootSide:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case leftSide:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case rightSide:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	if printData {
		fmt.Fprintf(w, "%v #%d ^%d h:%d %+2d\n", n.data, p, n.up, n.height, tree.balanceFactor(p))
	} else {
		fmt.Fprintf(w, "%v\n", n.data)
	}
	if 0 != n.left {
		t := "       "
		if rightSide == br {
			t = "|      "
		}
		ld = tree.printTree(w, n.left, prefix+t, leftSide, printData)
	}
	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}

// String - nested (left item right) form of the tree
func (tree *Tree[T]) String() string {
	s := strings.Builder{}
	s.WriteString("[")
	tree.writeNode(&s, tree.root)
	s.WriteString("]")
	return s.String()
}

func (tree *Tree[T]) writeNode(s *strings.Builder, p handle) {
	if 0 == p {
		return
	}
	n := &tree.arena.nodes[p]
	s.WriteString("(")
	tree.writeNode(s, n.left)
	fmt.Fprintf(s, "%v", n.data)
	tree.writeNode(s, n.right)
	s.WriteString(")")
}
