// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlkit/fault"
)

// a data structure driven by single letter commands
type structure interface {
	// apply one command
	execute(w io.Writer, op string, arguments []string) error

	// show the current state after a command
	display(w io.Writer)

	// verify internal invariants, false on failure
	check() bool

	// the commands accepted
	usage() string
}

// command summaries
const (
	treeCommands       = "i N | r N | f N | p | h | e"
	dictionaryCommands = "i K V | r K | g K | p | e"
	matrixCommands     = "i X Y V | c X Y | g X Y | p | e"
	graphCommands      = "I A | R A | i A B W | r A B | c A B | p | e"
	multiwayCommands   = "i N | r N | f N | p | e"
)

type structureInfo struct {
	commands string
	create   func(c *Configuration) (structure, error)
}

var structures = map[string]structureInfo{
	"tree": {
		commands: treeCommands,
		create:   newTreeShell,
	},
	"dictionary": {
		commands: dictionaryCommands,
		create:   newDictionaryShell,
	},
	"matrix": {
		commands: matrixCommands,
		create:   newMatrixShell,
	},
	"graph": {
		commands: graphCommands,
		create:   newGraphShell,
	},
	"multiway": {
		commands: multiwayCommands,
		create:   newMultiwayShell,
	},
}

func structureNames() []string {
	names := make([]string, 0, len(structures))
	for name := range structures {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func newStructure(c *Configuration) (structure, error) {
	info, ok := structures[c.Structure]
	if !ok {
		return nil, fault.ErrInvalidStructure
	}
	return info.create(c)
}

// read commands until end of input or "e"
//
// errors from individual commands are reported and the loop continues
func runShell(r io.Reader, w io.Writer, s structure, verbose bool, log *logger.L) error {
	scanner := bufio.NewScanner(r)
	for {
		fmt.Fprintf(w, "%s\n", s.usage())
		if !scanner.Scan() {
			break
		}

		fields := strings.Fields(scanner.Text())
		if 0 == len(fields) {
			continue
		}
		op := fields[0]
		if "e" == op {
			return nil
		}

		log.Debugf("command: %q", fields)
		if err := s.execute(w, op, fields[1:]); nil != err {
			log.Infof("command: %q  error: %s", fields, err)
			fmt.Fprintf(w, "error: %s\n", err)
			continue
		}

		if verbose && !s.check() {
			fault.Panicf("consistency check failed after: %q", fields)
		}
		s.display(w)
	}
	return scanner.Err()
}

// argument helpers

func need(arguments []string, n int) error {
	if len(arguments) < n {
		return fault.ErrMissingArgument
	}
	return nil
}

func integers(arguments []string, n int) ([]int, error) {
	if err := need(arguments, n); nil != err {
		return nil, err
	}
	result := make([]int, n)
	for i := 0; i < n; i += 1 {
		v, err := strconv.Atoi(arguments[i])
		if nil != err {
			return nil, err
		}
		result[i] = v
	}
	return result, nil
}
