// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlkit/fault"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "structure", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 's'},
		{Long: "define", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'D'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		fmt.Printf("%s\n", version)
		return
	}

	if len(options["help"]) > 0 || len(arguments) > 0 {
		usage(program)
		return
	}

	if len(options["config-file"]) > 1 {
		exitwithstatus.Message("%s: only one config-file option is allowed, %d were detected", program, len(options["config-file"]))
	}
	configurationFile := ""
	if 1 == len(options["config-file"]) {
		configurationFile = options["config-file"][0]
	}

	variables := make(map[string]string)
	for _, d := range options["define"] {
		v := strings.SplitN(d, "=", 2)
		if 2 != len(v) {
			exitwithstatus.Message("%s: define: %q is not NAME=VALUE", program, d)
		}
		variables[v[0]] = v[1]
	}

	theConfiguration, err := getConfiguration(program, configurationFile, variables)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	if 1 == len(options["structure"]) {
		theConfiguration.Structure = strings.ToLower(options["structure"][0])
	}

	// start logging
	if err = os.MkdirAll(theConfiguration.Logging.Directory, 0700); nil != err {
		exitwithstatus.Message("%s: log directory: %q  error: %s", program, theConfiguration.Logging.Directory, err)
	}
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	s, err := newStructure(theConfiguration)
	if nil != err {
		log.Criticalf("structure: %q  error: %s", theConfiguration.Structure, err)
		exitwithstatus.Message("%s: structure: %q  error: %s", program, theConfiguration.Structure, err)
	}

	verbose := len(options["verbose"]) > 0
	if err := runShell(os.Stdin, os.Stdout, s, verbose, log); nil != err {
		log.Errorf("shell error: %s", err)
		exitwithstatus.Message("%s: error: %s", program, err)
	}
}

func usage(program string) {
	fmt.Printf("usage: %s [--help] [--verbose] [--version] [--config-file=FILE] [--structure=NAME] [--define=NAME=VALUE...]\n", program)
	fmt.Printf("\n")
	fmt.Printf("structures and their commands (one per line on standard input):\n\n")
	for _, name := range structureNames() {
		fmt.Printf("  %-12s %s\n", name, structures[name].commands)
	}
	fmt.Printf("\n")
}
