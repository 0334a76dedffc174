// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlkit/configuration"
	"github.com/bitmark-inc/avlkit/fault"
)

// basic defaults
const (
	defaultStructure = "tree"
	defaultFanOut    = 3
	defaultWidth     = 10
	defaultHeight    = 10
)

// MatrixType - sparse matrix shell settings
type MatrixType struct {
	Width   int `gluamapper:"width" json:"width"`
	Height  int `gluamapper:"height" json:"height"`
	Default int `gluamapper:"default" json:"default"`
}

// Configuration - avlshell settings
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	Structure     string               `gluamapper:"structure" json:"structure"`
	FanOut        int                  `gluamapper:"fan_out" json:"fan_out"`
	Matrix        MatrixType           `gluamapper:"matrix" json:"matrix"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

func defaultConfiguration(program string) *Configuration {
	return &Configuration{
		DataDirectory: ".",
		Structure:     defaultStructure,
		FanOut:        defaultFanOut,
		Matrix: MatrixType{
			Width:  defaultWidth,
			Height: defaultHeight,
		},
		Logging: configuration.DefaultLogging(program),
	}
}

// will read decode and verify the configuration
//
// without a configuration file the defaults are used and the log is
// written to the temporary directory
func getConfiguration(program string, configurationFileName string, variables map[string]string) (*Configuration, error) {
	options := defaultConfiguration(program)

	if "" == configurationFileName {
		options.DataDirectory = os.TempDir()
		options.Logging.Directory = options.DataDirectory
	} else {
		_, err := configuration.Read(configurationFileName, options, variables, &options.DataDirectory, &options.Logging.Directory)
		if nil != err {
			return nil, err
		}
	}

	options.Structure = strings.ToLower(options.Structure)
	if _, ok := structures[options.Structure]; !ok {
		return nil, fault.ErrInvalidStructure
	}
	if options.FanOut < 1 {
		return nil, fault.ErrInvalidFanOut
	}
	return options, nil
}
