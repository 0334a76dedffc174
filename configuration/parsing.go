// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlkit/util"
)

// logging defaults (directory is relative to the data directory)
const (
	defaultLogDirectory = "log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

// DefaultLogging - logger setup for a program; the file is named
// after the program
func DefaultLogging(program string) logger.Configuration {
	return logger.Configuration{
		Directory: defaultLogDirectory,
		File:      filepath.Base(program) + ".log",
		Size:      defaultLogSize,
		Count:     defaultLogCount,
		Levels: LoglevelMap{
			"main":            "info",
			logger.DefaultTag: "critical",
		},
	}
}

// Read - parse a configuration file into a structure that already
// holds its defaults, then resolve the data directory and make each
// of the given paths absolute relative to it
//
// returns the absolute data directory
func Read(fileName string, config interface{}, variables map[string]string, dataDirectory *string, paths ...*string) (string, error) {
	fileName, err := filepath.Abs(filepath.Clean(fileName))
	if nil != err {
		return "", err
	}

	if err := ParseConfigurationFile(fileName, config, variables); nil != err {
		return "", err
	}

	directory, err := util.ResolveDataDirectory(fileName, *dataDirectory)
	if nil != err {
		return "", err
	}
	*dataDirectory = directory

	for _, p := range paths {
		*p = util.EnsureAbsolute(directory, *p)
	}
	return directory, nil
}
