// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlkit/configuration"
	"github.com/bitmark-inc/avlkit/database"
	"github.com/bitmark-inc/avlkit/util"
)

const (
	defaultDatabaseDirectory = "avldb"
	defaultCacheExpiry       = 300
)

// Configuration - avldb settings
type Configuration struct {
	DataDirectory string                 `gluamapper:"data_directory" json:"data_directory"`
	Database      database.Configuration `gluamapper:"database" json:"database"`
	Logging       logger.Configuration   `gluamapper:"logging" json:"logging"`
}

func defaultConfiguration(program string) *Configuration {
	return &Configuration{
		DataDirectory: ".",
		Database: database.Configuration{
			Directory:   defaultDatabaseDirectory,
			RecordSize:  database.DefaultRecordSize,
			CacheExpiry: defaultCacheExpiry,
			DirtyRatio:  database.DefaultDirtyRatio,
		},
		Logging: configuration.DefaultLogging(program),
	}
}

// read the configuration file, without one everything is relative
// to the current directory
func getConfiguration(program string, configurationFileName string, variables map[string]string) (*Configuration, error) {
	options := defaultConfiguration(program)

	if "" != configurationFileName {
		_, err := configuration.Read(configurationFileName, options, variables, &options.DataDirectory, &options.Database.Directory, &options.Logging.Directory)
		return options, err
	}

	directory, err := os.Getwd()
	if nil != err {
		return nil, err
	}
	options.DataDirectory = directory
	options.Database.Directory = util.EnsureAbsolute(directory, options.Database.Directory)
	options.Logging.Directory = util.EnsureAbsolute(directory, options.Logging.Directory)
	return options, nil
}
