// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"path/filepath"

	"github.com/bitmark-inc/avlkit/fault"
)

// EnsureAbsolute - ensure the path is absolute
// if not, prepend the directory to make absolute path
func EnsureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}

// ResolveDataDirectory - turn a configured data directory into an
// absolute path
//
// "." means the directory holding the configuration file, relative
// paths are taken from there too; empty and "~" are rejected
func ResolveDataDirectory(configurationFileName string, dataDirectory string) (string, error) {
	if "" == dataDirectory || "~" == dataDirectory {
		return "", fault.ErrInvalidDirectory
	}

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return "", err
	}
	base, _ := filepath.Split(configurationFileName)

	return EnsureAbsolute(base, dataDirectory), nil
}
