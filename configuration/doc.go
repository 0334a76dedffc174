// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - parse a Lua configuration file
//
// most of base Lua is available such as reading files to set key data
// and getenv to extract environment supplied items.
//
// the global table "arg" holds the configuration file name at index
// zero and any caller supplied variables by name, so a file can do:
//
//   local directory = arg["directory"] or "data"
package configuration
