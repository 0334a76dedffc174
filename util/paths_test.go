// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avlkit/fault"
	"github.com/bitmark-inc/avlkit/util"
)

func TestEnsureAbsolute(t *testing.T) {
	assert.Equal(t, "/etc/avl/data", util.EnsureAbsolute("/etc/avl", "data"))
	assert.Equal(t, "/var/db", util.EnsureAbsolute("/etc/avl", "/var/db/"))
	assert.Equal(t, "/etc/log", util.EnsureAbsolute("/etc/avl", "../log"))
}

func TestResolveDataDirectory(t *testing.T) {
	d, err := util.ResolveDataDirectory("/etc/avl/avldb.conf", ".")
	assert.NoError(t, err)
	assert.Equal(t, "/etc/avl", d)

	d, err = util.ResolveDataDirectory("/etc/avl/avldb.conf", "data")
	assert.NoError(t, err)
	assert.Equal(t, "/etc/avl/data", d)

	d, err = util.ResolveDataDirectory("/etc/avl/avldb.conf", "/srv/avl")
	assert.NoError(t, err)
	assert.Equal(t, "/srv/avl", d)

	relative, err := util.ResolveDataDirectory("avldb.conf", "data")
	assert.NoError(t, err)
	assert.True(t, filepath.IsAbs(relative))

	_, err = util.ResolveDataDirectory("/etc/avl/avldb.conf", "")
	assert.Equal(t, fault.ErrInvalidDirectory, err)
	_, err = util.ResolveDataDirectory("/etc/avl/avldb.conf", "~")
	assert.Equal(t, fault.ErrInvalidDirectory, err)
}
