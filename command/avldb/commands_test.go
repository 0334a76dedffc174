// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/avlkit/database"
	"github.com/bitmark-inc/avlkit/fault"
)

const (
	testingDirName = "testing"
)

func TestMain(m *testing.M) {
	_ = os.RemoveAll(testingDirName)
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	_ = logger.Initialise(logging)

	rc := m.Run()

	logger.Finalise()
	_ = os.RemoveAll(testingDirName)
	os.Exit(rc)
}

// an app bound to an already open database
func testApp(t *testing.T, name string) (*cli.App, *bytes.Buffer, *database.Database) {
	config := defaultConfiguration("avldb")
	config.Database.Directory = filepath.Join(testingDirName, name)
	_ = os.RemoveAll(config.Database.Directory)

	log := logger.New("testing")
	db, err := database.Open(config.Database, log)
	require.NoError(t, err, "open database")

	out := &bytes.Buffer{}
	m := &metadata{
		config: config,
		db:     db,
		log:    log,
		e:      out,
		w:      out,
	}

	app := newApp()
	app.Writer = out
	app.ErrWriter = out
	app.Before = func(c *cli.Context) error {
		c.App.Metadata["config"] = m
		return nil
	}
	app.After = nil
	return app, out, db
}

func TestPutGetDelete(t *testing.T) {
	app, out, db := testApp(t, "put")
	defer db.Close()

	assert.NoError(t, app.Run([]string{"avldb", "put", "b", "two", "words"}))
	assert.NoError(t, app.Run([]string{"avldb", "put", "a", "one"}))
	assert.NoError(t, app.Run([]string{"avldb", "get", "b"}))
	assert.Equal(t, "two words\n", out.String(), "wrong get")

	out.Reset()
	assert.NoError(t, app.Run([]string{"avldb", "list"}))
	assert.Equal(t, "a: one\nb: two words\n", out.String(), "wrong list")

	out.Reset()
	assert.NoError(t, app.Run([]string{"avldb", "list", "--prefix", "b"}))
	assert.Equal(t, "b: two words\n", out.String(), "wrong prefix list")

	assert.NoError(t, app.Run([]string{"avldb", "delete", "a"}))
	assert.Equal(t, fault.ErrKeyNotFound, app.Run([]string{"avldb", "delete", "a"}), "wrong second delete")
	assert.Equal(t, fault.ErrKeyNotFound, app.Run([]string{"avldb", "get", "a"}), "wrong get after delete")
	assert.Equal(t, 1, db.Count(), "wrong count")
}

func TestMissingArguments(t *testing.T) {
	app, _, db := testApp(t, "arguments")
	defer db.Close()

	assert.Equal(t, fault.ErrMissingArgument, app.Run([]string{"avldb", "put", "a"}), "wrong put")
	assert.Equal(t, fault.ErrMissingArgument, app.Run([]string{"avldb", "get"}), "wrong get")
	assert.Equal(t, fault.ErrMissingArgument, app.Run([]string{"avldb", "delete"}), "wrong delete")
}

// info as decoded from the JSON output
type testInfo struct {
	RecordSize  int    `json:"record_size"`
	Count       int    `json:"count"`
	Slots       int    `json:"slots"`
	Clean       bool   `json:"clean"`
	Fingerprint string `json:"fingerprint"`
}

func TestRewriteAndInfo(t *testing.T) {
	app, out, db := testApp(t, "rewrite")
	defer db.Close()

	for _, k := range []string{"a", "b", "c"} {
		require.NoError(t, app.Run([]string{"avldb", "put", k, "value-" + k}))
	}
	require.NoError(t, app.Run([]string{"avldb", "delete", "b"}))

	out.Reset()
	require.NoError(t, app.Run([]string{"avldb", "info"}))
	info := testInfo{}
	require.NoError(t, json.Unmarshal(out.Bytes(), &info))
	assert.Equal(t, 2, info.Count, "wrong count")
	assert.Equal(t, 3, info.Slots, "wrong slots")
	assert.False(t, info.Clean, "should be dirty")
	before := info.Fingerprint
	assert.Len(t, before, 64, "wrong fingerprint")

	out.Reset()
	require.NoError(t, app.Run([]string{"avldb", "rewrite"}))
	assert.Equal(t, "dropped: 1\n", out.String(), "wrong rewrite")

	out.Reset()
	require.NoError(t, app.Run([]string{"avldb", "info"}))
	info = testInfo{}
	require.NoError(t, json.Unmarshal(out.Bytes(), &info))
	assert.Equal(t, 2, info.Count, "wrong count")
	assert.Equal(t, 2, info.Slots, "wrong slots")
	assert.True(t, info.Clean, "should be clean")
	assert.Equal(t, database.DefaultRecordSize, info.RecordSize, "wrong record size")
	assert.Equal(t, before, info.Fingerprint, "rewrite changed the content")
}

func TestVersion(t *testing.T) {
	app := newApp()
	out := &bytes.Buffer{}
	app.Writer = out
	assert.NoError(t, app.Run([]string{"avldb", "version"}))
	assert.Equal(t, "zero\n", out.String(), "wrong version")
}

func TestConfigurationFile(t *testing.T) {
	fileName := filepath.Join(testingDirName, "avldb.conf")
	content := `
local M = {}
M.data_directory = "."
M.database = {
   directory = arg["db"] or "db",
   record_size = 64,
}
return M
`
	require.NoError(t, os.WriteFile(fileName, []byte(content), 0600))

	c, err := getConfiguration("avldb", fileName, map[string]string{"db": "store"})
	require.NoError(t, err)

	absolute, _ := filepath.Abs(testingDirName)
	assert.Equal(t, absolute, c.DataDirectory, "wrong data directory")
	assert.Equal(t, filepath.Join(absolute, "store"), c.Database.Directory, "wrong database directory")
	assert.Equal(t, filepath.Join(absolute, "log"), c.Logging.Directory, "wrong log directory")
	assert.Equal(t, 64, c.Database.RecordSize, "wrong record size")
	assert.Equal(t, database.DefaultDirtyRatio, c.Database.DirtyRatio, "default was overwritten")
}

func TestDefaultConfiguration(t *testing.T) {
	c, err := getConfiguration("avldb", "", nil)
	require.NoError(t, err)

	wd, _ := os.Getwd()
	assert.Equal(t, wd, c.DataDirectory, "wrong data directory")
	assert.Equal(t, filepath.Join(wd, defaultDatabaseDirectory), c.Database.Directory, "wrong database directory")
	assert.Equal(t, "avldb.log", c.Logging.File, "wrong log file")
}
