// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/avlkit/fault"
	"github.com/bitmark-inc/avlkit/util"
)

type infoResult struct {
	Directory   string                `json:"directory"`
	RecordSize  int                   `json:"record_size"`
	Count       int                   `json:"count"`
	Slots       int                   `json:"slots"`
	Height      int                   `json:"height"`
	Clean       bool                  `json:"clean"`
	Fingerprint util.FingerprintBytes `json:"fingerprint"`
}

func printJson(handle io.Writer, message interface{}) error {
	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	fmt.Fprintf(handle, "%s\n", b)
	return nil
}

func checkArguments(c *cli.Context, n int) error {
	if c.NArg() < n {
		return fault.ErrMissingArgument
	}
	return nil
}

func runPut(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	if err := checkArguments(c, 2); nil != err {
		return err
	}
	key := c.Args().Get(0)
	value := strings.Join(c.Args().Tail(), " ")

	if m.verbose {
		fmt.Fprintf(m.e, "put: %q → %q\n", key, value)
	}
	m.log.Infof("put: %q", key)
	return m.db.Put(key, []byte(value))
}

func runGet(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	if err := checkArguments(c, 1); nil != err {
		return err
	}
	value, err := m.db.Get(c.Args().Get(0))
	if nil != err {
		return err
	}
	fmt.Fprintf(m.w, "%s\n", value)
	return nil
}

func runDelete(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	if err := checkArguments(c, 1); nil != err {
		return err
	}
	key := c.Args().Get(0)
	found, err := m.db.Delete(key)
	if nil != err {
		return err
	}
	if !found {
		return fault.ErrKeyNotFound
	}
	m.log.Infof("delete: %q", key)
	return nil
}

func runList(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	prefix := c.String("prefix")
	return m.db.ForEach(func(key string, value []byte) bool {
		if strings.HasPrefix(key, prefix) {
			fmt.Fprintf(m.w, "%s: %s\n", key, value)
		}
		return true
	})
}

func runRewrite(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	n, err := m.db.Rewrite()
	if nil != err {
		return err
	}
	m.log.Infof("rewrite dropped: %d", n)
	fmt.Fprintf(m.w, "dropped: %d\n", n)
	return nil
}

func runInfo(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	fingerprint, err := m.db.Fingerprint()
	if nil != err {
		return err
	}
	return printJson(m.w, infoResult{
		Directory:   m.config.Database.Directory,
		RecordSize:  m.config.Database.RecordSize,
		Count:       m.db.Count(),
		Slots:       m.db.Slots(),
		Height:      m.db.Height(),
		Clean:       m.db.IsClean(),
		Fingerprint: fingerprint,
	})
}

func runVersion(c *cli.Context) error {
	fmt.Fprintf(c.App.Writer, "%s\n", version)
	return nil
}
