// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/avlkit/database"
)

type metadata struct {
	config  *Configuration
	db      *database.Database
	log     *logger.L
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp()
	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "avldb"
	app.Usage = "ordered key/value store"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "config, c",
			Value: "",
			Usage: " read configuration from `FILE`",
		},
		cli.StringSliceFlag{
			Name:  "define, D",
			Usage: " set configuration variable `NAME=VALUE`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "put",
			Usage:     "store a value",
			ArgsUsage: "KEY VALUE",
			Action:    runPut,
		},
		{
			Name:      "get",
			Usage:     "fetch a value",
			ArgsUsage: "KEY",
			Action:    runGet,
		},
		{
			Name:      "delete",
			Usage:     "remove a key",
			ArgsUsage: "KEY",
			Action:    runDelete,
		},
		{
			Name:  "list",
			Usage: "all keys and values in key order",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "prefix, p",
					Value: "",
					Usage: " only keys starting with `PREFIX`",
				},
			},
			Action: runList,
		},
		{
			Name:   "rewrite",
			Usage:  "compact the record file",
			Action: runRewrite,
		},
		{
			Name:   "info",
			Usage:  "database statistics as JSON",
			Action: runInfo,
		},
		{
			Name:   "version",
			Usage:  "display avldb version",
			Action: runVersion,
		},
	}

	app.Before = func(c *cli.Context) error {
		// no configuration is needed to show the version
		if "version" == c.Args().Get(0) {
			return nil
		}

		variables := make(map[string]string)
		for _, d := range c.GlobalStringSlice("define") {
			v := strings.SplitN(d, "=", 2)
			if 2 != len(v) {
				return fmt.Errorf("define: %q is not NAME=VALUE", d)
			}
			variables[v[0]] = v[1]
		}

		config, err := getConfiguration(app.Name, c.GlobalString("config"), variables)
		if nil != err {
			return err
		}

		m, err := setup(config, c.GlobalBool("verbose"), c.App.ErrWriter, c.App.Writer)
		if nil != err {
			return err
		}
		c.App.Metadata["config"] = m
		return nil
	}

	app.After = func(c *cli.Context) error {
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok {
			return nil
		}
		delete(c.App.Metadata, "config")
		return m.shutdown()
	}

	return app
}

// start logging and open the database
func setup(config *Configuration, verbose bool, e io.Writer, w io.Writer) (*metadata, error) {
	if err := os.MkdirAll(config.Logging.Directory, 0700); nil != err {
		return nil, err
	}
	if err := logger.Initialise(config.Logging); nil != err {
		return nil, err
	}

	log := logger.New("main")
	log.Debugf("configuration: %+v", config)

	if verbose {
		fmt.Fprintf(e, "database: %q\n", config.Database.Directory)
	}

	db, err := database.Open(config.Database, log)
	if nil != err {
		log.Criticalf("open database: %q  error: %s", config.Database.Directory, err)
		logger.Finalise()
		return nil, err
	}

	return &metadata{
		config:  config,
		db:      db,
		log:     log,
		verbose: verbose,
		e:       e,
		w:       w,
	}, nil
}

func (m *metadata) shutdown() error {
	err := m.db.Close()
	if nil != err {
		m.log.Errorf("close database error: %s", err)
	}
	logger.Finalise()
	return err
}
