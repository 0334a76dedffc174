// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package database

import (
	"time"

	"github.com/bitmark-inc/logger"
)

// background process that rewrites the body when too many records
// are deleted
type compactor struct {
	database *Database
	interval time.Duration
}

func (c *compactor) Run(args interface{}, shutdown <-chan struct{}) {
	log := args.(*logger.L)

	log.Info("compactor: starting…")

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-time.After(c.interval):
			n, err := c.database.compactIfDirty()
			if nil != err {
				log.Errorf("compactor: rewrite error: %s", err)
			} else if n > 0 {
				log.Infof("compactor: dropped: %d records", n)
			}
		}
	}

	log.Info("compactor: stopped")
}

// rewrite if the deleted proportion of the body reaches the threshold
func (d *Database) compactIfDirty() (int, error) {
	d.Lock()
	defer d.Unlock()

	if d.closed || 0 == d.removed {
		return 0, nil
	}
	slots := d.body.Count()
	if 0 == slots || float64(d.removed)/float64(slots) < d.dirtyRatio {
		return 0, nil
	}
	return d.rewrite()
}
