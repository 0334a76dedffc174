// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package counter - monotonic modification counters
package counter

import (
	"sync/atomic"
)

// Counter - a generation number that only moves forward, safe to read
// while another goroutine increments it
type Counter uint64

// Increment - advance the generation, returns new value
func (c *Counter) Increment() uint64 {
	return atomic.AddUint64((*uint64)(c), 1)
}

// Uint64 - returns current value
func (c *Counter) Uint64() uint64 {
	return atomic.LoadUint64((*uint64)(c))
}

// Since - number of increments after a previously read value
func (c *Counter) Since(generation uint64) uint64 {
	return c.Uint64() - generation
}
