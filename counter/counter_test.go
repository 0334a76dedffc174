// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter_test

import (
	"sync"
	"testing"

	"github.com/bitmark-inc/avlkit/counter"
)

// test advancing a counter
func TestCounter(t *testing.T) {

	var c1 counter.Counter

	if 0 != c1.Since(0) {
		t.Errorf("counter is not zero at start: %d", c1.Uint64())
	}

	c1.Increment()
	c1.Increment()
	mark := c1.Uint64()
	c1.Increment()
	c1.Increment()
	c1.Increment()

	if 5 != c1.Uint64() {
		t.Errorf("counter is not 5 after incrementing: %d", c1.Uint64())
	}

	if 3 != c1.Since(mark) {
		t.Errorf("since mark: %d  expected: 3", c1.Since(mark))
	}

	if 0 != c1.Since(c1.Uint64()) {
		t.Errorf("since current value is not zero: %d", c1.Since(c1.Uint64()))
	}
}

// test that concurrent increments are not lost
func TestCounterConcurrent(t *testing.T) {

	var c1 counter.Counter

	const workers = 8
	const perWorker = 1000

	wg := sync.WaitGroup{}
	for i := 0; i < workers; i += 1 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j += 1 {
				c1.Increment()
			}
		}()
	}
	wg.Wait()

	if workers*perWorker != c1.Uint64() {
		t.Errorf("counter: %d  expected: %d", c1.Uint64(), workers*perWorker)
	}
}
