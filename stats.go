// Copyright (c) 2022, superwindstorm <fengwd.hc@gmail.com>
// All rights reserved.
// Use of this source code is governed by a BSD 3-Clause
// license that can be found in the LICENSE file.

package solhash

import (
	"log/slog"
	"sync/atomic"
)

// hitLogInterval is the number of kernel hits between log lines.
const hitLogInterval = 10_000

// Counters records how often the kernel served a call (hits) and how
// often it was available but the input had the wrong shape (misses).
// Misses are bucketed by total input length clamped to [1, Size].
//
// Counters are observability only. They never decrease and are safe for
// concurrent use.
type Counters struct {
	hits   atomic.Uint64
	misses [Size]atomic.Uint64
	logger *slog.Logger
}

// NewCounters returns zeroed Counters that log through logger.
// A nil logger means whatever slog.Default() is when a line is written.
func NewCounters(logger *slog.Logger) *Counters {
	return &Counters{logger: logger}
}

func (c *Counters) log() *slog.Logger {
	if c.logger == nil {
		return slog.Default()
	}
	return c.logger
}

// Hits returns the number of calls served by the kernel.
func (c *Counters) Hits() uint64 {
	return c.hits.Load()
}

// Misses returns the misses whose clamped input length is size.
// Sizes outside [1, Size] report zero.
func (c *Counters) Misses(size int) uint64 {
	if size < 1 || size > Size {
		return 0
	}
	return c.misses[size-1].Load()
}

// MissBuckets returns all miss counters; index i holds size i+1.
func (c *Counters) MissBuckets() [Size]uint64 {
	var out [Size]uint64
	for i := range c.misses {
		out[i] = c.misses[i].Load()
	}
	return out
}

func (c *Counters) totalMisses() uint64 {
	var n uint64
	for i := range c.misses {
		n += c.misses[i].Load()
	}
	return n
}

func (c *Counters) hit() {
	n := c.hits.Add(1)
	if n%hitLogInterval == 0 {
		c.log().Info("sha256 kernel stats",
			"hits", n,
			"misses", c.totalMisses(),
		)
	}
}

func (c *Counters) miss(vals [][]byte) {
	total := 0
	for _, v := range vals {
		total += len(v)
	}
	c.misses[missBucket(total)].Add(1)
}

func missBucket(total int) int {
	switch {
	case total < 1:
		return 0
	case total > Size:
		return Size - 1
	default:
		return total - 1
	}
}
