// Copyright (c) 2022, superwindstorm <fengwd.hc@gmail.com>
// All rights reserved.
// Use of this source code is governed by a BSD 3-Clause
// license that can be found in the LICENSE file.

package solhash

import (
	"os"
	"strconv"
	"strings"
)

// Environment variables read once when the package is initialized.
const (
	// EnvKernel set to "generic" keeps the process off the hardware
	// kernel. Any other value, or none, selects it when the CPU allows.
	EnvKernel = "SOLHASH_KERNEL"

	// EnvStats set to a true value (as understood by strconv.ParseBool)
	// attaches Counters to the default dispatcher.
	EnvStats = "SOLHASH_STATS"
)

var lookupEnv = os.Getenv

func kernelAllowed(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "generic", "off", "none":
		return false
	default:
		return true
	}
}

func statsEnabled(v string) bool {
	on, err := strconv.ParseBool(strings.TrimSpace(v))
	return err == nil && on
}

type options struct {
	kernel bool
	host   Host
	stats  *Counters
}

// Option configures a Dispatcher.
type Option func(*options)

// WithKernel allows or forbids the hardware kernel. Allowing it has no
// effect when the CPU or the build does not provide one.
func WithKernel(enabled bool) Option {
	return func(o *options) {
		o.kernel = enabled
	}
}

// WithHost routes every call that misses the kernel to h.
// Pass nil to hash locally.
func WithHost(h Host) Option {
	return func(o *options) {
		o.host = h
	}
}

// WithCounters records kernel hits and misses in c.
// Pass nil to disable instrumentation.
func WithCounters(c *Counters) Option {
	return func(o *options) {
		o.stats = c
	}
}

func defaultOptions() options {
	o := options{
		kernel: true,
		host:   defaultHost(),
	}
	if statsEnabled(lookupEnv(EnvStats)) {
		o.stats = NewCounters(nil)
	}
	return o
}
