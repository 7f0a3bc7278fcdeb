// Copyright (c) 2022, superwindstorm <fengwd.hc@gmail.com>
// All rights reserved.
// Use of this source code is governed by a BSD 3-Clause
// license that can be found in the LICENSE file.

package solhash

// Strategy identifies the routine a call is routed to.
type Strategy uint8

const (
	// Generic is the incremental SHA-256 engine.
	Generic Strategy = iota
	// Optimized is the hardware single-block kernel.
	Optimized
	// Hosted is the host's system call.
	Hosted
)

// String returns the string representation of a Strategy.
func (s Strategy) String() string {
	switch s {
	case Generic:
		return "generic"
	case Optimized:
		return "optimized"
	case Hosted:
		return "hosted"
	default:
		return "unknown"
	}
}

// Dispatcher routes hashing calls to the kernel, the host or the
// generic engine. It holds no mutable state besides optional Counters
// and may be shared by any number of goroutines.
type Dispatcher struct {
	kernel bool
	host   Host
	stats  *Counters
}

// New returns a Dispatcher. Without options it behaves like Default,
// minus the environment-driven Counters.
func New(opts ...Option) *Dispatcher {
	o := options{kernel: true, host: defaultHost()}
	for _, fn := range opts {
		fn(&o)
	}
	return newDispatcher(o)
}

func newDispatcher(o options) *Dispatcher {
	return &Dispatcher{
		kernel: o.kernel && hasKernel,
		host:   o.host,
		stats:  o.stats,
	}
}

var std = newDispatcher(defaultOptions())

// Default returns the dispatcher behind the package-level functions.
func Default() *Dispatcher { return std }

// Counters returns the attached counters, or nil.
func (d *Dispatcher) Counters() *Counters { return d.stats }

// Strategy reports where Hashv(vals...) would be routed.
func (d *Dispatcher) Strategy(vals ...[]byte) Strategy {
	switch {
	case d.kernel && len(vals) == 1 && len(vals[0]) == Size:
		return Optimized
	case d.host != nil:
		return Hosted
	default:
		return Generic
	}
}

// Hashv returns the SHA-256 digest of the concatenation of vals.
func (d *Dispatcher) Hashv(vals ...[]byte) Digest {
	switch d.Strategy(vals...) {
	case Optimized:
		return d.sum32((*[Size]byte)(vals[0]))
	case Hosted:
		return d.hosted(vals)
	}
	if d.stats != nil && d.kernel {
		d.stats.miss(vals)
	}
	return sumGeneric(vals)
}

// Hash returns the SHA-256 digest of val.
func (d *Dispatcher) Hash(val []byte) Digest {
	if d.kernel && len(val) == Size {
		return d.sum32((*[Size]byte)(val))
	}
	return d.Hashv(val)
}

// ExtendAndHash returns the digest of h's bytes followed by val.
func (d *Dispatcher) ExtendAndHash(h Digest, val []byte) Digest {
	buf := make([]byte, 0, Size+len(val))
	buf = append(buf, h[:]...)
	buf = append(buf, val...)
	return d.Hash(buf)
}

func (d *Dispatcher) sum32(in *[Size]byte) Digest {
	var out Digest
	block32(&out, in)
	if d.stats != nil {
		d.stats.hit()
	}
	return out
}

func (d *Dispatcher) hosted(vals [][]byte) Digest {
	var out Digest
	d.host.Sha256(vals, &out)
	return out
}

// Hashv returns the SHA-256 digest of the concatenation of vals.
func Hashv(vals ...[]byte) Digest {
	return std.Hashv(vals...)
}

// Hash returns the SHA-256 digest of val.
func Hash(val []byte) Digest {
	return std.Hash(val)
}

// ExtendAndHash returns the digest of h's bytes followed by val.
func ExtendAndHash(h Digest, val []byte) Digest {
	return std.ExtendAndHash(h, val)
}
