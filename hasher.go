// Copyright (c) 2022, superwindstorm <fengwd.hc@gmail.com>
// All rights reserved.
// Use of this source code is governed by a BSD 3-Clause
// license that can be found in the LICENSE file.

package solhash

import (
	"crypto/sha256"
	"hash"
	"runtime"

	"github.com/klauspost/cpuid/v2"
	simd "github.com/minio/sha256-simd"
)

// useStdSHA256 falls back to crypto/sha256 on CPUs without the SIMD
// features sha256-simd is built around.
var useStdSHA256 = func() bool {
	// On ARM64 some features require explicit detection
	if runtime.GOARCH == "arm64" {
		cpuid.DetectARM()
	}
	switch runtime.GOARCH {
	case "amd64", "386":
		return !cpuid.CPU.Supports(cpuid.SSE2)
	case "arm64":
		return !cpuid.CPU.Supports(cpuid.ASIMD)
	default:
		return true
	}
}()

func newEngine() hash.Hash {
	if useStdSHA256 {
		return sha256.New()
	}
	return simd.New()
}

// Hasher is an incremental SHA-256 hasher over any number of fragments.
// The zero value is ready to use.
type Hasher struct {
	h hash.Hash
}

// NewHasher returns a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{h: newEngine()}
}

func (h *Hasher) init() {
	if h.h == nil {
		h.h = newEngine()
	}
}

// Hash appends val to the message.
func (h *Hasher) Hash(val []byte) {
	h.init()
	h.h.Write(val)
}

// Hashv appends every fragment of vals, in order.
func (h *Hasher) Hashv(vals ...[]byte) {
	h.init()
	for _, v := range vals {
		h.h.Write(v)
	}
}

// Write implements io.Writer. It never returns an error.
func (h *Hasher) Write(p []byte) (int, error) {
	h.Hash(p)
	return len(p), nil
}

// Result returns the digest of everything written so far. The state is
// left untouched, so more data may follow.
func (h *Hasher) Result() Digest {
	h.init()
	var out Digest
	h.h.Sum(out[:0])
	return out
}

// Reset clears the message.
func (h *Hasher) Reset() {
	if h.h != nil {
		h.h.Reset()
	}
}

// sumGeneric is the reference path: SHA256(concat(vals)).
func sumGeneric(vals [][]byte) Digest {
	var h Hasher
	h.Hashv(vals...)
	return h.Result()
}
