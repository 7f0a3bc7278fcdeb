// Copyright (c) 2022, superwindstorm <fengwd.hc@gmail.com>
// All rights reserved.
// Use of this source code is governed by a BSD 3-Clause
// license that can be found in the LICENSE file.

package solhash

import (
	"encoding/binary"
	"math/bits"
)

// hasKernel reports whether block32 runs on the hardware kernel. It is
// resolved before any package-level dispatcher is built.
var hasKernel = kernelSupported() && kernelAllowed(lookupEnv(EnvKernel))

// Kernel returns the name of the 32-byte kernel in use, or "generic".
func Kernel() string {
	if hasKernel {
		return kernelName
	}
	return "generic"
}

// block32Generic computes the digest of a 32-byte message held in a
// single block. It follows the same shape as the hardware kernel: the
// upper half of the block is block32Pad and the rounds walk k256x4 one
// quad at a time.
func block32Generic(out *Digest, in *[Size]byte) {
	var w [64]uint32
	for i := 0; i < 8; i++ {
		w[i] = binary.BigEndian.Uint32(in[i*4:])
	}
	copy(w[8:16], block32Pad[:])
	for i := 16; i < 64; i++ {
		v1 := w[i-2]
		s1 := bits.RotateLeft32(v1, -17) ^ bits.RotateLeft32(v1, -19) ^ (v1 >> 10)
		v2 := w[i-15]
		s0 := bits.RotateLeft32(v2, -7) ^ bits.RotateLeft32(v2, -18) ^ (v2 >> 3)
		w[i] = s1 + w[i-7] + s0 + w[i-16]
	}

	a, b, c, d, e, f, g, h := iv[0], iv[1], iv[2], iv[3], iv[4], iv[5], iv[6], iv[7]
	for q := range k256x4 {
		for l, k := range k256x4[q] {
			t1 := h + (bits.RotateLeft32(e, -6) ^ bits.RotateLeft32(e, -11) ^ bits.RotateLeft32(e, -25)) +
				((e & f) ^ (^e & g)) + k + w[4*q+l]
			t2 := (bits.RotateLeft32(a, -2) ^ bits.RotateLeft32(a, -13) ^ bits.RotateLeft32(a, -22)) +
				((a & b) ^ (a & c) ^ (b & c))

			h = g
			g = f
			f = e
			e = d + t1
			d = c
			c = b
			b = a
			a = t1 + t2
		}
	}

	// Davies-Meyer feed-forward into the big-endian digest.
	state := [8]uint32{a, b, c, d, e, f, g, h}
	for i, s := range state {
		binary.BigEndian.PutUint32(out[i*4:], s+iv[i])
	}
}
