// Copyright (c) 2022, superwindstorm <fengwd.hc@gmail.com>
// All rights reserved.
// Use of this source code is governed by a BSD 3-Clause
// license that can be found in the LICENSE file.

package solhash

// Host computes SHA-256 on behalf of a program running inside the
// on-chain environment. Sha256 writes the digest of the concatenated
// fragments into out. The result is trusted as is.
type Host interface {
	Sha256(vals [][]byte, out *Digest)
}

// HostFunc adapts a plain function to the Host interface.
type HostFunc func(vals [][]byte, out *Digest)

// Sha256 calls f(vals, out).
func (f HostFunc) Sha256(vals [][]byte, out *Digest) {
	f(vals, out)
}
