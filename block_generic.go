// Copyright (c) 2022, superwindstorm <fengwd.hc@gmail.com>
// All rights reserved.
// Use of this source code is governed by a BSD 3-Clause
// license that can be found in the LICENSE file.

//go:build !amd64 || purego

package solhash

const kernelName = "generic"

func kernelSupported() bool { return false }

func block32(out *Digest, in *[Size]byte) {
	block32Generic(out, in)
}
