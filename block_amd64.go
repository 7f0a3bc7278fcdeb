// Copyright (c) 2022, superwindstorm <fengwd.hc@gmail.com>
// All rights reserved.
// Use of this source code is governed by a BSD 3-Clause
// license that can be found in the LICENSE file.

//go:build amd64 && !purego

package solhash

import (
	"github.com/klauspost/cpuid/v2"
	"golang.org/x/sys/cpu"
)

const kernelName = "sha-ni"

// The SHA extension bit is taken from cpuid.
func kernelSupported() bool {
	return cpu.X86.HasSSSE3 && cpu.X86.HasSSE41 && cpuid.CPU.Supports(cpuid.SHA)
}

//go:noescape
func block32SHA(out *Digest, in *[Size]byte)

// block32 must only be reached when hasKernel is true.
func block32(out *Digest, in *[Size]byte) {
	block32SHA(out, in)
}
