// Copyright (c) 2022, superwindstorm <fengwd.hc@gmail.com>
// All rights reserved.
// Use of this source code is governed by a BSD 3-Clause
// license that can be found in the LICENSE file.

//go:build wasip1 && solhash_syscall

package solhash

import (
	"runtime"
	"unsafe"
)

// bytesDesc is the host's view of one fragment.
type bytesDesc struct {
	addr uint64
	len  uint64
}

//go:wasmimport env sol_sha256
//go:noescape
func solSha256(vals unsafe.Pointer, n uint64, out unsafe.Pointer) uint64

// syscallHost hands the fragments to the host's sol_sha256.
type syscallHost struct{}

func defaultHost() Host { return syscallHost{} }

func (syscallHost) Sha256(vals [][]byte, out *Digest) {
	var small [8]bytesDesc
	descs := small[:0]
	if len(vals) > len(small) {
		descs = make([]bytesDesc, 0, len(vals))
	}
	for _, v := range vals {
		d := bytesDesc{len: uint64(len(v))}
		if len(v) > 0 {
			d.addr = uint64(uintptr(unsafe.Pointer(&v[0])))
		}
		descs = append(descs, d)
	}

	var p unsafe.Pointer
	if len(descs) > 0 {
		p = unsafe.Pointer(&descs[0])
	}
	solSha256(p, uint64(len(descs)), unsafe.Pointer(out))
	runtime.KeepAlive(vals)
	runtime.KeepAlive(descs)
}
