// Copyright (c) 2022, superwindstorm <fengwd.hc@gmail.com>
// All rights reserved.
// Use of this source code is governed by a BSD 3-Clause
// license that can be found in the LICENSE file.

// Package solhash implements SHA-256 hashing for a blockchain runtime.
//
// A single 32-byte fragment, the shape of hashing a hash, is computed by
// a one-block kernel built on the x86-64 SHA extensions when the CPU has
// them. Everything else goes to a generic SHA-256 engine, or to the host
// when running inside the on-chain environment. All paths produce the
// standard SHA-256 digest.
//
// Build with -tags purego to leave the kernel out, or set
// SOLHASH_KERNEL=generic to bypass it at runtime.
package solhash

import (
	"errors"
	"fmt"

	"github.com/mr-tron/base58"
)

// maxBase58Len is the longest base58 encoding of Size bytes.
const maxBase58Len = 44

var (
	// ErrWrongSize is returned when decoded text is not Size bytes long.
	ErrWrongSize = errors.New("solhash: wrong size")
	// ErrInvalid is returned for text that is not valid base58.
	ErrInvalid = errors.New("solhash: invalid base58")
)

// Digest is a 32-byte SHA-256 digest in standard big-endian order.
type Digest [Size]byte

// Bytes returns a copy of the digest bytes.
func (d Digest) Bytes() []byte {
	b := make([]byte, Size)
	copy(b, d[:])
	return b
}

// String returns the base58 form of the digest.
func (d Digest) String() string {
	return base58.Encode(d[:])
}

// MarshalText implements encoding.TextMarshaler.
func (d Digest) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Digest) UnmarshalText(text []byte) error {
	v, err := ParseDigest(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// ParseDigest decodes the base58 form produced by Digest.String.
func ParseDigest(s string) (Digest, error) {
	var d Digest
	if len(s) > maxBase58Len {
		return d, fmt.Errorf("%w: %d characters", ErrWrongSize, len(s))
	}
	b, err := base58.Decode(s)
	if err != nil {
		return d, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if len(b) != Size {
		return d, fmt.Errorf("%w: %d bytes", ErrWrongSize, len(b))
	}
	copy(d[:], b)
	return d, nil
}
