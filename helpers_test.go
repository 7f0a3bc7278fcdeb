// Copyright (c) 2022, superwindstorm <fengwd.hc@gmail.com>
// All rights reserved.
// Use of this source code is governed by a BSD 3-Clause
// license that can be found in the LICENSE file.

package solhash

import (
	"crypto/sha256"
	"encoding/hex"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// reference hashes the concatenation with crypto/sha256.
func reference(vals ...[]byte) Digest {
	h := sha256.New()
	for _, v := range vals {
		h.Write(v)
	}
	var out Digest
	h.Sum(out[:0])
	return out
}

func mustDigest(t *testing.T, s string) Digest {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	require.Len(t, b, Size)
	var d Digest
	copy(d[:], b)
	return d
}

func randomBytes(rng *rand.Rand, n int) []byte {
	b := make([]byte, n)
	rng.Read(b)
	return b
}

func filled(n int, v byte) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = v
	}
	return b
}
