// Copyright (c) 2022, superwindstorm <fengwd.hc@gmail.com>
// All rights reserved.
// Use of this source code is governed by a BSD 3-Clause
// license that can be found in the LICENSE file.

package solhash

import (
	"fmt"
	"os"
	"runtime"
	"testing"
)

// TestMain prints which kernel the tests run against.
func TestMain(m *testing.M) {
	fmt.Printf("=== solhash kernel ===\n")
	fmt.Printf("GOOS=%s GOARCH=%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Printf("%s=%q\n", EnvKernel, os.Getenv(EnvKernel))
	fmt.Printf("kernel: %s\n", Kernel())
	fmt.Printf("std crypto/sha256 engine: %v\n", useStdSHA256)
	fmt.Printf("======================\n\n")

	os.Exit(m.Run())
}
