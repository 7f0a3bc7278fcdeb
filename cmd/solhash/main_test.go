// Copyright (c) 2022, superwindstorm <fengwd.hc@gmail.com>
// All rights reserved.
// Use of this source code is governed by a BSD 3-Clause
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/superwindstorm/solhash"
)

func writeFiles(t *testing.T, contents ...string) []string {
	t.Helper()
	dir := t.TempDir()
	paths := make([]string, len(contents))
	for i, c := range contents {
		paths[i] = filepath.Join(dir, "in"+string(rune('a'+i)))
		require.NoError(t, os.WriteFile(paths[i], []byte(c), 0o600))
	}
	return paths
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRunPrintsInOrder(t *testing.T) {
	contents := []string{"abc", "", strings.Repeat("x", 32), "hello world"}
	paths := writeFiles(t, contents...)

	var out bytes.Buffer
	err := run(context.Background(), discard(), config{hex: true, workers: 3}, paths, &out)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, len(paths))
	for i, line := range lines {
		sum := sha256.Sum256([]byte(contents[i]))
		assert.Equal(t, hex.EncodeToString(sum[:])+"  "+paths[i], line)
	}
}

func TestRunBase58(t *testing.T) {
	paths := writeFiles(t, "abc")

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), discard(), config{workers: 1}, paths, &out))

	want := solhash.Digest(sha256.Sum256([]byte("abc")))
	assert.Equal(t, want.String()+"  "+paths[0]+"\n", out.String())
}

func TestRunExtend(t *testing.T) {
	prev := solhash.Hash([]byte("seed"))
	paths := writeFiles(t, "next")

	var out bytes.Buffer
	cfg := config{extend: prev.String(), hex: true, workers: 1}
	require.NoError(t, run(context.Background(), discard(), cfg, paths, &out))

	sum := sha256.Sum256(append(prev.Bytes(), "next"...))
	assert.Equal(t, hex.EncodeToString(sum[:])+"  "+paths[0]+"\n", out.String())
}

func TestRunBadExtend(t *testing.T) {
	err := run(context.Background(), discard(), config{extend: "0OIl", workers: 1}, nil, io.Discard)
	require.Error(t, err)
	assert.ErrorIs(t, err, solhash.ErrInvalid)
}

func TestRunMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope")
	err := run(context.Background(), discard(), config{workers: 2}, []string{missing}, io.Discard)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRunBench(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), logger, config{bench: 50, workers: 1}, nil, &out))
	assert.Empty(t, out.String())
	assert.Contains(t, logs.String(), "iterations=50")
	assert.Contains(t, logs.String(), "kernel="+solhash.Kernel())
}

func TestRunMetricsAddrInUse(t *testing.T) {
	held, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer held.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	start := time.Now()
	err = run(ctx, discard(), config{metrics: held.Addr().String(), bench: 1, workers: 1}, nil, io.Discard)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "metrics listen")
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestRunMetricsServes(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- run(ctx, discard(), config{metrics: addr, bench: 1, workers: 1}, nil, io.Discard)
	}()

	var body string
	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/metrics")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		b, err := io.ReadAll(resp.Body)
		body = string(b)
		return err == nil && resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)
	assert.Contains(t, body, "solhash_sha256_kernel_hits_total")

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("run did not return after cancel")
	}
}

func TestFormat(t *testing.T) {
	var d solhash.Digest
	assert.Equal(t, strings.Repeat("0", 64), format(d, true))
	assert.Equal(t, strings.Repeat("1", 32), format(d, false))
}
