// Copyright (c) 2022, superwindstorm <fengwd.hc@gmail.com>
// All rights reserved.
// Use of this source code is governed by a BSD 3-Clause
// license that can be found in the LICENSE file.

// Command solhash prints the SHA-256 digest of files, benchmarks the
// kernel against the generic engine and optionally exposes the kernel
// counters to Prometheus.
package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/superwindstorm/solhash"
	"github.com/superwindstorm/solhash/promstats"
)

type config struct {
	extend  string
	hex     bool
	bench   int
	metrics string
	workers int
}

func main() {
	var cfg config
	flag.StringVar(&cfg.extend, "extend", "", "base58 digest to extend with each input")
	flag.BoolVar(&cfg.hex, "hex", false, "print digests as hex instead of base58")
	flag.IntVar(&cfg.bench, "bench", 0, "hash a random 32-byte input this many times on each path")
	flag.StringVar(&cfg.metrics, "metrics", "", "serve Prometheus metrics on this address until interrupted")
	flag.IntVar(&cfg.workers, "workers", runtime.NumCPU(), "inputs hashed in parallel")
	verbose := flag.Bool("verbose", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, logger, cfg, flag.Args(), os.Stdout)
	stop()
	if err != nil {
		logger.Error("solhash failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, cfg config, paths []string, w io.Writer) error {
	counters := solhash.NewCounters(logger)
	d := solhash.New(solhash.WithCounters(counters))
	logger.Debug("dispatcher ready", "kernel", solhash.Kernel())

	var prev *solhash.Digest
	if cfg.extend != "" {
		p, err := solhash.ParseDigest(cfg.extend)
		if err != nil {
			return fmt.Errorf("parse -extend: %w", err)
		}
		prev = &p
	}

	serveErr := make(chan error, 1)
	if cfg.metrics != "" {
		ln, err := net.Listen("tcp", cfg.metrics)
		if err != nil {
			return fmt.Errorf("metrics listen: %w", err)
		}
		srv := metricsServer(counters)
		go func() {
			if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
				serveErr <- err
			}
		}()
		defer srv.Close()
		logger.Info("serving metrics", "addr", ln.Addr().String())
	}

	if cfg.bench > 0 {
		if err := runBench(logger, d, cfg.bench); err != nil {
			return err
		}
	}

	if len(paths) == 0 && cfg.bench == 0 {
		paths = []string{"-"}
	}
	if err := hashPaths(ctx, d, prev, cfg, paths, w); err != nil {
		return err
	}

	if cfg.metrics != "" {
		select {
		case <-ctx.Done():
		case err := <-serveErr:
			return fmt.Errorf("metrics serve: %w", err)
		}
	}
	return nil
}

func metricsServer(counters *solhash.Counters) *http.Server {
	reg := prometheus.NewRegistry()
	reg.MustRegister(promstats.NewCollector(counters, "solhash"))
	return &http.Server{
		Handler:           promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
		ReadHeaderTimeout: 5 * time.Second,
	}
}

func hashPaths(ctx context.Context, d *solhash.Dispatcher, prev *solhash.Digest, cfg config, paths []string, w io.Writer) error {
	digests := make([]solhash.Digest, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(cfg.workers, 1))
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := readInput(path)
			if err != nil {
				return err
			}
			if prev != nil {
				digests[i] = d.ExtendAndHash(*prev, data)
			} else {
				digests[i] = d.Hash(data)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, path := range paths {
		if _, err := fmt.Fprintf(w, "%s  %s\n", format(digests[i], cfg.hex), path); err != nil {
			return err
		}
	}
	return nil
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

func format(d solhash.Digest, asHex bool) string {
	if asHex {
		return hex.EncodeToString(d[:])
	}
	return d.String()
}

// runBench times iters hashes of one random 32-byte input through d and
// through a dispatcher without the kernel, and checks they agree.
func runBench(logger *slog.Logger, d *solhash.Dispatcher, iters int) error {
	var in [solhash.Size]byte
	if _, err := rand.Read(in[:]); err != nil {
		return fmt.Errorf("bench input: %w", err)
	}
	generic := solhash.New(solhash.WithKernel(false))

	start := time.Now()
	var want solhash.Digest
	for i := 0; i < iters; i++ {
		want = generic.Hash(in[:])
	}
	genericTook := time.Since(start)

	start = time.Now()
	var got solhash.Digest
	for i := 0; i < iters; i++ {
		got = d.Hash(in[:])
	}
	took := time.Since(start)

	if got != want {
		return fmt.Errorf("kernel %s disagrees with generic engine: %x != %x", solhash.Kernel(), got[:], want[:])
	}
	logger.Info("bench",
		"iterations", iters,
		"kernel", solhash.Kernel(),
		"generic", genericTook,
		"dispatched", took,
	)
	return nil
}
