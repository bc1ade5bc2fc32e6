// Copyright 2025 The go-pixview Authors. SPDX-License-Identifier: Apache-2.0

package parallel

import (
	"os"
	"runtime"
	"strconv"
	"sync"
)

// Environment variables consulted by DefaultOptions.
const (
	EnvWorkers = "PIXVIEW_WORKERS"
	EnvMinLen  = "PIXVIEW_MIN_LEN"
)

// DefaultMinLen is the smallest piece a producer is split into unless
// PIXVIEW_MIN_LEN says otherwise.
const DefaultMinLen = 4096

// Options controls how producers are split across a Pool. Zero fields take
// their defaults.
type Options struct {
	// Workers is the number of pool goroutines. Default: PIXVIEW_WORKERS,
	// else GOMAXPROCS.
	Workers int

	// MinLen is the minimum number of elements in a piece. A producer
	// shorter than 2*MinLen is not split at all.
	MinLen int

	// Pieces is the maximum number of pieces a producer is split into.
	// Default: four per worker.
	Pieces int
}

var envOptions = sync.OnceValue(func() Options {
	return Options{
		Workers: envInt(EnvWorkers),
		MinLen:  envInt(EnvMinLen),
	}
})

// DefaultOptions returns the options given by the environment. The
// environment is read once per process.
func DefaultOptions() Options {
	return envOptions()
}

func (o Options) withDefaults() Options {
	env := envOptions()
	if o.Workers <= 0 {
		o.Workers = env.Workers
	}
	if o.Workers <= 0 {
		o.Workers = runtime.GOMAXPROCS(0)
	}
	if o.MinLen <= 0 {
		o.MinLen = env.MinLen
	}
	if o.MinLen <= 0 {
		o.MinLen = DefaultMinLen
	}
	if o.Pieces <= 0 {
		o.Pieces = 4 * o.Workers
	}
	return o
}

// envInt returns the positive integer in the named variable, or 0.
func envInt(name string) int {
	s := os.Getenv(name)
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		tracer().Infof("ignoring %s=%q: want a positive integer", name, s)
		return 0
	}
	return n
}
