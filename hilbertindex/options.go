// SPDX-License-Identifier: MIT
// Package: manybody/hilbertindex
//
// options.go — functional options for New and Filter.
//
// Defaults:
//   • maxStates = MaxStates
//   • logger    = discard
//   • workers   = runtime.GOMAXPROCS(0)
//
// Option constructors panic on meaningless values.

package hilbertindex

import (
	"io"
	"log/slog"
	"runtime"
)

// Option customizes New.
type Option func(*config)

type config struct {
	maxStates int
	logger    *slog.Logger
}

func newConfig(opts ...Option) config {
	c := config{
		maxStates: MaxStates,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// WithMaxStates lowers the enumeration bound. Panics unless 1 ≤ n ≤ MaxStates.
func WithMaxStates(n int) Option {
	if n < 1 || n > MaxStates {
		panic("hilbertindex: WithMaxStates(n) requires 1 <= n <= MaxStates")
	}
	return func(c *config) {
		c.maxStates = n
	}
}

// WithLogger routes index construction messages (Debug level) to l.
// Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("hilbertindex: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}

// FilterOption customizes Filter.
type FilterOption func(*filterConfig)

type filterConfig struct {
	workers int
}

func newFilterConfig(opts ...FilterOption) filterConfig {
	c := filterConfig{workers: runtime.GOMAXPROCS(0)}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// WithWorkers bounds the number of concurrent shard scans. Panics if n < 1.
func WithWorkers(n int) FilterOption {
	if n < 1 {
		panic("hilbertindex: WithWorkers(n<1)")
	}
	return func(c *filterConfig) {
		c.workers = n
	}
}
