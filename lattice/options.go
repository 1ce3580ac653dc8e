// SPDX-License-Identifier: MIT
// Package: manybody/lattice
//
// options.go — functional options shared by the lattice constructors.
//
// Option constructors panic on meaningless input; constructors themselves
// only return sentinel errors.

package lattice

import (
	"io"
	"log/slog"
)

// Option customizes a lattice constructor.
type Option func(*config)

type config struct {
	logger *slog.Logger
}

func newConfig(opts ...Option) config {
	c := config{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// WithLogger routes construction messages to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("lattice: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}
