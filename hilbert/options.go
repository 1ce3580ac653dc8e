// SPDX-License-Identifier: MIT

package hilbert

import (
	"io"
	"log/slog"
)

// Option customizes a Space constructor.
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

// WithLogger routes construction and constraint messages (Debug level) to l.
// Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("hilbert: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}
