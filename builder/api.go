// SPDX-License-Identifier: MIT
// Package: manybody/builder
//
// api.go — BuildGraph and the Constructor contract.
//
// Constructors validate parameters before touching the graph, emit vertices
// and bonds in a documented order, and return sentinel errors, never panics.

package builder

import (
	"fmt"

	"github.com/katalvlaran/manybody/core"
)

// Constructor applies a deterministic mutation to g.
type Constructor func(g *core.Graph) error

// BuildGraph creates a core.Graph with gopts and applies cons in order.
// The first constructor error is returned wrapped as "BuildGraph: %w".
func BuildGraph(gopts []core.GraphOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}
