// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/manybody/core"
)

const methodBonds = "Bonds"

// Bond joins sites I and J with a color.
type Bond struct {
	I, J  int
	Color int
}

// Bonds returns a Constructor adding every bond in order. Endpoints are
// created as needed; loops and duplicates follow the graph's policy.
func Bonds(bonds []Bond) Constructor {
	return func(g *core.Graph) error {
		for _, b := range bonds {
			if b.I < 0 || b.J < 0 {
				return fmt.Errorf("%s: bond (%d,%d): %w", methodBonds, b.I, b.J, ErrBadBond)
			}
		}
		for _, b := range bonds {
			if _, err := g.AddEdge(SiteID(b.I), SiteID(b.J), core.WithEdgeColor(b.Color)); err != nil {
				return fmt.Errorf("%s: bond (%d,%d): %w", methodBonds, b.I, b.J, err)
			}
		}

		return nil
	}
}
