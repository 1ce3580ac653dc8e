// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/manybody/core"
)

const methodSites = "Sites"

// Sites returns a Constructor adding vertices "0".."n-1" in ascending order.
// Requires n ≥ 1.
func Sites(n int) Constructor {
	return func(g *core.Graph) error {
		if n < 1 {
			return fmt.Errorf("%s: n=%d: %w", methodSites, n, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			if err := g.AddVertex(SiteID(i)); err != nil {
				return fmt.Errorf("%s: AddVertex(%d): %w", methodSites, i, err)
			}
		}

		return nil
	}
}
