// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"strconv"
)

// SiteID returns the vertex ID of site i.
func SiteID(i int) string { return strconv.Itoa(i) }

// SiteIndex parses a vertex ID produced by SiteID.
func SiteIndex(id string) (int, error) {
	i, err := strconv.Atoi(id)
	if err != nil || i < 0 {
		return 0, fmt.Errorf("SiteIndex: %q: %w", id, ErrBadSiteID)
	}

	return i, nil
}
