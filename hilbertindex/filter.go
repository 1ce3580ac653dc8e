// SPDX-License-Identifier: MIT

package hilbertindex

import (
	"context"
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
	"golang.org/x/sync/errgroup"
)

const (
	methodFilter = "Filter"

	// shardSize is the number of indices one worker scans per task.
	shardSize = 1 << 14
	// cancelMask sets how often a shard polls its context.
	cancelMask = 1<<10 - 1
)

// Filter returns the set of indices whose configuration satisfies keep.
// keep must not retain or modify its argument and must be safe for
// concurrent calls. The scan stops early when ctx is cancelled.
func (ix *Index) Filter(
	ctx context.Context,
	keep func(state []float64) bool,
	opts ...FilterOption,
) (*roaring.Bitmap, error) {
	if keep == nil {
		return nil, fmt.Errorf("%s: %w", methodFilter, ErrNilPredicate)
	}
	cfg := newFilterConfig(opts...)

	nshards := (ix.nstates + shardSize - 1) / shardSize
	parts := make([]*roaring.Bitmap, nshards)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.workers)
	for s := range nshards {
		lo := s * shardSize
		hi := min(lo+shardSize, ix.nstates)
		g.Go(func() error {
			buf := make([]float64, ix.size)
			part := roaring.New()
			for k := lo; k < hi; k++ {
				if (k-lo)&cancelMask == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
				ix.decode(k, buf)
				if keep(buf) {
					part.Add(uint32(k))
				}
			}
			parts[s] = part

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodFilter, err)
	}

	return roaring.FastOr(parts...), nil
}

// SumEquals returns a predicate accepting configurations whose values sum
// to target: 2·TotalSz for spins, Nbosons for bosons.
func SumEquals(target float64) func(state []float64) bool {
	return func(state []float64) bool {
		var s float64
		for _, v := range state {
			s += v
		}

		return s == target
	}
}
