package hilbertindex_test

import (
	"bytes"
	"log/slog"
	"math"
	"sync"
	"testing"

	"github.com/katalvlaran/manybody/hilbert"
	"github.com/katalvlaran/manybody/hilbertindex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestIndex_SpinHalfDigits pins the digit order: site 0 least significant.
func TestIndex_SpinHalfDigits(t *testing.T) {
	ix, err := hilbertindex.New(spinHalf(t, 3))
	require.NoError(t, err)
	assert.Equal(t, 8, ix.NStates())
	assert.Equal(t, 3, ix.Size())
	assert.Equal(t, 2, ix.LocalSize())
	assert.Equal(t, []float64{-1, 1}, ix.LocalStates())

	cases := map[int][]float64{
		0: {-1, -1, -1},
		1: {1, -1, -1},
		5: {1, -1, 1},
		7: {1, 1, 1},
	}
	for k, want := range cases {
		got, err := ix.NumberToState(k)
		require.NoError(t, err)
		assert.Equal(t, want, got, "k=%d", k)

		back, err := ix.StateToNumber(want)
		require.NoError(t, err)
		assert.Equal(t, k, back)
	}
}

// TestIndex_RoundTrip checks both directions of the bijection on several spaces.
func TestIndex_RoundTrip(t *testing.T) {
	spin1, err := hilbert.NewSpin(chain(t, 5), hilbert.SpinConfig{S: 1})
	require.NoError(t, err)
	boson, err := hilbert.NewBoson(chain(t, 4), hilbert.BosonConfig{Nmax: 3, Nbosons: ptr(5)})
	require.NoError(t, err)
	custom, err := hilbert.NewCustom(chain(t, 3), []float64{-0.5, 0.25, 2})
	require.NoError(t, err)

	spaces := map[string]hilbert.Space{
		"spin-1":       spin1,
		"boson":        boson,
		"custom":       custom,
		"spin-1/2 x 9": spinHalf(t, 9),
	}
	for name, h := range spaces {
		t.Run(name, func(t *testing.T) {
			ix, err := hilbertindex.New(h)
			require.NoError(t, err)
			want := int(math.Pow(float64(h.LocalSize()), float64(h.Size())))
			require.Equal(t, want, ix.NStates())

			buf := make([]float64, h.Size())
			for k := 0; k < ix.NStates(); k++ {
				require.NoError(t, ix.NumberToStateInto(k, buf))
				back, err := ix.StateToNumber(buf)
				require.NoError(t, err)
				require.Equal(t, k, back)
			}

			rng := newRand()
			for range 50 {
				require.NoError(t, h.RandomVals(buf, rng))
				k, err := ix.StateToNumber(buf)
				require.NoError(t, err)
				got, err := ix.NumberToState(k)
				require.NoError(t, err)
				require.Equal(t, buf, got)
			}
		})
	}
}

// TestIndex_Errors covers argument validation.
func TestIndex_Errors(t *testing.T) {
	ix, err := hilbertindex.New(spinHalf(t, 3))
	require.NoError(t, err)

	_, err = ix.NumberToState(-1)
	assert.ErrorIs(t, err, hilbertindex.ErrIndexOutOfRange)
	_, err = ix.NumberToState(8)
	assert.ErrorIs(t, err, hilbertindex.ErrIndexOutOfRange)
	assert.ErrorIs(t, ix.NumberToStateInto(0, make([]float64, 2)), hilbertindex.ErrStateLength)

	_, err = ix.StateToNumber([]float64{1, -1})
	assert.ErrorIs(t, err, hilbertindex.ErrStateLength)
	_, err = ix.StateToNumber([]float64{1, 0, -1})
	assert.ErrorIs(t, err, hilbertindex.ErrUnknownValue)
	_, err = ix.StateToNumber([]float64{1, 0.999999, -1})
	assert.ErrorIs(t, err, hilbertindex.ErrUnknownValue)
}

// TestNew_Rejects covers construction failures.
func TestNew_Rejects(t *testing.T) {
	ix, err := hilbertindex.New(nil)
	assert.ErrorIs(t, err, hilbertindex.ErrNilSpace)
	assert.Nil(t, ix)

	_, err = hilbertindex.New(continuous{spinHalf(t, 2)})
	assert.ErrorIs(t, err, hilbertindex.ErrNotDiscrete)

	_, err = hilbertindex.New(duplicated{spinHalf(t, 2)})
	assert.ErrorIs(t, err, hilbertindex.ErrDuplicateState)
}

// TestNew_ScaleGuard checks the MaxStates bound and its tightened variant.
func TestNew_ScaleGuard(t *testing.T) {
	_, err := hilbertindex.New(spinHalf(t, 31))
	assert.ErrorIs(t, err, hilbertindex.ErrTooLarge)

	ix, err := hilbertindex.New(spinHalf(t, 30))
	require.NoError(t, err)
	assert.Equal(t, 1<<30, ix.NStates())

	boson, err := hilbert.NewBoson(chain(t, 16), hilbert.BosonConfig{Nmax: 3})
	require.NoError(t, err)
	_, err = hilbertindex.New(boson)
	assert.ErrorIs(t, err, hilbertindex.ErrTooLarge)

	_, err = hilbertindex.New(spinHalf(t, 7), hilbertindex.WithMaxStates(100))
	assert.ErrorIs(t, err, hilbertindex.ErrTooLarge)
	_, err = hilbertindex.New(spinHalf(t, 6), hilbertindex.WithMaxStates(100))
	assert.NoError(t, err)
}

func TestEnumerable(t *testing.T) {
	tests := []struct {
		name                       string
		localSize, size, maxStates int
		want                       bool
	}{
		{"small", 2, 10, hilbertindex.MaxStates, true},
		{"2^30", 2, 30, hilbertindex.MaxStates, true},
		{"2^31", 2, 31, hilbertindex.MaxStates, false},
		{"4^16", 4, 16, hilbertindex.MaxStates, false},
		{"exact bound is excluded", 2, 3, 8, false},
		{"just below", 2, 3, 9, true},
		{"zero local size", 0, 3, 9, false},
		{"zero sites", 2, 0, 9, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, hilbertindex.Enumerable(tc.localSize, tc.size, tc.maxStates))
		})
	}
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { hilbertindex.WithMaxStates(0) })
	assert.Panics(t, func() { hilbertindex.WithMaxStates(hilbertindex.MaxStates + 1) })
	assert.Panics(t, func() { hilbertindex.WithLogger(nil) })
	assert.Panics(t, func() { hilbertindex.WithWorkers(0) })
}

func TestNew_Logs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	_, err := hilbertindex.New(spinHalf(t, 4), hilbertindex.WithLogger(logger))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "nstates=16")
}

// TestIndex_All checks ordering, buffer reuse and early exit.
func TestIndex_All(t *testing.T) {
	ix, err := hilbertindex.New(spinHalf(t, 4))
	require.NoError(t, err)

	next := 0
	for k, state := range ix.All() {
		require.Equal(t, next, k)
		want, err := ix.NumberToState(k)
		require.NoError(t, err)
		require.Equal(t, want, state)
		next++
	}
	assert.Equal(t, ix.NStates(), next)

	seen := 0
	for k := range ix.All() {
		if k == 2 {
			break
		}
		seen++
	}
	assert.Equal(t, 2, seen)
}

// TestIndex_ConcurrentReads decodes from several goroutines at once.
func TestIndex_ConcurrentReads(t *testing.T) {
	ix, err := hilbertindex.New(spinHalf(t, 10))
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make(chan error, 4)
	for w := range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			buf := make([]float64, ix.Size())
			for k := w; k < ix.NStates(); k += 4 {
				if err := ix.NumberToStateInto(k, buf); err != nil {
					errs <- err
					return
				}
				back, err := ix.StateToNumber(buf)
				if err != nil {
					errs <- err
					return
				}
				if back != k {
					errs <- assert.AnError
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatal(err)
	}
}
