package hilbert_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/manybody/hilbert"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLocalSpace_Validation(t *testing.T) {
	cases := []struct {
		name   string
		values []float64
	}{
		{"empty", nil},
		{"NaN", []float64{0, math.NaN()}},
		{"Inf", []float64{math.Inf(-1), 0}},
		{"decreasing", []float64{1, 0}},
		{"duplicate", []float64{0, 1, 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := hilbert.NewLocalSpace(tc.values...)
			assert.ErrorIs(t, err, hilbert.ErrInvalidInput)
		})
	}
}

func TestNewLocalSpace_CopiesInput(t *testing.T) {
	in := []float64{-1, 0.5, 2}
	l, err := hilbert.NewLocalSpace(in...)
	require.NoError(t, err)

	in[0] = 100
	assert.Equal(t, []float64{-1, 0.5, 2}, l.States())

	out := l.States()
	out[1] = 100
	assert.Equal(t, 0.5, l.At(1))
	assert.Equal(t, -1.0, l.Min())
	assert.Equal(t, 2.0, l.Max())
}

func TestSpinLocalSpace(t *testing.T) {
	cases := []struct {
		s    float64
		want []float64
	}{
		{0.5, []float64{-1, 1}},
		{1, []float64{-2, 0, 2}},
		{1.5, []float64{-3, -1, 1, 3}},
		{2, []float64{-4, -2, 0, 2, 4}},
	}
	for _, tc := range cases {
		l, err := hilbert.SpinLocalSpace(tc.s)
		require.NoError(t, err, "S=%v", tc.s)
		assert.Equal(t, tc.want, l.States(), "S=%v", tc.s)
		assert.Equal(t, int(math.Floor(2*tc.s))+1, l.Size(), "S=%v", tc.s)
	}

	for _, bad := range []float64{0, -0.5, 0.3, 1.25, math.NaN(), math.Inf(1)} {
		_, err := hilbert.SpinLocalSpace(bad)
		assert.ErrorIs(t, err, hilbert.ErrInvalidInput, "S=%v", bad)
	}
}

func TestBosonLocalSpace(t *testing.T) {
	l, err := hilbert.BosonLocalSpace(3)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 2, 3}, l.States())

	for _, bad := range []int{0, -1} {
		_, err := hilbert.BosonLocalSpace(bad)
		assert.ErrorIs(t, err, hilbert.ErrInvalidInput, "Nmax=%d", bad)
	}
}

func TestLocalSpace_IndexOfIsExact(t *testing.T) {
	l, err := hilbert.SpinLocalSpace(1.5)
	require.NoError(t, err)

	i, ok := l.IndexOf(1)
	assert.True(t, ok)
	assert.Equal(t, 2, i)

	_, ok = l.IndexOf(0.999999)
	assert.False(t, ok, "nearest match must not be accepted")
	_, ok = l.IndexOf(5)
	assert.False(t, ok)
	assert.True(t, l.Contains(-3))
	assert.False(t, l.Contains(0))
}
