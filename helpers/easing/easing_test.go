package easing_test

import (
	"errors"
	"math"
	"testing"

	"github.com/soypat/paramsurf/helpers/easing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEndpoints(t *testing.T) {
	const (
		b   = 5.0
		c   = 4.0
		d   = 2.0
		tol = 1e-9
	)
	names := easing.Names()
	require.Len(t, names, 31)
	for _, name := range names {
		fn, err := easing.Lookup(name)
		require.NoError(t, err)
		assert.InDelta(t, b, fn(0, b, c, d), tol, "%s(0)", name)
		assert.InDelta(t, b+c, fn(d, b, c, d), tol, "%s(d)", name)
		got := fn(d/3, b, c, d)
		assert.False(t, math.IsNaN(got), "%s(d/3) is NaN", name)
	}
}

func TestKnownValues(t *testing.T) {
	const tol = 1e-12
	for _, test := range []struct {
		fn   easing.Func
		t    float64
		want float64
	}{
		// Reference values for b=5, c=4, d=2.
		{fn: easing.Linear, t: 1, want: 7},
		{fn: easing.InQuad, t: 10, want: 5 + 4*25},
		{fn: easing.OutQuad, t: 1, want: 5 + 4*0.75},
		{fn: easing.InOutQuad, t: 0.5, want: 5 + 2*0.25},
		{fn: easing.InOutQuad, t: 1.5, want: 5 + 4*0.875},
		{fn: easing.InCubic, t: 1, want: 5.5},
		{fn: easing.OutCubic, t: 1, want: 5 + 4*0.875},
		{fn: easing.InOutSine, t: 1, want: 7},
		{fn: easing.InExpo, t: 1, want: 5 + 4*math.Pow(2, -5)},
		{fn: easing.OutBounce, t: 0.5, want: 5 + 4*7.5625*0.0625},
	} {
		got := test.fn(test.t, 5, 4, 2)
		if math.Abs(got-test.want) > tol {
			t.Errorf("t=%g: got %g, want %g", test.t, got, test.want)
		}
	}
}

func TestBackOvershoots(t *testing.T) {
	// InBack dips below the starting value before rising.
	assert.Less(t, easing.InBack(0.2, 0, 1, 1), 0.0)
	assert.Greater(t, easing.OutBack(0.8, 0, 1, 1), 1.0)
	assert.InDelta(t, 1.0, easing.InBackWith(0)(1, 0, 1, 1), 1e-12)
	assert.InDelta(t, easing.InCubic(0.5, 0, 1, 1), easing.InBackWith(0)(0.5, 0, 1, 1), 1e-12)
}

func TestLookup(t *testing.T) {
	fn, err := easing.Lookup("easingDefault")
	require.NoError(t, err)
	assert.Equal(t, easing.OutQuad(0.3, 1, 2, 1), fn(0.3, 1, 2, 1))
	_, err = easing.Lookup("easeSideways")
	assert.True(t, errors.Is(err, easing.ErrUnknown))
}

func TestLerp(t *testing.T) {
	assert.Equal(t, 2.0, easing.Lerp(2, 6, 0))
	assert.Equal(t, 6.0, easing.Lerp(2, 6, 1))
	assert.Equal(t, 4.0, easing.Lerp(2, 6, 0.5))
}
