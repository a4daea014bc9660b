package easing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypesCount(t *testing.T) {
	types := Types()
	assert.Len(t, types, 28)

	seen := make(map[Type]bool)
	for _, ty := range types {
		assert.False(t, seen[ty], "duplicate easing %q", ty)
		seen[ty] = true
	}
}

func TestLookupEndpoints(t *testing.T) {
	for _, ty := range Types() {
		t.Run(string(ty), func(t *testing.T) {
			fn, ok := Lookup(ty)
			require.True(t, ok)
			require.NotNil(t, fn)

			assert.InDelta(t, 0.0, fn(0), 1e-6, "f(0)")
			assert.InDelta(t, 1.0, fn(1), 1e-6, "f(1)")
		})
	}
}

func TestLookupUnknown(t *testing.T) {
	fn, ok := Lookup("bogus")
	assert.False(t, ok)
	assert.Nil(t, fn)
}

func TestNoneIsLinear(t *testing.T) {
	fn, ok := Lookup(None)
	require.True(t, ok)

	for _, x := range []float64{-0.5, 0, 0.25, 0.5, 0.75, 1, 1.5} {
		assert.InDelta(t, x, fn(x), 1e-12)
	}
}

func TestQuadraticFamily(t *testing.T) {
	in, _ := Lookup(In)
	out, _ := Lookup(Out)
	inOut, _ := Lookup(InOut)

	assert.InDelta(t, 0.25, in(0.5), 1e-12)
	assert.InDelta(t, 0.75, out(0.5), 1e-12)
	assert.InDelta(t, 0.5, inOut(0.5), 1e-12)
}

func TestBackOvershoots(t *testing.T) {
	fn, _ := Lookup(BackIn)
	assert.Less(t, fn(0.2), 0.0, "back-in dips below zero early on")
}

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		valid bool
	}{
		{"none", true},
		{"in-out", true},
		{"bounce-in-out", true},
		{"exponential-out", true},
		{"", false},
		{"linear", false},
		{"IN", false},
		{"elastic-in", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ty, ok := Parse(tt.name)
			assert.Equal(t, tt.valid, ok)
			assert.Equal(t, tt.name, ty.String())
		})
	}
}
