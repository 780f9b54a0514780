package cpxnum_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lattice-substrate/cpx-text/cpxnum"
)

func TestComplex128RoundTrip(t *testing.T) {
	z := cpxnum.New(1.25, -3.5)
	assert.Equal(t, complex(1.25, -3.5), z.Complex128())
	assert.Equal(t, z, cpxnum.FromComplex128(z.Complex128()))
}

func TestPredicates(t *testing.T) {
	cases := []struct {
		name    string
		z       cpxnum.Complex
		wantNaN bool
		wantInf bool
	}{
		{"finite", cpxnum.New(1, 2), false, false},
		{"nan_real", cpxnum.New(math.NaN(), 2), true, false},
		{"nan_imag", cpxnum.New(1, math.NaN()), true, false},
		{"inf_real", cpxnum.New(math.Inf(1), 2), false, true},
		{"inf_imag", cpxnum.New(1, math.Inf(-1)), false, true},
		{"nan_beats_inf", cpxnum.New(math.NaN(), math.Inf(1)), true, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.wantNaN, tc.z.IsNaN(), "IsNaN")
			assert.Equal(t, tc.wantInf, tc.z.IsInf(), "IsInf")
		})
	}
}
