// Package cpxnum defines the complex value exchanged with the text codec.
//
// A Complex is an immutable (real, imaginary) pair of IEEE 754 doubles.
// NaN and the infinities are valid component values; the type imposes no
// other invariants and provides no arithmetic. Callers doing math are
// expected to live in the built-in complex128 and cross into this type at
// the text boundary only.
package cpxnum

import "math"

// Complex is an ordered pair of float64 components.
type Complex struct {
	Real float64
	Imag float64
}

// New returns the complex value with the given real and imaginary parts.
func New(re, im float64) Complex {
	return Complex{Real: re, Imag: im}
}

// FromComplex128 converts a built-in complex128.
func FromComplex128(z complex128) Complex {
	return Complex{Real: real(z), Imag: imag(z)}
}

// Complex128 converts to the built-in complex128.
func (z Complex) Complex128() complex128 {
	return complex(z.Real, z.Imag)
}

// IsNaN reports whether either component is NaN.
func (z Complex) IsNaN() bool {
	return math.IsNaN(z.Real) || math.IsNaN(z.Imag)
}

// IsInf reports whether either component is infinite and neither is NaN.
func (z Complex) IsInf() bool {
	return !z.IsNaN() && (math.IsInf(z.Real, 0) || math.IsInf(z.Imag, 0))
}
