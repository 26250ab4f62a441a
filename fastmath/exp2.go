package fastmath

import (
	"math"

	"github.com/cwbudde/algo-fastmath/internal/bitcast"
)

// Exp2 returns an approximation of 2^x.
//
// The result is assembled directly in the IEEE-754 binary32 layout: the
// scaled sum below is the biased exponent in the integer bits and the
// mantissa in the fractional bits, with a rational term correcting the
// mantissa's deviation from a straight line. Inputs below -126 are clamped
// so the exponent field never underflows, and inputs of 128 or more return
// +Inf because 2^x no longer fits in a float32.
func Exp2(x float32) float32 {
	const (
		minExponent = -126
		maxExponent = 128
		c0          = 121.2740575
		c1          = 27.7280233
		c2          = 4.84252568
		c3          = 1.49012907
	)

	if x >= maxExponent {
		return float32(math.Inf(1))
	}

	var offset float32
	if x < 0 {
		offset = 1
	}

	clipped := x
	if clipped < minExponent {
		clipped = minExponent
	}

	w := int32(clipped)
	z := clipped - float32(w) + offset
	v := (1 << bitcast.Float32MantissaBits) * (clipped + c0 + c1/(c2-z) - c3*z)

	return bitcast.BitsToFloat32(uint32(v + 0.5))
}

// Exp2Poly is the polynomial 2^x kernel that predates Exp2.
//
// x*4 is split into its truncated integer part n and the remainder f, with
// |f| < 1/4. 2^f comes from a degree-4 polynomial and 2^(n/4) from Power.
func Exp2Poly(x float32) float32 {
	const (
		rootBase = 1.18920711500272106671749997056047592 // 2^(1/4)
		c1       = math.Ln2
		c2       = math.Ln2 * math.Ln2 / 2
		c3       = math.Ln2 * math.Ln2 * math.Ln2 / 6
		c4       = math.Ln2 * math.Ln2 * math.Ln2 * math.Ln2 / 24
	)

	n := int(x * 4)
	f := x - float32(n)*0.25
	p := 1 + f*(c1+f*(c2+f*(c3+f*c4)))

	return float32(float64(p) * Power(rootBase, n))
}

// Exp returns an approximation of e^x via Exp2.
func Exp(x float32) float32 {
	return Exp2(x * math.Log2E)
}

// Pow returns an approximation of x^y for positive x via Exp2 and Log2.
func Pow(x, y float32) float32 {
	return Exp2(y * Log2(x))
}
