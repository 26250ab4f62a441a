package fastmath

import (
	"math"

	"github.com/cwbudde/algo-fastmath/internal/bitcast"
)

// Log2 returns an approximation of log2(x) for positive finite x.
//
// Read as an integer and scaled by 2^-23, the bits of x are the biased
// exponent plus the mantissa fraction, a piecewise linear log2. A rational
// term in the normalized mantissa removes the curvature. The coefficients
// were fitted on the half mantissa in [0.5, 1). Subnormal x is scaled by
// 2^23 first so the exponent field is meaningful.
//
// The result for zero, negative or non-finite x is unspecified.
func Log2(x float32) float32 {
	const (
		bias = 124.22551499
		c1   = 1.498030302
		c2   = 1.72587999
		c3   = 0.3520887068
	)

	var shift float32
	i := bitcast.Float32ToBits(x)
	if i != 0 && i < 1<<bitcast.Float32MantissaBits {
		i = bitcast.Float32ToBits(x * (1 << bitcast.Float32MantissaBits))
		shift = bitcast.Float32MantissaBits
	}

	y := float32(i) * (1.0 / (1 << bitcast.Float32MantissaBits))
	m := bitcast.BitsToFloat32(bitcast.Mantissa32(i))
	h := 0.5 * m

	return y - bias - c1*h - c2/(c3+h) - shift
}

// Log2Float64 is the binary64 counterpart of Log2. Its bias constant is
// shifted by the difference between the two exponent biases; the accuracy
// is that of the same fit, not of float64. Subnormal x is scaled by 2^52.
func Log2Float64(x float64) float64 {
	const (
		bias = 1020.22551499
		c1   = 1.498030302
		c2   = 1.72587999
		c3   = 0.3520887068
	)

	var shift float64
	i := bitcast.Float64ToBits(x)
	if i != 0 && i < 1<<bitcast.Float64MantissaBits {
		i = bitcast.Float64ToBits(x * (1 << bitcast.Float64MantissaBits))
		shift = bitcast.Float64MantissaBits
	}

	y := float64(i) * (1.0 / (1 << bitcast.Float64MantissaBits))
	m := bitcast.BitsToFloat64(bitcast.Mantissa64(i))
	h := 0.5 * m

	return y - bias - c1*h - c2/(c3+h) - shift
}

// Log returns an approximation of ln(x) via Log2.
func Log(x float32) float32 {
	return math.Ln2 * Log2(x)
}
