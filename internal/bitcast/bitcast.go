// Package bitcast reinterprets IEEE-754 floating point storage as integers of
// the same width and back, without numeric conversion.
//
// The conversions are total: NaN and Inf payloads pass through unchanged.
// Mixing widths is a compile-time error because each direction is typed.
package bitcast

import "math"

// IEEE-754 binary32 field layout.
const (
	Float32MantissaBits = 23
	Float32MantissaMask = 1<<Float32MantissaBits - 1
	Float32ExponentBias = 127
	// Float32One is the bit pattern of 1.0: zero mantissa, exponent field equal to the bias.
	Float32One uint32 = Float32ExponentBias << Float32MantissaBits
)

// IEEE-754 binary64 field layout.
const (
	Float64MantissaBits = 52
	Float64MantissaMask = 1<<Float64MantissaBits - 1
	Float64ExponentBias = 1023
	// Float64One is the bit pattern of 1.0.
	Float64One uint64 = Float64ExponentBias << Float64MantissaBits
)

// Float32ToBits returns the storage of f as a uint32.
func Float32ToBits(f float32) uint32 {
	return math.Float32bits(f)
}

// BitsToFloat32 returns the float32 whose storage is b.
func BitsToFloat32(b uint32) float32 {
	return math.Float32frombits(b)
}

// Float64ToBits returns the storage of f as a uint64.
func Float64ToBits(f float64) uint64 {
	return math.Float64bits(f)
}

// BitsToFloat64 returns the float64 whose storage is b.
func BitsToFloat64(b uint64) float64 {
	return math.Float64frombits(b)
}

// Mantissa32 returns b with its exponent field forced to the bias, i.e. the
// significand of b scaled into [1, 2). The sign bit is cleared.
func Mantissa32(b uint32) uint32 {
	return b&Float32MantissaMask | Float32One
}

// Mantissa64 is the binary64 counterpart of Mantissa32.
func Mantissa64(b uint64) uint64 {
	return b&Float64MantissaMask | Float64One
}
