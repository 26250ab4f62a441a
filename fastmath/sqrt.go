package fastmath

import "github.com/cwbudde/algo-fastmath/internal/bitcast"

// Sqrt returns an approximation of the square root of x for positive finite x.
//
// Halving the bits of x halves its exponent, and adding half the bits of 1.0
// restores the bias, which gives an estimate within a few percent. One
// Newton step brings the relative error below 2e-3. Sqrt(0) is a tiny
// positive number rather than 0.
func Sqrt(x float32) float32 {
	a := bitcast.BitsToFloat32(bitcast.Float32ToBits(x)>>1 + bitcast.Float32One>>1)
	return (a*a + x) / (2 * a)
}
