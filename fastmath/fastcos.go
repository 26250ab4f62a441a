package fastmath

import (
	"math"

	"github.com/cwbudde/algo-fastmath/internal/bitcast"
)

// FastCos is a cheaper, lower-accuracy cosine (about 1.1e-3 absolute error).
//
// The input is scaled to turns and wrapped into [-0.5, 0.5) around the
// quarter-turn offset, a parabola is fitted through the wrapped value and
// one further quadratic term refines it. There is no quadrant table.
func FastCos(x float32) float32 {
	const (
		invTwoPi = 1 / (2 * math.Pi)
		refine   = 0.225
	)

	x *= invTwoPi
	x -= 0.25 + float32(math.Floor(float64(x+0.25)))
	x *= 16 * (abs32(x) - 0.5)
	x += refine * x * (abs32(x) - 1)
	return x
}

// FastSin is FastCos shifted by a quarter period.
func FastSin(x float32) float32 {
	return FastCos(x - math.Pi/2)
}

func abs32(x float32) float32 {
	return bitcast.BitsToFloat32(bitcast.Float32ToBits(x) &^ (1 << 31))
}
