package fastmath

import "math"

const (
	pi     = math.Pi
	halfPi = math.Pi / 2
)

// Atan returns an approximation of atan(x) for all real x.
//
// The argument is folded to |x|, then to 1/|x| when above one, then shifted
// by the tangent subtraction identity with k = tan(π/6) when above tan(π/12).
// What remains lies within ±tan(π/12) and goes through a rational minimax
// core. The reductions are undone in reverse order.
func Atan(x float32) float32 {
	const (
		piOver6 = math.Pi / 6
		tanPi6  = 0.577350269 // √3/3
		tanPi12 = 0.267949192 // 2-√3
		a       = 0.999999020228907
		b       = 0.257977658811405
		c       = 0.59120450521312
	)

	neg := x < 0
	if neg {
		x = -x
	}

	inv := x > 1
	if inv {
		x = 1 / x
	}

	high := x > tanPi12
	if high {
		x = (x - tanPi6) / (1 + tanPi6*x)
	}

	xx := x * x
	x = x * (a + b*xx) / (1 + c*xx)

	if high {
		x += piOver6
	}
	if inv {
		x = halfPi - x
	}
	if neg {
		x = -x
	}
	return x
}

// AtanLegacy is the earlier multi-threshold arctangent. Above √2-1 it uses
// atan(x) = π/4 - atan((1-x)/(1+x)) and evaluates an odd degree-9
// polynomial; it is about 2e-4 less accurate than Atan and slower.
func AtanLegacy(x float32) float32 {
	neg := x < 0
	if neg {
		x = -x
	}

	var r float32
	if x > 1 {
		r = halfPi - atanOctant(1/x)
	} else {
		r = atanOctant(x)
	}

	if neg {
		return -r
	}
	return r
}

// atanOctant handles x in [0, 1].
func atanOctant(x float32) float32 {
	const (
		piOver4    = math.Pi / 4
		root2Minus = math.Sqrt2 - 1
	)
	if x > root2Minus {
		return piOver4 - atanPoly((1-x)/(1+x))
	}
	return atanPoly(x)
}

// atanPoly is valid for |x| <= √2-1.
func atanPoly(x float32) float32 {
	const (
		c3 = -0.333358505
		c5 = 0.19639035
		c7 = -0.210519684
		c9 = -0.0198107368
	)
	xx := x * x
	return x + x*xx*(c3+xx*(c5+xx*(c7+xx*c9)))
}

// Atan2 returns the angle of the point (x, y) in (-π, π], built on Atan.
// When x is zero the result is ±π/2 by the sign of y (π/2 for the origin).
func Atan2(y, x float32) float32 {
	if x == 0 {
		if y < 0 {
			return -halfPi
		}
		return halfPi
	}

	a := Atan(y / x)
	if x < 0 {
		if y < 0 {
			return a - pi
		}
		return a + pi
	}
	return a
}
