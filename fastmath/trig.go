package fastmath

import "math"

// reduce folds x onto [-π/4, π/4] and reports which multiple of π/2 was
// removed, modulo 4.
//
// The subtraction runs in float64 against π/2 split in three parts. Each
// part has few enough significant bits that n times it is exact for
// |n| < 2^29, so the residual keeps float32 accuracy for |x| up to about
// 8e8. Beyond that the quadrant is still right but the residual degrades.
func reduce(x float32) (residual float32, quadrant int) {
	const (
		twoOverPi = 0.636619772367581343075535053490057448
		piOver2A  = 2 * 7.85398125648498535156e-1
		piOver2B  = 2 * 3.77489470793079817668e-8
		piOver2C  = 2 * 2.69515142907905952645e-15
	)

	z := float64(x)
	n := math.RoundToEven(z * twoOverPi)
	residual = float32(((z - n*piOver2A) - n*piOver2B) - n*piOver2C)
	return residual, int(int64(n) & 3)
}

// sinp approximates sin(x) on [-π/4, π/4] only.
func sinp(x float32) float32 {
	const (
		c1 = 0.999994990
		c3 = -0.166601570
		c5 = 0.00812149339
	)
	xx := x * x
	return x * (c1 + xx*(c3+xx*c5))
}

// cosp approximates cos(x) on [-π/4, π/4] only.
func cosp(x float32) float32 {
	const (
		c2 = -0.499998566
		c4 = 0.0416550209
		c6 = -0.00135858439
	)
	xx := x * x
	return 1 + xx*(c2+xx*(c4+xx*c6))
}

// Sin returns an approximation of sin(x).
func Sin(x float32) float32 {
	r, q := reduce(x)
	switch q {
	case 1:
		return cosp(r)
	case 2:
		return -sinp(r)
	case 3:
		return -cosp(r)
	default:
		return sinp(r)
	}
}

// Cos returns an approximation of cos(x).
func Cos(x float32) float32 {
	r, q := reduce(x)
	switch q {
	case 1:
		return -sinp(r)
	case 2:
		return -cosp(r)
	case 3:
		return sinp(r)
	default:
		return cosp(r)
	}
}

// Sincos returns Sin(x) and Cos(x) from a single range reduction.
func Sincos(x float32) (sin, cos float32) {
	r, q := reduce(x)
	s, c := sinp(r), cosp(r)
	switch q {
	case 1:
		return c, -s
	case 2:
		return -s, -c
	case 3:
		return -c, s
	default:
		return s, c
	}
}

// Tan returns Sin(x)/Cos(x). Near odd multiples of π/2 the result is large
// and inaccurate, as is the quotient of the two approximations.
func Tan(x float32) float32 {
	s, c := Sincos(x)
	return s / c
}
