package fastmath

// Power returns base^exponent by square-and-multiply, using O(log |exponent|)
// multiplications. Negative exponents return the reciprocal of
// base^|exponent|. Power(b, 0) is 1 for every b.
func Power(base float64, exponent int) float64 {
	p := exponent
	if p < 0 {
		p = -p
	}

	result := 1.0
	factor := base
	for p != 0 {
		if p&1 != 0 {
			result *= factor
		}
		factor *= factor
		p >>= 1
	}

	if exponent < 0 {
		return 1 / result
	}
	return result
}
