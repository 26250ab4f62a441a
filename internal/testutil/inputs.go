package testutil

import "math/rand"

// Linspace returns n evenly spaced float32 points covering [lo, hi].
func Linspace(lo, hi float64, n int) []float32 {
	if n <= 0 {
		return nil
	}
	out := make([]float32, n)
	if n == 1 {
		out[0] = float32(lo)
		return out
	}
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = float32(lo + step*float64(i))
	}
	return out
}

// DeterministicInputs returns n uniformly distributed points in [lo, hi)
// from a fixed seed, for reproducible randomized checks.
func DeterministicInputs(seed int64, lo, hi float64, n int) []float32 {
	out := make([]float32, n)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = float32(lo + rng.Float64()*(hi-lo))
	}
	return out
}
