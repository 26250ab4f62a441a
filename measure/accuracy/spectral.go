package accuracy

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// ErrInvalidTone is returned when the FFT size or cycle count cannot render
// a tone that lands on a single bin.
var ErrInvalidTone = errors.New("accuracy: invalid tone parameters")

// SpuriousLevel renders exactly cycles periods of the 2π-periodic kernel k
// into size samples, transforms them and returns the strongest bin other
// than the fundamental, in dB relative to the fundamental. A perfect
// sinusoid returns a very large negative value; approximation error shows
// up as harmonics.
//
// size must be a power of two and 0 < cycles < size/2.
func SpuriousLevel(k Kernel, size, cycles int) (float64, error) {
	if size < 8 || size&(size-1) != 0 {
		return 0, fmt.Errorf("%w: size %d is not a power of two >= 8", ErrInvalidTone, size)
	}
	if cycles <= 0 || cycles >= size/2 {
		return 0, fmt.Errorf("%w: cycles %d outside (0, %d)", ErrInvalidTone, cycles, size/2)
	}

	in := make([]complex128, size)
	step := 2 * math.Pi * float64(cycles) / float64(size)
	for i := range in {
		in[i] = complex(float64(k(float32(step*float64(i)))), 0)
	}

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return 0, fmt.Errorf("NewPlan64: %w", err)
	}

	out := make([]complex128, size)
	if err := plan.Forward(out, in); err != nil {
		return 0, fmt.Errorf("Forward: %w", err)
	}

	var fundamental, spurious float64
	for bin := 0; bin <= size/2; bin++ {
		v := out[bin]
		p := real(v)*real(v) + imag(v)*imag(v)
		if bin == cycles {
			fundamental = p
			continue
		}
		if p > spurious {
			spurious = p
		}
	}

	if fundamental == 0 {
		return 0, fmt.Errorf("%w: no energy at the fundamental", ErrInvalidTone)
	}
	if spurious == 0 {
		return math.Inf(-1), nil
	}
	return 10 * math.Log10(spurious/fundamental), nil
}
