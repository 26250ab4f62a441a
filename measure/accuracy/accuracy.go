package accuracy

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

const (
	defaultPoints        = 1000
	defaultRelativeFloor = 1e-12
)

var (
	// ErrInvalidRange is returned when the sampling interval is empty or not finite.
	ErrInvalidRange = errors.New("accuracy: invalid sampling range")

	// ErrTooFewPoints is returned when fewer than two sample points are requested.
	ErrTooFewPoints = errors.New("accuracy: too few sample points")
)

// Kernel is the scalar approximation under test.
type Kernel func(x float32) float32

// Reference is the function a kernel is compared against.
type Reference func(x float64) float64

type config struct {
	points   int
	relFloor float64
}

// Option configures Sample and Survey.
type Option func(*config)

// WithPoints sets the number of evenly spaced sample points (default 1000).
func WithPoints(n int) Option {
	return func(c *config) {
		c.points = n
	}
}

// WithRelativeFloor sets the smallest |reference| used as the denominator
// of relative errors, so zeros of the reference do not divide by zero.
func WithRelativeFloor(floor float64) Option {
	return func(c *config) {
		c.relFloor = floor
	}
}

func applyOptions(opts []Option) config {
	cfg := config{points: defaultPoints, relFloor: defaultRelativeFloor}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Samples holds the sampled curves. Err[i] is Got[i] - Want[i].
type Samples struct {
	X    []float64
	Got  []float64
	Want []float64
	Err  []float64
}

// Result summarizes the error of a kernel over an interval.
type Result struct {
	Points    int
	MaxAbs    float64
	ArgMaxAbs float64 // input where MaxAbs occurs
	MaxRel    float64
	ArgMaxRel float64
	Mean      float64 // signed mean error (bias)
	RMS       float64
}

// Sample evaluates k and ref at evenly spaced points covering [lo, hi].
// Inputs are rounded to float32 before both evaluations so the reference
// sees exactly the value the kernel saw.
func Sample(k Kernel, ref Reference, lo, hi float64, opts ...Option) (Samples, error) {
	cfg := applyOptions(opts)
	if err := validate(lo, hi, cfg.points); err != nil {
		return Samples{}, err
	}

	n := cfg.points
	s := Samples{
		X:    make([]float64, n),
		Got:  make([]float64, n),
		Want: make([]float64, n),
		Err:  make([]float64, n),
	}

	step := (hi - lo) / float64(n-1)
	for i := 0; i < n; i++ {
		x := float32(lo + step*float64(i))
		s.X[i] = float64(x)
		s.Got[i] = float64(k(x))
		s.Want[i] = ref(float64(x))
	}

	vecmath.ScaleBlock(s.Err, s.Want, -1)
	vecmath.AddBlockInPlace(s.Err, s.Got)
	return s, nil
}

// Survey samples k against ref over [lo, hi] and summarizes the error.
func Survey(k Kernel, ref Reference, lo, hi float64, opts ...Option) (Result, error) {
	s, err := Sample(k, ref, lo, hi, opts...)
	if err != nil {
		return Result{}, err
	}
	return Summarize(s, applyOptions(opts).relFloor), nil
}

// Summarize reduces sampled curves to error statistics. Relative errors use
// max(|Want[i]|, relFloor) as the denominator.
func Summarize(s Samples, relFloor float64) Result {
	n := len(s.Err)
	res := Result{Points: n}
	if n == 0 {
		return res
	}

	sq := make([]float64, n)
	vecmath.MulBlock(sq, s.Err, s.Err)

	var sum, sumSq float64
	for i, e := range s.Err {
		sum += e
		sumSq += sq[i]

		ae := math.Abs(e)
		if ae > res.MaxAbs {
			res.MaxAbs = ae
			res.ArgMaxAbs = s.X[i]
		}

		den := math.Max(math.Abs(s.Want[i]), relFloor)
		if rel := ae / den; rel > res.MaxRel {
			res.MaxRel = rel
			res.ArgMaxRel = s.X[i]
		}
	}

	res.Mean = sum / float64(n)
	res.RMS = math.Sqrt(sumSq / float64(n))
	return res
}

func validate(lo, hi float64, points int) error {
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) || !(lo < hi) {
		return fmt.Errorf("%w: [%v, %v]", ErrInvalidRange, lo, hi)
	}
	if points < 2 {
		return fmt.Errorf("%w: %d", ErrTooFewPoints, points)
	}
	return nil
}
