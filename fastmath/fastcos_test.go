package fastmath

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-fastmath/internal/testutil"
)

func TestFastCosKnownValues(t *testing.T) {
	testutil.RequireNear(t, "FastCos(0)", float64(FastCos(0)), 1, 2e-3)
	testutil.RequireNear(t, "FastCos(π)", float64(FastCos(math.Pi)), -1, 2e-3)
	testutil.RequireNear(t, "FastCos(π/2)", float64(FastCos(math.Pi/2)), 0, 2e-3)
}

func TestFastCosAgainstReference(t *testing.T) {
	xs := testutil.Linspace(-20, 20, 40001)
	testutil.RequireKernelNear(t, FastCos, math.Cos, xs, 1.5e-3)
	testutil.RequireKernelNear(t, FastSin, math.Sin, xs, 1.5e-3)
}

func TestFastCosPeriodic(t *testing.T) {
	for _, x := range testutil.Linspace(-10, 10, 4001) {
		a := float64(FastCos(x))
		b := float64(FastCos(x + 2*math.Pi))
		if d := math.Abs(a - b); d > 3e-3 {
			t.Fatalf("x=%v: FastCos(x)=%v, FastCos(x+2π)=%v", x, a, b)
		}
	}
}

func TestFastCosEven(t *testing.T) {
	for _, x := range testutil.Linspace(0, 10, 1001) {
		testutil.RequireNear(t, "FastCos(-x)", float64(FastCos(-x)), float64(FastCos(x)), 1e-5)
	}
}
