package accuracy

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-fastmath/fastmath"
	"github.com/cwbudde/algo-fastmath/internal/testutil"
)

func identity(x float64) float64 { return x }

func TestSampleCurves(t *testing.T) {
	offset := func(x float32) float32 { return x + 0.25 }
	s, err := Sample(offset, identity, -1, 1, WithPoints(101))
	if err != nil {
		t.Fatalf("Sample: %v", err)
	}
	if len(s.X) != 101 || len(s.Got) != 101 || len(s.Want) != 101 || len(s.Err) != 101 {
		t.Fatalf("unexpected lengths %d/%d/%d/%d", len(s.X), len(s.Got), len(s.Want), len(s.Err))
	}
	if s.X[0] != -1 || s.X[100] != 1 {
		t.Fatalf("endpoints = %v, %v", s.X[0], s.X[100])
	}

	diff := make([]float64, len(s.Err))
	for i := range diff {
		diff[i] = s.Got[i] - s.Want[i]
	}
	testutil.RequireSliceNearlyEqual(t, s.Err, diff, 0)

	want := make([]float64, len(s.Err))
	for i := range want {
		want[i] = 0.25
	}
	d, err := testutil.MaxAbsDiff(s.Err, want)
	if err != nil {
		t.Fatalf("MaxAbsDiff: %v", err)
	}
	if d > 1e-6 {
		t.Fatalf("pointwise error deviates from the 0.25 offset by %v", d)
	}
}

func TestSurveyConstantOffset(t *testing.T) {
	offset := func(x float32) float32 { return x + 0.5 }
	res, err := Survey(offset, identity, -1, 1, WithPoints(2001))
	if err != nil {
		t.Fatalf("Survey: %v", err)
	}
	if res.Points != 2001 {
		t.Fatalf("Points = %d, want 2001", res.Points)
	}
	testutil.RequireNear(t, "MaxAbs", res.MaxAbs, 0.5, 1e-6)
	testutil.RequireNear(t, "Mean", res.Mean, 0.5, 1e-6)
	testutil.RequireNear(t, "RMS", res.RMS, 0.5, 1e-6)
}

func TestSurveyArgMax(t *testing.T) {
	linear := func(x float32) float32 { return x }
	cubic := func(x float64) float64 { return x - x*x*x }
	res, err := Survey(linear, cubic, -1, 1, WithPoints(201))
	if err != nil {
		t.Fatalf("Survey: %v", err)
	}
	testutil.RequireNear(t, "MaxAbs", res.MaxAbs, 1, 1e-12)
	if math.Abs(res.ArgMaxAbs) != 1 {
		t.Fatalf("ArgMaxAbs = %v, want ±1", res.ArgMaxAbs)
	}
	testutil.RequireNear(t, "Mean", res.Mean, 0, 1e-6)
}

func TestSurveyRelativeFloor(t *testing.T) {
	shifted := func(x float32) float32 { return x + 1.0/1024 }
	res, err := Survey(shifted, identity, -1, 1, WithPoints(1001), WithRelativeFloor(1))
	if err != nil {
		t.Fatalf("Survey: %v", err)
	}
	testutil.RequireNear(t, "MaxRel", res.MaxRel, 1.0/1024, 1e-7)

	res, err = Survey(shifted, identity, -1, 1, WithPoints(1001))
	if err != nil {
		t.Fatalf("Survey: %v", err)
	}
	if res.MaxRel < 1e6 {
		t.Fatalf("MaxRel with default floor = %v, want large near the zero of the reference", res.MaxRel)
	}
}

func TestSurveyKernels(t *testing.T) {
	res, err := Survey(fastmath.Sin, math.Sin, -10, 10, WithPoints(20001))
	if err != nil {
		t.Fatalf("Survey: %v", err)
	}
	if res.MaxAbs > 2e-6 {
		t.Fatalf("Sin MaxAbs = %v", res.MaxAbs)
	}

	res, err = Survey(fastmath.FastCos, math.Cos, -10, 10, WithPoints(20001))
	if err != nil {
		t.Fatalf("Survey: %v", err)
	}
	if res.MaxAbs < 5e-4 || res.MaxAbs > 2e-3 {
		t.Fatalf("FastCos MaxAbs = %v, want about 1.1e-3", res.MaxAbs)
	}
}

func TestSurveyInvalidInput(t *testing.T) {
	k := func(x float32) float32 { return x }
	for _, tc := range []struct {
		lo, hi float64
	}{
		{1, 1},
		{2, 1},
		{math.NaN(), 1},
		{0, math.Inf(1)},
	} {
		if _, err := Survey(k, identity, tc.lo, tc.hi); !errors.Is(err, ErrInvalidRange) {
			t.Fatalf("Survey(%v, %v) error = %v, want ErrInvalidRange", tc.lo, tc.hi, err)
		}
	}
	if _, err := Sample(k, identity, 0, 1, WithPoints(1)); !errors.Is(err, ErrTooFewPoints) {
		t.Fatalf("Sample with one point error = %v, want ErrTooFewPoints", err)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	if res := Summarize(Samples{}, 1); res != (Result{}) {
		t.Fatalf("Summarize(empty) = %+v", res)
	}
}
