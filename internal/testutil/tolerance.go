package testutil

import (
	"fmt"
	"math"
	"testing"
)

// Kernel mirrors the scalar kernel signature so helpers can take fastmath
// functions directly.
type Kernel func(float32) float32

// RequireNear fails t if got and want differ by more than eps (absolute).
func RequireNear(t *testing.T, label string, got, want, eps float64) {
	t.Helper()
	if diff := math.Abs(got - want); !(diff <= eps) {
		t.Fatalf("%s: got %v, want %v (diff %v > eps %v)", label, got, want, diff, eps)
	}
}

// RequireRelNear fails t if got and want differ by more than eps relative to |want|.
func RequireRelNear(t *testing.T, label string, got, want, eps float64) {
	t.Helper()
	if rel := math.Abs(got-want) / math.Abs(want); !(rel <= eps) {
		t.Fatalf("%s: got %v, want %v (rel %v > eps %v)", label, got, want, rel, eps)
	}
}

// RequireKernelNear evaluates k at every x in xs and fails t at the first
// point where it differs from ref by more than eps (absolute).
func RequireKernelNear(t *testing.T, k Kernel, ref func(float64) float64, xs []float32, eps float64) {
	t.Helper()
	for _, x := range xs {
		got := float64(k(x))
		want := ref(float64(x))
		if diff := math.Abs(got - want); !(diff <= eps) {
			t.Fatalf("x=%v: got %v, want %v (diff %v > eps %v)", x, got, want, diff, eps)
		}
	}
}

// RequireKernelRelNear is RequireKernelNear with a tolerance relative to |ref(x)|.
func RequireKernelRelNear(t *testing.T, k Kernel, ref func(float64) float64, xs []float32, eps float64) {
	t.Helper()
	for _, x := range xs {
		got := float64(k(x))
		want := ref(float64(x))
		if rel := math.Abs(got-want) / math.Abs(want); !(rel <= eps) {
			t.Fatalf("x=%v: got %v, want %v (rel %v > eps %v)", x, got, want, rel, eps)
		}
	}
}

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// MaxAbsDiff returns the maximum absolute difference between two slices.
// Returns an error if the slices differ in length.
func MaxAbsDiff(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		d := math.Abs(a[i] - b[i])
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}
