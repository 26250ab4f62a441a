package fastmath

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-fastmath/fastmath/registry"
	"github.com/cwbudde/algo-fastmath/internal/testutil"
)

func TestGlobalRegistryCanonicalKernels(t *testing.T) {
	for _, tc := range []struct {
		fn   registry.Function
		name string
	}{
		{registry.FuncSin, VariantQuadrant},
		{registry.FuncCos, VariantQuadrant},
		{registry.FuncAtan, VariantSegment},
		{registry.FuncExp2, VariantBitTrick},
		{registry.FuncLog2, VariantBitTrick},
		{registry.FuncSqrt, VariantBitTrick},
	} {
		e := registry.Global.Lookup(tc.fn)
		if e == nil {
			t.Fatalf("no kernel registered for %v", tc.fn)
		}
		if e.Name != tc.name {
			t.Fatalf("canonical %v kernel = %q, want %q", tc.fn, e.Name, tc.name)
		}
	}
}

func TestRegisterVariants(t *testing.T) {
	r := &registry.Registry{}
	registerVariants(r)

	counts := map[registry.Function]int{}
	for _, e := range r.ListEntries() {
		counts[e.Function]++
		if e.Kernel == nil {
			t.Fatalf("%v/%s has nil kernel", e.Function, e.Name)
		}
		if !(e.Domain[0] < e.Domain[1]) {
			t.Fatalf("%v/%s has empty domain %v", e.Function, e.Name, e.Domain)
		}
	}
	want := map[registry.Function]int{
		registry.FuncSin:  2,
		registry.FuncCos:  2,
		registry.FuncAtan: 2,
		registry.FuncExp2: 3,
		registry.FuncLog2: 2,
		registry.FuncSqrt: 2,
	}
	for fn, n := range want {
		if counts[fn] != n {
			t.Fatalf("%v: %d variants, want %d", fn, counts[fn], n)
		}
	}
}

func TestRegisteredVariantsApproximate(t *testing.T) {
	refs := map[registry.Function]func(float64) float64{
		registry.FuncSin:  math.Sin,
		registry.FuncCos:  math.Cos,
		registry.FuncAtan: math.Atan,
	}
	for fn, ref := range refs {
		for _, e := range registry.Global.Variants(fn) {
			xs := testutil.Linspace(e.Domain[0], e.Domain[1], 4001)
			testutil.RequireKernelNear(t, testutil.Kernel(e.Kernel), ref, xs, 2e-3)
		}
	}
}

func TestBaselineVariants(t *testing.T) {
	exp := registry.Global.Variant(registry.FuncExp2, VariantBaseline)
	if exp == nil {
		t.Fatal("no algo-approx exp2 baseline registered")
	}
	testutil.RequireRelNear(t, "baseline exp2(3)", float64(exp.Kernel(3)), 8, 2e-2)

	lg := registry.Global.Variant(registry.FuncLog2, VariantBaseline)
	if lg == nil {
		t.Fatal("no algo-approx log2 baseline registered")
	}
	testutil.RequireNear(t, "baseline log2(8)", float64(lg.Kernel(8)), 3, 2e-2)

	sq := registry.Global.Variant(registry.FuncSqrt, VariantBaseline)
	if sq == nil {
		t.Fatal("no algo-approx sqrt baseline registered")
	}
	testutil.RequireRelNear(t, "baseline sqrt(2)", float64(sq.Kernel(2)), math.Sqrt2, 2e-2)
}
