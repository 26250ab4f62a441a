package fastmath

import (
	"math"

	"github.com/cwbudde/algo-fastmath/fastmath/registry"
	"github.com/meko-christian/algo-approx"
)

// Variant names used when registering kernels.
const (
	VariantQuadrant = "quadrant"
	VariantFastCos  = "fastcos"
	VariantFastSin  = "fastsin"
	VariantSegment  = "segment"
	VariantLegacy   = "legacy"
	VariantBitTrick = "bittrick"
	VariantPoly     = "poly"
	VariantBaseline = "algo-approx"
)

const (
	priorityCanonical = 10
	priorityVariant   = 0
	priorityBaseline  = -10
)

func init() {
	registerVariants(registry.Global)
}

func registerVariants(r *registry.Registry) {
	trig := [2]float64{-4 * math.Pi, 4 * math.Pi}

	r.Register(registry.Entry{Name: VariantQuadrant, Function: registry.FuncSin, Kernel: Sin, Priority: priorityCanonical, Domain: trig})
	r.Register(registry.Entry{Name: VariantFastSin, Function: registry.FuncSin, Kernel: FastSin, Priority: priorityVariant, Domain: trig})

	r.Register(registry.Entry{Name: VariantQuadrant, Function: registry.FuncCos, Kernel: Cos, Priority: priorityCanonical, Domain: trig})
	r.Register(registry.Entry{Name: VariantFastCos, Function: registry.FuncCos, Kernel: FastCos, Priority: priorityVariant, Domain: trig})

	atanDomain := [2]float64{-16, 16}
	r.Register(registry.Entry{Name: VariantSegment, Function: registry.FuncAtan, Kernel: Atan, Priority: priorityCanonical, Domain: atanDomain})
	r.Register(registry.Entry{Name: VariantLegacy, Function: registry.FuncAtan, Kernel: AtanLegacy, Priority: priorityVariant, Domain: atanDomain})

	expDomain := [2]float64{-20, 20}
	r.Register(registry.Entry{Name: VariantBitTrick, Function: registry.FuncExp2, Kernel: Exp2, Priority: priorityCanonical, Domain: expDomain})
	r.Register(registry.Entry{Name: VariantPoly, Function: registry.FuncExp2, Kernel: Exp2Poly, Priority: priorityVariant, Domain: expDomain})
	r.Register(registry.Entry{Name: VariantBaseline, Function: registry.FuncExp2, Kernel: baselineExp2, Priority: priorityBaseline, Domain: expDomain})

	logDomain := [2]float64{1.0 / 64, 64}
	r.Register(registry.Entry{Name: VariantBitTrick, Function: registry.FuncLog2, Kernel: Log2, Priority: priorityCanonical, Domain: logDomain})
	r.Register(registry.Entry{Name: VariantBaseline, Function: registry.FuncLog2, Kernel: baselineLog2, Priority: priorityBaseline, Domain: logDomain})

	sqrtDomain := [2]float64{1.0 / 64, 4096}
	r.Register(registry.Entry{Name: VariantBitTrick, Function: registry.FuncSqrt, Kernel: Sqrt, Priority: priorityCanonical, Domain: sqrtDomain})
	r.Register(registry.Entry{Name: VariantBaseline, Function: registry.FuncSqrt, Kernel: baselineSqrt, Priority: priorityBaseline, Domain: sqrtDomain})
}

// baselineExp2 computes 2^x through algo-approx's natural exponential,
// 2^x = e^(x*ln2).
func baselineExp2(x float32) float32 {
	return float32(approx.FastExp(float64(x) * math.Ln2))
}

// baselineLog2 computes log2(x) through algo-approx's natural logarithm,
// log2(x) = ln(x)/ln2.
func baselineLog2(x float32) float32 {
	return float32(approx.FastLog(float64(x)) / math.Ln2)
}

func baselineSqrt(x float32) float32 {
	return float32(approx.FastSqrt(float64(x)))
}
