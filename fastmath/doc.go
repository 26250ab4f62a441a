// Package fastmath provides fast, branch-light approximations of common
// transcendental functions on float32.
//
// These approximations trade accuracy for speed and are meant as drop-in
// substitutes for the math package in hot loops where a few ulps (or, for
// FastCos, about 1e-3 absolute) of error are acceptable. No kernel checks
// its preconditions or reports its own error.
//
// # Accuracy Characteristics
//
// Sin, Cos: <1e-6 absolute error for |x| up to about 8e8
//
// FastCos: ~1.1e-3 absolute error, no quadrant table
//
// Atan: <1e-6 absolute error for all finite x
//
// Exp2: <1e-4 relative error for x ∈ [-126, 128), +Inf above
//
// Log2: <2e-4 absolute error for positive finite x, subnormals included
//
// Sqrt: <2e-3 relative error for positive finite x
//
// # Variants
//
// Older algorithms (AtanLegacy, Exp2Poly) are kept as named alternates and
// registered with the registry subpackage together with the canonical
// kernels, so callers can compare them behind one signature.
package fastmath
