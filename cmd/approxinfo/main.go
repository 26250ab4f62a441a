// Command approxinfo prints the measured error of the fastmath kernels.
//
// Usage:
//
//	approxinfo [flags] [kernel ...]
//
// A kernel is named by function ("sin", "atan", ...) to select every
// registered variant, or by function/variant ("cos/fastcos") to select one.
// Without arguments it surveys every registered kernel. It always finishes
// with the log2(64) sanity check and exits non-zero if that fails.
//
// Examples:
//
//	approxinfo atan
//	approxinfo -points 100000 exp2/poly log2
//	approxinfo -list
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-fastmath/fastmath"
	"github.com/cwbudde/algo-fastmath/fastmath/registry"
	"github.com/cwbudde/algo-fastmath/measure/accuracy"
)

var references = map[registry.Function]accuracy.Reference{
	registry.FuncSin:  math.Sin,
	registry.FuncCos:  math.Cos,
	registry.FuncAtan: math.Atan,
	registry.FuncExp2: math.Exp2,
	registry.FuncLog2: math.Log2,
	registry.FuncSqrt: math.Sqrt,
}

func main() {
	points := flag.Int("points", 10000, "number of evenly spaced sample points per kernel")
	relFloor := flag.Float64("relfloor", 1e-3, "smallest |reference| used as relative error denominator")
	all := flag.Bool("all", false, "survey all registered kernels")
	list := flag.Bool("list", false, "list registered kernels")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: approxinfo [flags] [kernel ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints the measured error of fast transcendental approximations.\n")
		fmt.Fprintf(os.Stderr, "Kernels are named function or function/variant.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  approxinfo atan\n")
		fmt.Fprintf(os.Stderr, "  approxinfo -points 100000 exp2/poly log2\n")
		fmt.Fprintf(os.Stderr, "  approxinfo -list\n")
	}
	flag.Parse()

	if *list {
		printList()
		return
	}

	names := flag.Args()
	if *all {
		names = nil
	}

	entries := resolveEntries(registry.Global, names)
	if len(entries) == 0 {
		fmt.Fprintf(os.Stderr, "error: no matching kernels\n")
		os.Exit(1)
	}

	printSurvey(entries, *points, *relFloor)

	if !checkLog2() {
		os.Exit(1)
	}
}

func printList() {
	for _, e := range registry.Global.ListEntries() {
		fmt.Printf("%s/%s\n", e.Function, e.Name)
	}
}

// resolveEntries maps command line names to registered entries. An empty
// name list selects everything, grouped by function.
func resolveEntries(r *registry.Registry, names []string) []registry.Entry {
	if len(names) == 0 {
		var out []registry.Entry
		for _, fn := range registry.Functions() {
			out = append(out, r.Variants(fn)...)
		}
		return out
	}

	var out []registry.Entry
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		fnName, variant, hasVariant := strings.Cut(name, "/")

		fn, ok := registry.ParseFunction(fnName)
		if !ok {
			fmt.Fprintf(os.Stderr, "warning: unknown function %q (use -list to see available)\n", fnName)
			continue
		}

		if !hasVariant {
			out = append(out, r.Variants(fn)...)
			continue
		}

		e := r.Variant(fn, variant)
		if e == nil {
			fmt.Fprintf(os.Stderr, "warning: unknown kernel %q (use -list to see available)\n", name)
			continue
		}
		out = append(out, *e)
	}
	return out
}

func printSurvey(entries []registry.Entry, points int, relFloor float64) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Kernel\tDomain\tPoints\tMax abs\tat x\tMax rel\tRMS\tBias\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}
	if _, err := fmt.Fprintf(tw, "------\t------\t------\t-------\t----\t-------\t---\t----\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}

	for _, e := range entries {
		ref, ok := references[e.Function]
		if !ok {
			fmt.Fprintf(os.Stderr, "warning: no reference for %v\n", e.Function)
			continue
		}

		res, err := accuracy.Survey(accuracy.Kernel(e.Kernel), ref, e.Domain[0], e.Domain[1],
			accuracy.WithPoints(points), accuracy.WithRelativeFloor(relFloor))
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: %v/%s: %v\n", e.Function, e.Name, err)
			continue
		}

		if _, err := fmt.Fprintf(tw, "%s/%s\t[%.4g, %.4g]\t%d\t%.3e\t%.4g\t%.3e\t%.3e\t%+.3e\n",
			e.Function, e.Name,
			e.Domain[0], e.Domain[1],
			res.Points,
			res.MaxAbs,
			res.ArgMaxAbs,
			res.MaxRel,
			res.RMS,
			res.Mean,
		); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output row: %v\n", err)
			return
		}
	}
	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

// checkLog2 prints and verifies log2(64) ≈ 6.
func checkLog2() bool {
	const want, tol = 6.0, 0.01

	got := float64(fastmath.Log2(64))
	ok := math.Abs(got-want) <= tol

	status := "ok"
	if !ok {
		status = "FAIL"
	}
	fmt.Printf("\nlog2(64) = %.6f (want %g ± %g): %s\n", got, want, tol, status)
	return ok
}
