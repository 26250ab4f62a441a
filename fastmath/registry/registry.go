// Package registry provides named kernel variants for the fastmath package.
//
// Several algorithms can approximate the same function (for example the
// segment-reduction and the multi-threshold arctangent). Every variant is
// registered here under a common signature, and the variant with the highest
// priority is the canonical one for its function.
//
// The fastmath package registers its kernels from init(), so importing
// fastmath is enough to populate Global.
package registry

import (
	"fmt"
	"sync"
)

// Function identifies the transcendental function a kernel approximates.
type Function int

const (
	FuncSin Function = iota
	FuncCos
	FuncAtan
	FuncExp2
	FuncLog2
	FuncSqrt
)

var functionNames = [...]string{
	FuncSin:  "sin",
	FuncCos:  "cos",
	FuncAtan: "atan",
	FuncExp2: "exp2",
	FuncLog2: "log2",
	FuncSqrt: "sqrt",
}

// String returns the short lower-case name of f.
func (f Function) String() string {
	if f < 0 || int(f) >= len(functionNames) {
		return fmt.Sprintf("Function(%d)", int(f))
	}
	return functionNames[f]
}

// Functions returns every known Function in declaration order.
func Functions() []Function {
	return []Function{FuncSin, FuncCos, FuncAtan, FuncExp2, FuncLog2, FuncSqrt}
}

// ParseFunction maps a short name back to its Function.
func ParseFunction(name string) (Function, bool) {
	for i, n := range functionNames {
		if n == name {
			return Function(i), true
		}
	}
	return 0, false
}

// Kernel is the common signature of every scalar approximation.
type Kernel func(x float32) float32

// Entry represents a registered kernel variant.
type Entry struct {
	// Name identifies the variant within its function (e.g. "segment", "legacy").
	Name string

	// Function is the function the kernel approximates.
	Function Function

	// Kernel evaluates the approximation.
	Kernel Kernel

	// Priority determines which variant Lookup returns. Suggested priorities:
	//   - canonical kernels: 10
	//   - historical variants kept for comparison: 0
	//   - third-party baselines: -10
	Priority int

	// Domain is the closed input interval the variant is intended for.
	Domain [2]float64
}

// Registry manages registration and lookup of kernel variants.
type Registry struct {
	mu      sync.RWMutex
	entries []Entry
	sorted  bool // true if entries are sorted by priority (descending)
}

// Global is the registry populated by the fastmath package.
var Global = &Registry{}

// Register adds a variant to the registry.
//
// It is safe to call concurrently, but all registrations should complete
// before the first lookup.
func (r *Registry) Register(entry Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup returns the highest-priority variant registered for fn, or nil.
func (r *Registry) Lookup(fn Function) *Entry {
	r.ensureSorted()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		if r.entries[i].Function == fn {
			e := r.entries[i]
			return &e
		}
	}
	return nil
}

// Variant returns the variant of fn registered under name, or nil.
func (r *Registry) Variant(fn Function, name string) *Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		if r.entries[i].Function == fn && r.entries[i].Name == name {
			e := r.entries[i]
			return &e
		}
	}
	return nil
}

// Variants returns every variant of fn, highest priority first.
func (r *Registry) Variants(fn Function) []Entry {
	r.ensureSorted()

	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []Entry
	for _, e := range r.entries {
		if e.Function == fn {
			out = append(out, e)
		}
	}
	return out
}

// ListEntries returns a copy of all registered entries, sorted by priority.
// This function is primarily intended for testing and diagnostics.
func (r *Registry) ListEntries() []Entry {
	r.ensureSorted()

	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]Entry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Reset clears all registered entries.
// This function is intended for testing purposes only.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}

func (r *Registry) ensureSorted() {
	r.mu.Lock()
	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
	r.mu.Unlock()
}

// sortByPriority sorts entries by priority in descending order, keeping
// registration order among equal priorities.
// Must be called with r.mu held (write lock).
func (r *Registry) sortByPriority() {
	// Insertion sort: a handful of entries per function.
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
}
