// Package accuracy samples a scalar kernel against a reference function and
// summarizes the pointwise error.
//
// It is a consumer of the fastmath kernels: the kernels never measure
// themselves. [Sample] returns the raw curves (input, kernel output,
// reference output, signed error) that a plotting tool would draw, [Survey]
// reduces them to summary statistics, and [SpuriousLevel] measures how
// cleanly a periodic kernel renders a pure tone.
package accuracy
