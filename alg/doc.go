// Package alg implements the move-sequence algebra for sliding-tile puzzles.
//
// A move names the direction the tiles travel (the blank travels the
// opposite way) together with a multiplicity: "R3" slides three tiles one
// cell to the right in a single gesture. An Algorithm is an ordered list
// of moves and supports:
//
//   - Parsing from and printing to the standard notation, in short or long
//     form, spaced or unspaced ("R3UL2", "RRRULL", "R3 U L2", ...)
//   - Length under either metric: STM counts single-tile moves, MTM counts
//     maximal runs of same-direction moves
//   - Simplification (cancelling and merging adjacent same-axis moves),
//     inversion, concatenation and transposition
//   - Slicing by move-index range under a metric
//   - Inference of the smallest puzzle a sequence can be applied to
//
// The package is a leaf: it knows nothing about puzzle states.
package alg
