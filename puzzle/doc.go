// Package puzzle models sliding-tile puzzle states.
//
// A Puzzle is a W×H grid holding the tiles 1..W*H-1 and one blank,
// written 0. The solved state has the tiles in row-major order with the
// blank in the bottom-right corner. States parse from and print to the
// inline notation "1 2 3/4 5 6/7 8 0".
//
// The package supports strict application of move sequences (the state is
// left untouched when a move is illegal), solvability testing via
// permutation parity, transposition, embedding a state into a larger
// puzzle, and two scramblers: uniform random solvable states and random
// move walks.
package puzzle
