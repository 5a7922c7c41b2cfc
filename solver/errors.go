package solver

import "errors"

var (
	// ErrUnsolvable is returned when the solved state is unreachable from
	// the input state.
	ErrUnsolvable = errors.New("solver: state is not solvable")

	// ErrSizeMismatch is returned when a state is handed to a solver built
	// for a different puzzle size.
	ErrSizeMismatch = errors.New("solver: state size does not match solver")

	// ErrCorruptTable is returned when serialized table bytes fail their
	// structural or checksum validation.
	ErrCorruptTable = errors.New("solver: corrupt lookup table")

	// ErrTableTooLarge is returned when asked to build a table for a size
	// outside the precomputed set.
	ErrTableTooLarge = errors.New("solver: size too large for a lookup table")
)
