package puzzle

import "errors"

var (
	// ErrBadSize is returned for non-positive or unparseable dimensions.
	ErrBadSize = errors.New("puzzle: invalid size")

	// ErrBadState is returned when parsing text that is not a valid puzzle
	// state.
	ErrBadState = errors.New("puzzle: invalid state")

	// ErrIllegalMove is returned when a move would push the blank off the
	// board.
	ErrIllegalMove = errors.New("puzzle: illegal move")

	// ErrEmbed is returned when a state cannot be embedded into the given
	// target puzzle.
	ErrEmbed = errors.New("puzzle: state does not embed into target")
)
