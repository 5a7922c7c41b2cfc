package alg

import "errors"

var (
	// ErrSyntax is returned when parsing text that is not a valid move
	// sequence.
	ErrSyntax = errors.New("alg: invalid move sequence syntax")

	// ErrSliceBounds is returned by Slice when the requested range does not
	// lie within the algorithm's length under the chosen metric.
	ErrSliceBounds = errors.New("alg: slice bounds out of range")

	// ErrUnknownMetric is returned when parsing an unrecognized metric name.
	ErrUnknownMetric = errors.New("alg: unknown metric")
)
