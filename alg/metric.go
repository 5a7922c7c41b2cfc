package alg

import "fmt"

// Metric selects how the length of a move sequence is measured.
type Metric uint8

const (
	// STM counts single-tile moves: a slide of k tiles costs k.
	STM Metric = iota
	// MTM counts multi-tile moves: a maximal run of same-direction slides
	// costs 1 regardless of how many tiles travel.
	MTM
)

// String returns the conventional lowercase name of the metric.
func (m Metric) String() string {
	if m == MTM {
		return "mtm"
	}
	return "stm"
}

// ParseMetric parses "stm" or "mtm".
func ParseMetric(s string) (Metric, error) {
	switch s {
	case "stm":
		return STM, nil
	case "mtm":
		return MTM, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMetric, s)
	}
}
