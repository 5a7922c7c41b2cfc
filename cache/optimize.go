package cache

import (
	"fmt"

	"github.com/benwh1/slidy-cli/alg"
	"github.com/benwh1/slidy-cli/internal"
	"github.com/benwh1/slidy-cli/puzzle"
)

// Optimize attempts to find a shorter equivalent of a move sequence by
// optimally re-solving every contiguous window of the given length and
// splicing in the inverse of the optimal solution whenever a window turns
// out to be sub-optimal. The cursor stays in place after a successful
// shrink so the new content is re-examined immediately; otherwise it
// advances one move. The result is never longer than the input and has the
// same effect on any state the input applies to.
//
// The search is greedy and local: every window of the final result is
// individually optimal, which does not guarantee a globally shortest
// sequence. Larger windows find more improvements at a higher solving
// cost.
func (c *SolverCache) Optimize(a *alg.Algorithm, metric alg.Metric, window int) (*alg.Algorithm, error) {
	if window < 1 {
		return nil, internal.NewValidationError(
			fmt.Sprintf("window length must be positive, got %d", window), nil)
	}

	// Simplification first: window boundaries must land on minimal moves.
	a = a.Simplify()
	length := a.Len(metric)

	idx := 0
	for idx+window <= length {
		slice, err := a.Slice(metric, idx, idx+window)
		if err != nil {
			return nil, internal.NewMalformedError(
				fmt.Sprintf("cannot slice window [%d, %d)", idx, idx+window), err)
		}

		w, h, ok := slice.MinApplicableSize()
		if !ok {
			// The window fits no solved puzzle (or touches no tiles);
			// nothing to compare against, slide on.
			idx++
			continue
		}
		size, err := puzzle.NewSize(w, h)
		if err != nil {
			return nil, internal.NewMalformedError(
				fmt.Sprintf("window [%d, %d) has invalid applicable size", idx, idx+window), err)
		}

		scrambled := puzzle.New(size)
		if err := scrambled.ApplyAlg(slice); err != nil {
			return nil, internal.NewMalformedError(
				fmt.Sprintf("window [%d, %d) does not apply to its minimal size %s", idx, idx+window, size), err)
		}

		solution, err := c.Solve(scrambled, metric)
		if err != nil {
			return nil, err
		}

		if solution.Len(metric) == window {
			// Already optimal; amortized one-move slide.
			idx++
			continue
		}

		prefix, err := a.Slice(metric, 0, idx)
		if err != nil {
			return nil, internal.NewMalformedError("cannot slice prefix", err)
		}
		suffix, err := a.Slice(metric, idx+window, length)
		if err != nil {
			return nil, internal.NewMalformedError("cannot slice suffix", err)
		}
		a = alg.Concat(prefix, solution.Inverse(), suffix)
		length = a.Len(metric)
	}

	return a, nil
}
