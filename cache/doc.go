// Package cache provides the solver cache and move-sequence optimizer for
// sliding-tile puzzles.
//
// A SolverCache owns one lazily-constructed solver per (normalized puzzle
// size, metric) pair. Small sizes use full-state-space lookup tables that
// are expensive to build but persisted through a TableStore (a flat-file
// directory by default, optionally Redis for sharing between machines);
// anything stored is validated by an embedded checksum on load and
// silently rebuilt when absent or corrupt. Larger sizes fall back to an
// IDA* search under the single-tile-move metric; the multi-tile-move
// metric has no fallback strategy and reports such requests as
// unsupported.
//
// The optimizer shortens an existing move sequence by re-solving sliding
// windows through the cache and substituting any window that turns out to
// be sub-optimal.
//
// # Basic Usage
//
//	solverCache, err := cache.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	state, _ := puzzle.Parse("4 1 2/0 5 3/7 8 6")
//	solution, err := solverCache.Solve(state, alg.STM)
//
//	shorter, err := solverCache.Optimize(scramble, alg.STM, 10)
package cache
