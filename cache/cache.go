package cache

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/benwh1/slidy-cli/alg"
	"github.com/benwh1/slidy-cli/internal"
	"github.com/benwh1/slidy-cli/puzzle"
	"github.com/benwh1/slidy-cli/solver"
)

// cachedSolver produces optimal solutions for states of one normalized
// size under one metric. Implementations are owned exclusively by the
// SolverCache and never escape it.
type cachedSolver interface {
	Solve(p *puzzle.Puzzle) (*alg.Algorithm, error)
}

// tableSolver answers from a full-state-space distance table.
type tableSolver struct {
	table *solver.Table
}

func (s *tableSolver) Solve(p *puzzle.Puzzle) (*alg.Algorithm, error) {
	return s.table.Solve(p)
}

// searchSolver answers with IDA*; correct for any size, only slower.
type searchSolver struct {
	search *solver.Search
}

func (s *searchSolver) Solve(p *puzzle.Puzzle) (*alg.Algorithm, error) {
	return s.search.Solve(p)
}

// SolverCache hands out optimal solutions while reusing expensive solver
// setup across calls and, through its TableStore, across process
// invocations. A cache miss is invisible to callers except as latency.
type SolverCache struct {
	store  internal.TableStore
	keyGen internal.KeyGenerator
	logger *slog.Logger

	group   singleflight.Group
	mu      sync.RWMutex
	solvers map[string]cachedSolver
}

// Option configures a SolverCache.
type Option func(*options)

type options struct {
	dir    string
	store  internal.TableStore
	logger *slog.Logger
}

// WithDirectory overrides the directory of the default file store.
func WithDirectory(dir string) Option {
	return func(o *options) { o.dir = dir }
}

// WithStore injects a TableStore, replacing the default file store
// entirely.
func WithStore(store internal.TableStore) Option {
	return func(o *options) { o.store = store }
}

// WithLogger sets the logger used for rebuild and repair events.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// New creates a SolverCache. Without options it persists lookup tables
// under the platform cache directory.
func New(opts ...Option) (*SolverCache, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.store == nil {
		dir := o.dir
		if dir == "" {
			var err error
			if dir, err = internal.DefaultCacheDir(); err != nil {
				return nil, err
			}
		}
		fs, err := internal.NewFileStore(dir)
		if err != nil {
			return nil, err
		}
		o.store = fs
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	return &SolverCache{
		store:   o.store,
		keyGen:  internal.NewKeyGenerator(),
		logger:  o.logger,
		solvers: make(map[string]cachedSolver),
	}, nil
}

// Solve returns an optimal solution for the state under the metric.
// Transposed sizes share one solver: the state is mirrored to the
// normalized orientation and the solution mirrored back. Returns an
// UNSUPPORTED error for (size, metric) pairs with no solving strategy and
// a SOLVE_FAILED error for unsolvable states.
func (c *SolverCache) Solve(p *puzzle.Puzzle, metric alg.Metric) (*alg.Algorithm, error) {
	norm, transposed := p.Size().Normalize()
	state := p
	if transposed {
		state = p.Transpose()
	}

	key := c.keyGen.TableKey(norm.W, norm.H, metric.String())
	sv, err := c.solverFor(key, norm, metric)
	if err != nil {
		return nil, err
	}

	solution, err := sv.Solve(state)
	if err != nil {
		return nil, internal.NewSolveFailedError(key, fmt.Sprintf("cannot solve %s state", p.Size()), err)
	}
	if transposed {
		solution = solution.Transpose()
	}
	return solution, nil
}

// solverFor returns the cached solver for key, constructing and publishing
// it at most once per key even under concurrent first use. Callers for
// different keys proceed independently.
func (c *SolverCache) solverFor(key string, size puzzle.Size, metric alg.Metric) (cachedSolver, error) {
	c.mu.RLock()
	sv, ok := c.solvers[key]
	c.mu.RUnlock()
	if ok {
		return sv, nil
	}

	v, err, _ := c.group.Do(key, func() (interface{}, error) {
		c.mu.RLock()
		sv, ok := c.solvers[key]
		c.mu.RUnlock()
		if ok {
			return sv, nil
		}
		sv, err := c.buildSolver(key, size, metric)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.solvers[key] = sv
		c.mu.Unlock()
		return sv, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(cachedSolver), nil
}

// buildSolver selects the solving strategy for one cache key.
func (c *SolverCache) buildSolver(key string, size puzzle.Size, metric alg.Metric) (cachedSolver, error) {
	if size.Area() <= solver.MaxTableArea {
		table, err := c.loadOrBuildTable(key, size, metric)
		if err != nil {
			return nil, err
		}
		return &tableSolver{table: table}, nil
	}
	if metric == alg.STM {
		return &searchSolver{search: solver.NewSearch(solver.ManhattanDistance{})}, nil
	}
	return nil, internal.NewUnsupportedError(key,
		fmt.Sprintf("no solving strategy for %s under %s", size, metric))
}

// loadOrBuildTable reads the persisted table for key, rebuilding and
// re-persisting it when the stored bytes are absent, unreadable or fail
// their integrity check. Only the final persistence failure is surfaced;
// a rebuild on corruption never fails the caller's request.
func (c *SolverCache) loadOrBuildTable(key string, size puzzle.Size, metric alg.Metric) (*solver.Table, error) {
	ctx := context.Background()

	if data, err := c.store.Load(ctx, key); err == nil {
		table, derr := solver.DecodeTable(data)
		switch {
		case derr != nil:
			c.logger.Warn("stored lookup table is corrupt, rebuilding",
				"key", key, "error", internal.NewCorruptError(key, derr))
		case table.Size() != size || table.Metric() != metric:
			c.logger.Warn("stored lookup table does not match its key, rebuilding",
				"key", key, "size", table.Size().String(), "metric", table.Metric().String())
		default:
			return table, nil
		}
	} else if !internal.IsNotFoundError(err) {
		c.logger.Warn("cannot read stored lookup table, rebuilding",
			"key", key, "error", err)
	}

	c.logger.Info("building lookup table", "key", key, "size", size.String(), "metric", metric.String())
	table, err := solver.BuildTable(size, metric)
	if err != nil {
		return nil, internal.NewCacheError(internal.ErrorTypeSolveFailed, key, "cannot build lookup table", err)
	}
	if err := c.store.Save(ctx, key, table.Encode()); err != nil {
		return nil, err
	}
	return table, nil
}
