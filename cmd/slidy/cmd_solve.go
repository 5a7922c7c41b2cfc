package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/benwh1/slidy-cli/alg"
	"github.com/benwh1/slidy-cli/puzzle"
)

func runSolve(cmd *cobra.Command, args []string) error {
	metric, err := alg.ParseMetric(solveFlags.metric)
	if err != nil {
		return err
	}
	return app.forEachState(optionalArg(args), func(p *puzzle.Puzzle) error {
		solution, err := app.cache.Solve(p, metric)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(app.out, solution); err != nil {
			return err
		}
		if solveFlags.verbose {
			_, err := fmt.Fprintf(app.out, "%d moves\n", solution.Len(metric))
			return err
		}
		return nil
	})
}

func runFilterOptimal(cmd *cobra.Command, args []string) error {
	metric, err := alg.ParseMetric(filterOptimalFlags.metric)
	if err != nil {
		return err
	}
	size, err := puzzle.ParseSize(filterOptimalFlags.size)
	if err != nil {
		return err
	}
	return app.forEachAlg(optionalArg(args), func(a *alg.Algorithm) error {
		p := puzzle.New(size)
		if err := p.ApplyAlg(a.Inverse()); err != nil {
			// The algorithm doesn't fit this size; not a candidate.
			return nil
		}
		solution, err := app.cache.Solve(p, metric)
		if err != nil {
			return err
		}
		optimal := a.Len(metric) == solution.Len(metric)
		if optimal != filterOptimalFlags.keepSuboptimal {
			_, err := fmt.Fprintln(app.out, a)
			return err
		}
		return nil
	})
}

func runOptDiff(cmd *cobra.Command, args []string) error {
	metric, err := alg.ParseMetric(optDiffFlags.metric)
	if err != nil {
		return err
	}
	size, err := puzzle.ParseSize(optDiffFlags.size)
	if err != nil {
		return err
	}
	return app.forEachAlg(optionalArg(args), func(a *alg.Algorithm) error {
		p := puzzle.New(size)
		if err := p.ApplyAlg(a.Inverse()); err != nil {
			return err
		}
		solution, err := app.cache.Solve(p, metric)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(app.out, a.Len(metric)-solution.Len(metric))
		return err
	})
}

func runOptimize(cmd *cobra.Command, args []string) error {
	metric, err := alg.ParseMetric(optimizeFlags.metric)
	if err != nil {
		return err
	}
	return app.forEachAlg(optionalArg(args), func(a *alg.Algorithm) error {
		optimized, err := app.cache.Optimize(a, metric, optimizeFlags.length)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(app.out, optimized)
		return err
	})
}
