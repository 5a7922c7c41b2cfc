package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/benwh1/slidy-cli/alg"
	"github.com/benwh1/slidy-cli/puzzle"
	"github.com/benwh1/slidy-cli/solver"
)

// printApplied applies a to a copy of p and prints the result, or
// "Invalid" when the algorithm runs off the board.
func printApplied(p *puzzle.Puzzle, a *alg.Algorithm) error {
	q := p.Clone()
	if err := q.ApplyAlg(a); err != nil {
		_, err := fmt.Fprintln(app.out, "Invalid")
		return err
	}
	_, err := fmt.Fprintln(app.out, q)
	return err
}

func runApply(cmd *cobra.Command, args []string) error {
	var (
		state *puzzle.Puzzle
		a     *alg.Algorithm
		err   error
	)
	if applyFlags.state != "" {
		if state, err = puzzle.Parse(applyFlags.state); err != nil {
			return err
		}
	}
	if applyFlags.alg != "" {
		if a, err = alg.Parse(applyFlags.alg); err != nil {
			return err
		}
	}

	switch {
	case state != nil && a != nil:
		return printApplied(state, a)
	case state != nil:
		return app.forEachAlg("", func(a *alg.Algorithm) error {
			return printApplied(state, a)
		})
	case a != nil:
		return app.forEachState("", func(p *puzzle.Puzzle) error {
			return printApplied(p, a)
		})
	default:
		return errors.New("at least one of --state and --alg is required")
	}
}

func runApplyToSolved(cmd *cobra.Command, args []string) error {
	size, err := puzzle.ParseSize(applyToSolvedFlags.size)
	if err != nil {
		return err
	}
	solved := puzzle.New(size)
	return app.forEachAlg(applyToSolvedFlags.alg, func(a *alg.Algorithm) error {
		return printApplied(solved, a)
	})
}

// printEmbedded embeds state into a copy of target and prints the result,
// or "Invalid" when state is not an extension of target's missing corner.
func printEmbedded(state, target *puzzle.Puzzle) error {
	t := target.Clone()
	if err := state.EmbedInto(t); err != nil {
		_, err := fmt.Fprintln(app.out, "Invalid")
		return err
	}
	_, err := fmt.Fprintln(app.out, t)
	return err
}

func runEmbed(cmd *cobra.Command, args []string) error {
	var target *puzzle.Puzzle
	switch {
	case embedFlags.size != "":
		size, err := puzzle.ParseSize(embedFlags.size)
		if err != nil {
			return err
		}
		target = puzzle.New(size)
	case embedFlags.target != "":
		var err error
		if target, err = puzzle.Parse(embedFlags.target); err != nil {
			return err
		}
	}

	arg := optionalArg(args)
	switch {
	case arg != "" && target != nil:
		state, err := puzzle.Parse(arg)
		if err != nil {
			return err
		}
		return printEmbedded(state, target)
	case target != nil:
		return app.forEachState("", func(state *puzzle.Puzzle) error {
			return printEmbedded(state, target)
		})
	case arg != "":
		state, err := puzzle.Parse(arg)
		if err != nil {
			return err
		}
		return app.forEachState("", func(t *puzzle.Puzzle) error {
			return printEmbedded(state, t)
		})
	default:
		return errors.New("a state and a target (or size) are required")
	}
}

func runFormatState(cmd *cobra.Command, args []string) error {
	grid := false
	switch formatStateFlags.format {
	case "inline":
	case "grid":
		grid = true
	default:
		return fmt.Errorf("unknown state format %q", formatStateFlags.format)
	}
	return app.forEachState(optionalArg(args), func(p *puzzle.Puzzle) error {
		s := p.String()
		if grid {
			s = p.DisplayGrid()
		}
		_, err := fmt.Fprintln(app.out, s)
		return err
	})
}

func runFromSolution(cmd *cobra.Command, args []string) error {
	size, err := puzzle.ParseSize(fromSolutionFlags.size)
	if err != nil {
		return err
	}
	solved := puzzle.New(size)
	return app.forEachAlg(optionalArg(args), func(a *alg.Algorithm) error {
		return printApplied(solved, a.Inverse())
	})
}

func runGenerate(cmd *cobra.Command, args []string) error {
	size, err := puzzle.ParseSize(generateFlags.size)
	if err != nil {
		return err
	}

	var scrambler puzzle.Scrambler = puzzle.RandomState{}
	if cmd.Flags().Changed("random-moves") && generateFlags.randomMoves {
		scrambler = puzzle.RandomMoves{
			Moves:             generateFlags.numMoves,
			AllowBacktracking: generateFlags.allowBacktracking,
			AllowIllegalMoves: generateFlags.allowIllegalMoves,
		}
	}

	p := puzzle.New(size)
	for i := 0; i < generateFlags.number; i++ {
		p.Reset()
		scrambler.Scramble(p, app.rng)
		if _, err := fmt.Fprintln(app.out, p); err != nil {
			return err
		}
	}
	return nil
}

func runMd(cmd *cobra.Command, args []string) error {
	return app.forEachState(optionalArg(args), func(p *puzzle.Puzzle) error {
		if !p.IsSolvable() {
			_, err := fmt.Fprintln(app.out, "Unsolvable")
			return err
		}
		_, err := fmt.Fprintln(app.out, solver.ManhattanDistance{}.Bound(p))
		return err
	})
}

func runSolvable(cmd *cobra.Command, args []string) error {
	return app.forEachState(optionalArg(args), func(p *puzzle.Puzzle) error {
		_, err := fmt.Fprintln(app.out, p.IsSolvable())
		return err
	})
}
