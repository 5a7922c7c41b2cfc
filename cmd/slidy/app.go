package main

import (
	"bufio"
	"io"
	"math/rand/v2"

	"github.com/benwh1/slidy-cli/alg"
	"github.com/benwh1/slidy-cli/cache"
	"github.com/benwh1/slidy-cli/puzzle"
)

// App carries the process-wide state every command handler needs: the
// solver cache, the input/output streams and the scramble RNG. Tests
// build their own App around a cache pointed at a temporary directory.
type App struct {
	cache *cache.SolverCache
	in    io.Reader
	out   io.Writer
	rng   *rand.Rand
}

// app is populated by the root command's PersistentPreRunE before any
// subcommand runs.
var app *App

// forEachAlg runs fn once when arg is non-empty, otherwise over every
// line of standard input. A parse or handler failure aborts the remaining
// stream.
func (a *App) forEachAlg(arg string, fn func(*alg.Algorithm) error) error {
	return forEach(a.in, arg, alg.Parse, fn)
}

// forEachState is forEachAlg for puzzle states.
func (a *App) forEachState(arg string, fn func(*puzzle.Puzzle) error) error {
	return forEach(a.in, arg, puzzle.Parse, fn)
}

// firstState parses arg, or only the first line of standard input.
func (a *App) firstState(arg string) (*puzzle.Puzzle, error) {
	if arg != "" {
		return puzzle.Parse(arg)
	}
	sc := bufio.NewScanner(a.in)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, err
		}
		return nil, io.EOF
	}
	return puzzle.Parse(sc.Text())
}

func forEach[T any](in io.Reader, arg string, parse func(string) (T, error), fn func(T) error) error {
	if arg != "" {
		v, err := parse(arg)
		if err != nil {
			return err
		}
		return fn(v)
	}
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		v, err := parse(sc.Text())
		if err != nil {
			return err
		}
		if err := fn(v); err != nil {
			return err
		}
	}
	return sc.Err()
}

// optionalArg returns the single positional argument, if present.
func optionalArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}
