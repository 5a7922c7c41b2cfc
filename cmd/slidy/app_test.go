package main

import (
	"bytes"
	"log/slog"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benwh1/slidy-cli/alg"
	"github.com/benwh1/slidy-cli/cache"
	"github.com/benwh1/slidy-cli/puzzle"
)

// newTestApp points the global app at buffered streams and a
// temp-directory cache, restoring the previous app on cleanup.
func newTestApp(t *testing.T, stdin string) *bytes.Buffer {
	t.Helper()
	c, err := cache.New(
		cache.WithDirectory(t.TempDir()),
		cache.WithLogger(slog.New(slog.DiscardHandler)),
	)
	require.NoError(t, err)

	var out bytes.Buffer
	prev := app
	app = &App{
		cache: c,
		in:    strings.NewReader(stdin),
		out:   &out,
		rng:   rand.New(rand.NewPCG(42, 43)),
	}
	t.Cleanup(func() { app = prev })
	return &out
}

func TestForEachAlgArgument(t *testing.T) {
	newTestApp(t, "")
	var got []string
	err := app.forEachAlg("R2U", func(a *alg.Algorithm) error {
		got = append(got, a.String())
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"R2U"}, got)
}

func TestForEachAlgStdin(t *testing.T) {
	newTestApp(t, "R\nU2\n")
	var got []string
	err := app.forEachAlg("", func(a *alg.Algorithm) error {
		got = append(got, a.String())
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"R", "U2"}, got)
}

func TestForEachAlgParseFailureAborts(t *testing.T) {
	newTestApp(t, "R\nnot-an-alg\nU\n")
	var got []string
	err := app.forEachAlg("", func(a *alg.Algorithm) error {
		got = append(got, a.String())
		return nil
	})
	require.Error(t, err)
	assert.Equal(t, []string{"R"}, got)
}

func TestFirstState(t *testing.T) {
	newTestApp(t, "1 2/0 3\n1 2/3 0\n")
	p, err := app.firstState("")
	require.NoError(t, err)
	assert.Equal(t, "1 2/0 3", p.String())

	p, err = app.firstState("1 2/3 0")
	require.NoError(t, err)
	assert.True(t, p.IsSolved())
}

func TestRunInvert(t *testing.T) {
	out := newTestApp(t, "")
	require.NoError(t, runInvert(invertCmd, []string{"R2U"}))
	assert.Equal(t, "DL2\n", out.String())
}

func TestRunLength(t *testing.T) {
	out := newTestApp(t, "R3UL2\nR\n")
	lengthFlags.metric = "mtm"
	t.Cleanup(func() { lengthFlags.metric = "stm" })

	require.NoError(t, runLength(lengthCmd, nil))
	assert.Equal(t, "3\n1\n", out.String())
}

func TestRunSimplifyVerbose(t *testing.T) {
	out := newTestApp(t, "")
	simplifyFlags.verbose = true
	t.Cleanup(func() { simplifyFlags.verbose = false })

	require.NoError(t, runSimplify(simplifyCmd, []string{"RRL"}))
	assert.Equal(t, "R\nOriginal length: 3\nNew length: 1 [-2, -66.6667%]\n", out.String())
}

func TestRunApplyInvalid(t *testing.T) {
	out := newTestApp(t, "")
	applyFlags.state = "1 2/3 0"
	applyFlags.alg = "L"
	t.Cleanup(func() { applyFlags.state = ""; applyFlags.alg = "" })

	require.NoError(t, runApply(applyCmd, nil))
	assert.Equal(t, "Invalid\n", out.String())
}

func TestRunApplyStreamedStates(t *testing.T) {
	out := newTestApp(t, "1 2/3 0\n1 2/0 3\n")
	applyFlags.alg = "R"
	t.Cleanup(func() { applyFlags.alg = "" })

	require.NoError(t, runApply(applyCmd, nil))
	assert.Equal(t, "1 2/0 3\nInvalid\n", out.String())
}

func TestRunSolvable(t *testing.T) {
	out := newTestApp(t, "1 2/3 0\n0 1/2 3\n")
	require.NoError(t, runSolvable(solvableCmd, nil))
	assert.Equal(t, "true\nfalse\n", out.String())
}

func TestRunSolve(t *testing.T) {
	out := newTestApp(t, "")
	solveFlags.metric = "stm"
	solveFlags.verbose = true
	t.Cleanup(func() { solveFlags.verbose = false })

	require.NoError(t, runSolve(solveCmd, []string{"1 2/0 3"}))
	assert.Equal(t, "L\n1 moves\n", out.String())
}

func TestRunGenerate(t *testing.T) {
	out := newTestApp(t, "")
	generateFlags.number = 3
	generateFlags.size = "3"
	t.Cleanup(func() { generateFlags.number = 1; generateFlags.size = "4" })

	require.NoError(t, runGenerate(generateCmd, nil))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	for _, line := range lines {
		p, err := puzzle.Parse(line)
		require.NoError(t, err)
		assert.True(t, p.IsSolvable())
	}
}

func TestRunFromSolution(t *testing.T) {
	out := newTestApp(t, "")
	fromSolutionFlags.size = "2"
	t.Cleanup(func() { fromSolutionFlags.size = "" })

	// The scramble behind solution "L" is one R away from solved.
	require.NoError(t, runFromSolution(fromSolutionCmd, []string{"L"}))
	assert.Equal(t, "1 2/0 3\n", out.String())
}

func TestRunOptimize(t *testing.T) {
	out := newTestApp(t, "")
	optimizeFlags.length = 8
	optimizeFlags.metric = "stm"
	t.Cleanup(func() { optimizeFlags.length = 0 })

	require.NoError(t, runOptimize(optimizeCmd, []string{"RDLURDLURR"}))
	got, err := alg.Parse(strings.TrimSpace(out.String()))
	require.NoError(t, err)
	assert.Less(t, got.LenSTM(), 10)
}
