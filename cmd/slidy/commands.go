package main

import (
	"log/slog"
	"math/rand/v2"
	"os"

	"github.com/spf13/cobra"

	"github.com/benwh1/slidy-cli/cache"
	"github.com/benwh1/slidy-cli/internal"
)

var (
	configPath string

	rootCmd = &cobra.Command{
		Use:           "slidy",
		Short:         "A cli for working with sliding puzzles",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelWarn,
			}))

			opts := []cache.Option{cache.WithLogger(logger)}
			if cfg.Redis != nil {
				store, err := internal.NewRedisStore(cfg.Redis)
				if err != nil {
					return err
				}
				opts = append(opts, cache.WithStore(store))
			} else if cfg.CacheDir != "" {
				opts = append(opts, cache.WithDirectory(cfg.CacheDir))
			}

			c, err := cache.New(opts...)
			if err != nil {
				return err
			}
			app = &App{
				cache: c,
				in:    os.Stdin,
				out:   os.Stdout,
				rng:   rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
			}
			return nil
		},
	}

	// --- Algorithm manipulation ---
	applyFlags struct {
		state string
		alg   string
	}
	applyCmd = &cobra.Command{
		Use:   "apply",
		Short: "Applies algorithms to puzzle states",
		Args:  cobra.NoArgs,
		RunE:  runApply,
	}

	applyToSolvedFlags struct {
		alg  string
		size string
	}
	applyToSolvedCmd = &cobra.Command{
		Use:   "apply-to-solved",
		Short: "Applies algorithms to the solved state",
		Args:  cobra.NoArgs,
		RunE:  runApplyToSolved,
	}

	concatFlags struct {
		prefix string
		suffix string
	}
	concatCmd = &cobra.Command{
		Use:   "concat [alg]",
		Short: "Appends a prefix or suffix to an algorithm",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runConcat,
	}

	embedFlags struct {
		target string
		size   string
	}
	embedCmd = &cobra.Command{
		Use:   "embed [state]",
		Short: "Embeds a puzzle state into a larger puzzle",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runEmbed,
	}

	filterOptimalFlags struct {
		size           string
		metric         string
		keepSuboptimal bool
	}
	filterOptimalCmd = &cobra.Command{
		Use:   "filter-optimal [alg]",
		Short: "Filters out suboptimal solutions from a list of algorithms",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runFilterOptimal,
	}

	formatFlags struct {
		long   bool
		spaced bool
	}
	formatCmd = &cobra.Command{
		Use:   "format [alg]",
		Short: "Formats algorithms using long or short notation, with or without spaces",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runFormat,
	}

	formatStateFlags struct {
		format string
	}
	formatStateCmd = &cobra.Command{
		Use:   "format-state [state]",
		Short: "Formats puzzle states inline or in a grid layout",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runFormatState,
	}

	fromSolutionFlags struct {
		size string
	}
	fromSolutionCmd = &cobra.Command{
		Use:   "from-solution [alg]",
		Short: "Prints the scramble state, given a solution and the size of the puzzle",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runFromSolution,
	}

	generateFlags struct {
		number            int
		size              string
		randomState       bool
		randomMoves       bool
		numMoves          int
		allowBacktracking bool
		allowIllegalMoves bool
	}
	generateCmd = &cobra.Command{
		Use:   "generate",
		Short: "Generates random scrambles",
		Args:  cobra.NoArgs,
		RunE:  runGenerate,
	}

	invertCmd = &cobra.Command{
		Use:   "invert [alg]",
		Short: "Prints the inverse of an algorithm",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runInvert,
	}

	lengthFlags struct {
		metric string
	}
	lengthCmd = &cobra.Command{
		Use:   "length [alg]",
		Short: "Prints the length of an algorithm",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLength,
	}

	mdCmd = &cobra.Command{
		Use:   "md [state]",
		Short: "Prints the sum of the Manhattan distances of all pieces from their solved positions",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runMd,
	}

	optDiffFlags struct {
		size   string
		metric string
	}
	optDiffCmd = &cobra.Command{
		Use:   "opt-diff [alg]",
		Short: "Finds the difference in length between an algorithm and the optimal solution of the scramble",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runOptDiff,
	}

	optimizeFlags struct {
		length int
		metric string
	}
	optimizeCmd = &cobra.Command{
		Use:   "optimize [alg]",
		Short: "Attempts to find a shorter equivalent algorithm by optimally solving all sub-algorithms of the given length",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runOptimize,
	}

	renderFlags struct {
		label    string
		coloring string
		tileSize float64
		output   string
	}
	renderCmd = &cobra.Command{
		Use:   "render [state]",
		Short: "Creates an SVG image of a puzzle state",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runRender,
	}

	simplifyFlags struct {
		verbose bool
	}
	simplifyCmd = &cobra.Command{
		Use:   "simplify [alg]",
		Short: "Simplifies algorithms by combining consecutive moves when possible",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSimplify,
	}

	sliceFlags struct {
		start int
		end   int
	}
	sliceCmd = &cobra.Command{
		Use:   "slice [alg]",
		Short: "Prints a sub-algorithm between two moves",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSlice,
	}

	solvableCmd = &cobra.Command{
		Use:   "solvable [state]",
		Short: "Checks if puzzle states are solvable",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSolvable,
	}

	solveFlags struct {
		metric  string
		verbose bool
	}
	solveCmd = &cobra.Command{
		Use:   "solve [state]",
		Short: "Finds one optimal solution to a puzzle state",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSolve,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a yaml config file")

	applyCmd.Flags().StringVarP(&applyFlags.state, "state", "s", "", "puzzle state to apply to")
	applyCmd.Flags().StringVarP(&applyFlags.alg, "alg", "a", "", "algorithm to apply")

	applyToSolvedCmd.Flags().StringVarP(&applyToSolvedFlags.alg, "alg", "a", "", "algorithm to apply")
	applyToSolvedCmd.Flags().StringVarP(&applyToSolvedFlags.size, "size", "s", "", "puzzle size")
	_ = applyToSolvedCmd.MarkFlagRequired("size")

	concatCmd.Flags().StringVarP(&concatFlags.prefix, "prefix", "p", "", "algorithm to prepend")
	concatCmd.Flags().StringVarP(&concatFlags.suffix, "suffix", "s", "", "algorithm to append")

	embedCmd.Flags().StringVarP(&embedFlags.target, "target", "t", "", "target puzzle state")
	embedCmd.Flags().StringVarP(&embedFlags.size, "size", "s", "", "target puzzle size (solved state)")
	embedCmd.MarkFlagsMutuallyExclusive("target", "size")

	filterOptimalCmd.Flags().StringVarP(&filterOptimalFlags.size, "size", "s", "", "puzzle size")
	filterOptimalCmd.Flags().StringVarP(&filterOptimalFlags.metric, "metric", "m", "stm", "length metric (stm or mtm)")
	filterOptimalCmd.Flags().BoolVarP(&filterOptimalFlags.keepSuboptimal, "keep-suboptimal", "k", false, "keep only suboptimal algorithms instead")
	_ = filterOptimalCmd.MarkFlagRequired("size")

	formatCmd.Flags().BoolVarP(&formatFlags.long, "long", "l", false, "use long notation")
	formatCmd.Flags().BoolVarP(&formatFlags.spaced, "spaced", "s", false, "separate moves with spaces")

	formatStateCmd.Flags().StringVarP(&formatStateFlags.format, "format", "f", "inline", "state format (inline or grid)")

	fromSolutionCmd.Flags().StringVarP(&fromSolutionFlags.size, "size", "s", "", "puzzle size")
	_ = fromSolutionCmd.MarkFlagRequired("size")

	generateCmd.Flags().IntVarP(&generateFlags.number, "number", "n", 1, "number of scrambles")
	generateCmd.Flags().StringVarP(&generateFlags.size, "size", "s", "4", "puzzle size")
	generateCmd.Flags().BoolVar(&generateFlags.randomState, "random-state", true, "scramble to a uniformly random state")
	generateCmd.Flags().BoolVar(&generateFlags.randomMoves, "random-moves", false, "scramble with random moves")
	generateCmd.Flags().IntVarP(&generateFlags.numMoves, "num-moves", "m", 80, "number of random moves")
	generateCmd.Flags().BoolVarP(&generateFlags.allowBacktracking, "allow-backtracking", "b", false, "allow moves that undo the previous move")
	generateCmd.Flags().BoolVarP(&generateFlags.allowIllegalMoves, "allow-illegal-moves", "i", false, "count moves that slide off the board")
	generateCmd.MarkFlagsMutuallyExclusive("random-state", "random-moves")

	lengthCmd.Flags().StringVarP(&lengthFlags.metric, "metric", "m", "stm", "length metric (stm or mtm)")

	optDiffCmd.Flags().StringVarP(&optDiffFlags.size, "size", "s", "", "puzzle size")
	optDiffCmd.Flags().StringVarP(&optDiffFlags.metric, "metric", "m", "stm", "length metric (stm or mtm)")
	_ = optDiffCmd.MarkFlagRequired("size")

	optimizeCmd.Flags().IntVarP(&optimizeFlags.length, "length", "l", 0, "window length to re-solve")
	optimizeCmd.Flags().StringVarP(&optimizeFlags.metric, "metric", "m", "stm", "length metric (stm or mtm)")
	_ = optimizeCmd.MarkFlagRequired("length")

	renderCmd.Flags().StringVarP(&renderFlags.label, "label", "l", "fringe", "tile label scheme")
	renderCmd.Flags().StringVarP(&renderFlags.coloring, "coloring", "c", "rainbow", "tile coloring scheme")
	renderCmd.Flags().Float64VarP(&renderFlags.tileSize, "tile-size", "t", 75.0, "tile size in pixels")
	renderCmd.Flags().StringVarP(&renderFlags.output, "output", "o", "", "output file")
	_ = renderCmd.MarkFlagRequired("output")

	simplifyCmd.Flags().BoolVarP(&simplifyFlags.verbose, "verbose", "v", false, "print length statistics")

	sliceCmd.Flags().IntVarP(&sliceFlags.start, "start", "s", 0, "first move of the slice")
	sliceCmd.Flags().IntVarP(&sliceFlags.end, "end", "e", -1, "end of the slice (defaults to the end)")

	solveCmd.Flags().StringVarP(&solveFlags.metric, "metric", "m", "stm", "length metric (stm or mtm)")
	solveCmd.Flags().BoolVarP(&solveFlags.verbose, "verbose", "v", false, "print the solution length")

	rootCmd.AddCommand(
		applyCmd, applyToSolvedCmd, concatCmd, embedCmd, filterOptimalCmd,
		formatCmd, formatStateCmd, fromSolutionCmd, generateCmd, invertCmd,
		lengthCmd, mdCmd, optDiffCmd, optimizeCmd, renderCmd, simplifyCmd,
		sliceCmd, solvableCmd, solveCmd,
	)
}
