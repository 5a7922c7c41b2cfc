package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/benwh1/slidy-cli/alg"
)

func runConcat(cmd *cobra.Command, args []string) error {
	prefix, err := alg.Parse(concatFlags.prefix)
	if err != nil {
		return fmt.Errorf("parsing prefix: %w", err)
	}
	suffix, err := alg.Parse(concatFlags.suffix)
	if err != nil {
		return fmt.Errorf("parsing suffix: %w", err)
	}
	return app.forEachAlg(optionalArg(args), func(a *alg.Algorithm) error {
		_, err := fmt.Fprintln(app.out, alg.Concat(prefix, a, suffix))
		return err
	})
}

func runFormat(cmd *cobra.Command, args []string) error {
	return app.forEachAlg(optionalArg(args), func(a *alg.Algorithm) error {
		var s string
		switch {
		case formatFlags.long && formatFlags.spaced:
			s = a.DisplayLongSpaced()
		case formatFlags.long:
			s = a.DisplayLongUnspaced()
		case formatFlags.spaced:
			s = a.DisplayShortSpaced()
		default:
			s = a.String()
		}
		_, err := fmt.Fprintln(app.out, s)
		return err
	})
}

func runInvert(cmd *cobra.Command, args []string) error {
	return app.forEachAlg(optionalArg(args), func(a *alg.Algorithm) error {
		_, err := fmt.Fprintln(app.out, a.Inverse())
		return err
	})
}

func runLength(cmd *cobra.Command, args []string) error {
	metric, err := alg.ParseMetric(lengthFlags.metric)
	if err != nil {
		return err
	}
	return app.forEachAlg(optionalArg(args), func(a *alg.Algorithm) error {
		_, err := fmt.Fprintln(app.out, a.Len(metric))
		return err
	})
}

func runSimplify(cmd *cobra.Command, args []string) error {
	return app.forEachAlg(optionalArg(args), func(a *alg.Algorithm) error {
		orig := a.LenSTM()
		simplified := a.Simplify()
		if _, err := fmt.Fprintln(app.out, simplified); err != nil {
			return err
		}
		if !simplifyFlags.verbose {
			return nil
		}
		newLen := simplified.LenSTM()
		diff := orig - newLen
		var percent float64
		if orig > 0 {
			percent = float64(diff) * 100 / float64(orig)
		}
		fmt.Fprintf(app.out, "Original length: %d\n", orig)
		_, err := fmt.Fprintf(app.out, "New length: %d [-%d, -%.4f%%]\n", newLen, diff, percent)
		return err
	})
}

func runSlice(cmd *cobra.Command, args []string) error {
	return app.forEachAlg(optionalArg(args), func(a *alg.Algorithm) error {
		end := sliceFlags.end
		if end < 0 {
			end = a.LenSTM()
		}
		s, err := a.Slice(alg.STM, sliceFlags.start, end)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(app.out, s)
		return err
	})
}
