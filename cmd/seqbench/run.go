package main

import (
	"os"
	"os/signal"

	"github.com/npillmayer/seqtree/bench"
	"github.com/npillmayer/seqtree/textfile"
	"github.com/spf13/cobra"
)

type runOptions struct {
	sizes  string
	seed   int64
	rounds int
	verify bool
	values string
}

func newRunCmd(a *app) *cobra.Command {
	opts := &runOptions{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Time random insertions for a list of sequence lengths",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runBench(cmd, opts)
		},
	}
	defaults := bench.DefaultConfig()
	f := cmd.Flags()
	f.StringVar(&opts.sizes, "sizes", "", "comma separated sequence lengths (default 1000,10000,100000)")
	f.Int64Var(&opts.seed, "seed", defaults.Seed, "seed for workload generation")
	f.IntVar(&opts.rounds, "rounds", defaults.Rounds, "timed rounds per length, best one counts")
	f.BoolVar(&opts.verify, "verify", defaults.Verify, "compare tree and slice after every length")
	f.StringVar(&opts.values, "values", "", "text or HTML file to take values from")
	return cmd
}

func (a *app) runBench(cmd *cobra.Command, opts *runOptions) error {
	f := cmd.Flags()
	if f.Changed("sizes") {
		a.conf.Set(bench.KeySizes, opts.sizes)
	}
	if f.Changed("seed") {
		a.conf.Set(bench.KeySeed, opts.seed)
	}
	if f.Changed("rounds") {
		a.conf.Set(bench.KeyRounds, opts.rounds)
	}
	if f.Changed("verify") {
		a.conf.Set(bench.KeyVerify, opts.verify)
	}
	cfg, err := bench.ConfigFrom(a.conf)
	if err != nil {
		return err
	}
	var values func(int) string
	if opts.values != "" {
		tokens, err := textfile.FileTokens(opts.values)
		if err != nil {
			return err
		}
		values = textfile.ValueSource(tokens)
	}
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	//
	runner := bench.NewRunner(cfg, values)
	console := bench.NewConsole(cmd.OutOrStdout())
	var done <-chan struct{}
	if ch, ok := runner.Subscribe(); ok {
		done = console.Follow(ch)
	}
	results, err := runner.Run(ctx)
	if done != nil {
		<-done
	}
	if len(results) > 0 {
		console.Report(results)
	}
	return err
}
