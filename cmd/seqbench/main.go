/*
Seqbench compares counting sequence trees with flat slices.

	seqbench run --sizes 1000,10000,100000 --rounds 3
	seqbench run --values words.txt
	seqbench dump --size 12 --dot | dot -Tsvg > tree.svg

Settings may also be given in a NestedText configuration file for app tag
"seqbench", e.g.

	bench:
	  sizes: 1000,50000
	  rounds: 5
	tracelevel:
	  seqtree: Info

Flags override configuration file values.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/npillmayer/schuko/schukonf/koanfadapter"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/spf13/cobra"
)

// tracer writes to trace with key 'seqtree'
func tracer() tracing.Trace {
	return tracing.Select("seqtree")
}

// app carries state shared by all sub-commands.
type app struct {
	conf       *koanfadapter.KConf
	traceLevel string
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "seqbench",
		Short: "Benchmark counting sequence trees against flat slices",
		Long: `Seqbench inserts values at pseudo-random positions into a counting
sequence tree and into a flat slice, and reports timings for both.

A counting tree stores the size of every subtree in its nodes and therefore
finds an insertion position without shifting elements.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	root.PersistentFlags().StringVar(&a.traceLevel, "trace", "",
		"trace level (Debug, Info or Error)")
	root.AddCommand(newRunCmd(a))
	root.AddCommand(newDumpCmd(a))
	return root
}

// setup loads the configuration and initializes tracing.
func (a *app) setup(cmd *cobra.Command) error {
	a.conf = koanfadapter.New(nil, "seqbench", []string{".nt"})
	a.conf.InitDefaults()
	if a.traceLevel != "" {
		a.conf.Set("tracelevel.root", a.traceLevel)
		a.conf.Set("tracelevel.seqtree", a.traceLevel)
	} else if !a.conf.IsSet("tracelevel.seqtree") {
		a.conf.Set("tracelevel.seqtree", "Error")
	}
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	if err := trace2go.ConfigureRoot(a.conf, "tracelevel", trace2go.ReplaceTracers(true)); err != nil {
		return fmt.Errorf("cannot configure tracing: %w", err)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	tracer().Debugf("seqbench %s: tracing configured", cmd.Name())
	return nil
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
