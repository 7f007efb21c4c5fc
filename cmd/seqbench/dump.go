package main

import (
	"fmt"

	"github.com/npillmayer/seqtree"
	"github.com/npillmayer/seqtree/bench"
	"github.com/npillmayer/seqtree/textfile"
	"github.com/spf13/cobra"
)

type dumpOptions struct {
	size int
	seed int64
	dot  bool
	file string
}

func newDumpCmd(a *app) *cobra.Command {
	opts := &dumpOptions{}
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Print the structure of a tree built from random insertions",
		Long: `Dump builds a tree from --size insertions at pseudo-random positions
(or from the words of --file, appended in order) and prints its structure,
either as indented text or in Graphviz DOT format.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.dumpTree(cmd, opts)
		},
	}
	f := cmd.Flags()
	f.IntVar(&opts.size, "size", 10, "number of insertions")
	f.Int64Var(&opts.seed, "seed", 1, "seed for workload generation")
	f.BoolVar(&opts.dot, "dot", false, "output Graphviz DOT")
	f.StringVar(&opts.file, "file", "", "text or HTML file to build the tree from")
	return cmd
}

func (a *app) dumpTree(cmd *cobra.Command, opts *dumpOptions) error {
	var tree *seqtree.Tree[string]
	if opts.file != "" {
		t, err := textfile.Load(opts.file)
		if err != nil {
			return err
		}
		tree = t
	} else {
		if opts.size < 0 {
			return fmt.Errorf("%w: negative size %d", bench.ErrInvalidConfig, opts.size)
		}
		tree = seqtree.New[string]()
		if err := bench.Apply[string](tree, bench.Workload(opts.seed, opts.size, bench.Counter)); err != nil {
			return err
		}
	}
	tracer().Infof("dumping tree of length %d, height %d", tree.Len(), tree.Height())
	if opts.dot {
		return seqtree.Tree2Dot(tree, cmd.OutOrStdout())
	}
	return tree.Dump(cmd.OutOrStdout())
}
