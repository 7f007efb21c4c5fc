package bench

import (
	"context"
	"fmt"
	"time"

	"github.com/guiguan/caster"
	"github.com/npillmayer/seqtree"
)

// Result holds the measurements for one sequence length.
type Result struct {
	Size     int           // number of insertions
	Tree     time.Duration // best time for the counting tree
	Slice    time.Duration // best time for the flat slice
	Height   int           // height of the resulting tree
	Verified bool          // tree and slice were compared and are equal
}

// TreeWins reports whether the tree was faster than the slice.
func (r Result) TreeWins() bool {
	return r.Tree < r.Slice
}

// Speedup is slice time divided by tree time. Values above 1 mean the tree
// was faster.
func (r Result) Speedup() float64 {
	if r.Tree <= 0 {
		return 0
	}
	return float64(r.Slice) / float64(r.Tree)
}

// Runner executes a benchmark configuration.
//
// Each finished Result is published to all subscribers. A Runner is meant to
// run once: when Run returns, the broadcast is closed and subscriber channels
// drain and close.
type Runner struct {
	cfg    Config
	values func(int) string
	cast   *caster.Caster
}

// NewRunner creates a runner for cfg. values supplies the value for each
// insertion; if it is nil, Counter is used.
func NewRunner(cfg Config, values func(int) string) *Runner {
	if values == nil {
		values = Counter
	}
	return &Runner{
		cfg:    cfg,
		values: values,
		cast:   caster.New(nil), // we will broadcast a Result for every size
	}
}

// Subscribe returns a channel receiving a Result for every finished size.
// Subscribers must keep reading until the channel is closed.
func (r *Runner) Subscribe() (<-chan interface{}, bool) {
	return r.cast.Sub(context.Background(), 1)
}

// Run measures every configured size in turn. It checks ctx between sizes
// and returns the results collected so far together with ctx's error if it
// has been cancelled.
func (r *Runner) Run(ctx context.Context) ([]Result, error) {
	defer r.cast.Close()
	if err := r.cfg.validate(); err != nil {
		return nil, err
	}
	results := make([]Result, 0, len(r.cfg.Sizes))
	for _, size := range r.cfg.Sizes {
		if err := ctx.Err(); err != nil {
			tracer().Infof("bench: cancelled before size %d", size)
			return results, err
		}
		res, err := r.measure(size)
		if err != nil {
			tracer().Errorf("bench: size %d: %v", size, err)
			return results, err
		}
		tracer().P("size", size).Infof("tree=%v slice=%v height=%d", res.Tree, res.Slice, res.Height)
		results = append(results, res)
		r.cast.Pub(res)
	}
	return results, nil
}

func (r *Runner) measure(size int) (Result, error) {
	ops := Workload(r.cfg.Seed+int64(size), size, r.values)
	res := Result{Size: size}
	var tree *seqtree.Tree[string]
	var slice *Slice[string]
	for round := 0; round < r.cfg.Rounds; round++ {
		tree = seqtree.New[string]()
		d, err := timed(tree, ops)
		if err != nil {
			return res, err
		}
		if round == 0 || d < res.Tree {
			res.Tree = d
		}
		slice = &Slice[string]{}
		d, err = timed(slice, ops)
		if err != nil {
			return res, err
		}
		if round == 0 || d < res.Slice {
			res.Slice = d
		}
	}
	res.Height = tree.Height()
	if r.cfg.Verify {
		if pos, ok := Equal[string](tree, slice); !ok {
			return res, fmt.Errorf("%w: size %d, first difference at position %d", ErrMismatch, size, pos)
		}
		if tree.Len() != size {
			return res, fmt.Errorf("%w: tree holds %d elements, expected %d", ErrMismatch, tree.Len(), size)
		}
		res.Verified = true
	}
	return res, nil
}

func timed(seq Sequence[string], ops []Op[string]) (time.Duration, error) {
	start := time.Now()
	err := Apply(seq, ops)
	return time.Since(start), err
}
