/*
Package bench measures counting trees against a flat slice.

The harness feeds both sequence implementations the same list of
pseudo-random (position, value) insertions, times them, and optionally
verifies that both end up holding the same sequence. Results are broadcast
while the harness is running, so a console (or any other subscriber) can show
progress for long runs.

	cfg := bench.DefaultConfig()
	runner := bench.NewRunner(cfg, bench.Counter)
	ch, _ := runner.Subscribe()
	console := bench.NewConsole(os.Stdout)
	done := console.Follow(ch)
	results, err := runner.Run(ctx)
	<-done
	console.Report(results)

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package bench

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'seqtree'
func tracer() tracing.Trace {
	return tracing.Select("seqtree")
}

var (
	// ErrInvalidConfig signals an invalid harness configuration.
	ErrInvalidConfig = errors.New("bench: invalid configuration")
	// ErrMismatch signals that tree and slice disagree after replaying the
	// same workload.
	ErrMismatch = errors.New("bench: sequences differ")
)
