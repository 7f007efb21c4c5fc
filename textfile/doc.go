/*
Package textfile loads words from text files into counting trees.

Text is split into tokens at line break opportunities, as defined by the
Unicode line breaking algorithm (UAX #14), with surrounding white space
removed. HTML files contribute the text of their element nodes, without
scripts and style sheets.

Tokens serve as realistic values for the benchmark harness:

	tokens, err := textfile.FileTokens("lorem.txt")
	runner := bench.NewRunner(cfg, textfile.ValueSource(tokens))

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package textfile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'seqtree'
func tracer() tracing.Trace {
	return tracing.Select("seqtree")
}
