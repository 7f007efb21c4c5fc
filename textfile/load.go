package textfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/seqtree"
	"github.com/npillmayer/seqtree/bench"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax14"
)

// Tokens splits the text read from r at line break opportunities. Every
// token is trimmed of white space; empty tokens are dropped.
func Tokens(r io.Reader) ([]string, error) {
	linewrap := uax14.NewLineWrap()
	segmenter := segment.NewSegmenter(linewrap)
	br := bufio.NewReader(r)
	segmenter.Init(br)
	tokens := make([]string, 0, 64)
	for segmenter.Next() {
		token := strings.TrimSpace(string(segmenter.Bytes()))
		if token == "" {
			continue
		}
		tokens = append(tokens, token)
	}
	// the segmenter stops silently on read errors, so we check the reader
	if _, err := br.Peek(1); err != nil && err != io.EOF {
		return tokens, err
	}
	return tokens, nil
}

// FileTokens reads the tokens of a file. Files with a suffix of ".html" or
// ".htm" are read as HTML, all others as plain UTF-8 text.
func FileTokens(name string) ([]string, error) {
	f, err := openFile(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var tokens []string
	switch strings.ToLower(filepath.Ext(name)) {
	case ".html", ".htm":
		tokens, err = HTMLTokens(f)
	default:
		tokens, err = Tokens(f)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	tracer().P("file", name).Debugf("loaded %d tokens", len(tokens))
	return tokens, nil
}

// Load reads the tokens of a file (see FileTokens) and appends them to a new
// tree, in the order they appear in the file.
func Load(name string) (*seqtree.Tree[string], error) {
	tokens, err := FileTokens(name)
	if err != nil {
		return nil, err
	}
	return seqtree.FromValues(tokens...), nil
}

// ValueSource returns a function suitable as a value source for the
// benchmark runner. It cycles through tokens. If tokens is empty,
// bench.Counter is returned.
func ValueSource(tokens []string) func(int) string {
	if len(tokens) == 0 {
		return bench.Counter
	}
	return func(i int) string {
		return tokens[i%len(tokens)]
	}
}

// openFile opens an OS file for reading, checking that it is a regular file.
func openFile(name string) (*os.File, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("%s is not a regular file", name)
	}
	return os.Open(name) // just open for read access
}
