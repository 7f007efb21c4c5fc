package textfile

import (
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HTMLTokens parses an HTML document and tokenizes the textual content of its
// nodes. It resembles splitting
//
//	document.body.innerText
//
// into words, except that CSS styling is not respected. Text inside script
// and style elements is skipped.
func HTMLTokens(r io.Reader) ([]string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	var b strings.Builder
	collectText(doc, &b)
	return Tokens(strings.NewReader(b.String()))
}

func collectText(n *html.Node, b *strings.Builder) {
	switch n.Type {
	case html.ElementNode:
		if n.DataAtom == atom.Script || n.DataAtom == atom.Style {
			return
		}
	case html.TextNode:
		b.WriteString(n.Data)
		b.WriteByte(' ') // text of adjacent elements must not run together
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b)
	}
}
