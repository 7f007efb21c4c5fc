package bench

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Console writes benchmark results to a (possibly interactive) terminal.
// The faster implementation of every row is highlighted in color.
type Console struct {
	w      io.Writer
	width  int // line width in fixed-width positions
	header *color.Color
	winner *color.Color
	loser  *color.Color
}

// minimum line width to include the tree height column
const wideConsole = 60

// NewConsole creates a console writing to w. If w is a terminal, the line
// width is taken from it, otherwise a width of 72 is assumed.
func NewConsole(w io.Writer) *Console {
	c := &Console{
		w:      w,
		width:  widthOf(w),
		header: color.New(color.Bold),
		winner: color.New(color.FgGreen),
		loser:  color.New(color.FgRed),
	}
	return c
}

// SetWidth overrides the line width. Negative widths are treated as 0.
func (c *Console) SetWidth(width int) {
	c.width = max(0, width)
}

func widthOf(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 72
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width < 30 {
		return 72
	}
	tracer().P("console", "width").Debugf("terminal width is %d", width)
	return width
}

// Follow prints a progress line for every Result received on ch. It returns
// a channel which is closed as soon as ch has been closed and drained.
func (c *Console) Follow(ch <-chan interface{}) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		for msg := range ch {
			if res, ok := msg.(Result); ok {
				c.Progress(res)
			}
		}
	}()
	return done
}

// Progress prints a single line for a finished measurement.
func (c *Console) Progress(res Result) {
	fmt.Fprintf(c.w, "size %d done: tree %s, slice %s\n", res.Size,
		formatDuration(res.Tree), formatDuration(res.Slice))
}

// Report prints a table of all results.
func (c *Console) Report(results []Result) {
	wide := c.width >= wideConsole
	head := fmt.Sprintf("%10s  %12s  %12s  %8s", "size", "tree", "slice", "speedup")
	if wide {
		head += fmt.Sprintf("  %6s  %s", "height", "verified")
	}
	c.header.Fprintln(c.w, head)
	fmt.Fprintln(c.w, strings.Repeat("-", min(len(head), c.width)))
	for _, res := range results {
		treeColor, sliceColor := c.loser, c.winner
		if res.TreeWins() {
			treeColor, sliceColor = c.winner, c.loser
		}
		fmt.Fprintf(c.w, "%10d  ", res.Size)
		treeColor.Fprintf(c.w, "%12s", formatDuration(res.Tree))
		fmt.Fprint(c.w, "  ")
		sliceColor.Fprintf(c.w, "%12s", formatDuration(res.Slice))
		fmt.Fprintf(c.w, "  %7.2fx", res.Speedup())
		if wide {
			verified := "no"
			if res.Verified {
				verified = "yes"
			}
			fmt.Fprintf(c.w, "  %6d  %s", res.Height, verified)
		}
		fmt.Fprintln(c.w)
	}
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Second:
		return d.Round(time.Millisecond).String()
	case d >= time.Millisecond:
		return d.Round(time.Microsecond).String()
	}
	return d.String()
}
