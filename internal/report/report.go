// Package report formats the outcome of a maze run for the console and the
// output file.
package report

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Summary holds the counters reported for one solved maze.
type Summary struct {
	Width    int
	Height   int
	Elapsed  time.Duration
	Expanded int
	Cost     int
	Found    bool
}

// CostText returns the path cost, or "none" when no path was found.
func (s Summary) CostText() string {
	if !s.Found {
		return "none"
	}
	return strconv.Itoa(s.Cost)
}

// Header returns the three summary lines, each terminated by a newline.
func (s Summary) Header() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Dimensions: %d x %d\n", s.Width, s.Height)
	fmt.Fprintf(&sb, "Solved in: %d ms. Search count: %d\n", s.Elapsed.Milliseconds(), s.Expanded)
	fmt.Fprintf(&sb, "Best path cost %s points\n", s.CostText())
	return sb.String()
}

// Document returns the output file contents: the summary header followed by
// the rendered grid.
func Document(s Summary, grid string) string {
	return s.Header() + grid
}
