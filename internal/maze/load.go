package maze

import (
	"fmt"
	"unicode/utf8"

	"github.com/vk/turnmaze/internal/fsutil"
)

// Parse builds a Grid from maze rows. The first row fixes the width.
func Parse(lines []string) (*Grid, error) {
	if len(lines) == 0 {
		return nil, &FormatError{Reason: "maze has no rows"}
	}

	width := utf8.RuneCountInString(lines[0])
	if width == 0 {
		return nil, &FormatError{Line: 1, Reason: "row is empty"}
	}

	g := NewGrid(width, len(lines))
	for y, line := range lines {
		if n := utf8.RuneCountInString(line); n != width {
			return nil, &FormatError{
				Line:   y + 1,
				Reason: fmt.Sprintf("row has %d tiles, expected %d", n, width),
			}
		}
		x := 0
		for _, r := range line {
			kind, ok := ParseKind(r)
			if !ok {
				return nil, &FormatError{
					Line:   y + 1,
					Column: x + 1,
					Reason: fmt.Sprintf("invalid tile %q", r),
				}
			}
			if err := g.Set(Position{X: x, Y: y}, kind); err != nil {
				return nil, err
			}
			x++
		}
	}
	return g, nil
}

// Load reads and parses the maze file at path.
func Load(path string) (*Grid, error) {
	lines, err := fsutil.ReadLines(path)
	if err != nil {
		return nil, err
	}
	g, err := Parse(lines)
	if err != nil {
		return nil, fmt.Errorf("load maze %s: %w", path, err)
	}
	return g, nil
}
