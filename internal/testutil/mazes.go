package testutil

import "strings"

// ReferenceMaze is a maze with a known best path cost.
type ReferenceMaze struct {
	Name   string
	Text   string
	Width  int
	Height int
	Cost   int
}

// Example1 is the first well-known reference maze.
var Example1 = ReferenceMaze{
	Name:   "example1",
	Width:  15,
	Height: 15,
	Cost:   7036,
	Text: `###############
#.......#....E#
#.#.###.#.###.#
#.....#.#...#.#
#.###.#####.#.#
#.#.#.......#.#
#.#.#####.###.#
#...........#.#
###.#.#####.#.#
#...#.....#.#.#
#.#.#.###.#.#.#
#.....#...#.#.#
#.###.#.#.#.#.#
#S..#.....#...#
###############
`,
}

// Example2 is the second, harder reference maze.
var Example2 = ReferenceMaze{
	Name:   "example2",
	Width:  17,
	Height: 17,
	Cost:   11048,
	Text: `#################
#...#...#...#..E#
#.#.#.#.#.#.#.#.#
#.#.#.#...#...#.#
#.#.#.#.###.#.#.#
#...#.#.#.....#.#
#.#.#.#.#.#####.#
#.#...#.#.#.....#
#.#.#####.#.###.#
#.#.#.......#...#
#.#.###.#####.###
#.#.#...#.....#.#
#.#.#.#####.###.#
#.#.#.........#.#
#.#.#.#########.#
#S#.............#
#################
`,
}

// Lines splits maze text into its non-blank rows.
func (m ReferenceMaze) Lines() []string {
	return Lines(m.Text)
}

// Lines splits text into non-blank lines.
func Lines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// Maze joins rows into maze text with a trailing newline.
func Maze(rows ...string) string {
	return strings.Join(rows, "\n") + "\n"
}
