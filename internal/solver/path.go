package solver

import (
	"fmt"
	"slices"

	"github.com/vk/turnmaze/internal/maze"
)

// Trace follows the predecessors of res from the end tile back to the start,
// marks every tile on the way as part of the path, and returns the path in
// start-to-end order. It returns nil when res found no path.
func Trace(g *maze.Grid, res Result) ([]maze.Position, error) {
	if !res.Found {
		return nil, nil
	}

	startIdx, ok := g.Index(res.Start)
	if !ok {
		return nil, fmt.Errorf("trace: start %s: %w", res.Start, maze.ErrOutOfBounds)
	}
	current, ok := g.Index(res.End)
	if !ok {
		return nil, fmt.Errorf("trace: end %s: %w", res.End, maze.ErrOutOfBounds)
	}

	var path []maze.Position
	for steps := 0; ; steps++ {
		if steps > g.Len() {
			return nil, fmt.Errorf("trace: predecessor chain from %s does not reach %s", res.End, res.Start)
		}

		tile, err := g.Tile(current)
		if err != nil {
			return nil, fmt.Errorf("trace: %w", err)
		}
		tile.State.OnPath = true
		path = append(path, tile.Pos)

		if current == startIdx {
			break
		}
		prev, ok := res.Predecessors[current]
		if !ok {
			return nil, fmt.Errorf("trace: tile %s has no predecessor", tile.Pos)
		}
		current = prev
	}

	slices.Reverse(path)
	return path, nil
}
