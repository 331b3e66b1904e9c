package solver

import (
	"container/heap"
	"context"
	"fmt"

	"github.com/vk/turnmaze/internal/ctxlog"
	"github.com/vk/turnmaze/internal/maze"
)

const (
	// MoveCost is charged for every step onto a neighbouring tile.
	MoveCost = 1
	// TurnCost is charged when a step leaves in a direction other than the
	// current facing.
	TurnCost = 1000
)

// StartFacing is the facing of the start tile before the first move.
const StartFacing = maze.East

// Result is the outcome of a single Solve call.
type Result struct {
	Found    bool
	Cost     int // best path cost, meaningful only when Found
	Expanded int // frontier pushes, including the start tile
	Start    maze.Position
	End      maze.Position

	// Predecessors maps a tile index to the index of the tile it was last
	// relaxed from.
	Predecessors map[int]int
}

// Solve searches g for the cheapest route from its start tile to its end
// tile. The search state of every tile is reset first and left filled in
// afterwards. An unreachable end is reported through Result.Found, not as an
// error.
func Solve(ctx context.Context, g *maze.Grid) (Result, error) {
	logger := ctxlog.FromContext(ctx)

	g.Reset()

	start, end, err := endpoints(g)
	if err != nil {
		return Result{}, err
	}
	startIdx, _ := g.Index(start)
	endIdx, _ := g.Index(end)
	logger.Debug("Search initialized.", "width", g.Width(), "height", g.Height(), "start", start.String(), "end", end.String())

	res := Result{
		Expanded:     1,
		Start:        start,
		End:          end,
		Predecessors: make(map[int]int),
	}

	startTile, err := g.Tile(startIdx)
	if err != nil {
		return Result{}, err
	}
	startTile.State.Facing = StartFacing
	startTile.State.Reached = true

	open := &frontier{}
	seq := 0
	heap.Push(open, entry{index: startIdx, seq: seq})

	for open.Len() > 0 {
		current := heap.Pop(open).(entry)
		tile, err := g.Tile(current.index)
		if err != nil {
			return Result{}, err
		}
		if tile.State.Cost != current.cost {
			continue
		}

		if current.index == endIdx {
			res.Found = true
			res.Cost = tile.State.Cost
			break
		}

		for _, dir := range maze.Directions() {
			next, err := g.At(tile.Pos.Add(dir.Delta()))
			if err != nil || next.Kind == maze.Wall {
				continue
			}

			cost := tile.State.Cost + MoveCost
			if dir != tile.State.Facing {
				cost += TurnCost
			}
			if next.State.Reached && cost >= next.State.Cost {
				continue
			}

			next.State.Facing = dir
			next.State.Reached = true
			next.State.Cost = cost
			next.State.Estimate = Estimate(next.Pos, dir, end)

			nextIdx, _ := g.Index(next.Pos)
			res.Predecessors[nextIdx] = current.index

			seq++
			heap.Push(open, entry{index: nextIdx, cost: cost, estimate: next.State.Estimate, seq: seq})
			res.Expanded++
		}
	}

	if res.Found {
		logger.Debug("Search reached the end tile.", "cost", res.Cost, "expanded", res.Expanded)
	} else {
		logger.Debug("Search exhausted the frontier.", "expanded", res.Expanded)
	}
	return res, nil
}

// endpoints locates the single start and single end tile.
func endpoints(g *maze.Grid) (maze.Position, maze.Position, error) {
	starts := g.Find(maze.Start)
	ends := g.Find(maze.End)

	switch {
	case len(starts) == 0 || len(ends) == 0:
		return maze.Position{}, maze.Position{}, &ConfigError{Reason: "maze must have a start (S) and an end (E)"}
	case len(starts) > 1:
		return maze.Position{}, maze.Position{}, &ConfigError{Reason: fmt.Sprintf("maze has %d start tiles, expected 1", len(starts))}
	case len(ends) > 1:
		return maze.Position{}, maze.Position{}, &ConfigError{Reason: fmt.Sprintf("maze has %d end tiles, expected 1", len(ends))}
	}
	return starts[0], ends[0], nil
}
