package app

import (
	"context"
	"fmt"

	"github.com/vk/turnmaze/internal/config"
	"github.com/vk/turnmaze/internal/ctxlog"
	"github.com/vk/turnmaze/internal/fsutil"
	"github.com/vk/turnmaze/internal/maze"
	"github.com/vk/turnmaze/internal/report"
	"github.com/vk/turnmaze/internal/solver"
)

const noPathNotice = "No path found to the goal."

// Run solves every configured maze in order and stops at the first fatal
// error. A maze without a route is not an error.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	multi := len(a.model.Mazes) > 1
	for _, mz := range a.model.Mazes {
		if multi {
			fmt.Fprintf(a.outW, "[%s]\n", mz.Name)
		}
		if err := a.solveMaze(ctx, mz); err != nil {
			if multi {
				return fmt.Errorf("maze %q: %w", mz.Name, err)
			}
			return err
		}
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// solveMaze runs load, search, trace, render, write and report for one maze.
func (a *App) solveMaze(ctx context.Context, mz *config.Maze) error {
	ctx, logger := ctxlog.With(ctx, "maze", mz.Name)
	logger.Info("Loading maze.", "input", mz.Input)

	grid, err := maze.Load(mz.Input)
	if err != nil {
		return err
	}
	logger.Debug("Maze loaded.", "width", grid.Width(), "height", grid.Height())

	started := a.now()
	res, err := solver.Solve(ctx, grid)
	if err != nil {
		return err
	}
	elapsed := a.now().Sub(started)

	if res.Found {
		path, err := solver.Trace(grid, res)
		if err != nil {
			return err
		}
		logger.Info("🏁 Path found.", "cost", res.Cost, "tiles", len(path), "expanded", res.Expanded)
	} else {
		// Reported regardless of the log level.
		fmt.Fprintln(a.logW, noPathNotice)
		logger.Debug("Frontier exhausted.", "expanded", res.Expanded)
	}

	summary := report.Summary{
		Width:    grid.Width(),
		Height:   grid.Height(),
		Elapsed:  elapsed,
		Expanded: res.Expanded,
		Cost:     res.Cost,
		Found:    res.Found,
	}
	if err := fsutil.WriteFile(mz.Output, report.Document(summary, grid.Render())); err != nil {
		return err
	}
	logger.Info("Output written.", "output", mz.Output)

	fmt.Fprint(a.outW, summary.Header())
	return nil
}
