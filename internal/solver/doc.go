// Package solver finds the cheapest route through a maze.Grid when stepping
// forward costs MoveCost and turning to a new facing costs TurnCost on top of
// the step.
//
// Solve runs a best-first search over tiles. Each tile keeps one facing and
// one best known cost, the start faces east, and the frontier is ordered by
// g+h with ties going to the larger h and then to the earlier push. Estimate
// is tuned to the turn penalty rather than being a strict lower bound, so it
// only changes the order and number of expansions.
//
// Trace turns a successful Result into the tile path and marks it on the grid
// so that Grid.Render draws the route with arrows.
//
//	res, err := solver.Solve(ctx, grid)
//	if err != nil {
//		return err
//	}
//	if res.Found {
//		if _, err := solver.Trace(grid, res); err != nil {
//			return err
//		}
//	}
//	fmt.Print(grid.Render())
package solver
