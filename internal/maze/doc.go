// Package maze holds the grid model for turn-weighted mazes: tile kinds,
// facing directions, per-tile search state, and the conversion between the
// textual maze format and a Grid.
//
// # Text Format
//
// One row per line, every row the same length, one tile per character:
//
//	.  empty floor
//	#  wall
//	S  start
//	E  end
//
// Blank lines are ignored. Parse does not check how many start or end tiles
// a maze has; that is decided when a search is initialized.
//
// # Search State
//
// Every Tile carries a SearchState that the solver overwrites during a run.
// Grid.Reset returns all of it to the zero value, which means "not reached,
// no facing, not on the path".
package maze
