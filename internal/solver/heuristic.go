package solver

import "github.com/vk/turnmaze/internal/maze"

// Estimate returns the heuristic remaining cost from a tile at from, reached
// while facing, to goal. It charges the Manhattan distance, one turn when the
// facing differs from the direction towards the goal, and one more turn when
// from and goal share neither a row nor a column.
func Estimate(from maze.Position, facing maze.Direction, goal maze.Position) int {
	dx := abs(from.X - goal.X)
	dy := abs(from.Y - goal.Y)

	rotation := 0
	if facing != desiredDirection(from, goal) {
		rotation += TurnCost
	}
	if from.X != goal.X && from.Y != goal.Y {
		rotation += TurnCost
	}
	return dx + dy + rotation
}

// desiredDirection prefers the horizontal direction towards goal, then the
// vertical one.
func desiredDirection(from, goal maze.Position) maze.Direction {
	switch {
	case from.X < goal.X:
		return maze.East
	case from.X > goal.X:
		return maze.West
	case from.Y < goal.Y:
		return maze.South
	default:
		return maze.North
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
