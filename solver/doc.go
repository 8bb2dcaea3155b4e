// Package solver computes breadth-first distances over a carved grid and
// marks the shortest path between two cells.
//
// What
//
//   - Solve: BFS from start over links, writes Distance on every reached cell
//     (unreached cells keep grid.NoDistance) and flags the path to goal.
//   - Distances: the same BFS without touching the grid.
//   - Farthest: the cell with the greatest distance from a source; two calls
//     give the endpoints of a longest shortest path in a perfect maze.
//
// Determinism
//
//	Neighbors are expanded in topology order and the first discoverer becomes
//	the predecessor, so braided mazes with several shortest paths always mark
//	the same one.
//
// Complexity
//
//   - Time:   O(N + L) for N cells and L links.
//   - Memory: O(N).
//
// Errors
//
//   - ErrOutOfRange        start, goal or source outside the grid
//     (matches grid.ErrInvalidCoordinate).
//   - ErrDisconnectedMaze  goal not reachable from start.
package solver
