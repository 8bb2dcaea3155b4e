// Package grid owns the cells of one maze and the links between them.
//
// What:
//
//   - Grid: width×height cells, row-major, under one topology.Topology.
//   - Cell: coordinate, orientation, ordered potential neighbors, link set,
//     distance (NoDistance until solved) and start/goal/path flags.
//   - Link/Unlink: symmetric mutation of the link set.
//   - Structural queries: Links, LinkCount, Reachable, IsConnected, IsPerfect,
//     DeadEnds.
//   - Navigation: SetStart puts the player on the start cell; Move steps it
//     through linked walls, maintaining IsActive, IsVisited (current trail)
//     and HasBeenVisited (history).
//
// Invariants:
//
//   - Every in-range coordinate has exactly one Cell.
//   - Links are symmetric: a.IsLinked(b) ⇔ b.IsLinked(a).
//   - A link only ever joins two topology neighbors.
//   - Once a start is set exactly one cell is active, and the visited cells
//     form a simple linked path from start to it.
//
// Ownership:
//
//   - Grid is not safe for concurrent mutation. One request owns one Grid.
//   - The grid does not choose start or goal cells; callers set them.
//
// Complexity:
//
//   - New: O(W·H). Link/Unlink/IsLinked: O(d) with d ≤ 6.
//   - Reachable/IsConnected/IsPerfect: O(W·H·d).
//
// Errors:
//
//   - ErrValidation:        bad dimensions or parameters.
//   - ErrInvalidCoordinate: coordinate outside the grid.
//   - ErrNotAdjacent:       link between non-neighbors (matches ErrInvalidCoordinate).
//   - ErrUnsupportedRender: ASCII rendering of a non-orthogonal grid.
//   - ErrBlockedMove:       Move through a wall or off the grid.
package grid
