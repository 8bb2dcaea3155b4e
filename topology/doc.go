// Package topology defines the coordinate systems and neighbor rules of the
// maze families supported by mazer.
//
// What:
//
//   - Coord: an (X, Y) pair, X is the column and Y the row (Y = 0 is north).
//   - Orientation: closed set None, Up, Down. Only Delta cells carry Up/Down.
//   - Direction: a named neighbor slot (North, Northeast, West, ...).
//   - Topology: a stateless policy returning the ordered potential neighbors of
//     a coordinate inside width×height bounds.
//
// Families:
//
//   - Orthogonal: square cells, neighbors N, E, S, W.
//   - Sigma:      flat-topped hexagons in columns; odd columns sit half a cell
//     lower. Neighbors N, NE, SE, S, SW, NW.
//   - Delta:      triangles alternating Up/Down by (x+y) parity. Neighbors W, E
//     plus S (Up cells) or N (Down cells).
//
// Guarantees:
//
//   - Determinism: Neighbors always returns the same order for the same input.
//   - Symmetry: if B is a neighbor of A in direction d, A is a neighbor of B in
//     Opposite(d).
//   - No wraparound: out-of-range neighbors are omitted.
//
// Complexity:
//
//   - Neighbors: O(1) time, at most 6 results.
//
// Errors:
//
//   - ErrUnknownFamily: family name or value is not one of the supported families.
package topology
