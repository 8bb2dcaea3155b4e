// Package engine turns a Request into a solved maze.
//
// What
//
//   - Generate validates the request, builds the grid for the requested
//     family, carves it with the requested algorithm, optionally braids it,
//     places start and goal, and solves it.
//   - Batch runs independent requests on a bounded worker pool.
//
// Seeds
//
//	A request seed is used verbatim. Without one the engine draws a seed from
//	its SeedSource and reports it in Maze.Seed, so every maze can be rebuilt
//	from (Request, Seed).
//
// Start and goal
//
//	PolicyCorners (default): (0,0) and (W−1,H−1), each replaceable by an
//	explicit coordinate. PolicyFarthest: the endpoints of a longest shortest
//	path, found with two BFS passes.
//
// Concurrency
//
//	An Engine is safe for concurrent use. Each Generate call owns its grid
//	and *rand.Rand; nothing is shared between calls except the logger and
//	the seed source.
//
// Errors
//
//   - grid.ErrValidation: bad dimensions, 1×1 grids, oversized grids,
//     out-of-range or equal endpoints, bad braid parameters, unknown family
//     or algorithm (the latter two also match their own sentinels).
//   - generator.ErrUnsupportedCombination: algorithm not defined for family.
//   - solver.ErrDisconnectedMaze: goal unreachable; no maze is returned.
//   - ErrOptionViolation: invalid Option passed to New.
package engine
