// Package generator carves passages into an empty grid.Grid, producing a
// connected maze.
//
// What:
//
//   - Algorithm: closed enumeration of carving strategies.
//   - Generator: one strategy; Carve links cells using only the supplied
//     *rand.Rand, so a seed fully determines the result.
//   - Braid: optional post-pass that removes dead ends by adding links.
//
// Algorithms:
//
//	BinaryTree           Orthogonal   biased, per-cell North/East choice
//	Sidewinder           Orthogonal   row runs closed by a North link
//	Ellers               Orthogonal   row-by-row set merging
//	RecursiveDivision    Orthogonal   walls with one passage, recursively
//	AldousBroder         all          random walk, uniform spanning tree
//	Wilsons              all          loop-erased walks, uniform spanning tree
//	RecursiveBacktracker all          randomized depth-first search
//	HuntAndKill          all          random walk plus row-major hunt
//	Prims                all          random frontier edge
//	Kruskals             all          shuffled edges + union-find
//	GrowingTreeRandom    all          growing tree, random active cell
//	GrowingTreeNewest    all          growing tree, newest active cell
//	ReverseDelete        all          drop shuffled links that keep connectivity
//
// Every algorithm except Braid produces a perfect maze: W·H−1 links and no
// cycles. AldousBroder and Wilsons terminate with probability 1 but have no
// hard step bound; prefer the tree/frontier based algorithms under strict
// latency budgets.
//
// Concurrency:
//
//   - Generators are stateless values. *rand.Rand and *grid.Grid are not
//     goroutine-safe; give every request its own.
//
// Errors:
//
//   - ErrUnsupportedCombination: algorithm not defined for the grid's family.
//   - ErrUnknownAlgorithm:       name or value outside the enumeration.
//   - grid.ErrValidation:        nil inputs, non-empty grid, bad braid parameters.
package generator
