// Package mazer generates and solves mazes on square, hexagonal and
// triangular grids.
//
// What is mazer?
//
//	A small maze engine with a library core and thin outer surfaces:
//		- topology  - neighbor rules for Orthogonal, Sigma (hex) and Delta (triangle) cells
//		- grid      - cells, symmetric links, reachability and ASCII rendering
//		- generator - thirteen carving algorithms plus dead-end braiding
//		- solver    - BFS distances and the shortest start→goal path
//		- engine    - validation, seeding, start/goal policy, batches
//		- export    - flat per-cell records, JSON/MessagePack, handle registry
//		- request   - JSON and HCL request documents
//		- httpapi   - gin routes over the engine and registry
//
// Quick start
//
//	e, _ := engine.New()
//	seed := int64(42)
//	m, err := e.Generate(engine.Request{
//		Family:    topology.Orthogonal,
//		Width:     5,
//		Height:    5,
//		Algorithm: generator.BinaryTree,
//		Seed:      &seed,
//	})
//	art, _ := m.Grid.ASCII()
//
// Determinism
//
//	Every random choice comes from one *rand.Rand seeded per request, and no
//	choice depends on map iteration. (Request, Seed) reproduces a maze
//	exactly; Maze.Seed reports the seed even when the engine drew it.
//
// Command line
//
//	cmd/mazer reads a JSON or HCL request file and prints json, msgpack or
//	ascii output, or serves the HTTP API with -serve ADDR.
package mazer
