package generator

import (
	"math/rand"

	"github.com/jmisabella/mazer/grid"
	"github.com/jmisabella/mazer/topology"
)

type binaryTree struct{}

func (binaryTree) Algorithm() Algorithm { return BinaryTree }
func (binaryTree) Supports(f topology.Family) bool { return BinaryTree.Supports(f) }

// Carve links every cell to its North or East neighbor. Cells on the top row
// or the east column have a single option and consume no randomness; the
// north-east corner links nothing.
func (b binaryTree) Carve(g *grid.Grid, rng *rand.Rand) error {
	if err := prepare(b, g, rng); err != nil {
		return err
	}
	for i := 0; i < g.Size(); i++ {
		c := g.At(i)
		candidates := make([]topology.Coord, 0, 2)
		if n, ok := c.Neighbor(topology.North); ok {
			candidates = append(candidates, n)
		}
		if n, ok := c.Neighbor(topology.East); ok {
			candidates = append(candidates, n)
		}
		var target topology.Coord
		switch len(candidates) {
		case 0:
			continue
		case 1:
			target = candidates[0]
		default:
			target = candidates[rng.Intn(2)]
		}
		if err := g.Link(c.Coord, target); err != nil {
			return err
		}
	}
	return nil
}
