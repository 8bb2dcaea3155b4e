package generator

import (
	"math/rand"

	"github.com/jmisabella/mazer/grid"
	"github.com/jmisabella/mazer/topology"
)

type prims struct{}

func (prims) Algorithm() Algorithm { return Prims }
func (prims) Supports(f topology.Family) bool { return Prims.Supports(f) }

// frontierEdge joins a tree cell to a cell that was outside the tree when the
// edge was queued.
type frontierEdge struct{ from, to int }

// Carve grows one tree from a random cell. Each step removes a uniformly
// random frontier edge and links it if its far end is still outside the tree.
// Complexity: O(E) edges queued, each removed in O(1).
func (p prims) Carve(g *grid.Grid, rng *rand.Rand) error {
	if err := prepare(p, g, rng); err != nil {
		return err
	}
	inTree := make([]bool, g.Size())
	var frontier []frontierEdge
	grow := func(idx int) {
		inTree[idx] = true
		for _, nb := range g.At(idx).Neighbors() {
			if j := indexOf(g, nb.At); !inTree[j] {
				frontier = append(frontier, frontierEdge{from: idx, to: j})
			}
		}
	}

	grow(randomIndex(g, rng))
	for len(frontier) > 0 {
		k := rng.Intn(len(frontier))
		e := frontier[k]
		frontier[k] = frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]
		if inTree[e.to] {
			continue
		}
		if err := g.Link(g.Coord(e.from), g.Coord(e.to)); err != nil {
			return err
		}
		grow(e.to)
	}
	return nil
}
