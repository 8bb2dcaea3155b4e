package generator

import (
	"math/rand"

	"github.com/jmisabella/mazer/grid"
	"github.com/jmisabella/mazer/topology"
)

type reverseDelete struct{}

func (reverseDelete) Algorithm() Algorithm { return ReverseDelete }
func (reverseDelete) Supports(f topology.Family) bool { return ReverseDelete.Supports(f) }

// Carve links the whole grid, then visits the links in shuffled order and
// removes each one whose endpoints stay connected without it.
// Complexity: O(E·N); intended for small and medium grids.
func (r reverseDelete) Carve(g *grid.Grid, rng *rand.Rand) error {
	if err := prepare(r, g, rng); err != nil {
		return err
	}
	if err := linkAll(g); err != nil {
		return err
	}
	edges := g.Links()
	rng.Shuffle(len(edges), func(i, j int) { edges[i], edges[j] = edges[j], edges[i] })

	seen := make([]bool, g.Size())
	for _, e := range edges {
		if !connectedWithout(g, e, seen) {
			continue
		}
		if err := g.Unlink(e.A, e.B); err != nil {
			return err
		}
	}
	return nil
}

// connectedWithout reports whether e.B is reachable from e.A over links other
// than e itself. seen is scratch space of length g.Size().
func connectedWithout(g *grid.Grid, e grid.Edge, seen []bool) bool {
	for i := range seen {
		seen[i] = false
	}
	from, to := indexOf(g, e.A), indexOf(g, e.B)
	seen[from] = true
	queue := []int{from}
	for qi := 0; qi < len(queue); qi++ {
		cur := queue[qi]
		for _, nb := range g.At(cur).Linked() {
			j := indexOf(g, nb.At)
			if cur == from && j == to {
				continue
			}
			if j == to {
				return true
			}
			if !seen[j] {
				seen[j] = true
				queue = append(queue, j)
			}
		}
	}
	return false
}
