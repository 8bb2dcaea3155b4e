package generator

import (
	"math/rand"

	"github.com/jmisabella/mazer/grid"
	"github.com/jmisabella/mazer/topology"
)

type aldousBroder struct{}

func (aldousBroder) Algorithm() Algorithm { return AldousBroder }
func (aldousBroder) Supports(f topology.Family) bool { return AldousBroder.Supports(f) }

// Carve performs a random walk from a random cell and links each cell from
// the neighbor it was first entered from. Expected O(N log N) steps on
// well-connected grids; no hard bound.
func (a aldousBroder) Carve(g *grid.Grid, rng *rand.Rand) error {
	if err := prepare(a, g, rng); err != nil {
		return err
	}
	visited := make([]bool, g.Size())
	cur := randomIndex(g, rng)
	visited[cur] = true
	for remaining := g.Size() - 1; remaining > 0; {
		nbrs := g.At(cur).Neighbors()
		next := indexOf(g, nbrs[rng.Intn(len(nbrs))].At)
		if !visited[next] {
			if err := g.Link(g.Coord(cur), g.Coord(next)); err != nil {
				return err
			}
			visited[next] = true
			remaining--
		}
		cur = next
	}
	return nil
}
