package generator

import (
	"math/rand"

	"github.com/jmisabella/mazer/grid"
	"github.com/jmisabella/mazer/topology"
)

// growingTree keeps a list of active cells; pick chooses which one to extend.
type growingTree struct {
	algo Algorithm
	pick func(rng *rand.Rand, n int) int
}

func pickRandom(rng *rand.Rand, n int) int { return rng.Intn(n) }

func pickNewest(_ *rand.Rand, n int) int { return n - 1 }

func (t growingTree) Algorithm() Algorithm { return t.algo }
func (t growingTree) Supports(f topology.Family) bool { return t.algo.Supports(f) }

// Carve starts from a random active cell. Each step extends the picked cell
// to a random unvisited neighbor, or retires it when it has none. Retired
// cells are removed in order so "newest" always means the last one added.
func (t growingTree) Carve(g *grid.Grid, rng *rand.Rand) error {
	if err := prepare(t, g, rng); err != nil {
		return err
	}
	visited := make([]bool, g.Size())
	first := randomIndex(g, rng)
	visited[first] = true
	active := []int{first}

	for len(active) > 0 {
		k := t.pick(rng, len(active))
		cur := active[k]
		open := unvisitedNeighbors(g, cur, visited)
		if len(open) == 0 {
			active = append(active[:k], active[k+1:]...)
			continue
		}
		next := indexOf(g, open[rng.Intn(len(open))].At)
		if err := g.Link(g.Coord(cur), g.Coord(next)); err != nil {
			return err
		}
		visited[next] = true
		active = append(active, next)
	}
	return nil
}
