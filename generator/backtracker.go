package generator

import (
	"math/rand"

	"github.com/jmisabella/mazer/grid"
	"github.com/jmisabella/mazer/topology"
)

type recursiveBacktracker struct{}

func (recursiveBacktracker) Algorithm() Algorithm { return RecursiveBacktracker }
func (recursiveBacktracker) Supports(f topology.Family) bool {
	return RecursiveBacktracker.Supports(f)
}

// Carve runs a randomized depth-first search with an explicit stack, so deep
// mazes never grow the goroutine stack.
func (r recursiveBacktracker) Carve(g *grid.Grid, rng *rand.Rand) error {
	if err := prepare(r, g, rng); err != nil {
		return err
	}
	visited := make([]bool, g.Size())
	start := randomIndex(g, rng)
	visited[start] = true
	stack := []int{start}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		open := unvisitedNeighbors(g, top, visited)
		if len(open) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}
		next := indexOf(g, open[rng.Intn(len(open))].At)
		if err := g.Link(g.Coord(top), g.Coord(next)); err != nil {
			return err
		}
		visited[next] = true
		stack = append(stack, next)
	}
	return nil
}
