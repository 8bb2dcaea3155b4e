package generator

import (
	"fmt"
	"math/rand"

	"github.com/jmisabella/mazer/grid"
	"github.com/jmisabella/mazer/topology"
)

type huntAndKill struct{}

func (huntAndKill) Algorithm() Algorithm { return HuntAndKill }
func (huntAndKill) Supports(f topology.Family) bool { return HuntAndKill.Supports(f) }

// Carve random-walks through unvisited cells. When the walk is stuck it scans
// the grid in row-major order for the first unvisited cell bordering the maze,
// links it to a random visited neighbor and resumes from there.
// Complexity: O(N²) worst case for the scans.
func (h huntAndKill) Carve(g *grid.Grid, rng *rand.Rand) error {
	if err := prepare(h, g, rng); err != nil {
		return err
	}
	n := g.Size()
	visited := make([]bool, n)
	cur := randomIndex(g, rng)
	visited[cur] = true

	for count := 1; count < n; count++ {
		if open := unvisitedNeighbors(g, cur, visited); len(open) > 0 {
			next := indexOf(g, open[rng.Intn(len(open))].At)
			if err := g.Link(g.Coord(cur), g.Coord(next)); err != nil {
				return err
			}
			visited[next] = true
			cur = next
			continue
		}

		next, err := hunt(g, rng, visited)
		if err != nil {
			return err
		}
		visited[next] = true
		cur = next
	}
	return nil
}

// hunt links the first unvisited cell adjacent to a visited one and returns it.
func hunt(g *grid.Grid, rng *rand.Rand, visited []bool) (int, error) {
	for i := range visited {
		if visited[i] {
			continue
		}
		done := visitedNeighbors(g, i, visited)
		if len(done) == 0 {
			continue
		}
		if err := g.Link(g.Coord(i), done[rng.Intn(len(done))].At); err != nil {
			return -1, err
		}
		return i, nil
	}
	return -1, fmt.Errorf("%w: hunt found no cell adjacent to the maze", grid.ErrValidation)
}
