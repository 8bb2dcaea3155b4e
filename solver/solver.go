package solver

import (
	"fmt"

	"github.com/jmisabella/mazer/grid"
	"github.com/jmisabella/mazer/topology"
)

// bfs returns per-cell distances and predecessors from src. Unreached cells
// have distance grid.NoDistance and predecessor -1.
func bfs(g *grid.Grid, src int) (dist, prev []int, reached int) {
	n := g.Size()
	dist = make([]int, n)
	prev = make([]int, n)
	for i := range dist {
		dist[i] = grid.NoDistance
		prev[i] = -1
	}
	dist[src] = 0
	queue := make([]int, 1, n)
	queue[0] = src
	for qi := 0; qi < len(queue); qi++ {
		cur := queue[qi]
		for _, nb := range g.At(cur).Linked() {
			j, _ := g.Index(nb.At)
			if dist[j] != grid.NoDistance {
				continue
			}
			dist[j] = dist[cur] + 1
			prev[j] = cur
			queue = append(queue, j)
		}
	}
	return dist, prev, len(queue)
}

func index(g *grid.Grid, c topology.Coord, role string) (int, error) {
	idx, err := g.Index(c)
	if err != nil {
		return -1, fmt.Errorf("%w: %s %v", ErrOutOfRange, role, c)
	}
	return idx, nil
}

// Solve runs BFS from start, records each reached cell's Distance, and marks
// OnSolutionPath on the distance[goal]+1 cells of the path. Previous
// distances and path flags are cleared first.
//
// Returns ErrOutOfRange for endpoints outside the grid and ErrDisconnectedMaze
// if goal is unreachable; in the latter case distances are still written.
func Solve(g *grid.Grid, start, goal topology.Coord) (*Solution, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	si, err := index(g, start, "start")
	if err != nil {
		return nil, err
	}
	gi, err := index(g, goal, "goal")
	if err != nil {
		return nil, err
	}

	g.ResetSolution()
	dist, prev, reached := bfs(g, si)
	for i, d := range dist {
		g.At(i).Distance = d
	}
	if dist[gi] == grid.NoDistance {
		return nil, fmt.Errorf("%w: %v → %v (%d of %d cells reachable)",
			ErrDisconnectedMaze, start, goal, reached, g.Size())
	}

	path := make([]topology.Coord, dist[gi]+1)
	for i, cur := len(path)-1, gi; i >= 0; i, cur = i-1, prev[cur] {
		c := g.At(cur)
		c.OnSolutionPath = true
		path[i] = c.Coord
	}
	return &Solution{Path: path, Length: dist[gi], Reached: reached}, nil
}

// Distances returns the BFS distance of every cell from "from" in row-major
// order without modifying the grid.
func Distances(g *grid.Grid, from topology.Coord) ([]int, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	src, err := index(g, from, "source")
	if err != nil {
		return nil, err
	}
	dist, _, _ := bfs(g, src)
	return dist, nil
}

// Farthest returns the reachable cell farthest from "from" and its distance.
// Ties go to the lowest row-major index.
func Farthest(g *grid.Grid, from topology.Coord) (topology.Coord, int, error) {
	dist, err := Distances(g, from)
	if err != nil {
		return topology.Coord{}, 0, err
	}
	best := 0
	for i, d := range dist {
		if d > dist[best] {
			best = i
		}
	}
	return g.Coord(best), dist[best], nil
}
