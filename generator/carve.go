package generator

import (
	"fmt"
	"math/rand"

	"github.com/jmisabella/mazer/grid"
	"github.com/jmisabella/mazer/topology"
)

// prepare validates the common Carve preconditions: non-nil inputs, a
// supported family and a grid without links.
func prepare(gen Generator, g *grid.Grid, rng *rand.Rand) error {
	if g == nil {
		return fmt.Errorf("%w: %s: grid is nil", grid.ErrValidation, gen.Algorithm())
	}
	if rng == nil {
		return fmt.Errorf("%w: %s: rng is required", grid.ErrValidation, gen.Algorithm())
	}
	if !gen.Supports(g.Family()) {
		return fmt.Errorf("%w: %s on %s", ErrUnsupportedCombination, gen.Algorithm(), g.Family())
	}
	if g.LinkCount() != 0 {
		return fmt.Errorf("%w: %s: grid already has %d links", grid.ErrValidation, gen.Algorithm(), g.LinkCount())
	}
	if !spannable(g) {
		return fmt.Errorf("%w: %s: %dx%d %s grid has unreachable cells",
			grid.ErrValidation, gen.Algorithm(), g.Width(), g.Height(), g.Family())
	}
	return nil
}

// spannable reports whether the neighbor graph (links ignored) is connected.
// A one-column delta grid taller than two rows is not.
func spannable(g *grid.Grid) bool {
	seen := make([]bool, g.Size())
	queue := []int{0}
	seen[0] = true
	for qi := 0; qi < len(queue); qi++ {
		for _, n := range g.At(queue[qi]).Neighbors() {
			j := indexOf(g, n.At)
			if !seen[j] {
				seen[j] = true
				queue = append(queue, j)
			}
		}
	}
	return len(queue) == g.Size()
}

// randomIndex picks a uniformly random cell index.
func randomIndex(g *grid.Grid, rng *rand.Rand) int {
	return rng.Intn(g.Size())
}

// indexOf maps a neighbor coordinate to its cell index. Neighbors produced by
// the grid's topology are always in bounds.
func indexOf(g *grid.Grid, c topology.Coord) int {
	return c.Y*g.Width() + c.X
}

// unvisitedNeighbors returns the neighbors of cell idx not marked in visited.
func unvisitedNeighbors(g *grid.Grid, idx int, visited []bool) []topology.Neighbor {
	nbrs := g.At(idx).Neighbors()
	out := make([]topology.Neighbor, 0, len(nbrs))
	for _, n := range nbrs {
		if !visited[indexOf(g, n.At)] {
			out = append(out, n)
		}
	}
	return out
}

// visitedNeighbors returns the neighbors of cell idx marked in visited.
func visitedNeighbors(g *grid.Grid, idx int, visited []bool) []topology.Neighbor {
	nbrs := g.At(idx).Neighbors()
	out := make([]topology.Neighbor, 0, len(nbrs))
	for _, n := range nbrs {
		if visited[indexOf(g, n.At)] {
			out = append(out, n)
		}
	}
	return out
}

// linkAll links every pair of neighbors. Used by algorithms that carve by
// removing links from a fully open grid.
func linkAll(g *grid.Grid) error {
	for i := 0; i < g.Size(); i++ {
		c := g.At(i)
		for _, n := range c.Neighbors() {
			if indexOf(g, n.At) < i {
				continue
			}
			if err := g.Link(c.Coord, n.At); err != nil {
				return err
			}
		}
	}
	return nil
}

// edgeList returns every neighbor pair once, A before B in row-major order.
func edgeList(g *grid.Grid) []grid.Edge {
	var out []grid.Edge
	for i := 0; i < g.Size(); i++ {
		c := g.At(i)
		for _, n := range c.Neighbors() {
			if indexOf(g, n.At) > i {
				out = append(out, grid.Edge{A: c.Coord, B: n.At})
			}
		}
	}
	return out
}
