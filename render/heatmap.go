package render

import (
	"sort"

	"github.com/jmisabella/mazer/grid"
	"github.com/jmisabella/mazer/topology"
)

// Shades is the number of heatmap buckets.
const Shades = 10

// ShadeIndex buckets distance into [0, Shades) relative to maxDistance.
// A zero maxDistance always yields 0.
func ShadeIndex(distance, maxDistance int) int {
	if maxDistance <= 0 {
		return 0
	}
	return min(distance*Shades/maxDistance, Shades-1)
}

// Heatmap returns the shade of every cell in row-major order, relative to
// the largest solved distance. Cells the solver never reached get -1.
func Heatmap(g *grid.Grid) []int {
	maxDistance := 0
	for _, c := range g.Cells() {
		maxDistance = max(maxDistance, c.Distance)
	}
	out := make([]int, g.Size())
	for i, c := range g.Cells() {
		if c.Distance == grid.NoDistance {
			out[i] = -1
			continue
		}
		out[i] = ShadeIndex(c.Distance, maxDistance)
	}
	return out
}

// SolutionOrder lists the solution-path cells not on the player's trail,
// sorted by distance from the start.
func SolutionOrder(g *grid.Grid) []topology.Coord {
	var cells []*grid.Cell
	for i := range g.Cells() {
		c := g.At(i)
		if c.OnSolutionPath && !c.IsVisited {
			cells = append(cells, c)
		}
	}
	sort.SliceStable(cells, func(i, j int) bool { return cells[i].Distance < cells[j].Distance })
	out := make([]topology.Coord, len(cells))
	for i, c := range cells {
		out[i] = c.Coord
	}
	return out
}
