package generator

import (
	"math/rand"

	"github.com/jmisabella/mazer/grid"
	"github.com/jmisabella/mazer/topology"
)

type recursiveDivision struct{}

func (recursiveDivision) Algorithm() Algorithm { return RecursiveDivision }
func (recursiveDivision) Supports(f topology.Family) bool { return RecursiveDivision.Supports(f) }

// Carve links the whole grid, then splits the field with a wall that leaves a
// single passage and recurses into both halves until regions are one cell
// wide or tall. The wall runs along the longer side; squares pick at random.
func (r recursiveDivision) Carve(g *grid.Grid, rng *rand.Rand) error {
	if err := prepare(r, g, rng); err != nil {
		return err
	}
	if err := linkAll(g); err != nil {
		return err
	}
	return divide(g, rng, 0, 0, g.Width(), g.Height())
}

// divide walls off the region with top-left (x, y) and size w×h.
func divide(g *grid.Grid, rng *rand.Rand, x, y, w, h int) error {
	if w <= 1 || h <= 1 {
		return nil
	}
	horizontal := h > w || (h == w && rng.Intn(2) == 0)
	if horizontal {
		wall := rng.Intn(h - 1) // wall below row y+wall
		passage := rng.Intn(w)
		for dx := 0; dx < w; dx++ {
			if dx == passage {
				continue
			}
			a := topology.Coord{X: x + dx, Y: y + wall}
			if err := g.Unlink(a, topology.Coord{X: a.X, Y: a.Y + 1}); err != nil {
				return err
			}
		}
		if err := divide(g, rng, x, y, w, wall+1); err != nil {
			return err
		}
		return divide(g, rng, x, y+wall+1, w, h-wall-1)
	}

	wall := rng.Intn(w - 1) // wall east of column x+wall
	passage := rng.Intn(h)
	for dy := 0; dy < h; dy++ {
		if dy == passage {
			continue
		}
		a := topology.Coord{X: x + wall, Y: y + dy}
		if err := g.Unlink(a, topology.Coord{X: a.X + 1, Y: a.Y}); err != nil {
			return err
		}
	}
	if err := divide(g, rng, x, y, wall+1, h); err != nil {
		return err
	}
	return divide(g, rng, x+wall+1, y, w-wall-1, h)
}
