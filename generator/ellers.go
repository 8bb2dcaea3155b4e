package generator

import (
	"math/rand"

	"github.com/jmisabella/mazer/grid"
	"github.com/jmisabella/mazer/topology"
)

type ellers struct{}

func (ellers) Algorithm() Algorithm { return Ellers }
func (ellers) Supports(f topology.Family) bool { return Ellers.Supports(f) }

// Carve processes one row at a time, tracking a set id per column. Adjacent
// cells in different sets merge with probability 1/2 (always on the last
// row), then every set drops at least one link south. Only one row of state
// is kept, so memory is O(W).
func (e ellers) Carve(g *grid.Grid, rng *rand.Rand) error {
	if err := prepare(e, g, rng); err != nil {
		return err
	}
	w, h := g.Width(), g.Height()
	row := make([]int, w) // set id per column, 0 = none yet
	nextID := 0

	for y := 0; y < h; y++ {
		for x := range row {
			if row[x] == 0 {
				nextID++
				row[x] = nextID
			}
		}

		last := y == h-1
		for x := 0; x+1 < w; x++ {
			if row[x] == row[x+1] || (!last && rng.Intn(2) != 0) {
				continue
			}
			if err := g.Link(topology.Coord{X: x, Y: y}, topology.Coord{X: x + 1, Y: y}); err != nil {
				return err
			}
			merged := row[x+1]
			for i := range row {
				if row[i] == merged {
					row[i] = row[x]
				}
			}
		}
		if last {
			break
		}

		// Group columns by set in order of first appearance.
		var order []int
		members := make(map[int][]int)
		for x, id := range row {
			if _, ok := members[id]; !ok {
				order = append(order, id)
			}
			members[id] = append(members[id], x)
		}

		below := make([]int, w)
		for _, id := range order {
			cols := members[id]
			rng.Shuffle(len(cols), func(i, j int) { cols[i], cols[j] = cols[j], cols[i] })
			drops := 1 + rng.Intn(len(cols))
			for _, x := range cols[:drops] {
				if err := g.Link(topology.Coord{X: x, Y: y}, topology.Coord{X: x, Y: y + 1}); err != nil {
					return err
				}
				below[x] = id
			}
		}
		row = below
	}
	return nil
}
