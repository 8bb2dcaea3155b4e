package generator

import (
	"math/rand"

	"github.com/jmisabella/mazer/grid"
	"github.com/jmisabella/mazer/topology"
)

type sidewinder struct{}

func (sidewinder) Algorithm() Algorithm { return Sidewinder }
func (sidewinder) Supports(f topology.Family) bool { return Sidewinder.Supports(f) }

// Carve walks each row west to east, extending a run eastward until a coin
// flip (or the east wall) closes it; a closed run links one random member
// north. The top row is a single corridor.
func (s sidewinder) Carve(g *grid.Grid, rng *rand.Rand) error {
	if err := prepare(s, g, rng); err != nil {
		return err
	}
	run := make([]topology.Coord, 0, g.Width())
	for y := 0; y < g.Height(); y++ {
		run = run[:0]
		for x := 0; x < g.Width(); x++ {
			here := topology.Coord{X: x, Y: y}
			run = append(run, here)

			atEast := x == g.Width()-1
			atNorth := y == 0
			closeRun := atEast || (!atNorth && rng.Intn(2) == 0)

			if !closeRun {
				if err := g.Link(here, topology.Coord{X: x + 1, Y: y}); err != nil {
					return err
				}
				continue
			}
			if !atNorth {
				member := run[rng.Intn(len(run))]
				if err := g.Link(member, topology.Coord{X: member.X, Y: y - 1}); err != nil {
					return err
				}
			}
			run = run[:0]
		}
	}
	return nil
}
