package generator

import (
	"fmt"
	"math/rand"

	"github.com/jmisabella/mazer/grid"
	"github.com/jmisabella/mazer/topology"
)

// Braid removes dead ends from a carved grid by adding links, which creates
// loops. Dead ends are visited in row-major order; each one still a dead end
// when reached is opened with probability p, preferring a neighbor that is
// itself a dead end. At most budget links are added. Braiding never removes
// links, so a connected grid stays connected.
//
// Returns the number of links added, or ErrValidation if g or rng is nil, p is
// outside [0,1] or budget is negative.
func Braid(g *grid.Grid, rng *rand.Rand, p float64, budget int) (int, error) {
	if g == nil || rng == nil {
		return 0, fmt.Errorf("%w: braid needs a grid and an rng", grid.ErrValidation)
	}
	if p < 0 || p > 1 {
		return 0, fmt.Errorf("%w: braid probability %v outside [0,1]", grid.ErrValidation, p)
	}
	if budget < 0 {
		return 0, fmt.Errorf("%w: braid budget %d is negative", grid.ErrValidation, budget)
	}

	added := 0
	for _, at := range g.DeadEnds() {
		if added >= budget {
			break
		}
		c, err := g.Cell(at)
		if err != nil {
			return added, err
		}
		if !c.IsDeadEnd() || rng.Float64() >= p {
			continue
		}
		options := c.Unlinked()
		if len(options) == 0 {
			continue
		}
		target := pickBraidTarget(g, options, rng)
		if err := g.Link(at, target); err != nil {
			return added, err
		}
		added++
	}
	return added, nil
}

// pickBraidTarget prefers neighbors that are dead ends themselves, so one link
// can clear two of them.
func pickBraidTarget(g *grid.Grid, options []topology.Neighbor, rng *rand.Rand) topology.Coord {
	var ends []topology.Coord
	for _, n := range options {
		if g.At(indexOf(g, n.At)).IsDeadEnd() {
			ends = append(ends, n.At)
		}
	}
	if len(ends) > 0 {
		return ends[rng.Intn(len(ends))]
	}
	return options[rng.Intn(len(options))].At
}
