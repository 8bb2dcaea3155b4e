package generator

import (
	"math/rand"

	"github.com/jmisabella/mazer/grid"
	"github.com/jmisabella/mazer/topology"
)

type wilsons struct{}

func (wilsons) Algorithm() Algorithm { return Wilsons }
func (wilsons) Supports(f topology.Family) bool { return Wilsons.Supports(f) }

// Carve seeds the tree with one random cell, then repeatedly walks from a
// random cell outside the tree until it hits the tree, erasing loops as they
// form, and links the loop-erased path.
func (w wilsons) Carve(g *grid.Grid, rng *rand.Rand) error {
	if err := prepare(w, g, rng); err != nil {
		return err
	}
	n := g.Size()
	inTree := make([]bool, n)
	inTree[randomIndex(g, rng)] = true

	// pos[i] is the index of cell i in the current walk, or -1.
	pos := make([]int, n)
	candidates := make([]int, n)
	for i := range pos {
		pos[i] = -1
		candidates[i] = i
	}

	path := make([]int, 0, n)
	for len(candidates) > 0 {
		k := rng.Intn(len(candidates))
		start := candidates[k]
		if inTree[start] {
			candidates[k] = candidates[len(candidates)-1]
			candidates = candidates[:len(candidates)-1]
			continue
		}

		path = append(path[:0], start)
		pos[start] = 0
		for cur := start; !inTree[cur]; {
			nbrs := g.At(cur).Neighbors()
			next := indexOf(g, nbrs[rng.Intn(len(nbrs))].At)
			if p := pos[next]; p >= 0 {
				for _, erased := range path[p+1:] {
					pos[erased] = -1
				}
				path = path[:p+1]
			} else {
				pos[next] = len(path)
				path = append(path, next)
			}
			cur = next
		}

		for i := 0; i+1 < len(path); i++ {
			if err := g.Link(g.Coord(path[i]), g.Coord(path[i+1])); err != nil {
				return err
			}
			inTree[path[i]] = true
		}
		for _, c := range path {
			pos[c] = -1
		}
	}
	return nil
}
