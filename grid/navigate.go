package grid

import (
	"fmt"

	"github.com/jmisabella/mazer/topology"
)

// resetNavigation puts the player on the start cell with a one-cell trail.
func (g *Grid) resetNavigation() {
	for i := range g.cells {
		c := &g.cells[i]
		c.IsActive, c.IsVisited, c.HasBeenVisited = false, false, false
	}
	g.active = g.start
	g.trail = g.trail[:0]
	if g.start < 0 {
		return
	}
	c := &g.cells[g.start]
	c.IsActive, c.IsVisited, c.HasBeenVisited = true, true, true
	g.trail = append(g.trail, g.start)
}

// Active returns the player's cell. It is unset until SetStart is called.
func (g *Grid) Active() (topology.Coord, bool) {
	if g.active < 0 {
		return topology.Coord{}, false
	}
	return g.cells[g.active].Coord, true
}

// Trail returns the current path from start to the active cell.
func (g *Grid) Trail() []topology.Coord {
	out := make([]topology.Coord, len(g.trail))
	for i, idx := range g.trail {
		out[i] = g.cells[idx].Coord
	}
	return out
}

// Move steps the player from the active cell in direction d and returns the
// new active cell. A move through a wall, or towards a missing neighbor,
// returns ErrBlockedMove and leaves every flag untouched.
//
// Entering a cell already on the trail cuts the trail back to it, so
// IsVisited always marks a simple path from start to the active cell.
// HasBeenVisited is never cleared by a move.
func (g *Grid) Move(d topology.Direction) (topology.Coord, error) {
	if g.active < 0 {
		return topology.Coord{}, fmt.Errorf("%w: no active cell, start is unset", ErrValidation)
	}
	cur := &g.cells[g.active]
	to, ok := cur.Neighbor(d)
	if !ok || !cur.IsLinkedDir(d) {
		return cur.Coord, fmt.Errorf("%w: %s from %v", ErrBlockedMove, d, cur.Coord)
	}

	idx := g.index(to)
	if pos := g.trailPos(idx); pos >= 0 {
		for _, dropped := range g.trail[pos+1:] {
			g.cells[dropped].IsVisited = false
		}
		g.trail = g.trail[:pos+1]
	} else {
		g.trail = append(g.trail, idx)
	}
	cur.IsActive = false
	next := &g.cells[idx]
	next.IsActive, next.IsVisited, next.HasBeenVisited = true, true, true
	g.active = idx
	return to, nil
}

func (g *Grid) trailPos(idx int) int {
	for i, t := range g.trail {
		if t == idx {
			return i
		}
	}
	return -1
}

// RestoreNavigation reinstates a navigation state from per-cell flags, as
// read back from an export. visited and seen are row-major masks of the
// IsVisited and HasBeenVisited flags. The visited cells must form a simple
// linked path from start to active, and every visited cell must be seen.
// Returns ErrValidation otherwise.
func (g *Grid) RestoreNavigation(active topology.Coord, visited, seen []bool) error {
	if g.start < 0 {
		return fmt.Errorf("%w: navigation needs a start cell", ErrValidation)
	}
	if len(visited) != len(g.cells) || len(seen) != len(g.cells) {
		return fmt.Errorf("%w: navigation masks must cover %d cells", ErrValidation, len(g.cells))
	}
	to, err := g.Index(active)
	if err != nil {
		return err
	}
	want := 0
	for i := range visited {
		if visited[i] {
			if !seen[i] {
				return fmt.Errorf("%w: visited cell %v was never entered", ErrValidation, g.Coord(i))
			}
			want++
		}
	}
	if !visited[g.start] || !visited[to] {
		return fmt.Errorf("%w: trail must contain start and the active cell", ErrValidation)
	}

	trail, ok := g.walkTrail([]int{g.start}, to, want, visited, make([]bool, len(g.cells)))
	if !ok {
		return fmt.Errorf("%w: visited cells do not form a path from start to %v", ErrValidation, active)
	}

	for i := range g.cells {
		c := &g.cells[i]
		c.IsActive, c.IsVisited, c.HasBeenVisited = i == to, visited[i], seen[i]
	}
	g.active = to
	g.trail = trail
	return nil
}

// walkTrail searches depth-first for a linked path that starts with trail,
// ends at goal and covers exactly want visited cells.
func (g *Grid) walkTrail(trail []int, goal, want int, visited, used []bool) ([]int, bool) {
	last := trail[len(trail)-1]
	used[last] = true
	defer func() { used[last] = false }()
	if last == goal {
		return trail, len(trail) == want
	}
	if len(trail) == want {
		return nil, false
	}
	for _, n := range g.cells[last].Linked() {
		j := g.index(n.At)
		if !visited[j] || used[j] {
			continue
		}
		if out, ok := g.walkTrail(append(trail, j), goal, want, visited, used); ok {
			return out, true
		}
	}
	return nil, false
}
