package grid

import (
	"fmt"
	"strings"

	"github.com/jmisabella/mazer/topology"
)

// Grid owns all cells of a maze. It is immutable in shape once built; only
// links, distances and flags change.
type Grid struct {
	width, height int
	topo          topology.Topology
	cells         []Cell
	linkCount     int
	start, goal   int // cell index, -1 when unset
	active        int // player cell index, -1 until a start is set
	trail         []int
	observer      func(LinkEvent)
}

// New builds an unlinked grid with every distance set to NoDistance.
// Returns ErrValidation if width or height < 1 or topo is nil.
// Complexity: O(W·H).
func New(width, height int, topo topology.Topology) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: dimensions must be positive, got %dx%d", ErrValidation, width, height)
	}
	if topo == nil {
		return nil, fmt.Errorf("%w: topology is nil", ErrValidation)
	}
	g := &Grid{
		width:  width,
		height: height,
		topo:   topo,
		cells:  make([]Cell, width*height),
		start:  -1,
		goal:   -1,
		active: -1,
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := topology.Coord{X: x, Y: y}
			g.cells[g.index(c)] = Cell{
				Coord:       c,
				Orientation: topo.OrientationAt(c),
				Distance:    NoDistance,
				neighbors:   topo.Neighbors(c, width, height),
			}
		}
	}
	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Size returns the number of cells.
func (g *Grid) Size() int { return len(g.cells) }

// Topology returns the neighbor policy the grid was built with.
func (g *Grid) Topology() topology.Topology { return g.topo }

// Family is shorthand for g.Topology().Family().
func (g *Grid) Family() topology.Family { return g.topo.Family() }

// InBounds reports whether c lies within the grid.
func (g *Grid) InBounds(c topology.Coord) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// index maps c to its row-major index. c must be in bounds.
func (g *Grid) index(c topology.Coord) int {
	return c.Y*g.width + c.X
}

// Index returns the row-major index of c, or ErrInvalidCoordinate.
func (g *Grid) Index(c topology.Coord) (int, error) {
	if !g.InBounds(c) {
		return -1, g.outOfRange(c)
	}
	return g.index(c), nil
}

// Coord converts a row-major index back to a coordinate.
func (g *Grid) Coord(idx int) topology.Coord {
	return topology.Coord{X: idx % g.width, Y: idx / g.width}
}

// Cell returns the cell at c.
func (g *Grid) Cell(c topology.Coord) (*Cell, error) {
	if !g.InBounds(c) {
		return nil, g.outOfRange(c)
	}
	return &g.cells[g.index(c)], nil
}

// At returns the cell at row-major index idx. It panics if idx is out of range.
func (g *Grid) At(idx int) *Cell {
	return &g.cells[idx]
}

// Cells returns all cells in row-major order. The slice is shared with the grid.
func (g *Grid) Cells() []Cell {
	return g.cells
}

func (g *Grid) outOfRange(c topology.Coord) error {
	return fmt.Errorf("%w: %v outside %dx%d", ErrInvalidCoordinate, c, g.width, g.height)
}

// Observe registers fn to be called after every effective Link and Unlink.
// Passing nil removes the observer.
func (g *Grid) Observe(fn func(LinkEvent)) {
	g.observer = fn
}

// Link joins a and b symmetrically. Linking an already linked pair is a no-op.
// Returns ErrInvalidCoordinate for out-of-range endpoints and ErrNotAdjacent
// when b is not a neighbor of a.
func (g *Grid) Link(a, b topology.Coord) error {
	ca, cb, ia, ib, err := g.pair(a, b)
	if err != nil {
		return err
	}
	if ca.links&(1<<ia) != 0 {
		return nil
	}
	ca.links |= 1 << ia
	cb.links |= 1 << ib
	g.linkCount++
	if g.observer != nil {
		g.observer(LinkEvent{Linked: true, A: a, B: b})
	}
	return nil
}

// Unlink removes the link between a and b. Unlinking an unlinked pair is a no-op.
func (g *Grid) Unlink(a, b topology.Coord) error {
	ca, cb, ia, ib, err := g.pair(a, b)
	if err != nil {
		return err
	}
	if ca.links&(1<<ia) == 0 {
		return nil
	}
	ca.links &^= 1 << ia
	cb.links &^= 1 << ib
	g.linkCount--
	if g.observer != nil {
		g.observer(LinkEvent{Linked: false, A: a, B: b})
	}
	return nil
}

// pair resolves both endpoints and their mutual neighbor slots.
func (g *Grid) pair(a, b topology.Coord) (*Cell, *Cell, int, int, error) {
	ca, err := g.Cell(a)
	if err != nil {
		return nil, nil, 0, 0, err
	}
	cb, err := g.Cell(b)
	if err != nil {
		return nil, nil, 0, 0, err
	}
	ia, ib := ca.slot(b), cb.slot(a)
	if ia < 0 || ib < 0 {
		return nil, nil, 0, 0, fmt.Errorf("%w: %v and %v", ErrNotAdjacent, a, b)
	}
	return ca, cb, ia, ib, nil
}

// IsLinked reports whether a and b are linked. Out-of-range coordinates are
// never linked.
func (g *Grid) IsLinked(a, b topology.Coord) bool {
	ca, err := g.Cell(a)
	if err != nil {
		return false
	}
	return ca.IsLinkedTo(b)
}

// LinkCount returns the number of undirected links.
func (g *Grid) LinkCount() int { return g.linkCount }

// Links returns every link once, in row-major order of A then topology order.
// Two grids with the same links always produce identical slices.
func (g *Grid) Links() []Edge {
	out := make([]Edge, 0, g.linkCount)
	for i := range g.cells {
		c := &g.cells[i]
		for _, n := range c.Linked() {
			if g.index(n.At) > i {
				out = append(out, Edge{A: c.Coord, B: n.At})
			}
		}
	}
	return out
}

// Reachable returns a row-major mask of cells reachable from "from" over links.
func (g *Grid) Reachable(from topology.Coord) ([]bool, error) {
	if !g.InBounds(from) {
		return nil, g.outOfRange(from)
	}
	seen := make([]bool, len(g.cells))
	queue := []int{g.index(from)}
	seen[queue[0]] = true
	for qi := 0; qi < len(queue); qi++ {
		for _, n := range g.cells[queue[qi]].Linked() {
			j := g.index(n.At)
			if !seen[j] {
				seen[j] = true
				queue = append(queue, j)
			}
		}
	}
	return seen, nil
}

// IsConnected reports whether every cell is reachable from every other.
func (g *Grid) IsConnected() bool {
	seen, _ := g.Reachable(topology.Coord{})
	for _, s := range seen {
		if !s {
			return false
		}
	}
	return true
}

// IsPerfect reports whether the link graph is a spanning tree.
func (g *Grid) IsPerfect() bool {
	return g.linkCount == len(g.cells)-1 && g.IsConnected()
}

// DeadEnds lists the cells with exactly one link, in row-major order.
func (g *Grid) DeadEnds() []topology.Coord {
	var out []topology.Coord
	for i := range g.cells {
		if g.cells[i].IsDeadEnd() {
			out = append(out, g.cells[i].Coord)
		}
	}
	return out
}

// SetStart marks c as the only start cell and puts the player there,
// discarding any earlier navigation.
func (g *Grid) SetStart(c topology.Coord) error {
	idx, err := g.Index(c)
	if err != nil {
		return err
	}
	if g.start >= 0 {
		g.cells[g.start].IsStart = false
	}
	g.start = idx
	g.cells[idx].IsStart = true
	g.resetNavigation()
	return nil
}

// SetGoal marks c as the only goal cell.
func (g *Grid) SetGoal(c topology.Coord) error {
	idx, err := g.Index(c)
	if err != nil {
		return err
	}
	if g.goal >= 0 {
		g.cells[g.goal].IsGoal = false
	}
	g.goal = idx
	g.cells[idx].IsGoal = true
	return nil
}

// Start returns the start coordinate, if set.
func (g *Grid) Start() (topology.Coord, bool) {
	if g.start < 0 {
		return topology.Coord{}, false
	}
	return g.cells[g.start].Coord, true
}

// Goal returns the goal coordinate, if set.
func (g *Grid) Goal() (topology.Coord, bool) {
	if g.goal < 0 {
		return topology.Coord{}, false
	}
	return g.cells[g.goal].Coord, true
}

// ResetSolution clears distances and path flags left by a previous solve.
func (g *Grid) ResetSolution() {
	for i := range g.cells {
		g.cells[i].Distance = NoDistance
		g.cells[i].OnSolutionPath = false
	}
}

// ASCII draws an orthogonal grid with box characters. Start, goal and path
// cells are marked S, G and '.'.
func (g *Grid) ASCII() (string, error) {
	if g.Family() != topology.Orthogonal {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedRender, g.Family())
	}
	var sb strings.Builder
	sb.WriteString("+" + strings.Repeat("---+", g.width) + "\n")
	for y := 0; y < g.height; y++ {
		top, bottom := "|", "+"
		for x := 0; x < g.width; x++ {
			c := &g.cells[y*g.width+x]
			body := "   "
			switch {
			case c.IsStart:
				body = " S "
			case c.IsGoal:
				body = " G "
			case c.OnSolutionPath:
				body = " . "
			}
			east := "|"
			if c.IsLinkedDir(topology.East) {
				east = " "
			}
			south := "---"
			if c.IsLinkedDir(topology.South) {
				south = "   "
			}
			top += body + east
			bottom += south + "+"
		}
		sb.WriteString(top + "\n")
		sb.WriteString(bottom + "\n")
	}
	return sb.String(), nil
}
