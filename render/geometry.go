package render

import (
	"fmt"
	"math"

	"github.com/jmisabella/mazer/grid"
	"github.com/jmisabella/mazer/topology"
)

// Point is a position in cell units.
type Point struct {
	X, Y float64
}

// Segment joins two vertices of a unit shape, by index.
type Segment struct {
	From, To int
}

var sqrt3 = math.Sqrt(3)

// TriangleHeight is the height of an equilateral triangle with side size.
func TriangleHeight(size float64) float64 {
	return size * sqrt3 / 2
}

// SquareUnitPoints returns the corners of a unit square, clockwise from the
// top-left.
func SquareUnitPoints() [4]Point {
	return [4]Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
}

// HexUnitPoints returns the six vertices of a flat-topped hexagon with unit
// side, clockwise from the top-left.
func HexUnitPoints() [6]Point {
	h := sqrt3
	return [6]Point{
		{0.5, 0},
		{1.5, 0},
		{2, h / 2},
		{1.5, h},
		{0.5, h},
		{0, h / 2},
	}
}

// TriangleUnitPoints returns the vertices of a unit triangle. Up triangles
// start at the apex; Down triangles start at the top-left corner.
func TriangleUnitPoints(o topology.Orientation) [3]Point {
	h := TriangleHeight(1)
	if o == topology.Down {
		return [3]Point{{0, 0}, {1, 0}, {0.5, h}}
	}
	return [3]Point{{0.5, 0}, {0, h}, {1, h}}
}

var (
	squareEdges = map[topology.Direction]Segment{
		topology.North: {0, 1},
		topology.East:  {1, 2},
		topology.South: {2, 3},
		topology.West:  {3, 0},
	}
	hexEdges = map[topology.Direction]Segment{
		topology.North:     {0, 1},
		topology.Northeast: {1, 2},
		topology.Southeast: {2, 3},
		topology.South:     {3, 4},
		topology.Southwest: {4, 5},
		topology.Northwest: {5, 0},
	}
	upEdges = []struct {
		dir topology.Direction
		seg Segment
	}{
		{topology.West, Segment{0, 1}},
		{topology.East, Segment{0, 2}},
		{topology.South, Segment{1, 2}},
	}
	downEdges = []struct {
		dir topology.Direction
		seg Segment
	}{
		{topology.North, Segment{0, 1}},
		{topology.West, Segment{0, 2}},
		{topology.East, Segment{1, 2}},
	}
	squareOrder = []topology.Direction{topology.North, topology.East, topology.South, topology.West}
	hexOrder    = []topology.Direction{
		topology.North, topology.Northeast, topology.Southeast,
		topology.South, topology.Southwest, topology.Northwest,
	}
)

// OrthogonalWalls lists the sides of a square cell without a passage,
// including the outer border.
func OrthogonalWalls(c *grid.Cell) []Segment {
	var out []Segment
	for _, d := range squareOrder {
		if !c.IsLinkedDir(d) {
			out = append(out, squareEdges[d])
		}
	}
	return out
}

// DeltaWalls lists the sides of a triangle cell without a passage,
// including the outer border.
func DeltaWalls(c *grid.Cell) []Segment {
	edges := upEdges
	if c.Orientation == topology.Down {
		edges = downEdges
	}
	var out []Segment
	for _, e := range edges {
		if !c.IsLinkedDir(e.dir) {
			out = append(out, e.seg)
		}
	}
	return out
}

// SigmaWalls lists the sides a hex cell at "at" shares with an unlinked
// in-bounds neighbor. Two solution-path cells one step apart never get a
// wall between them.
func SigmaWalls(g *grid.Grid, at topology.Coord) ([]Segment, error) {
	if g.Family() != topology.Sigma {
		return nil, fmt.Errorf("%w: sigma walls for %s grid", grid.ErrUnsupportedRender, g.Family())
	}
	c, err := g.Cell(at)
	if err != nil {
		return nil, err
	}
	var out []Segment
	for _, n := range c.Neighbors() {
		nb, err := g.Cell(n.At)
		if err != nil {
			return nil, err
		}
		if c.OnSolutionPath && nb.OnSolutionPath && abs(c.Distance-nb.Distance) == 1 {
			continue
		}
		if !c.IsLinkedTo(n.At) {
			out = append(out, hexEdges[n.Dir])
		}
	}
	return out, nil
}

// sigmaBorder lists the hex sides with no neighbor at all.
func sigmaBorder(c *grid.Cell) []Segment {
	var out []Segment
	for _, d := range hexOrder {
		if _, ok := c.Neighbor(d); !ok {
			out = append(out, hexEdges[d])
		}
	}
	return out
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
