package topology

import "fmt"

// offset is a relative move tagged with the direction it represents.
type offset struct {
	dir    Direction
	dx, dy int
}

// ForFamily returns the shared topology instance for f.
func ForFamily(f Family) (Topology, error) {
	switch f {
	case Orthogonal:
		return orthogonal{}, nil
	case Sigma:
		return sigma{}, nil
	case Delta:
		return delta{}, nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownFamily, f)
}

// inBounds reports whether c lies inside width×height.
func inBounds(c Coord, width, height int) bool {
	return c.X >= 0 && c.X < width && c.Y >= 0 && c.Y < height
}

// collect applies offsets to c and keeps the in-bounds results.
func collect(t Topology, c Coord, width, height int, offs []offset) []Neighbor {
	out := make([]Neighbor, 0, len(offs))
	for _, o := range offs {
		n := Coord{X: c.X + o.dx, Y: c.Y + o.dy}
		if !inBounds(n, width, height) {
			continue
		}
		out = append(out, Neighbor{Dir: o.dir, At: n, Orientation: t.OrientationAt(n)})
	}
	return out
}

// orthogonal: square cells.
type orthogonal struct{}

var orthogonalOffsets = []offset{
	{North, 0, -1},
	{East, 1, 0},
	{South, 0, 1},
	{West, -1, 0},
}

func (orthogonal) Family() Family { return Orthogonal }

func (orthogonal) Directions() []Direction {
	return []Direction{North, East, South, West}
}

func (orthogonal) OrientationAt(Coord) Orientation { return None }

func (t orthogonal) Neighbors(c Coord, width, height int) []Neighbor {
	return collect(t, c, width, height, orthogonalOffsets)
}

// sigma: flat-topped hexagons, odd columns shifted half a cell south.
type sigma struct{}

var (
	sigmaEvenOffsets = []offset{
		{North, 0, -1},
		{Northeast, 1, -1},
		{Southeast, 1, 0},
		{South, 0, 1},
		{Southwest, -1, 0},
		{Northwest, -1, -1},
	}
	sigmaOddOffsets = []offset{
		{North, 0, -1},
		{Northeast, 1, 0},
		{Southeast, 1, 1},
		{South, 0, 1},
		{Southwest, -1, 1},
		{Northwest, -1, 0},
	}
)

func (sigma) Family() Family { return Sigma }

func (sigma) Directions() []Direction {
	return []Direction{North, Northeast, Southeast, South, Southwest, Northwest}
}

func (sigma) OrientationAt(Coord) Orientation { return None }

func (t sigma) Neighbors(c Coord, width, height int) []Neighbor {
	if c.X%2 == 0 {
		return collect(t, c, width, height, sigmaEvenOffsets)
	}
	return collect(t, c, width, height, sigmaOddOffsets)
}

// delta: triangles, Up when (x+y) is even.
type delta struct{}

var (
	deltaUpOffsets = []offset{
		{West, -1, 0},
		{East, 1, 0},
		{South, 0, 1},
	}
	deltaDownOffsets = []offset{
		{West, -1, 0},
		{East, 1, 0},
		{North, 0, -1},
	}
)

func (delta) Family() Family { return Delta }

func (delta) Directions() []Direction {
	return []Direction{West, East, North, South}
}

func (delta) OrientationAt(c Coord) Orientation {
	if (c.X+c.Y)%2 == 0 {
		return Up
	}
	return Down
}

func (t delta) Neighbors(c Coord, width, height int) []Neighbor {
	if t.OrientationAt(c) == Up {
		return collect(t, c, width, height, deltaUpOffsets)
	}
	return collect(t, c, width, height, deltaDownOffsets)
}
