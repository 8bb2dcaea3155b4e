package export

import (
	"fmt"

	"github.com/jmisabella/mazer/grid"
	"github.com/jmisabella/mazer/topology"
)

// Flatten returns one record per cell of g in row-major order.
func Flatten(g *grid.Grid) []Record {
	cells := g.Cells()
	out := make([]Record, len(cells))
	family := g.Family().String()
	for i := range cells {
		c := &cells[i]
		dirs := c.LinkedDirections()
		linked := make([]string, len(dirs))
		for j, d := range dirs {
			linked[j] = d.String()
		}
		out[i] = Record{
			X:              c.Coord.X,
			Y:              c.Coord.Y,
			MazeType:       family,
			Linked:         linked,
			Distance:       int32(c.Distance),
			IsStart:        c.IsStart,
			IsGoal:         c.IsGoal,
			IsActive:       c.IsActive,
			IsVisited:      c.IsVisited,
			HasBeenVisited: c.HasBeenVisited,
			OnSolutionPath: c.OnSolutionPath,
			Orientation:    c.Orientation.String(),
		}
	}
	return out
}

// Rebuild reconstructs a grid from records produced by Flatten. Records must
// cover a full W×H rectangle in row-major order, share one maze type, carry
// the orientation their family assigns, and list every link from both ends.
// Navigation flags are restored when one record is active; records with no
// active cell leave the player on the start cell.
func Rebuild(records []Record) (*grid.Grid, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: no records", ErrMalformedRecords)
	}
	family, err := topology.ParseFamily(records[0].MazeType)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedRecords, err)
	}
	topo, err := topology.ForFamily(family)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedRecords, err)
	}

	last := records[len(records)-1]
	w, h := last.X+1, last.Y+1
	if w < 1 || h < 1 || w*h != len(records) {
		return nil, fmt.Errorf("%w: %d records do not form a %dx%d grid", ErrMalformedRecords, len(records), w, h)
	}
	g, err := grid.New(w, h, topo)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedRecords, err)
	}

	for i, r := range records {
		if err := place(g, i, r, family); err != nil {
			return nil, err
		}
	}

	// Every listed direction was linked; a one-sided listing shows up as a
	// link count mismatch on the other end.
	for i, r := range records {
		if n := g.At(i).LinkCount(); n != len(r.Linked) {
			return nil, fmt.Errorf("%w: cell %v lists %d links but has %d", ErrMalformedRecords, g.Coord(i), len(r.Linked), n)
		}
	}
	if err := restoreNavigation(g, records); err != nil {
		return nil, err
	}
	return g, nil
}

// restoreNavigation applies the records' navigation flags to g.
func restoreNavigation(g *grid.Grid, records []Record) error {
	visited := make([]bool, len(records))
	seen := make([]bool, len(records))
	var active []topology.Coord
	for i, r := range records {
		visited[i], seen[i] = r.IsVisited, r.HasBeenVisited
		if r.IsActive {
			active = append(active, g.Coord(i))
		}
	}
	switch len(active) {
	case 0:
		return nil
	case 1:
		if err := g.RestoreNavigation(active[0], visited, seen); err != nil {
			return fmt.Errorf("%w: %w", ErrMalformedRecords, err)
		}
		return nil
	}
	return fmt.Errorf("%w: %d active cells", ErrMalformedRecords, len(active))
}

// place copies record r onto cell idx and links its listed directions.
func place(g *grid.Grid, idx int, r Record, family topology.Family) error {
	at := topology.Coord{X: r.X, Y: r.Y}
	if at != g.Coord(idx) {
		return fmt.Errorf("%w: record %d is %v, want %v", ErrMalformedRecords, idx, at, g.Coord(idx))
	}
	if f, err := topology.ParseFamily(r.MazeType); err != nil || f != family {
		return fmt.Errorf("%w: record %v has maze type %q, want %s", ErrMalformedRecords, at, r.MazeType, family)
	}
	c := g.At(idx)
	if o, ok := topology.ParseOrientation(r.Orientation); !ok || o != c.Orientation {
		return fmt.Errorf("%w: record %v has orientation %q, want %q", ErrMalformedRecords, at, r.Orientation, c.Orientation)
	}

	for _, name := range r.Linked {
		d, ok := topology.ParseDirection(name)
		if !ok {
			return fmt.Errorf("%w: record %v has unknown direction %q", ErrMalformedRecords, at, name)
		}
		to, ok := c.Neighbor(d)
		if !ok {
			return fmt.Errorf("%w: record %v links %s off the grid", ErrMalformedRecords, at, d)
		}
		if err := g.Link(at, to); err != nil {
			return fmt.Errorf("%w: %w", ErrMalformedRecords, err)
		}
	}

	c.Distance = int(r.Distance)
	c.OnSolutionPath = r.OnSolutionPath
	if r.IsStart {
		if _, dup := g.Start(); dup {
			return fmt.Errorf("%w: more than one start", ErrMalformedRecords)
		}
		if err := g.SetStart(at); err != nil {
			return err
		}
	}
	if r.IsGoal {
		if _, dup := g.Goal(); dup {
			return fmt.Errorf("%w: more than one goal", ErrMalformedRecords)
		}
		if err := g.SetGoal(at); err != nil {
			return err
		}
	}
	return nil
}
