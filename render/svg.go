package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/jmisabella/mazer/grid"
	"github.com/jmisabella/mazer/topology"
)

// Options controls SVG output.
type Options struct {
	// CellSize is the side of one cell in pixels; 0 means 20.
	CellSize float64
	// Heatmap fills cells by distance instead of marking the solution path.
	Heatmap bool
}

// palette runs from the start (light) to the farthest cell (dark).
var palette = [Shades]string{
	"#f7fbff", "#deebf7", "#c6dbef", "#9ecae1", "#6baed6",
	"#4292c6", "#2171b5", "#08519c", "#08306b", "#041f4a",
}

const (
	margin     = 4.0
	startFill  = "#66bb6a"
	goalFill   = "#ef5350"
	activeFill = "#ffca28"
	pathFill   = "#fff3c4"
	wallStroke = "#222"
)

// SVG draws g as a standalone SVG document.
func SVG(w io.Writer, g *grid.Grid, opts Options) error {
	size := opts.CellSize
	if size <= 0 {
		size = 20
	}
	width, height := canvas(g, size)

	var sb strings.Builder
	fmt.Fprintf(&sb, `<svg xmlns="http://www.w3.org/2000/svg" width="%.1f" height="%.1f" viewBox="0 0 %.1f %.1f">`+"\n",
		width, height, width, height)
	sb.WriteString(`<rect width="100%" height="100%" fill="white"/>` + "\n")

	var shades []int
	if opts.Heatmap {
		shades = Heatmap(g)
	}
	var walls strings.Builder
	for i := range g.Cells() {
		c := g.At(i)
		pts, segs, err := shape(g, c, size)
		if err != nil {
			return err
		}
		if fill := fillFor(c, shades, i); fill != "" {
			sb.WriteString(`<polygon points="`)
			for j, p := range pts {
				if j > 0 {
					sb.WriteByte(' ')
				}
				fmt.Fprintf(&sb, "%.2f,%.2f", p.X, p.Y)
			}
			fmt.Fprintf(&sb, `" fill="%s"/>`+"\n", fill)
		}
		for _, s := range segs {
			a, b := pts[s.From], pts[s.To]
			fmt.Fprintf(&walls, `<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f"/>`+"\n", a.X, a.Y, b.X, b.Y)
		}
	}
	fmt.Fprintf(&sb, `<g stroke="%s" stroke-width="2" stroke-linecap="round">`+"\n", wallStroke)
	sb.WriteString(walls.String())
	sb.WriteString("</g>\n</svg>\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

func fillFor(c *grid.Cell, shades []int, i int) string {
	switch {
	case c.IsActive && !c.IsStart:
		return activeFill
	case c.IsStart:
		return startFill
	case c.IsGoal:
		return goalFill
	case shades != nil && shades[i] >= 0:
		return palette[shades[i]]
	case shades == nil && c.OnSolutionPath:
		return pathFill
	}
	return ""
}

// canvas returns the picture size for g in pixels.
func canvas(g *grid.Grid, size float64) (float64, float64) {
	w, h := float64(g.Width()), float64(g.Height())
	switch g.Family() {
	case topology.Sigma:
		height := sqrt3 * h
		if g.Width() > 1 {
			height += sqrt3 / 2
		}
		return (1.5*w+0.5)*size + 2*margin, height*size + 2*margin
	case topology.Delta:
		return (w+1)/2*size + 2*margin, TriangleHeight(size)*h + 2*margin
	}
	return w*size + 2*margin, h*size + 2*margin
}

// shape returns the absolute vertices of c and the walls to stroke.
func shape(g *grid.Grid, c *grid.Cell, size float64) ([]Point, []Segment, error) {
	x, y := float64(c.Coord.X), float64(c.Coord.Y)
	switch g.Family() {
	case topology.Sigma:
		origin := Point{X: 1.5 * x * size, Y: sqrt3 * y * size}
		if c.Coord.X%2 == 1 {
			origin.Y += sqrt3 / 2 * size
		}
		unit := HexUnitPoints()
		walls, err := SigmaWalls(g, c.Coord)
		if err != nil {
			return nil, nil, err
		}
		return place(unit[:], origin, size), append(walls, sigmaBorder(c)...), nil
	case topology.Delta:
		origin := Point{X: x / 2 * size, Y: TriangleHeight(size) * y}
		unit := TriangleUnitPoints(c.Orientation)
		return place(unit[:], origin, size), DeltaWalls(c), nil
	case topology.Orthogonal:
		unit := SquareUnitPoints()
		return place(unit[:], Point{X: x * size, Y: y * size}, size), OrthogonalWalls(c), nil
	}
	return nil, nil, fmt.Errorf("%w: %s", grid.ErrUnsupportedRender, g.Family())
}

func place(unit []Point, origin Point, size float64) []Point {
	out := make([]Point, len(unit))
	for i, p := range unit {
		out[i] = Point{X: margin + origin.X + p.X*size, Y: margin + origin.Y + p.Y*size}
	}
	return out
}
