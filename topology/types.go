// SPDX-License-Identifier: MIT
// Package: mazer/topology
//
// types.go: coordinates, orientations, directions, families and sentinels.

package topology

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownFamily indicates a maze family that has no topology.
var ErrUnknownFamily = errors.New("topology: unknown maze family")

// Coord identifies a cell by column (X) and row (Y).
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// String renders the coordinate as "(x,y)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Orientation is the per-cell tag some families need to resolve neighbors.
type Orientation uint8

const (
	// None is used by families whose neighbors do not depend on a tag.
	None Orientation = iota
	// Up marks a triangle whose apex points north.
	Up
	// Down marks a triangle whose apex points south.
	Down
)

// String returns the exported identifier of the orientation ("" for None).
func (o Orientation) String() string {
	switch o {
	case Up:
		return "Up"
	case Down:
		return "Down"
	default:
		return ""
	}
}

// ParseOrientation is the inverse of Orientation.String.
func ParseOrientation(s string) (Orientation, bool) {
	switch s {
	case "":
		return None, true
	case "Up":
		return Up, true
	case "Down":
		return Down, true
	}
	return None, false
}

// Direction names a neighbor slot.
type Direction uint8

const (
	// North points to the row above.
	North Direction = iota
	// Northeast is the upper-right hex neighbor.
	Northeast
	// East points to the next column.
	East
	// Southeast is the lower-right hex neighbor.
	Southeast
	// South points to the row below.
	South
	// Southwest is the lower-left hex neighbor.
	Southwest
	// West points to the previous column.
	West
	// Northwest is the upper-left hex neighbor.
	Northwest
)

var directionNames = [...]string{
	North:     "North",
	Northeast: "Northeast",
	East:      "East",
	Southeast: "Southeast",
	South:     "South",
	Southwest: "Southwest",
	West:      "West",
	Northwest: "Northwest",
}

// String returns the stable identifier used by exporters.
func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return fmt.Sprintf("Direction(%d)", d)
}

// ParseDirection is the inverse of Direction.String.
func ParseDirection(s string) (Direction, bool) {
	for i, name := range directionNames {
		if name == s {
			return Direction(i), true
		}
	}
	return 0, false
}

// Opposite returns the direction pointing back along d.
func (d Direction) Opposite() Direction {
	return (d + 4) % 8
}

// Family selects a maze topology.
type Family uint8

const (
	// Orthogonal is the square-cell family.
	Orthogonal Family = iota
	// Sigma is the hexagonal family.
	Sigma
	// Delta is the triangular family.
	Delta
)

// Families lists every supported family in declaration order.
var Families = []Family{Orthogonal, Sigma, Delta}

// String returns the family name as used in requests and exports.
func (f Family) String() string {
	switch f {
	case Orthogonal:
		return "Orthogonal"
	case Sigma:
		return "Sigma"
	case Delta:
		return "Delta"
	}
	return fmt.Sprintf("Family(%d)", f)
}

// ParseFamily resolves a family name case-insensitively. "Square", "Hex" and
// "Triangle" are accepted as aliases.
func ParseFamily(s string) (Family, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "orthogonal", "square":
		return Orthogonal, nil
	case "sigma", "hex", "hexagonal":
		return Sigma, nil
	case "delta", "triangle", "triangular":
		return Delta, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFamily, s)
}

// Neighbor is one potential neighbor of a cell.
type Neighbor struct {
	Dir         Direction
	At          Coord
	Orientation Orientation
}

// Topology is the neighbor policy of one maze family. Implementations are
// stateless and safe for concurrent use.
type Topology interface {
	// Family reports which family this topology implements.
	Family() Family
	// Directions lists the direction slots in neighbor order.
	Directions() []Direction
	// OrientationAt returns the orientation tag of the cell at c.
	OrientationAt(c Coord) Orientation
	// Neighbors returns the in-bounds neighbors of c in direction order.
	Neighbors(c Coord, width, height int) []Neighbor
}
