package solver

import (
	"errors"
	"fmt"

	"github.com/jmisabella/mazer/grid"
	"github.com/jmisabella/mazer/topology"
)

// Sentinel errors for solving.
var (
	// ErrDisconnectedMaze indicates the goal cannot be reached from the start.
	ErrDisconnectedMaze = errors.New("solver: goal unreachable from start")

	// ErrOutOfRange indicates an endpoint outside the grid.
	ErrOutOfRange = fmt.Errorf("%w: solver endpoint out of range", grid.ErrInvalidCoordinate)

	// ErrGridNil is returned when a nil grid is passed.
	ErrGridNil = errors.New("solver: grid is nil")
)

// Solution summarizes one solve.
type Solution struct {
	// Path lists the cells from start to goal inclusive.
	Path []topology.Coord
	// Length is the number of links on Path, equal to the goal's distance.
	Length int
	// Reached counts the cells reachable from start.
	Reached int
}
