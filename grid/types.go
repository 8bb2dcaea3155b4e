// SPDX-License-Identifier: MIT
// Package: mazer/grid
//
// types.go: Cell, Edge, LinkEvent and sentinel errors.

package grid

import (
	"errors"
	"fmt"

	"github.com/jmisabella/mazer/topology"
)

// Sentinel errors for grid operations.
var (
	// ErrValidation indicates invalid request parameters (dimensions, coordinates,
	// probabilities). Higher layers wrap it for their own validation failures.
	ErrValidation = errors.New("grid: validation failed")

	// ErrInvalidCoordinate indicates a coordinate outside the grid.
	ErrInvalidCoordinate = errors.New("grid: invalid coordinate")

	// ErrNotAdjacent indicates a link between cells that are not neighbors.
	ErrNotAdjacent = fmt.Errorf("%w: cells are not adjacent", ErrInvalidCoordinate)

	// ErrUnsupportedRender indicates ASCII rendering was requested for a
	// family that has no ASCII form.
	ErrUnsupportedRender = errors.New("grid: rendering unsupported for maze family")

	// ErrBlockedMove indicates a move through a wall or off the grid.
	ErrBlockedMove = errors.New("grid: move blocked")
)

// NoDistance is the sentinel distance of a cell the solver has not reached.
const NoDistance = -1

// Cell is one maze cell. Distance and the flags are written by the solver and
// the engine; links are only changed through Grid.Link and Grid.Unlink.
// The navigation flags are maintained by SetStart and Move.
type Cell struct {
	Coord          topology.Coord
	Orientation    topology.Orientation
	Distance       int
	IsStart        bool
	IsGoal         bool
	OnSolutionPath bool

	// IsActive marks the player's cell.
	IsActive bool
	// IsVisited marks the cells of the current trail from start to the
	// active cell.
	IsVisited bool
	// HasBeenVisited marks every cell the player ever entered.
	HasBeenVisited bool

	neighbors []topology.Neighbor
	links     uint8 // bit i set ⇔ linked to neighbors[i]
}

// Neighbors returns the potential neighbors in topology order. The slice is
// shared with the cell and must not be modified.
func (c *Cell) Neighbors() []topology.Neighbor {
	return c.neighbors
}

// Linked returns the linked neighbors in topology order.
func (c *Cell) Linked() []topology.Neighbor {
	out := make([]topology.Neighbor, 0, len(c.neighbors))
	for i, n := range c.neighbors {
		if c.links&(1<<i) != 0 {
			out = append(out, n)
		}
	}
	return out
}

// Unlinked returns the neighbors that are not linked, in topology order.
func (c *Cell) Unlinked() []topology.Neighbor {
	out := make([]topology.Neighbor, 0, len(c.neighbors))
	for i, n := range c.neighbors {
		if c.links&(1<<i) == 0 {
			out = append(out, n)
		}
	}
	return out
}

// LinkedDirections lists the directions of linked neighbors in topology order.
func (c *Cell) LinkedDirections() []topology.Direction {
	out := make([]topology.Direction, 0, len(c.neighbors))
	for i, n := range c.neighbors {
		if c.links&(1<<i) != 0 {
			out = append(out, n.Dir)
		}
	}
	return out
}

// IsLinkedTo reports whether the cell links to the neighbor at other.
func (c *Cell) IsLinkedTo(other topology.Coord) bool {
	i := c.slot(other)
	return i >= 0 && c.links&(1<<i) != 0
}

// IsLinkedDir reports whether the neighbor in direction d is linked.
func (c *Cell) IsLinkedDir(d topology.Direction) bool {
	for i, n := range c.neighbors {
		if n.Dir == d {
			return c.links&(1<<i) != 0
		}
	}
	return false
}

// Neighbor returns the neighbor in direction d, if it exists.
func (c *Cell) Neighbor(d topology.Direction) (topology.Coord, bool) {
	for _, n := range c.neighbors {
		if n.Dir == d {
			return n.At, true
		}
	}
	return topology.Coord{}, false
}

// LinkCount returns the number of links of this cell.
func (c *Cell) LinkCount() int {
	n := 0
	for b := c.links; b != 0; b &= b - 1 {
		n++
	}
	return n
}

// IsDeadEnd reports whether the cell has exactly one link.
func (c *Cell) IsDeadEnd() bool {
	return c.LinkCount() == 1
}

// slot returns the neighbor index of other, or -1.
func (c *Cell) slot(other topology.Coord) int {
	for i, n := range c.neighbors {
		if n.At == other {
			return i
		}
	}
	return -1
}

// Edge is an undirected link, A always precedes B in row-major order.
type Edge struct {
	A, B topology.Coord
}

// LinkEvent describes a single link mutation, reported to observers.
type LinkEvent struct {
	Linked bool // false for Unlink
	A, B   topology.Coord
}
