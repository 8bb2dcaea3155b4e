package engine

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jmisabella/mazer/generator"
	"github.com/jmisabella/mazer/grid"
	"github.com/jmisabella/mazer/solver"
	"github.com/jmisabella/mazer/topology"
)

// ErrOptionViolation is returned by New when an Option is invalid.
var ErrOptionViolation = errors.New("engine: invalid option supplied")

// Policy decides where start and goal go when they are not explicit.
type Policy uint8

const (
	// PolicyCorners places start at (0,0) and goal at (W−1,H−1).
	PolicyCorners Policy = iota
	// PolicyFarthest places start and goal at the ends of a longest shortest path.
	PolicyFarthest
)

// String returns the lower-case policy name.
func (p Policy) String() string {
	switch p {
	case PolicyCorners:
		return "corners"
	case PolicyFarthest:
		return "farthest"
	}
	return fmt.Sprintf("Policy(%d)", p)
}

// ParsePolicy resolves a policy name; "" means PolicyCorners.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "corners", "corner", "default":
		return PolicyCorners, nil
	case "farthest", "longest":
		return PolicyFarthest, nil
	}
	return 0, fmt.Errorf("%w: unknown start/goal policy %q", grid.ErrValidation, s)
}

// Request describes one maze.
type Request struct {
	Family    topology.Family
	Width     int
	Height    int
	Algorithm generator.Algorithm

	// Start and Goal override the policy's endpoints when non-nil.
	Start *topology.Coord
	Goal  *topology.Coord
	// Policy must be PolicyCorners when Start or Goal is set.
	Policy Policy

	// Seed fixes the random stream; nil draws one from the engine.
	Seed *int64

	// Braid is the probability of opening each dead end, in [0,1].
	Braid float64
	// BraidBudget caps the links added by braiding, so a braided maze holds
	// at most W·H−1+BraidBudget links. 0 lifts the cap: every dead end may
	// be opened and the total is bounded only by W·H−1 plus the dead ends.
	BraidBudget int

	// CaptureSteps records every link change made while carving.
	CaptureSteps bool
}

// Step is one recorded link change, in carving order.
type Step struct {
	Linked bool           `json:"linked" msgpack:"linked"`
	A      topology.Coord `json:"a" msgpack:"a"`
	B      topology.Coord `json:"b" msgpack:"b"`
}

// Maze is a fully generated and solved maze. The engine never mutates it
// after returning.
type Maze struct {
	Grid     *grid.Grid
	Request  Request
	Seed     int64
	Start    topology.Coord
	Goal     topology.Coord
	Solution *solver.Solution
	// Braided counts the links added by braiding.
	Braided int
	// Steps is nil unless Request.CaptureSteps was set.
	Steps []Step
}

// BatchResult pairs a batch entry with its outcome. Exactly one of Maze and
// Err is set.
type BatchResult struct {
	Index int
	Maze  *Maze
	Err   error
}
