// SPDX-License-Identifier: MIT
// Package: mazer/generator
//
// types.go: Algorithm enumeration, Generator contract, sentinels and dispatch.

package generator

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/jmisabella/mazer/grid"
	"github.com/jmisabella/mazer/topology"
)

// Sentinel errors for generator selection.
var (
	// ErrUnsupportedCombination indicates an algorithm that is not defined for
	// the grid's topology family.
	ErrUnsupportedCombination = errors.New("generator: algorithm unsupported for maze family")

	// ErrUnknownAlgorithm indicates an algorithm name or value outside the enumeration.
	ErrUnknownAlgorithm = errors.New("generator: unknown algorithm")
)

// Algorithm selects a carving strategy.
type Algorithm uint8

const (
	// BinaryTree links each cell north or east at random.
	BinaryTree Algorithm = iota
	// Sidewinder builds east-running row runs, each closed by one north link.
	Sidewinder
	// AldousBroder carves along a random walk until every cell is visited.
	AldousBroder
	// Wilsons adds loop-erased random walks to the growing maze.
	Wilsons
	// HuntAndKill random-walks until stuck, then hunts row by row for a new start.
	HuntAndKill
	// RecursiveBacktracker carves a randomized depth-first search.
	RecursiveBacktracker
	// Prims grows the maze through a random frontier edge at a time.
	Prims
	// Kruskals joins shuffled edges whose cells are in different sets.
	Kruskals
	// GrowingTreeRandom grows from a random active cell.
	GrowingTreeRandom
	// GrowingTreeNewest grows from the newest active cell.
	GrowingTreeNewest
	// Ellers carves row by row, merging cell sets.
	Ellers
	// RecursiveDivision opens the grid, then splits it with walls holding one passage.
	RecursiveDivision
	// ReverseDelete opens the grid, then drops shuffled links that keep it connected.
	ReverseDelete
)

var algorithmNames = [...]string{
	BinaryTree:           "BinaryTree",
	Sidewinder:           "Sidewinder",
	AldousBroder:         "AldousBroder",
	Wilsons:              "Wilsons",
	HuntAndKill:          "HuntAndKill",
	RecursiveBacktracker: "RecursiveBacktracker",
	Prims:                "Prims",
	Kruskals:             "Kruskals",
	GrowingTreeRandom:    "GrowingTreeRandom",
	GrowingTreeNewest:    "GrowingTreeNewest",
	Ellers:               "Ellers",
	RecursiveDivision:    "RecursiveDivision",
	ReverseDelete:        "ReverseDelete",
}

// Algorithms lists every algorithm in declaration order.
func Algorithms() []Algorithm {
	out := make([]Algorithm, len(algorithmNames))
	for i := range algorithmNames {
		out[i] = Algorithm(i)
	}
	return out
}

// String returns the canonical algorithm name.
func (a Algorithm) String() string {
	if int(a) < len(algorithmNames) {
		return algorithmNames[a]
	}
	return fmt.Sprintf("Algorithm(%d)", a)
}

// ParseAlgorithm resolves a name case-insensitively, ignoring separators and
// possessives, so "recursive-backtracker", "Wilson's" and "kruskal" all work.
func ParseAlgorithm(s string) (Algorithm, error) {
	key := normalize(s)
	for i, name := range algorithmNames {
		n := normalize(name)
		if key == n || key+"s" == n {
			return Algorithm(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

func normalize(s string) string {
	s = strings.ToLower(s)
	return strings.Map(func(r rune) rune {
		switch r {
		case '-', '_', ' ', '\'':
			return -1
		}
		return r
	}, s)
}

// orthogonalOnly lists the algorithms that need two perpendicular axes.
var orthogonalOnly = map[Algorithm]bool{
	BinaryTree:        true,
	Sidewinder:        true,
	Ellers:            true,
	RecursiveDivision: true,
}

// Supports reports whether a can carve grids of family f.
func (a Algorithm) Supports(f topology.Family) bool {
	if int(a) >= len(algorithmNames) {
		return false
	}
	if orthogonalOnly[a] {
		return f == topology.Orthogonal
	}
	return true
}

// Generator carves one maze into an empty grid.
type Generator interface {
	// Algorithm reports the strategy implemented.
	Algorithm() Algorithm
	// Supports reports whether the strategy is defined for family f.
	Supports(f topology.Family) bool
	// Carve links cells of g into a perfect maze using only rng for choices.
	Carve(g *grid.Grid, rng *rand.Rand) error
}

// New returns the generator for a.
func New(a Algorithm) (Generator, error) {
	switch a {
	case BinaryTree:
		return binaryTree{}, nil
	case Sidewinder:
		return sidewinder{}, nil
	case AldousBroder:
		return aldousBroder{}, nil
	case Wilsons:
		return wilsons{}, nil
	case HuntAndKill:
		return huntAndKill{}, nil
	case RecursiveBacktracker:
		return recursiveBacktracker{}, nil
	case Prims:
		return prims{}, nil
	case Kruskals:
		return kruskals{}, nil
	case GrowingTreeRandom:
		return growingTree{algo: GrowingTreeRandom, pick: pickRandom}, nil
	case GrowingTreeNewest:
		return growingTree{algo: GrowingTreeNewest, pick: pickNewest}, nil
	case Ellers:
		return ellers{}, nil
	case RecursiveDivision:
		return recursiveDivision{}, nil
	case ReverseDelete:
		return reverseDelete{}, nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, a)
}

// For resolves the generator for a and checks it supports f.
func For(a Algorithm, f topology.Family) (Generator, error) {
	gen, err := New(a)
	if err != nil {
		return nil, err
	}
	if !gen.Supports(f) {
		return nil, fmt.Errorf("%w: %s on %s", ErrUnsupportedCombination, a, f)
	}
	return gen, nil
}
