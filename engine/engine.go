package engine

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/jmisabella/mazer/generator"
	"github.com/jmisabella/mazer/grid"
	"github.com/jmisabella/mazer/solver"
	"github.com/jmisabella/mazer/topology"
)

// Engine generates mazes. The zero value is not usable; call New.
type Engine struct {
	logger   *slog.Logger
	workers  int
	seeds    SeedSource
	maxCells int

	err error // first option violation
}

// New returns an Engine configured by opts.
func New(opts ...Option) (*Engine, error) {
	e := defaults()
	for _, opt := range opts {
		opt(&e)
		if e.err != nil {
			return nil, e.err
		}
	}
	return &e, nil
}

// Workers reports the Batch concurrency limit.
func (e *Engine) Workers() int { return e.workers }

// MaxCells reports the largest accepted W·H.
func (e *Engine) MaxCells() int { return e.maxCells }

// Generate builds, carves, braids and solves one maze. On any failure it
// returns nil and an error wrapping the lower layer's sentinel.
func (e *Engine) Generate(req Request) (*Maze, error) {
	began := time.Now()
	topo, gen, err := e.resolve(req)
	if err != nil {
		return nil, err
	}

	seed := e.seedFor(req)
	rng := rand.New(rand.NewSource(seed))

	g, err := grid.New(req.Width, req.Height, topo)
	if err != nil {
		return nil, err
	}

	var steps []Step
	if req.CaptureSteps {
		steps = make([]Step, 0, g.Size())
		g.Observe(func(ev grid.LinkEvent) {
			steps = append(steps, Step{Linked: ev.Linked, A: ev.A, B: ev.B})
		})
	}
	if err := gen.Carve(g, rng); err != nil {
		return nil, fmt.Errorf("carve %s: %w", gen.Algorithm(), err)
	}

	braided := 0
	if req.Braid > 0 {
		budget := req.BraidBudget
		if budget == 0 {
			budget = g.Size()
		}
		if braided, err = generator.Braid(g, rng, req.Braid, budget); err != nil {
			return nil, fmt.Errorf("braid: %w", err)
		}
	}
	g.Observe(nil)

	start, goal, err := endpoints(g, req)
	if err != nil {
		return nil, err
	}
	if err := g.SetStart(start); err != nil {
		return nil, err
	}
	if err := g.SetGoal(goal); err != nil {
		return nil, err
	}
	sol, err := solver.Solve(g, start, goal)
	if err != nil {
		e.logger.Warn("maze solve failed",
			"family", req.Family, "algorithm", req.Algorithm, "seed", seed, "error", err)
		return nil, err
	}

	e.logger.Info("maze generated",
		"family", req.Family.String(),
		"algorithm", req.Algorithm.String(),
		"width", req.Width,
		"height", req.Height,
		"seed", seed,
		"links", g.LinkCount(),
		"braided", braided,
		"path_length", sol.Length,
		"duration", time.Since(began),
	)
	return &Maze{
		Grid:     g,
		Request:  req,
		Seed:     seed,
		Start:    start,
		Goal:     goal,
		Solution: sol,
		Braided:  braided,
		Steps:    steps,
	}, nil
}

// resolve validates req and looks up its topology and generator.
func (e *Engine) resolve(req Request) (topology.Topology, generator.Generator, error) {
	if err := e.Validate(req); err != nil {
		return nil, nil, err
	}
	topo, err := topology.ForFamily(req.Family)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", grid.ErrValidation, err)
	}
	gen, err := generator.New(req.Algorithm)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", grid.ErrValidation, err)
	}
	if !gen.Supports(req.Family) {
		return nil, nil, fmt.Errorf("%w: %s on %s", generator.ErrUnsupportedCombination, req.Algorithm, req.Family)
	}
	return topo, gen, nil
}

// Validate checks req without generating anything.
func (e *Engine) Validate(req Request) error {
	w, h := req.Width, req.Height
	switch {
	case w < 1 || h < 1:
		return fmt.Errorf("%w: dimensions must be positive, got %dx%d", grid.ErrValidation, w, h)
	case w == 1 && h == 1:
		return fmt.Errorf("%w: 1x1 maze has no distinct start and goal", grid.ErrValidation)
	case w > e.maxCells/h:
		return fmt.Errorf("%w: %dx%d exceeds %d cells", grid.ErrValidation, w, h, e.maxCells)
	case req.Braid < 0 || req.Braid > 1:
		return fmt.Errorf("%w: braid probability %v outside [0,1]", grid.ErrValidation, req.Braid)
	case req.BraidBudget < 0:
		return fmt.Errorf("%w: braid budget %d is negative", grid.ErrValidation, req.BraidBudget)
	}
	if req.Policy == PolicyFarthest && (req.Start != nil || req.Goal != nil) {
		return fmt.Errorf("%w: explicit start/goal conflict with policy %s", grid.ErrValidation, req.Policy)
	}
	if req.Policy > PolicyFarthest {
		return fmt.Errorf("%w: unknown policy %s", grid.ErrValidation, req.Policy)
	}

	inBounds := func(c topology.Coord) bool { return c.X >= 0 && c.X < w && c.Y >= 0 && c.Y < h }
	start, goal := corners(w, h)
	if req.Start != nil {
		if !inBounds(*req.Start) {
			return fmt.Errorf("%w: start %v outside %dx%d", grid.ErrValidation, *req.Start, w, h)
		}
		start = *req.Start
	}
	if req.Goal != nil {
		if !inBounds(*req.Goal) {
			return fmt.Errorf("%w: goal %v outside %dx%d", grid.ErrValidation, *req.Goal, w, h)
		}
		goal = *req.Goal
	}
	if req.Policy == PolicyCorners && start == goal {
		return fmt.Errorf("%w: start and goal are both %v", grid.ErrValidation, start)
	}
	return nil
}

func (e *Engine) seedFor(req Request) int64 {
	if req.Seed != nil {
		return *req.Seed
	}
	return e.seeds()
}

func corners(w, h int) (topology.Coord, topology.Coord) {
	return topology.Coord{}, topology.Coord{X: w - 1, Y: h - 1}
}

// endpoints applies the request's start/goal policy to a carved grid.
func endpoints(g *grid.Grid, req Request) (topology.Coord, topology.Coord, error) {
	if req.Policy == PolicyFarthest {
		a, _, err := solver.Farthest(g, topology.Coord{})
		if err != nil {
			return a, a, err
		}
		b, _, err := solver.Farthest(g, a)
		return a, b, err
	}
	start, goal := corners(g.Width(), g.Height())
	if req.Start != nil {
		start = *req.Start
	}
	if req.Goal != nil {
		goal = *req.Goal
	}
	return start, goal, nil
}
