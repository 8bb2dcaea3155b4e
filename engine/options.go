package engine

import (
	"fmt"
	"log/slog"
	"math/rand"
	"runtime"
	"sync"
	"time"

	"github.com/jmisabella/mazer/internal/ctxlog"
)

// DefaultMaxCells bounds W·H unless WithMaxCells overrides it.
const DefaultMaxCells = 1 << 20

// SeedSource supplies seeds for requests that carry none. It must be safe
// for concurrent use.
type SeedSource func() int64

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for generation records. nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithWorkers sets the Batch concurrency limit. n must be positive.
func WithWorkers(n int) Option {
	return func(e *Engine) {
		if n < 1 {
			e.err = fmt.Errorf("%w: workers must be positive (%d)", ErrOptionViolation, n)
			return
		}
		e.workers = n
	}
}

// WithSeedSource replaces the default time-seeded source.
func WithSeedSource(src SeedSource) Option {
	return func(e *Engine) {
		if src == nil {
			e.err = fmt.Errorf("%w: seed source is nil", ErrOptionViolation)
			return
		}
		e.seeds = src
	}
}

// WithMaxCells caps W·H for every request. n must be at least 2.
func WithMaxCells(n int) Option {
	return func(e *Engine) {
		if n < 2 {
			e.err = fmt.Errorf("%w: max cells must be at least 2 (%d)", ErrOptionViolation, n)
			return
		}
		e.maxCells = n
	}
}

// FixedSeeds returns a SeedSource producing seeds from a deterministic
// stream started at seed; useful for reproducible batches.
func FixedSeeds(seed int64) SeedSource {
	return lockedSource(rand.New(rand.NewSource(seed)))
}

func defaultSeeds() SeedSource {
	return lockedSource(rand.New(rand.NewSource(time.Now().UnixNano())))
}

func lockedSource(rng *rand.Rand) SeedSource {
	var mu sync.Mutex
	return func() int64 {
		mu.Lock()
		defer mu.Unlock()
		return rng.Int63()
	}
}

func defaults() Engine {
	return Engine{
		logger:   ctxlog.Discard(),
		workers:  runtime.NumCPU(),
		seeds:    defaultSeeds(),
		maxCells: DefaultMaxCells,
	}
}
