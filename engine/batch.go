package engine

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/jmisabella/mazer/internal/ctxlog"
)

// Batch generates reqs concurrently on at most Workers goroutines. Results are
// indexed like reqs; a failing request records its error without stopping the
// others. Once ctx is done no new request is scheduled; unscheduled entries
// carry ctx.Err(), which is then also returned.
func (e *Engine) Batch(ctx context.Context, reqs []Request) ([]BatchResult, error) {
	log := ctxlog.FromContextOr(ctx, e.logger)
	results := make([]BatchResult, len(reqs))

	var eg errgroup.Group
	eg.SetLimit(e.workers)
	scheduled := 0
	for i, req := range reqs {
		if ctx.Err() != nil {
			break
		}
		scheduled++
		i, req := i, req
		eg.Go(func() error {
			m, err := e.Generate(req)
			results[i] = BatchResult{Index: i, Maze: m, Err: err}
			return nil
		})
	}
	_ = eg.Wait()

	for i := scheduled; i < len(reqs); i++ {
		results[i] = BatchResult{Index: i, Err: ctx.Err()}
	}

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	log.Info("batch finished", "requests", len(reqs), "scheduled", scheduled, "failed", failed, "workers", e.workers)
	if scheduled < len(reqs) {
		return results, ctx.Err()
	}
	return results, nil
}
