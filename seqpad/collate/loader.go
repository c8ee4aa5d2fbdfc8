package collate

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/ZanzyTHEbar/seqpad/seqpad/batching"
	"github.com/ZanzyTHEbar/seqpad/seqpad/config"
	"github.com/ZanzyTHEbar/seqpad/seqpad/datasets"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/sourcegraph/conc/pool"
)

// Result is one collated batch produced by a Loader.
type Result struct {
	ID    uuid.UUID
	Index int
	Batch *batching.PaddedBatch
}

// Loader collates independent batches concurrently using a bounded
// conc pool. Results keep the order of the input batches.
type Loader struct {
	collator   *Collator
	maxWorkers int
	logger     zerolog.Logger
}

// NewLoader creates a Loader. Non-positive maxWorkers uses the CPU count.
func NewLoader(collator *Collator, maxWorkers int) *Loader {
	if maxWorkers <= 0 {
		maxWorkers = runtime.NumCPU()
	}
	return &Loader{
		collator:   collator,
		maxWorkers: maxWorkers,
		logger:     collator.logger,
	}
}

// NewLoaderFromConfig creates a Collator from cfg and a Loader using
// cfg.Loader.Workers workers.
func NewLoaderFromConfig(cfg *config.Config, opts ...Option) *Loader {
	return NewLoader(NewFromConfig(cfg, opts...), cfg.Loader.Workers)
}

// MaxWorkers returns the upper bound on concurrently collated batches.
func (l *Loader) MaxWorkers() int { return l.maxWorkers }

// CollateAll collates every batch. The first failure cancels the batches
// that have not started yet and is returned; no results are returned then.
func (l *Loader) CollateAll(ctx context.Context, batches [][]datasets.Item) ([]Result, error) {
	start := time.Now()
	results := make([]Result, len(batches))
	if len(batches) == 0 {
		return results, nil
	}

	p := pool.New().
		WithMaxGoroutines(l.maxWorkers).
		WithContext(ctx).
		WithCancelOnError().
		WithFirstError()

	for i, items := range batches {
		p.Go(func(ctx context.Context) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			id := uuid.New()
			pb, err := l.collator.Collate(items)
			if err != nil {
				l.logger.Error().Err(err).Int("index", i).Str("batch_id", id.String()).Msg("batch collation failed")
				return fmt.Errorf("batch %d: %w", i, err)
			}
			l.logger.Debug().Int("index", i).Str("batch_id", id.String()).Int("batch_size", pb.Size()).Msg("batch collated")
			results[i] = Result{ID: id, Index: i, Batch: pb}
			return nil
		})
	}

	if err := p.Wait(); err != nil {
		return nil, err
	}

	l.logger.Info().
		Int("batches", len(batches)).
		Int("workers", l.maxWorkers).
		Dur("duration", time.Since(start)).
		Msg("collated batches")
	return results, nil
}
