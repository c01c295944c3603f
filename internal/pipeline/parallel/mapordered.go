// Package parallel implements bounded-concurrency mapping over a sequence
// with strict output ordering. Tasks are dispatched to a fixed-size pool and
// completed results are drained through a reorder buffer, so output order
// always mirrors input order regardless of completion order, and at most the
// configured number of results is buffered ahead of the consumer.
package parallel

import (
	"context"
	"fmt"
	"iter"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"blogflow/internal/domain/entity"
)

// Config controls a MapOrdered run.
type Config struct {
	// Concurrency is the maximum number of in-flight transformation calls.
	// It must be at least one.
	Concurrency int

	// Limiter optionally throttles task dispatch. Nil disables throttling.
	Limiter *rate.Limiter
}

// Validate checks the configuration against the caller contract.
func (c Config) Validate() error {
	if c.Concurrency < 1 {
		return fmt.Errorf("concurrency must be at least 1, got %d: %w", c.Concurrency, entity.ErrInvalidInput)
	}
	return nil
}

// MapOrdered applies fn to every element of seq with at most cfg.Concurrency
// invocations in flight, emitting results in input order. Each emitted slot
// is handed to emit as soon as the result for that slot and all earlier slots
// are ready; a later-dispatched, faster-finishing task is held back until its
// turn.
//
// Cancellation is cooperative: when ctx is cancelled or fn returns an error,
// no new work is dispatched, in-flight calls observe the derived context and
// wind down, and the first error is returned to the caller. If emit returns
// an error the run is cancelled the same way and that error is returned.
func MapOrdered[T, R any](ctx context.Context, seq iter.Seq[T], cfg Config, fn func(context.Context, T) (R, error), emit func(R) error) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	eg, egCtx := errgroup.WithContext(ctx)

	// Each dispatched task owns a one-slot channel. The pending queue keeps
	// the channels in dispatch order, so draining it in order restores input
	// order no matter when individual tasks finish. Its capacity bounds how
	// many finished results can pile up ahead of the consumer.
	pending := make(chan chan R, cfg.Concurrency)
	sem := make(chan struct{}, cfg.Concurrency)

	eg.Go(func() error {
		defer close(pending)
		for item := range seq {
			if cfg.Limiter != nil {
				if err := cfg.Limiter.Wait(egCtx); err != nil {
					return err
				}
			}

			select {
			case sem <- struct{}{}:
			case <-egCtx.Done():
				return egCtx.Err()
			}

			slot := make(chan R, 1)
			select {
			case pending <- slot:
			case <-egCtx.Done():
				<-sem
				return egCtx.Err()
			}

			eg.Go(func() error {
				defer func() { <-sem }()
				result, err := fn(egCtx, item)
				if err != nil {
					return err
				}
				slot <- result
				return nil
			})
		}
		return nil
	})

	var emitErr error
drain:
	for slot := range pending {
		select {
		case result := <-slot:
			if emitErr == nil {
				if err := emit(result); err != nil {
					emitErr = err
					cancel()
				}
			}
		case <-egCtx.Done():
			// The owning task failed or the run was cancelled; stop emitting
			// and let the group report the cause. Remaining slots are left to
			// their buffered sends so no worker blocks.
			break drain
		}
	}

	waitErr := eg.Wait()
	if emitErr != nil {
		// The consumer aborted first; the group error is just the resulting
		// cancellation.
		return emitErr
	}
	return waitErr
}

// CollectOrdered runs MapOrdered and gathers all results into a slice in
// input order. It trades the bounded-buffer guarantee for convenience and
// suits callers that want the whole mapped list.
func CollectOrdered[T, R any](ctx context.Context, seq iter.Seq[T], cfg Config, fn func(context.Context, T) (R, error)) ([]R, error) {
	var results []R
	err := MapOrdered(ctx, seq, cfg, fn, func(r R) error {
		results = append(results, r)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}
