package pipeline

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/matrixflow/errors"
	"github.com/kbukum/matrixflow/logger"
	"github.com/kbukum/matrixflow/matrix"
	"github.com/kbukum/matrixflow/observability"
)

// Run executes the pipeline to completion and returns one sum per produced
// matrix. It is synchronous: goroutines are spawned and joined internally.
// Canceling ctx aborts the run with a CANCELED error.
func Run(ctx context.Context, cfg Config, opts ...Option) ([]uint64, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	source := o.source
	if source == nil {
		var err error
		source, err = matrix.NewSource(cfg.MatrixSize, cfg.Seed)
		if err != nil {
			return nil, err
		}
	}

	ctx = logger.WithRunID(ctx, uuid.NewString())
	log := o.log
	if log == nil {
		log = logger.WithComponent("pipeline")
	}
	log = log.FromContext(ctx)

	ctx, span := observability.StartSpan(ctx, "pipeline.run", trace.WithAttributes(
		attribute.Int("matrix_size", cfg.MatrixSize),
		attribute.Int("iterations", cfg.Iterations),
		attribute.Int("consumers", cfg.ConsumerCount),
	))
	defer span.End()

	start := time.Now()
	capacity := cfg.ChannelCapacity()
	o.metrics.RecordRunStart(ctx, capacity)
	log.Info("pipeline starting", logger.Fields(
		logger.FieldMatrixSize, cfg.MatrixSize,
		logger.FieldIterations, cfg.Iterations,
		logger.FieldConsumers, cfg.ConsumerCount,
	))

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	ch := make(chan matrix.Matrix, capacity)

	prod := &producer{
		source:     source,
		iterations: cfg.Iterations,
		out:        ch,
		metrics:    o.metrics,
		log:        log,
	}

	var wg sync.WaitGroup
	var prodErr error

	wg.Add(1)
	go func() {
		defer wg.Done()
		defer func() {
			if r := recover(); r != nil {
				prodErr = errors.WorkerPanic("producer", r)
				cancel()
			}
		}()
		if err := prod.run(runCtx); err != nil {
			prodErr = err
			cancel()
		}
	}()

	workers := make([]*worker, cfg.ConsumerCount)
	for i := range workers {
		w := &worker{id: i, in: ch, metrics: o.metrics, log: log}
		workers[i] = w
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					w.err = errors.WorkerPanic("consumer", r)
					cancel()
				}
			}()
			if err := w.run(runCtx); err != nil {
				w.err = err
				cancel()
			}
		}()
	}

	wg.Wait()

	if err := firstFailure(prodErr, workers); err != nil {
		o.metrics.RecordRunEnd(ctx, "error", time.Since(start))
		span.RecordError(err)
		log.WithError(err).Error("pipeline aborted")
		return nil, err
	}

	results := make([]uint64, 0, cfg.Iterations)
	for _, w := range workers {
		results = append(results, w.sums...)
	}

	if len(results) != cfg.Iterations {
		err := errors.Invariant(fmt.Sprintf("expected %d results, collected %d", cfg.Iterations, len(results))).
			WithDetail("expected", cfg.Iterations).
			WithDetail("collected", len(results))
		o.metrics.RecordRunEnd(ctx, "error", time.Since(start))
		span.RecordError(err)
		log.WithError(err).Error("pipeline aborted")
		return nil, err
	}

	elapsed := time.Since(start)
	o.metrics.RecordRunEnd(ctx, "ok", elapsed)
	log.Info("pipeline complete", logger.Fields(
		logger.FieldResults, len(results),
		logger.FieldDuration, elapsed.Milliseconds(),
	))

	return results, nil
}

// firstFailure picks the error to surface after the join. A panic or other
// hard failure wins over the CANCELED errors it fanned out to the remaining
// goroutines; cancellation is reported only when it is the root cause.
func firstFailure(prodErr error, workers []*worker) error {
	all := make([]error, 0, len(workers)+1)
	if prodErr != nil {
		all = append(all, prodErr)
	}
	for _, w := range workers {
		if w.err != nil {
			all = append(all, w.err)
		}
	}
	if len(all) == 0 {
		return nil
	}
	for _, err := range all {
		if errors.CodeOf(err) != errors.ErrCodeCanceled {
			return err
		}
	}
	return all[0]
}
