package pipeline

import (
	"context"
	"time"

	"github.com/kbukum/matrixflow/errors"
	"github.com/kbukum/matrixflow/logger"
	"github.com/kbukum/matrixflow/matrix"
	"github.com/kbukum/matrixflow/observability"
	"github.com/kbukum/matrixflow/reduce"
)

// worker is one consumer competing for matrices on the shared channel.
// sums and err are written only by the worker's goroutine and read by the
// orchestrator after the join.
type worker struct {
	id      int
	in      <-chan matrix.Matrix
	metrics *observability.PipelineMetrics
	log     *logger.Logger

	sums []uint64
	err  error
}

// run reduces matrices until the channel is drained and closed. Each matrix
// is delivered to exactly one worker; results are ordered by receipt within
// this worker only.
func (w *worker) run(ctx context.Context) error {
	for {
		select {
		case m, ok := <-w.in:
			if !ok {
				w.log.Debug("worker drained", logger.Fields(
					logger.FieldWorker, w.id,
					logger.FieldResults, len(w.sums),
				))
				return nil
			}
			start := time.Now()
			w.sums = append(w.sums, reduce.Sum(m))
			w.metrics.RecordConsumed(ctx, w.id, time.Since(start))
		case <-ctx.Done():
			return errors.Canceled("consume", ctx.Err())
		}
	}
}
