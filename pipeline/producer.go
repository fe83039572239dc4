package pipeline

import (
	"context"

	"github.com/kbukum/matrixflow/errors"
	"github.com/kbukum/matrixflow/logger"
	"github.com/kbukum/matrixflow/matrix"
	"github.com/kbukum/matrixflow/observability"
)

// producer owns the matrix source and the send side of the channel.
type producer struct {
	source     matrix.Source
	iterations int
	out        chan<- matrix.Matrix
	metrics    *observability.PipelineMetrics
	log        *logger.Logger
}

// run generates and sends every matrix, then closes the channel so each
// consumer observes end of stream once the buffer drains. A send blocks
// when the buffer is full; that block is the pipeline's backpressure.
func (p *producer) run(ctx context.Context) error {
	defer close(p.out)

	for i := 0; i < p.iterations; i++ {
		m := p.source.Next()
		select {
		case p.out <- m:
			p.metrics.RecordProduced(ctx)
		case <-ctx.Done():
			p.log.Debug("producer canceled", logger.Fields(logger.FieldIterations, i))
			return errors.Canceled("produce", ctx.Err())
		}
	}

	p.log.Debug("producer finished", logger.Fields(logger.FieldIterations, p.iterations))
	return nil
}
