package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// PipelineMetrics holds the metric instruments recorded during a pipeline
// run. All record methods are nil-safe so callers can pass a nil
// *PipelineMetrics to disable metrics entirely.
type PipelineMetrics struct {
	runTotal        metric.Int64Counter
	runDuration     metric.Float64Histogram
	producedTotal   metric.Int64Counter
	consumedTotal   metric.Int64Counter
	reduceDuration  metric.Float64Histogram
	channelDepthMax metric.Int64Gauge
}

// NewPipelineMetrics creates the pipeline's metric instruments on the given
// meter.
func NewPipelineMetrics(meter metric.Meter) (*PipelineMetrics, error) {
	runTotal, err := meter.Int64Counter("pipeline.run.total",
		metric.WithDescription("Total number of pipeline runs by status"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating pipeline.run.total counter: %w", err)
	}

	runDuration, err := meter.Float64Histogram("pipeline.run.duration",
		metric.WithDescription("Duration of complete pipeline runs in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating pipeline.run.duration histogram: %w", err)
	}

	producedTotal, err := meter.Int64Counter("pipeline.matrices.produced",
		metric.WithDescription("Matrices generated and sent by the producer"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating pipeline.matrices.produced counter: %w", err)
	}

	consumedTotal, err := meter.Int64Counter("pipeline.matrices.consumed",
		metric.WithDescription("Matrices received and reduced by consumers"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating pipeline.matrices.consumed counter: %w", err)
	}

	reduceDuration, err := meter.Float64Histogram("pipeline.reduce.duration",
		metric.WithDescription("Duration of single-matrix reductions in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating pipeline.reduce.duration histogram: %w", err)
	}

	channelDepthMax, err := meter.Int64Gauge("pipeline.channel.capacity",
		metric.WithDescription("Configured channel capacity of the run"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating pipeline.channel.capacity gauge: %w", err)
	}

	return &PipelineMetrics{
		runTotal:        runTotal,
		runDuration:     runDuration,
		producedTotal:   producedTotal,
		consumedTotal:   consumedTotal,
		reduceDuration:  reduceDuration,
		channelDepthMax: channelDepthMax,
	}, nil
}

// RecordRunStart records the configured channel capacity for the run.
func (m *PipelineMetrics) RecordRunStart(ctx context.Context, capacity int) {
	if m == nil {
		return
	}
	m.channelDepthMax.Record(ctx, int64(capacity))
}

// RecordRunEnd records a completed run with its status and duration.
func (m *PipelineMetrics) RecordRunEnd(ctx context.Context, status string, duration time.Duration) {
	if m == nil {
		return
	}
	m.runTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("status", status)))
	m.runDuration.Record(ctx, duration.Seconds())
}

// RecordProduced records one matrix sent by the producer.
func (m *PipelineMetrics) RecordProduced(ctx context.Context) {
	if m == nil {
		return
	}
	m.producedTotal.Add(ctx, 1)
}

// RecordConsumed records one matrix reduced by a consumer, with the
// reduction duration and the consuming worker's index.
func (m *PipelineMetrics) RecordConsumed(ctx context.Context, worker int, duration time.Duration) {
	if m == nil {
		return
	}
	m.consumedTotal.Add(ctx, 1, metric.WithAttributes(attribute.Int("worker", worker)))
	m.reduceDuration.Record(ctx, duration.Seconds())
}
