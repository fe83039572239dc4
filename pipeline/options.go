package pipeline

import (
	"github.com/kbukum/matrixflow/logger"
	"github.com/kbukum/matrixflow/matrix"
	"github.com/kbukum/matrixflow/observability"
)

type options struct {
	source  matrix.Source
	log     *logger.Logger
	metrics *observability.PipelineMetrics
}

// Option configures a pipeline run.
type Option func(*options)

// WithSource replaces the seeded default source with a caller-supplied one.
// The source is still owned and called exclusively by the producer; when it
// is set, Config.Seed is ignored.
func WithSource(src matrix.Source) Option {
	return func(o *options) { o.source = src }
}

// WithLogger sets the logger for the run. Defaults to the global logger
// tagged with the pipeline component.
func WithLogger(l *logger.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithMetrics enables metric recording for the run. A nil metrics handle
// disables recording.
func WithMetrics(m *observability.PipelineMetrics) Option {
	return func(o *options) { o.metrics = m }
}
