// Package observability provides OpenTelemetry metrics and tracing for
// matrixflow pipelines.
//
// InitMeter and InitTracer wire the global OTLP HTTP exporters; both are
// optional; when neither is called, instruments fall back to the no-op
// global providers and recording costs next to nothing. PipelineMetrics
// bundles the pipeline's instruments and is nil-safe, so the pipeline can
// run with metrics disabled entirely.
package observability
