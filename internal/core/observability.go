package core

import (
	"context"
	"time"
)

// MetricsRecorder receives one observation per service operation.
type MetricsRecorder interface {
	Observe(ctx context.Context, operation string, success bool, duration time.Duration)
}

// Tracer opens a span per service operation.
type Tracer interface {
	Start(ctx context.Context, operation string) (context.Context, TraceSpan)
}

// TraceSpan is closed exactly once with the operation's outcome.
type TraceSpan interface {
	End(err error)
}

// Option configures optional service collaborators.
type Option func(*Service)

// WithMetricsRecorder attaches a metrics recorder to the service.
func WithMetricsRecorder(rec MetricsRecorder) Option {
	return func(s *Service) { s.metrics = rec }
}

// WithTracer attaches a tracer to the service.
func WithTracer(tr Tracer) Option {
	return func(s *Service) { s.tracer = tr }
}

// instrument wraps one service operation with tracing and metrics. The
// operation itself runs regardless of which collaborators are attached.
func (s *Service) instrument(ctx context.Context, operation string, fn func(context.Context) error) error {
	var span TraceSpan
	if s.tracer != nil {
		ctx, span = s.tracer.Start(ctx, operation)
	}
	started := time.Now()
	err := fn(ctx)
	if span != nil {
		span.End(err)
	}
	if s.metrics != nil {
		s.metrics.Observe(ctx, operation, err == nil, time.Since(started))
	}
	return err
}
