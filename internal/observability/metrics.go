package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "github.com/yungbote/talentswap-backend"

// Metrics records aggregate and HTTP instruments on the global OTel meter provider.
type Metrics struct {
	aggregateOps       metric.Int64Counter
	aggregateLatency   metric.Float64Histogram
	aggregateConflicts metric.Int64Counter
	aggregateRetries   metric.Int64Counter

	apiRequests metric.Int64Counter
	apiLatency  metric.Float64Histogram
	apiInflight metric.Int64UpDownCounter
}

// NewMetrics registers the instruments on the global meter provider, so it
// must run after InitOTel.
func NewMetrics() (*Metrics, error) {
	return NewMetricsFromProvider(otel.GetMeterProvider())
}

func NewMetricsFromProvider(mp metric.MeterProvider) (*Metrics, error) {
	meter := mp.Meter(meterName)
	ops, err := meter.Int64Counter("aggregate.operations",
		metric.WithDescription("aggregate operations by name and status"))
	if err != nil {
		return nil, err
	}
	latency, err := meter.Float64Histogram("aggregate.duration",
		metric.WithDescription("aggregate operation latency"),
		metric.WithUnit("ms"))
	if err != nil {
		return nil, err
	}
	conflicts, err := meter.Int64Counter("aggregate.conflicts")
	if err != nil {
		return nil, err
	}
	retries, err := meter.Int64Counter("aggregate.retries")
	if err != nil {
		return nil, err
	}
	apiRequests, err := meter.Int64Counter("http.server.requests",
		metric.WithDescription("HTTP requests by method, route and status"))
	if err != nil {
		return nil, err
	}
	apiLatency, err := meter.Float64Histogram("http.server.duration",
		metric.WithUnit("ms"))
	if err != nil {
		return nil, err
	}
	apiInflight, err := meter.Int64UpDownCounter("http.server.inflight")
	if err != nil {
		return nil, err
	}
	return &Metrics{
		aggregateOps:       ops,
		aggregateLatency:   latency,
		aggregateConflicts: conflicts,
		aggregateRetries:   retries,
		apiRequests:        apiRequests,
		apiLatency:         apiLatency,
		apiInflight:        apiInflight,
	}, nil
}

func (m *Metrics) ObserveAggregateOperation(ctx context.Context, name, status string, dur time.Duration) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String("operation", name),
		attribute.String("status", status),
	)
	m.aggregateOps.Add(ctx, 1, attrs)
	m.aggregateLatency.Record(ctx, float64(dur.Microseconds())/1000.0, attrs)
}

func (m *Metrics) IncAggregateConflict(ctx context.Context, name string) {
	if m == nil {
		return
	}
	m.aggregateConflicts.Add(ctx, 1, metric.WithAttributes(attribute.String("operation", name)))
}

func (m *Metrics) IncAggregateRetry(ctx context.Context, name string) {
	if m == nil {
		return
	}
	m.aggregateRetries.Add(ctx, 1, metric.WithAttributes(attribute.String("operation", name)))
}

func (m *Metrics) ObserveAPI(ctx context.Context, method, route, status string, dur time.Duration) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String("method", method),
		attribute.String("route", route),
		attribute.String("status", status),
	)
	m.apiRequests.Add(ctx, 1, attrs)
	m.apiLatency.Record(ctx, float64(dur.Microseconds())/1000.0, attrs)
}

func (m *Metrics) APIInflightInc(ctx context.Context) {
	if m == nil {
		return
	}
	m.apiInflight.Add(ctx, 1)
}

func (m *Metrics) APIInflightDec(ctx context.Context) {
	if m == nil {
		return
	}
	m.apiInflight.Add(ctx, -1)
}
