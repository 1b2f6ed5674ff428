package metrics

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

type Metrics struct {
	eventsPublished       metric.Int64Counter
	eventPublishFailures  metric.Int64Counter
	eventsRepublished     metric.Int64Counter
	statusTransitions     metric.Int64Counter
	callbacks             metric.Int64Counter
	deadLetters           metric.Int64Counter
	authorizationFailures metric.Int64Counter
}

func NewMetrics(meter metric.Meter) (*Metrics, error) {
	m := &Metrics{}

	counters := []struct {
		dst         *metric.Int64Counter
		name        string
		description string
	}{
		{&m.eventsPublished, "order_events_published_total", "Order events accepted by the bus"},
		{&m.eventPublishFailures, "order_events_publish_failures_total", "Order events that could not be published"},
		{&m.eventsRepublished, "order_events_republished_total", "Order events re-emitted for stale pending orders"},
		{&m.statusTransitions, "order_status_transitions_total", "Order status transitions by target status"},
		{&m.callbacks, "payment_callbacks_total", "Verified processor callbacks by type and result"},
		{&m.deadLetters, "bus_dead_letters_total", "Messages moved to a dead-letter topic"},
		{&m.authorizationFailures, "payment_authorization_failures_total", "Authorizations the processor did not create"},
	}

	for _, c := range counters {
		counter, err := meter.Int64Counter(c.name, metric.WithDescription(c.description))
		if err != nil {
			return nil, fmt.Errorf("create %s counter: %w", c.name, err)
		}
		*c.dst = counter
	}

	return m, nil
}

func (m *Metrics) RecordEventPublished(ctx context.Context) {
	m.eventsPublished.Add(ctx, 1)
}

func (m *Metrics) RecordPublishFailure(ctx context.Context) {
	m.eventPublishFailures.Add(ctx, 1)
}

func (m *Metrics) RecordRepublished(ctx context.Context, n int) {
	m.eventsRepublished.Add(ctx, int64(n))
}

func (m *Metrics) RecordStatusTransition(ctx context.Context, status string) {
	m.statusTransitions.Add(ctx, 1, metric.WithAttributes(attribute.String("status", status)))
}

func (m *Metrics) RecordCallback(ctx context.Context, eventType, result string) {
	m.callbacks.Add(ctx, 1, metric.WithAttributes(
		attribute.String("type", eventType),
		attribute.String("result", result),
	))
}

func (m *Metrics) RecordDeadLetter(ctx context.Context, topic string) {
	m.deadLetters.Add(ctx, 1, metric.WithAttributes(attribute.String("topic", topic)))
}

func (m *Metrics) RecordAuthorizationFailure(ctx context.Context) {
	m.authorizationFailures.Add(ctx, 1)
}
