package producer

import (
	"context"
	"encoding/json"
	"fmt"

	"dashboard-srv/internal/dashboard"
	kafkaDelivery "dashboard-srv/internal/dashboard/delivery/kafka"
)

// PublishFetchSettled publishes one fetch-settled event keyed by session.
func (p *implProducer) PublishFetchSettled(ctx context.Context, event dashboard.FetchSettled) error {
	msg := kafkaDelivery.FetchSettledMessage{
		SessionID:  event.SessionID,
		Operation:  string(event.Operation),
		Token:      event.Token,
		Outcome:    string(event.Outcome),
		DurationMs: event.Duration.Milliseconds(),
		Error:      event.Error,
		SettledAt:  event.SettledAt,
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal fetch settled event: %w", err)
	}

	if err := p.producer.Publish([]byte(event.SessionID), body); err != nil {
		return fmt.Errorf("failed to publish fetch settled event: %w", err)
	}

	p.l.Debugf(ctx, "dashboard.delivery.kafka.producer.PublishFetchSettled: %s #%d %s for session %s", msg.Operation, msg.Token, msg.Outcome, msg.SessionID)
	return nil
}
