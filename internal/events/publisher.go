package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/nats-io/nats.go/jetstream"
)

// Publisher publishes chat events to JetStream. A nil Publisher is
// valid and drops every event, so event publishing stays optional.
type Publisher struct {
	js jetstream.JetStream
}

// NewPublisher creates a publisher backed by the given client.
func NewPublisher(client *Client) *Publisher {
	if client == nil {
		return nil
	}
	return &Publisher{js: client.JetStream()}
}

// PublishTurnEvent publishes a completed chat turn.
func (p *Publisher) PublishTurnEvent(ctx context.Context, event TurnEvent) error {
	return p.publish(ctx, SubjectTurnEvent, event)
}

// PublishDiseaseEvent publishes a processed disease detection result.
func (p *Publisher) PublishDiseaseEvent(ctx context.Context, event DiseaseEvent) error {
	return p.publish(ctx, SubjectDiseaseEvent, event)
}

func (p *Publisher) publish(ctx context.Context, subject string, event any) error {
	if p == nil || p.js == nil {
		return nil
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshaling event: %w", err)
	}

	if _, err := p.js.Publish(ctx, subject, data); err != nil {
		slog.Warn("failed to publish event", "subject", subject, "error", err)
		return fmt.Errorf("publishing to %s: %w", subject, err)
	}

	return nil
}
