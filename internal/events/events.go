// Package events publishes dashboard change notifications to interested
// consumers. Publishing is best effort: the dashboard never fails a
// mutation because an event could not be delivered.
package events

import (
	"context"
	"encoding/json"
	"time"

	"minify/internal/logger"
)

// Kind names what happened.
type Kind string

const (
	TransactionCreated  Kind = "transaction.created"
	TransactionUpdated  Kind = "transaction.updated"
	TransactionDeleted  Kind = "transaction.deleted"
	SubscriptionCreated Kind = "subscription.created"
	SubscriptionUpdated Kind = "subscription.updated"
	SubscriptionDeleted Kind = "subscription.deleted"
	PresetApplied       Kind = "preset.applied"
	ViewChanged         Kind = "view.changed"
	RatesIngested       Kind = "rates.ingested"
)

// Event is a lightweight notification. Consumers fetch full records by ID.
type Event struct {
	Kind       Kind              `json:"kind"`
	UserID     string            `json:"user_id,omitempty"`
	ResourceID string            `json:"resource_id,omitempty"`
	Attributes map[string]string `json:"attributes,omitempty"`
	OccurredAt time.Time         `json:"occurred_at"`
}

// New builds an event stamped with the current time.
func New(kind Kind, userID, resourceID string) Event {
	return Event{
		Kind:       kind,
		UserID:     userID,
		ResourceID: resourceID,
		OccurredAt: time.Now().UTC(),
	}
}

// With returns a copy of e carrying an extra attribute.
func (e Event) With(key, value string) Event {
	attrs := make(map[string]string, len(e.Attributes)+1)
	for k, v := range e.Attributes {
		attrs[k] = v
	}
	attrs[key] = value
	e.Attributes = attrs
	return e
}

// ToJSON encodes the event for the wire.
func (e Event) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// FromJSON decodes an event produced by ToJSON.
func FromJSON(data []byte) (Event, error) {
	var e Event
	err := json.Unmarshal(data, &e)
	return e, err
}

// Publisher delivers events.
type Publisher interface {
	Publish(ctx context.Context, e Event) error
	Close() error
}

// LogPublisher writes events to the application log. It is used when no
// broker is configured.
type LogPublisher struct{}

// Publish logs the event at debug level.
func (LogPublisher) Publish(_ context.Context, e Event) error {
	logger.Get().Debugw("event",
		"kind", e.Kind,
		"user_id", e.UserID,
		"resource_id", e.ResourceID,
	)
	return nil
}

// Close is a no-op.
func (LogPublisher) Close() error { return nil }

// PublishQuietly publishes e and logs any failure instead of returning it.
func PublishQuietly(ctx context.Context, p Publisher, e Event) {
	if p == nil {
		return
	}
	if err := p.Publish(ctx, e); err != nil {
		logger.Get().Warnw("failed to publish event",
			"error", err,
			"kind", e.Kind,
			"user_id", e.UserID,
		)
	}
}
