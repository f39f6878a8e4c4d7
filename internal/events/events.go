package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// TopicNotifications carries the user-facing domain events that the original
// surfaced as transient toasts.
const TopicNotifications = "ems.notifications"

type EventType string

const (
	EventMemberCreated      EventType = "member.created"
	EventMemberRemoved      EventType = "member.removed"
	EventTaskCreated        EventType = "task.created"
	EventModuleCreated      EventType = "module.created"
	EventModuleCompleted    EventType = "module.completed"
	EventAssignmentReceived EventType = "assignment.submitted"
	EventQuizCreated        EventType = "quiz.created"
	EventQuizAttempted      EventType = "quiz.attempted"
	EventReviewSubmitted    EventType = "review.submitted"
)

// Event is one notification-worthy domain occurrence.
type Event struct {
	Type       EventType `json:"type"`
	Actor      string    `json:"actor"`
	Subject    string    `json:"subject"`
	Message    string    `json:"message"`
	OccurredAt time.Time `json:"occurredAt"`
}

type EventPublisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

// Bus is an in-process pub/sub over watermill's gochannel transport. The
// system model is single-process with no network I/O boundary, so no broker
// is involved.
type Bus struct {
	pubsub *gochannel.GoChannel
}

func NewBus(logger *slog.Logger) *Bus {
	return &Bus{
		pubsub: gochannel.NewGoChannel(
			gochannel.Config{OutputChannelBuffer: 64},
			watermill.NewSlogLogger(logger),
		),
	}
}

func (b *Bus) Publish(_ context.Context, event Event) error {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode event: %w", err)
	}
	return b.pubsub.Publish(TopicNotifications, message.NewMessage(watermill.NewUUID(), payload))
}

func (b *Bus) Subscribe(ctx context.Context) (<-chan *message.Message, error) {
	return b.pubsub.Subscribe(ctx, TopicNotifications)
}

func (b *Bus) Close() error {
	return b.pubsub.Close()
}

// MockEventPublisher records events for tests.
type MockEventPublisher struct {
	logger *slog.Logger
	Events []Event
}

func NewMockEventPublisher(logger *slog.Logger) *MockEventPublisher {
	return &MockEventPublisher{logger: logger}
}

func (m *MockEventPublisher) Publish(_ context.Context, event Event) error {
	m.Events = append(m.Events, event)
	if m.logger != nil {
		m.logger.Debug("mock event published", "type", event.Type, "subject", event.Subject)
	}
	return nil
}

func (m *MockEventPublisher) Close() error { return nil }
