package services

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/EMS-F-2026/onboarding-service/internal/events"
)

// notificationService consumes the domain event stream and keeps a bounded
// newest-first window for the notifications endpoint.
type notificationService struct {
	logger *slog.Logger
	limit  int

	mu     sync.RWMutex
	recent []events.Event
}

const defaultRecentLimit = 50

func NewNotificationService(ctx context.Context, bus *events.Bus, logger *slog.Logger) (NotificationService, error) {
	s := &notificationService{
		logger: logger,
		limit:  defaultRecentLimit,
	}

	messages, err := bus.Subscribe(ctx)
	if err != nil {
		return nil, err
	}
	go s.consume(messages)

	return s, nil
}

func (s *notificationService) consume(messages <-chan *message.Message) {
	for msg := range messages {
		var event events.Event
		if err := json.Unmarshal(msg.Payload, &event); err != nil {
			s.logger.Warn("Failed to decode event", "error", err)
			msg.Ack()
			continue
		}
		s.record(event)
		msg.Ack()
	}
}

func (s *notificationService) record(event events.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recent = append([]events.Event{event}, s.recent...)
	if len(s.recent) > s.limit {
		s.recent = s.recent[:s.limit]
	}
}

func (s *notificationService) Recent(_ context.Context) []events.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]events.Event, len(s.recent))
	copy(out, s.recent)
	return out
}
