package services

import (
	"context"
	"testing"
	"time"

	"github.com/EMS-F-2026/onboarding-service/internal/events"
)

func waitForEvents(t *testing.T, svc NotificationService, want int) []events.Event {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		recent := svc.Recent(context.Background())
		if len(recent) >= want {
			return recent
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %d events", want)
	return nil
}

func TestNotificationServiceRecordsPublishedEvents(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	bus := events.NewBus(testLogger())
	defer bus.Close()

	svc, err := NewNotificationService(ctx, bus, testLogger())
	if err != nil {
		t.Fatalf("NewNotificationService: %v", err)
	}

	if err := bus.Publish(ctx, events.Event{Type: events.EventTaskCreated, Subject: "gourav@employee.com"}); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if err := bus.Publish(ctx, events.Event{Type: events.EventQuizAttempted, Subject: "gourav@employee.com"}); err != nil {
		t.Fatalf("Publish: %v", err)
	}

	recent := waitForEvents(t, svc, 2)
	// Newest first.
	if recent[0].Type != events.EventQuizAttempted || recent[1].Type != events.EventTaskCreated {
		t.Errorf("recent = %+v", recent)
	}
	if recent[0].OccurredAt.IsZero() {
		t.Errorf("OccurredAt not stamped")
	}
}
