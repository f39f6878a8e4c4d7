package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/EMS-F-2026/onboarding-service/internal/models"
	"github.com/EMS-F-2026/onboarding-service/internal/repositories"
	"github.com/EMS-F-2026/onboarding-service/internal/store"
)

type SessionKV struct {
	store store.Store
}

func NewSessionKV(s store.Store) repositories.SessionRepository {
	return &SessionKV{store: s}
}

// Get returns nil with no error when no session is stored, which is the
// unauthenticated state.
func (r *SessionKV) Get(ctx context.Context) (*models.Session, error) {
	raw, err := r.store.Get(ctx, store.SlotSession)
	if errors.Is(err, store.ErrSlotEmpty) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var session models.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	if session.ID == "" {
		return nil, nil
	}
	return &session, nil
}

func (r *SessionKV) Save(ctx context.Context, session *models.Session) error {
	encoded, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	return r.store.Set(ctx, store.SlotSession, encoded)
}

func (r *SessionKV) Clear(ctx context.Context) error {
	return r.store.Delete(ctx, store.SlotSession)
}
