package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/EMS-F-2026/onboarding-service/internal/store"
)

// loadCollection decodes a slot's JSON array. An empty slot decodes to an
// empty collection so callers never see ErrSlotEmpty.
func loadCollection[T any](ctx context.Context, s store.Store, slot store.Slot) ([]T, error) {
	raw, err := s.Get(ctx, slot)
	if errors.Is(err, store.ErrSlotEmpty) {
		return []T{}, nil
	}
	if err != nil {
		return nil, err
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("failed to decode slot %s: %w", slot, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// saveCollection replaces the whole slot in one write, which is what keeps
// each mutation atomic from the caller's perspective.
func saveCollection[T any](ctx context.Context, s store.Store, slot store.Slot, items []T) error {
	encoded, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode slot %s: %w", slot, err)
	}
	return s.Set(ctx, slot, encoded)
}

// prepend puts the newest record first, matching the persisted ordering of
// the original collections.
func prepend[T any](items []T, item T) []T {
	next := make([]T, 0, len(items)+1)
	next = append(next, item)
	return append(next, items...)
}
