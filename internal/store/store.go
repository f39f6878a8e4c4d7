package store

import (
	"context"
	"errors"
)

// Slot names the persisted key-value slots. The layout mirrors the original
// single-origin store: an initialization flag, eight JSON-encoded collections
// and a session slot holding either null or a session projection.
type Slot string

const (
	SlotInit       Slot = "ems_init_v4"
	SlotUsers      Slot = "ems_users"
	SlotTasks      Slot = "ems_tasks"
	SlotSession    Slot = "ems_session"
	SlotOnboarding Slot = "ems_onboarding"
	SlotModules    Slot = "ems_modules"
	SlotQuizzes    Slot = "ems_quizzes"
	SlotAttempts   Slot = "ems_quiz_attempts"
	SlotReviews    Slot = "ems_reviews"
	SlotProfiles   Slot = "ems_profiles"
)

// ErrSlotEmpty is returned by Get when a slot holds no value.
var ErrSlotEmpty = errors.New("store: slot is empty")

// Store is the slot-level get/set/clear primitive. Values are opaque JSON
// documents; each mutator above this layer replaces a whole slot in one step,
// so no partial-write state is observable.
type Store interface {
	Get(ctx context.Context, slot Slot) ([]byte, error)
	Set(ctx context.Context, slot Slot, value []byte) error
	Delete(ctx context.Context, slot Slot) error

	// Reset wipes every slot. Used only by the bootstrap path.
	Reset(ctx context.Context) error

	Ping(ctx context.Context) error
	Close() error
}

var allSlots = []Slot{
	SlotInit,
	SlotUsers,
	SlotTasks,
	SlotSession,
	SlotOnboarding,
	SlotModules,
	SlotQuizzes,
	SlotAttempts,
	SlotReviews,
	SlotProfiles,
}
