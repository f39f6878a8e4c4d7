package store

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/EMS-F-2026/onboarding-service/internal/models"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	if _, err := s.Get(ctx, SlotUsers); !errors.Is(err, ErrSlotEmpty) {
		t.Fatalf("Get on empty slot = %v, want ErrSlotEmpty", err)
	}

	if err := s.Set(ctx, SlotUsers, []byte(`[]`)); err != nil {
		t.Fatalf("Set: %v", err)
	}
	value, err := s.Get(ctx, SlotUsers)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(value) != `[]` {
		t.Errorf("Get = %q", value)
	}

	if err := s.Delete(ctx, SlotUsers); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := s.Get(ctx, SlotUsers); !errors.Is(err, ErrSlotEmpty) {
		t.Errorf("Get after delete = %v, want ErrSlotEmpty", err)
	}
}

func TestMemoryStoreReset(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	if err := s.Set(ctx, SlotTasks, []byte(`[]`)); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := s.Reset(ctx); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if _, err := s.Get(ctx, SlotTasks); !errors.Is(err, ErrSlotEmpty) {
		t.Errorf("Get after reset = %v, want ErrSlotEmpty", err)
	}
}

func TestInitializeSeedsOnce(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	if err := Initialize(ctx, s); err != nil {
		t.Fatalf("Initialize: %v", err)
	}

	flag, err := s.Get(ctx, SlotInit)
	if err != nil {
		t.Fatalf("init flag missing: %v", err)
	}
	if string(flag) != "true" {
		t.Errorf("init flag = %q, want true", flag)
	}

	raw, err := s.Get(ctx, SlotUsers)
	if err != nil {
		t.Fatalf("users slot missing: %v", err)
	}
	var users []models.User
	if err := json.Unmarshal(raw, &users); err != nil {
		t.Fatalf("decode users: %v", err)
	}
	if len(users) != 3 {
		t.Fatalf("seeded users = %d, want 3", len(users))
	}
	if users[0].Email != "gourav@admin.com" {
		t.Errorf("first seeded user = %q", users[0].Email)
	}

	// Session must start cleared.
	if _, err := s.Get(ctx, SlotSession); !errors.Is(err, ErrSlotEmpty) {
		t.Errorf("session slot = %v, want ErrSlotEmpty", err)
	}
}

func TestInitializePreservesMutations(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	if err := Initialize(ctx, s); err != nil {
		t.Fatalf("Initialize: %v", err)
	}

	// Simulate a post-seed mutation and verify a second Initialize is a no-op.
	if err := s.Set(ctx, SlotTasks, []byte(`[{"id":"custom"}]`)); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := Initialize(ctx, s); err != nil {
		t.Fatalf("second Initialize: %v", err)
	}

	raw, err := s.Get(ctx, SlotTasks)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	var tasks []models.Task
	if err := json.Unmarshal(raw, &tasks); err != nil {
		t.Fatalf("decode tasks: %v", err)
	}
	if len(tasks) != 1 || tasks[0].ID != "custom" {
		t.Errorf("tasks after reseed attempt = %+v, want custom task only", tasks)
	}
}

func newTestRedisStore(t *testing.T) *RedisStore {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisStore(client, "ems-test")
}

func TestRedisStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestRedisStore(t)

	if _, err := s.Get(ctx, SlotQuizzes); !errors.Is(err, ErrSlotEmpty) {
		t.Fatalf("Get on empty slot = %v, want ErrSlotEmpty", err)
	}

	if err := s.Set(ctx, SlotQuizzes, []byte(`[{"id":"q-1"}]`)); err != nil {
		t.Fatalf("Set: %v", err)
	}
	value, err := s.Get(ctx, SlotQuizzes)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(value) != `[{"id":"q-1"}]` {
		t.Errorf("Get = %q", value)
	}

	if err := s.Delete(ctx, SlotQuizzes); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := s.Get(ctx, SlotQuizzes); !errors.Is(err, ErrSlotEmpty) {
		t.Errorf("Get after delete = %v, want ErrSlotEmpty", err)
	}
}

func TestRedisStoreReset(t *testing.T) {
	ctx := context.Background()
	s := newTestRedisStore(t)

	if err := s.Set(ctx, SlotReviews, []byte(`[]`)); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := s.Reset(ctx); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if _, err := s.Get(ctx, SlotReviews); !errors.Is(err, ErrSlotEmpty) {
		t.Errorf("Get after reset = %v, want ErrSlotEmpty", err)
	}
}

func TestInitializeOverRedis(t *testing.T) {
	ctx := context.Background()
	s := newTestRedisStore(t)

	if err := Initialize(ctx, s); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	raw, err := s.Get(ctx, SlotModules)
	if err != nil {
		t.Fatalf("modules slot missing: %v", err)
	}
	var modules []models.TrainingModule
	if err := json.Unmarshal(raw, &modules); err != nil {
		t.Fatalf("decode modules: %v", err)
	}
	if len(modules) != 1 || modules[0].ID != "m-1" {
		t.Errorf("seeded modules = %+v", modules)
	}
}
