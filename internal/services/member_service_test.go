package services

import (
	"context"
	"errors"
	"testing"

	"github.com/EMS-F-2026/onboarding-service/internal/events"
	"github.com/EMS-F-2026/onboarding-service/internal/models"
	"github.com/EMS-F-2026/onboarding-service/internal/validator"
)

func newTestMemberService(t *testing.T) (MemberService, *events.MockEventPublisher) {
	t.Helper()
	publisher := newMockPublisher()
	repo := newTestRepository(t)
	return NewMemberService(repo, testLogger(), validator.New(), PlaintextCredentials{}, publisher), publisher
}

func validMemberRequest() *CreateMemberRequest {
	return &CreateMemberRequest{
		Name:            "New Trainer",
		Email:           "priya@trainer.com",
		Designation:     "Design Coach",
		Password:        "secret",
		ConfirmPassword: "secret",
	}
}

func TestMemberCreate(t *testing.T) {
	ctx := context.Background()
	svc, publisher := newTestMemberService(t)

	member, err := svc.Create(ctx, validMemberRequest())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if member.Role != models.RoleTrainer {
		t.Errorf("Role = %q, want trainer", member.Role)
	}
	if member.Designation != "Design Coach" {
		t.Errorf("Designation = %q", member.Designation)
	}

	if len(publisher.Events) != 1 || publisher.Events[0].Type != events.EventMemberCreated {
		t.Errorf("events = %+v, want one member.created", publisher.Events)
	}
}

func TestMemberCreateDuplicateEmailCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestMemberService(t)

	req := validMemberRequest()
	req.Email = "GOURAV@Employee.com"
	_, err := svc.Create(ctx, req)
	if !errors.Is(err, ErrDuplicateEmail) {
		t.Errorf("err = %v, want ErrDuplicateEmail", err)
	}
}

func TestMemberListOmitsPasswords(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestMemberService(t)

	members, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(members) != 3 {
		t.Fatalf("members = %d, want 3 seeded", len(members))
	}
	// MemberResponse has no password field by construction; check identity
	// fields survive the projection.
	if members[0].Email != "gourav@admin.com" || members[0].Role != models.RoleAdmin {
		t.Errorf("members[0] = %+v", members[0])
	}
}

func TestMemberRemove(t *testing.T) {
	ctx := context.Background()
	svc, publisher := newTestMemberService(t)
	// Session id differs from every target so the self-removal check never
	// shadows the admin shield.
	session := &models.Session{ID: "u-admin-2", Role: models.RoleAdmin}

	tests := []struct {
		name    string
		id      string
		wantErr error
	}{
		{name: "trainer removable", id: "u-trainer-1", wantErr: nil},
		{name: "admin protected", id: "u-admin-1", wantErr: ErrAdminProtected},
		{name: "missing member", id: "u-ghost", wantErr: ErrMemberNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.Remove(ctx, tt.id, session)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Remove(%s) = %v, want %v", tt.id, err, tt.wantErr)
			}
		})
	}

	if len(publisher.Events) != 1 || publisher.Events[0].Type != events.EventMemberRemoved {
		t.Errorf("events = %+v, want one member.removed", publisher.Events)
	}
}

func TestMemberRemoveSelf(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestMemberService(t)

	// Self-removal is checked before the admin shield, and applies to any role.
	session := &models.Session{ID: "u-admin-1", Role: models.RoleAdmin}
	if err := svc.Remove(ctx, "u-admin-1", session); !errors.Is(err, ErrSelfRemoval) {
		t.Errorf("err = %v, want ErrSelfRemoval", err)
	}
}
