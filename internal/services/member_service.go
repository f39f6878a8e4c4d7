package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/EMS-F-2026/onboarding-service/internal/events"
	"github.com/EMS-F-2026/onboarding-service/internal/models"
	"github.com/EMS-F-2026/onboarding-service/internal/repositories"
	"github.com/EMS-F-2026/onboarding-service/internal/validator"
)

type memberService struct {
	repo        repositories.Repository
	logger      *slog.Logger
	validator   *validator.Validator
	credentials CredentialVerifier
	publisher   events.EventPublisher
}

func NewMemberService(
	repo repositories.Repository,
	logger *slog.Logger,
	v *validator.Validator,
	credentials CredentialVerifier,
	publisher events.EventPublisher,
) MemberService {
	return &memberService{
		repo:        repo,
		logger:      logger,
		validator:   v,
		credentials: credentials,
		publisher:   publisher,
	}
}

func toMemberResponse(user *models.User) *MemberResponse {
	return &MemberResponse{
		ID:          user.ID,
		Name:        user.Name,
		Email:       user.Email,
		Role:        user.Role,
		Designation: user.Designation,
	}
}

func (s *memberService) List(ctx context.Context) ([]MemberResponse, error) {
	users, err := s.repo.User().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	members := make([]MemberResponse, len(users))
	for i := range users {
		members[i] = *toMemberResponse(&users[i])
	}
	return members, nil
}

func (s *memberService) Create(ctx context.Context, req *CreateMemberRequest) (*MemberResponse, error) {
	if verrs := s.validator.Validate(req); verrs != nil {
		return nil, verrs
	}

	email := models.NormalizeEmail(req.Email)
	role := models.RoleFromEmail(email)
	if !role.Valid() {
		return nil, ErrInvalidDomain
	}

	// Duplicate check is case-insensitive.
	if _, err := s.repo.User().GetByEmail(ctx, email); err == nil {
		return nil, ErrDuplicateEmail
	} else if !repositories.IsNotFoundError(err) {
		return nil, fmt.Errorf("failed to check for duplicate: %w", err)
	}

	designation := strings.TrimSpace(req.Designation)
	if designation == "" {
		designation = role.DefaultDesignation()
	}

	stored, err := s.credentials.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare credentials: %w", err)
	}

	user := &models.User{
		ID:          newID("u"),
		Name:        strings.TrimSpace(req.Name),
		Email:       email,
		Password:    stored,
		Role:        role,
		Designation: designation,
	}
	if err := s.repo.User().Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create member: %w", err)
	}

	s.logger.Info("Member created", "email", email, "role", role)
	if err := s.publisher.Publish(ctx, events.Event{
		Type:    events.EventMemberCreated,
		Subject: email,
		Message: fmt.Sprintf("%s joined as %s", user.Name, role),
	}); err != nil {
		s.logger.Warn("Failed to publish member event", "error", err)
	}

	return toMemberResponse(user), nil
}

func (s *memberService) Remove(ctx context.Context, id string, session *models.Session) error {
	target, err := s.repo.User().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return ErrMemberNotFound
		}
		return fmt.Errorf("failed to look up member: %w", err)
	}

	if session != nil && session.ID == id {
		return ErrSelfRemoval
	}
	if target.Role == models.RoleAdmin {
		return ErrAdminProtected
	}

	if err := s.repo.User().Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to remove member: %w", err)
	}

	s.logger.Info("Member removed", "email", target.Email)
	if err := s.publisher.Publish(ctx, events.Event{
		Type:    events.EventMemberRemoved,
		Subject: target.Email,
		Message: fmt.Sprintf("%s was removed", target.Name),
	}); err != nil {
		s.logger.Warn("Failed to publish member event", "error", err)
	}
	return nil
}
