package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/EMS-F-2026/onboarding-service/internal/models"
	"github.com/EMS-F-2026/onboarding-service/internal/repositories"
	"github.com/EMS-F-2026/onboarding-service/internal/validator"
)

// BootstrapPassword lets an unknown address create its own account at login.
// Preserved source behavior: login doubles as implicit registration.
const BootstrapPassword = "12345"

type authService struct {
	repo        repositories.Repository
	logger      *slog.Logger
	validator   *validator.Validator
	credentials CredentialVerifier
}

func NewAuthService(repo repositories.Repository, logger *slog.Logger, v *validator.Validator, credentials CredentialVerifier) AuthService {
	return &authService{
		repo:        repo,
		logger:      logger,
		validator:   v,
		credentials: credentials,
	}
}

// nameFromEmail title-cases the email's local part.
func nameFromEmail(email string) string {
	localPart, _, _ := strings.Cut(email, "@")
	if localPart == "" {
		return "User"
	}
	return strings.ToUpper(localPart[:1]) + localPart[1:]
}

func newID(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, uuid.NewString())
}

func (s *authService) Authenticate(ctx context.Context, req *LoginRequest) (*models.Session, error) {
	if verrs := s.validator.Validate(req); verrs != nil {
		return nil, verrs
	}

	email := models.NormalizeEmail(req.Email)
	role := models.RoleFromEmail(email)
	if !role.Valid() {
		return nil, ErrInvalidDomain
	}

	existing, err := s.repo.User().GetByEmail(ctx, email)
	if err != nil && !repositories.IsNotFoundError(err) {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	var user *models.User
	switch {
	case existing != nil:
		if !s.credentials.Verify(existing.Password, req.Password) {
			s.logger.Warn("Login rejected", "email", email, "reason", "credential mismatch")
			return nil, ErrInvalidCredentials
		}
		user = existing
	case req.Password != BootstrapPassword:
		s.logger.Warn("Login rejected", "email", email, "reason", "unknown account")
		return nil, ErrUnknownUserBadPassword
	default:
		// Implicit registration with the bootstrap password.
		stored, err := s.credentials.Hash(req.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to prepare credentials: %w", err)
		}
		user = &models.User{
			ID:          newID("u"),
			Name:        nameFromEmail(email),
			Email:       email,
			Password:    stored,
			Role:        role,
			Designation: role.DefaultDesignation(),
		}
		if err := s.repo.User().Create(ctx, user); err != nil {
			return nil, fmt.Errorf("failed to create user: %w", err)
		}
		s.logger.Info("Account bootstrapped at login", "email", email, "role", role)
	}

	session := user.Session()
	if err := s.repo.Session().Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	s.logger.Info("Login succeeded", "email", email, "role", session.Role)
	return session, nil
}

func (s *authService) CurrentSession(ctx context.Context) (*models.Session, error) {
	return s.repo.Session().Get(ctx)
}

// Logout is idempotent: clearing an absent session succeeds.
func (s *authService) Logout(ctx context.Context) error {
	return s.repo.Session().Clear(ctx)
}
