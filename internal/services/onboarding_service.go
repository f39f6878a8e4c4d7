package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/EMS-F-2026/onboarding-service/internal/models"
	"github.com/EMS-F-2026/onboarding-service/internal/repositories"
	"github.com/EMS-F-2026/onboarding-service/internal/validator"
)

type onboardingService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
}

func NewOnboardingService(repo repositories.Repository, logger *slog.Logger, v *validator.Validator) OnboardingService {
	return &onboardingService{
		repo:      repo,
		logger:    logger,
		validator: v,
	}
}

func (s *onboardingService) List(ctx context.Context) ([]models.OnboardingRecord, error) {
	records, err := s.repo.Onboarding().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list onboarding records: %w", err)
	}
	return records, nil
}

func (s *onboardingService) Upsert(ctx context.Context, req *UpsertOnboardingRequest) (*models.OnboardingRecord, error) {
	if verrs := s.validator.Validate(req); verrs != nil {
		return nil, verrs
	}

	record := &models.OnboardingRecord{
		ID:                    newID("ob"),
		EmployeeEmail:         models.NormalizeEmail(req.EmployeeEmail),
		Department:            strings.TrimSpace(req.Department),
		TrainerEmail:          models.NormalizeEmail(req.TrainerEmail),
		TrainingDurationWeeks: req.TrainingDurationWeeks,
		JoiningDate:           req.JoiningDate,
		Checklist:             models.DefaultChecklist(),
	}

	// The repository keeps the existing id and checklist when this is an
	// update of an existing employee's record.
	if err := s.repo.Onboarding().Upsert(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to upsert onboarding record: %w", err)
	}

	s.logger.Info("Onboarding record saved", "employee", record.EmployeeEmail, "trainer", record.TrainerEmail)
	return record, nil
}

func (s *onboardingService) Checklist(ctx context.Context, employeeEmail string) (*models.OnboardingRecord, error) {
	record, err := s.repo.Onboarding().GetByEmployee(ctx, models.NormalizeEmail(employeeEmail))
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrOnboardingNotFound
		}
		return nil, fmt.Errorf("failed to get onboarding record: %w", err)
	}
	return record, nil
}

func (s *onboardingService) ToggleChecklistItem(ctx context.Context, employeeEmail, key string) error {
	err := s.repo.Onboarding().ToggleChecklistItem(ctx, models.NormalizeEmail(employeeEmail), key)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return ErrOnboardingNotFound
		}
		return fmt.Errorf("failed to toggle checklist item: %w", err)
	}
	return nil
}
