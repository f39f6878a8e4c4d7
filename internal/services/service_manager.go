package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/EMS-F-2026/onboarding-service/internal/events"
	"github.com/EMS-F-2026/onboarding-service/internal/repositories"
	"github.com/EMS-F-2026/onboarding-service/internal/validator"
)

// ServiceManager wires the service layer together and owns its lifecycle.
type ServiceManager interface {
	Initialize(ctx context.Context) error
	Shutdown(ctx context.Context) error

	Auth() AuthService
	Members() MemberService
	Tasks() TaskService
	Onboarding() OnboardingService
	Training() TrainingService
	Dashboards() DashboardService
	Reports() ReportService
	Notifications() NotificationService
}

// ServiceManagerConfig holds configuration for the service manager.
type ServiceManagerConfig struct {
	// CredentialMode selects how passwords are stored and verified.
	// Supported values: "plaintext" (default) and "bcrypt".
	CredentialMode string
}

type serviceManager struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
	bus       *events.Bus
	config    ServiceManagerConfig

	authService         AuthService
	memberService       MemberService
	taskService         TaskService
	onboardingService   OnboardingService
	trainingService     TrainingService
	dashboardService    DashboardService
	reportService       ReportService
	notificationService NotificationService

	initialized bool
	shutdown    bool
	mu          sync.RWMutex
}

// NewServiceManager creates a service manager with all dependencies.
func NewServiceManager(
	repo repositories.Repository,
	logger *slog.Logger,
	v *validator.Validator,
	bus *events.Bus,
	config ServiceManagerConfig,
) ServiceManager {
	return &serviceManager{
		repo:      repo,
		logger:    logger,
		validator: v,
		bus:       bus,
		config:    config,
	}
}

// Initialize sets up all services and starts the notification consumer.
func (sm *serviceManager) Initialize(ctx context.Context) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	sm.logger.Info("Initializing service manager")

	credentials := NewCredentialVerifier(sm.config.CredentialMode)

	sm.authService = NewAuthService(sm.repo, sm.logger, sm.validator, credentials)
	sm.memberService = NewMemberService(sm.repo, sm.logger, sm.validator, credentials, sm.bus)
	sm.taskService = NewTaskService(sm.repo, sm.logger, sm.validator, sm.bus)
	sm.onboardingService = NewOnboardingService(sm.repo, sm.logger, sm.validator)
	sm.trainingService = NewTrainingService(sm.repo, sm.logger, sm.validator, sm.bus)
	sm.dashboardService = NewDashboardService(sm.repo, sm.logger)
	sm.reportService = NewReportService(sm.dashboardService, sm.logger)

	notifications, err := NewNotificationService(ctx, sm.bus, sm.logger)
	if err != nil {
		return fmt.Errorf("failed to start notification consumer: %w", err)
	}
	sm.notificationService = notifications

	sm.initialized = true
	sm.logger.Info("Service manager initialized successfully")

	return nil
}

func (sm *serviceManager) Shutdown(_ context.Context) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.shutdown {
		return nil
	}

	sm.logger.Info("Shutting down service manager")

	if err := sm.bus.Close(); err != nil {
		return fmt.Errorf("failed to close event bus: %w", err)
	}

	sm.shutdown = true
	return nil
}

func (sm *serviceManager) Auth() AuthService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		panic("service manager not initialized")
	}
	return sm.authService
}

func (sm *serviceManager) Members() MemberService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		panic("service manager not initialized")
	}
	return sm.memberService
}

func (sm *serviceManager) Tasks() TaskService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		panic("service manager not initialized")
	}
	return sm.taskService
}

func (sm *serviceManager) Onboarding() OnboardingService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		panic("service manager not initialized")
	}
	return sm.onboardingService
}

func (sm *serviceManager) Training() TrainingService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		panic("service manager not initialized")
	}
	return sm.trainingService
}

func (sm *serviceManager) Dashboards() DashboardService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		panic("service manager not initialized")
	}
	return sm.dashboardService
}

func (sm *serviceManager) Reports() ReportService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		panic("service manager not initialized")
	}
	return sm.reportService
}

func (sm *serviceManager) Notifications() NotificationService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		panic("service manager not initialized")
	}
	return sm.notificationService
}
