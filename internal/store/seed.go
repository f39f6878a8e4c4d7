package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/EMS-F-2026/onboarding-service/internal/models"
)

func seedUsers() []models.User {
	return []models.User{
		{
			ID:          "u-admin-1",
			Name:        "Admin User",
			Email:       "gourav@admin.com",
			Password:    "12345",
			Role:        models.RoleAdmin,
			Designation: "Administrator",
		},
		{
			ID:          "u-trainer-1",
			Name:        "Trainer User",
			Email:       "gourav@trainer.com",
			Password:    "12345",
			Role:        models.RoleTrainer,
			Designation: "Senior Trainer",
		},
		{
			ID:          "u-emp-1",
			Name:        "Employee User",
			Email:       "gourav@employee.com",
			Password:    "12345",
			Role:        models.RoleEmployee,
			Designation: "Product Designer",
		},
	}
}

func seedTasks() []models.Task {
	return []models.Task{
		{
			ID:          "t-1",
			Title:       "Prepare Monthly Report",
			Description: "Compile monthly KPIs and share with leadership.",
			Date:        "2026-02-24",
			Priority:    models.PriorityHigh,
			Status:      models.TaskNew,
			Assignee:    "gourav@employee.com",
			Category:    "Reporting",
		},
		{
			ID:          "t-2",
			Title:       "Client Follow-Up Call",
			Description: "Follow up with design client on final revisions.",
			Date:        "2026-02-25",
			Priority:    models.PriorityMedium,
			Status:      models.TaskAccepted,
			Assignee:    "gourav@employee.com",
			Category:    "Client",
		},
		{
			ID:          "t-3",
			Title:       "Update Team Roster",
			Description: "Refresh roster with current department assignments.",
			Date:        "2026-02-26",
			Priority:    models.PriorityLow,
			Status:      models.TaskCompleted,
			Assignee:    "gourav@employee.com",
			Category:    "HR",
		},
		{
			ID:          "t-4",
			Title:       "Fix Login Bug",
			Description: "Resolve role routing issue in login.",
			Date:        "2026-02-27",
			Priority:    models.PriorityHigh,
			Status:      models.TaskFailed,
			Assignee:    "gourav@employee.com",
			Category:    "Engineering",
		},
	}
}

func seedOnboarding() []models.OnboardingRecord {
	return []models.OnboardingRecord{
		{
			ID:                    "ob-1",
			EmployeeEmail:         "gourav@employee.com",
			Department:            "Design",
			TrainerEmail:          "gourav@trainer.com",
			TrainingDurationWeeks: 6,
			JoiningDate:           "2026-02-15",
			Checklist: []models.ChecklistItem{
				{Key: "docs", Label: "Document Verification", Done: true},
				{Key: "tools", Label: "Tools Setup", Done: true},
				{Key: "policy", Label: "Policy Orientation", Done: false},
				{Key: "mentor", Label: "Mentor Introduction", Done: false},
			},
		},
	}
}

func seedModules() []models.TrainingModule {
	return []models.TrainingModule{
		{
			ID:           "m-1",
			Title:        "Design Fundamentals",
			Material:     "https://example.com/design-fundamentals.pdf",
			MaterialType: models.MaterialPDF,
			Deadline:     "2026-03-01",
			QuizID:       "q-1",
			Assignee:     "gourav@employee.com",
			TrainerEmail: "gourav@trainer.com",
			CompletedBy:  []string{},
			Submissions:  map[string]string{},
		},
	}
}

func seedQuizzes() []models.Quiz {
	return []models.Quiz{
		{
			ID:           "q-1",
			Title:        "UI Basics Quiz",
			Assignee:     "gourav@employee.com",
			TrainerEmail: "gourav@trainer.com",
			TimeLimit:    20,
			PassingScore: 60,
			TotalMarks:   100,
			Questions:    10,
		},
	}
}

func seedAttempts() []models.QuizAttempt {
	return []models.QuizAttempt{
		{
			ID:            "a-1",
			QuizID:        "q-1",
			EmployeeEmail: "gourav@employee.com",
			Score:         72,
			Passed:        true,
			Feedback:      "Good understanding. Improve typography and spacing decisions.",
			Date:          "2026-02-21",
		},
	}
}

func seedReviews() []models.WeeklyReview {
	return []models.WeeklyReview{
		{
			ID:               "r-1",
			EmployeeEmail:    "gourav@employee.com",
			TrainerEmail:     "gourav@trainer.com",
			Week:             "2026-W08",
			Rating:           3,
			Comments:         "Consistent progress with minor delays.",
			ImprovementAreas: "Time management and prioritization.",
			Date:             "2026-02-22",
		},
	}
}

func seedProfiles() []models.Profile {
	return []models.Profile{
		{
			Email:    "gourav@employee.com",
			Phone:    "9999999999",
			Location: "New Delhi",
			Bio:      "Entry-level product designer in onboarding phase.",
		},
	}
}

// Initialize seeds the store exactly once per store lifetime. When the
// initialization flag is present the existing data is left untouched;
// otherwise every slot is wiped and the fixture collections are written,
// the session slot cleared and the flag set.
func Initialize(ctx context.Context, s Store) error {
	_, err := s.Get(ctx, SlotInit)
	if err == nil {
		return nil
	}
	if !errors.Is(err, ErrSlotEmpty) {
		return fmt.Errorf("failed to read init flag: %w", err)
	}

	if err := s.Reset(ctx); err != nil {
		return err
	}

	seeds := map[Slot]any{
		SlotUsers:      seedUsers(),
		SlotTasks:      seedTasks(),
		SlotOnboarding: seedOnboarding(),
		SlotModules:    seedModules(),
		SlotQuizzes:    seedQuizzes(),
		SlotAttempts:   seedAttempts(),
		SlotReviews:    seedReviews(),
		SlotProfiles:   seedProfiles(),
	}

	for slot, data := range seeds {
		encoded, err := json.Marshal(data)
		if err != nil {
			return fmt.Errorf("failed to encode seed for slot %s: %w", slot, err)
		}
		if err := s.Set(ctx, slot, encoded); err != nil {
			return err
		}
	}

	if err := s.Delete(ctx, SlotSession); err != nil {
		return err
	}
	return s.Set(ctx, SlotInit, []byte("true"))
}
