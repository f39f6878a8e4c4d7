package models

type ChecklistItem struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Done  bool   `json:"done"`
}

// DefaultChecklist returns the four fixed items seeded on every new
// onboarding record.
func DefaultChecklist() []ChecklistItem {
	return []ChecklistItem{
		{Key: "docs", Label: "Document Verification"},
		{Key: "tools", Label: "Tools Setup"},
		{Key: "policy", Label: "Policy Orientation"},
		{Key: "mentor", Label: "Mentor Introduction"},
	}
}

// OnboardingRecord tracks one employee's onboarding. There is exactly one
// record per employee email; writes are upserts keyed on it.
type OnboardingRecord struct {
	ID                    string          `json:"id"`
	EmployeeEmail         string          `json:"employeeEmail"`
	Department            string          `json:"department"`
	TrainerEmail          string          `json:"trainerEmail"`
	TrainingDurationWeeks int             `json:"trainingDurationWeeks"`
	JoiningDate           string          `json:"joiningDate"`
	Checklist             []ChecklistItem `json:"checklist"`
}
