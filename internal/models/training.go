package models

type MaterialType string

const (
	MaterialPDF   MaterialType = "PDF"
	MaterialVideo MaterialType = "Video"
)

func (m MaterialType) Valid() bool {
	return m == MaterialPDF || m == MaterialVideo
}

// TrainingModule is an assignable training unit. CompletedBy is append-only
// and idempotent; Submissions is last-write-wins per employee email.
type TrainingModule struct {
	ID           string            `json:"id"`
	Title        string            `json:"title"`
	Material     string            `json:"material"`
	MaterialType MaterialType      `json:"materialType"`
	Deadline     string            `json:"deadline"`
	QuizID       string            `json:"quizId"`
	Assignee     string            `json:"assignee"`
	TrainerEmail string            `json:"trainerEmail"`
	CompletedBy  []string          `json:"completedBy"`
	Submissions  map[string]string `json:"submissions"`
}

// CompletedByEmail reports whether the normalized email is already in the
// completion set.
func (m *TrainingModule) CompletedByEmail(email string) bool {
	for _, e := range m.CompletedBy {
		if e == email {
			return true
		}
	}
	return false
}

type Quiz struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Assignee     string `json:"assignee"`
	TrainerEmail string `json:"trainerEmail"`
	TimeLimit    int    `json:"timeLimit"`
	PassingScore int    `json:"passingScore"`
	TotalMarks   int    `json:"totalMarks"`
	Questions    int    `json:"questions"`
}

// QuizAttempt is immutable once created; multiple attempts per employee and
// quiz are permitted.
type QuizAttempt struct {
	ID            string  `json:"id"`
	QuizID        string  `json:"quizId"`
	EmployeeEmail string  `json:"employeeEmail"`
	Score         float64 `json:"score"`
	Passed        bool    `json:"passed"`
	Feedback      string  `json:"feedback"`
	Date          string  `json:"date"`
}

type WeeklyReview struct {
	ID               string `json:"id"`
	EmployeeEmail    string `json:"employeeEmail"`
	TrainerEmail     string `json:"trainerEmail"`
	Week             string `json:"week"`
	Rating           int    `json:"rating"`
	Comments         string `json:"comments"`
	ImprovementAreas string `json:"improvementAreas"`
	Date             string `json:"date"`
}

// Profile is keyed uniquely by email with create-or-replace semantics.
type Profile struct {
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Bio      string `json:"bio"`
}
