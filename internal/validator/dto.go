package validator

// Request structures for the command surface. Field rules mirror the
// original forms; out-of-range input is rejected before any mutation.

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type CreateMemberRequest struct {
	Name            string `json:"name" validate:"required,min=2"`
	Email           string `json:"email" validate:"required,email,role_email"`
	Designation     string `json:"designation" validate:"required,min=2"`
	Password        string `json:"password" validate:"required,min=5"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

type CreateTaskRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Date        string `json:"date" validate:"required,date_ymd"`
	Priority    string `json:"priority"`
	Assignee    string `json:"assignee" validate:"required,email"`
	Category    string `json:"category"`
}

type UpdateTaskStatusRequest struct {
	Status string `json:"status" validate:"required,task_status"`
}

type UpsertOnboardingRequest struct {
	EmployeeEmail         string `json:"employeeEmail" validate:"required,email,employee_email"`
	Department            string `json:"department" validate:"required"`
	TrainerEmail          string `json:"trainerEmail" validate:"required,email,trainer_email"`
	TrainingDurationWeeks int    `json:"trainingDurationWeeks" validate:"required,min=1,max=52"`
	JoiningDate           string `json:"joiningDate" validate:"required,date_ymd,past_or_today"`
}

type CreateModuleRequest struct {
	Title        string `json:"title" validate:"required,min=3"`
	Material     string `json:"material" validate:"required,http_url"`
	MaterialType string `json:"materialType" validate:"required,material_type"`
	Deadline     string `json:"deadline" validate:"required,date_ymd,today_or_future"`
	QuizID       string `json:"quizId"`
	Assignee     string `json:"assignee" validate:"required,email,employee_email"`
}

type CreateQuizRequest struct {
	Title        string `json:"title" validate:"required,min=3"`
	Assignee     string `json:"assignee" validate:"required,email,employee_email"`
	TimeLimit    int    `json:"timeLimit" validate:"required,min=5,max=180"`
	PassingScore int    `json:"passingScore" validate:"min=0,max=100"`
	TotalMarks   int    `json:"totalMarks" validate:"required,gt=0"`
	Questions    int    `json:"questions" validate:"required,min=1,max=100"`
}

type AttemptQuizRequest struct {
	// Pointer so a legitimate zero score still binds.
	Score *float64 `json:"score" validate:"required"`
}

type SubmitAssignmentRequest struct {
	Link string `json:"link" validate:"required,http_url"`
}

type SubmitReviewRequest struct {
	EmployeeEmail    string `json:"employeeEmail" validate:"required,email,employee_email"`
	Week             string `json:"week" validate:"required,week_key"`
	Rating           int    `json:"rating" validate:"required,min=1,max=5"`
	Comments         string `json:"comments" validate:"required,min=10"`
	ImprovementAreas string `json:"improvementAreas" validate:"required,min=5"`
}

type UpdateProfileRequest struct {
	Phone    string `json:"phone" validate:"omitempty,phone10"`
	Location string `json:"location"`
	Bio      string `json:"bio" validate:"omitempty,max=220"`
}
