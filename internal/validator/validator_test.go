package validator

import (
	"testing"
	"time"
)

func hasRule(errs ValidationErrors, field, rule string) bool {
	for _, e := range errs {
		if e.Field == field && e.Rule == rule {
			return true
		}
	}
	return false
}

func TestLoginRequest(t *testing.T) {
	v := New()

	if errs := v.Validate(&LoginRequest{Email: "gourav@employee.com", Password: "12345"}); errs != nil {
		t.Errorf("valid login rejected: %v", errs)
	}
	if errs := v.Validate(&LoginRequest{Email: "not-an-email", Password: "12345"}); !hasRule(errs, "Email", "email") {
		t.Errorf("bad email accepted: %v", errs)
	}
	if errs := v.Validate(&LoginRequest{Email: "gourav@employee.com"}); !hasRule(errs, "Password", "required") {
		t.Errorf("missing password accepted: %v", errs)
	}
}

func TestCreateMemberRequest(t *testing.T) {
	v := New()

	valid := &CreateMemberRequest{
		Name:            "New Member",
		Email:           "new@trainer.com",
		Designation:     "Trainer",
		Password:        "secret",
		ConfirmPassword: "secret",
	}
	if errs := v.Validate(valid); errs != nil {
		t.Errorf("valid member rejected: %v", errs)
	}

	mismatch := *valid
	mismatch.ConfirmPassword = "other"
	if errs := v.Validate(&mismatch); !hasRule(errs, "ConfirmPassword", "eqfield") {
		t.Errorf("password mismatch accepted: %v", errs)
	}

	foreign := *valid
	foreign.Email = "new@gmail.com"
	if errs := v.Validate(&foreign); !hasRule(errs, "Email", "role_email") {
		t.Errorf("foreign domain accepted: %v", errs)
	}

	short := *valid
	short.Password = "1234"
	short.ConfirmPassword = "1234"
	if errs := v.Validate(&short); !hasRule(errs, "Password", "min") {
		t.Errorf("short password accepted: %v", errs)
	}
}

func TestUpsertOnboardingRequest(t *testing.T) {
	v := New()

	valid := &UpsertOnboardingRequest{
		EmployeeEmail:         "gourav@employee.com",
		Department:            "Design",
		TrainerEmail:          "gourav@trainer.com",
		TrainingDurationWeeks: 6,
		JoiningDate:           "2026-02-15",
	}
	if errs := v.Validate(valid); errs != nil {
		t.Errorf("valid record rejected: %v", errs)
	}

	tooLong := *valid
	tooLong.TrainingDurationWeeks = 60
	if errs := v.Validate(&tooLong); !hasRule(errs, "TrainingDurationWeeks", "max") {
		t.Errorf("60 week duration accepted: %v", errs)
	}

	future := *valid
	future.JoiningDate = time.Now().UTC().AddDate(0, 0, 2).Format("2006-01-02")
	if errs := v.Validate(&future); !hasRule(errs, "JoiningDate", "past_or_today") {
		t.Errorf("future joining date accepted: %v", errs)
	}

	wrongRole := *valid
	wrongRole.TrainerEmail = "gourav@admin.com"
	if errs := v.Validate(&wrongRole); !hasRule(errs, "TrainerEmail", "trainer_email") {
		t.Errorf("non-trainer email accepted: %v", errs)
	}
}

func TestCreateModuleRequest(t *testing.T) {
	v := New()

	valid := &CreateModuleRequest{
		Title:        "Design Fundamentals",
		Material:     "https://example.com/material.pdf",
		MaterialType: "PDF",
		Deadline:     time.Now().UTC().AddDate(0, 0, 7).Format("2006-01-02"),
		Assignee:     "gourav@employee.com",
	}
	if errs := v.Validate(valid); errs != nil {
		t.Errorf("valid module rejected: %v", errs)
	}

	badURL := *valid
	badURL.Material = "ftp://example.com/material.pdf"
	if errs := v.Validate(&badURL); !hasRule(errs, "Material", "http_url") {
		t.Errorf("ftp url accepted: %v", errs)
	}

	pastDeadline := *valid
	pastDeadline.Deadline = "2020-01-01"
	if errs := v.Validate(&pastDeadline); !hasRule(errs, "Deadline", "today_or_future") {
		t.Errorf("past deadline accepted: %v", errs)
	}

	badType := *valid
	badType.MaterialType = "Audio"
	if errs := v.Validate(&badType); !hasRule(errs, "MaterialType", "material_type") {
		t.Errorf("bad material type accepted: %v", errs)
	}
}

func TestUpdateTaskStatusRequest(t *testing.T) {
	v := New()

	for _, status := range []string{"new", "accepted", "completed", "failed"} {
		if errs := v.Validate(&UpdateTaskStatusRequest{Status: status}); errs != nil {
			t.Errorf("status %q rejected: %v", status, errs)
		}
	}
	if errs := v.Validate(&UpdateTaskStatusRequest{Status: "done"}); !hasRule(errs, "Status", "task_status") {
		t.Errorf("unknown status accepted: %v", errs)
	}
}

func TestCreateQuizRequest(t *testing.T) {
	v := New()

	valid := &CreateQuizRequest{
		Title:        "UI Basics Quiz",
		Assignee:     "gourav@employee.com",
		TimeLimit:    20,
		PassingScore: 60,
		TotalMarks:   100,
		Questions:    10,
	}
	if errs := v.Validate(valid); errs != nil {
		t.Errorf("valid quiz rejected: %v", errs)
	}

	shortLimit := *valid
	shortLimit.TimeLimit = 2
	if errs := v.Validate(&shortLimit); !hasRule(errs, "TimeLimit", "min") {
		t.Errorf("2 minute limit accepted: %v", errs)
	}

	overScore := *valid
	overScore.PassingScore = 120
	if errs := v.Validate(&overScore); !hasRule(errs, "PassingScore", "max") {
		t.Errorf("120 passing score accepted: %v", errs)
	}

	tooManyQuestions := *valid
	tooManyQuestions.Questions = 150
	if errs := v.Validate(&tooManyQuestions); !hasRule(errs, "Questions", "max") {
		t.Errorf("150 questions accepted: %v", errs)
	}
}

func TestSubmitReviewRequest(t *testing.T) {
	v := New()

	valid := &SubmitReviewRequest{
		EmployeeEmail:    "gourav@employee.com",
		Week:             "2026-W08",
		Rating:           3,
		Comments:         "Consistent progress with minor delays.",
		ImprovementAreas: "Time management.",
	}
	if errs := v.Validate(valid); errs != nil {
		t.Errorf("valid review rejected: %v", errs)
	}

	badWeek := *valid
	badWeek.Week = "W08-2026"
	if errs := v.Validate(&badWeek); !hasRule(errs, "Week", "week_key") {
		t.Errorf("bad week key accepted: %v", errs)
	}

	badRating := *valid
	badRating.Rating = 6
	if errs := v.Validate(&badRating); !hasRule(errs, "Rating", "max") {
		t.Errorf("rating 6 accepted: %v", errs)
	}

	shortComments := *valid
	shortComments.Comments = "ok"
	if errs := v.Validate(&shortComments); !hasRule(errs, "Comments", "min") {
		t.Errorf("short comments accepted: %v", errs)
	}
}

func TestUpdateProfileRequest(t *testing.T) {
	v := New()

	if errs := v.Validate(&UpdateProfileRequest{Phone: "9999999999", Location: "New Delhi"}); errs != nil {
		t.Errorf("valid profile rejected: %v", errs)
	}
	// All fields optional.
	if errs := v.Validate(&UpdateProfileRequest{}); errs != nil {
		t.Errorf("empty profile rejected: %v", errs)
	}
	if errs := v.Validate(&UpdateProfileRequest{Phone: "12345"}); !hasRule(errs, "Phone", "phone10") {
		t.Errorf("short phone accepted: %v", errs)
	}

	longBio := &UpdateProfileRequest{Bio: string(make([]byte, 221))}
	if errs := v.Validate(longBio); !hasRule(errs, "Bio", "max") {
		t.Errorf("221 char bio accepted: %v", errs)
	}
}

func TestAttemptQuizRequest(t *testing.T) {
	v := New()

	zero := 0.0
	if errs := v.Validate(&AttemptQuizRequest{Score: &zero}); errs != nil {
		t.Errorf("zero score rejected: %v", errs)
	}
	if errs := v.Validate(&AttemptQuizRequest{}); !hasRule(errs, "Score", "required") {
		t.Errorf("missing score accepted: %v", errs)
	}
}
