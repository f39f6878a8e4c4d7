package validator

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/EMS-F-2026/onboarding-service/internal/models"
)

// ValidationError represents one rejected field.
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
	Rule    string      `json:"rule,omitempty"`
}

type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}
	if len(ve) == 1 {
		return fmt.Sprintf("validation failed: %s %s", ve[0].Field, ve[0].Message)
	}
	return fmt.Sprintf("validation failed: %d field errors", len(ve))
}

// Validator wraps go-playground validation with the domain's custom rules.
type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := &Validator{validate: validator.New()}
	v.registerRules()
	return v
}

// Validate checks a request struct. A nil return means the input passed.
func (v *Validator) Validate(s interface{}) ValidationErrors {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}
	return ToValidationErrors(err)
}

func ToValidationErrors(err error) ValidationErrors {
	fieldErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return ValidationErrors{{Field: "request", Message: err.Error()}}
	}
	var errors ValidationErrors
	for _, fe := range fieldErrors {
		errors = append(errors, ValidationError{
			Field:   fe.Field(),
			Message: messageFor(fe),
			Value:   fe.Value(),
			Rule:    fe.Tag(),
		})
	}
	return errors
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "role_email":
		return "must end with @employee.com, @trainer.com, or @admin.com"
	case "employee_email":
		return "must be an @employee.com email"
	case "trainer_email":
		return "must be a @trainer.com email"
	case "week_key":
		return "must match the YYYY-Www week format"
	case "http_url":
		return "must be a valid http/https URL"
	case "phone10":
		return "must be exactly 10 digits"
	case "date_ymd":
		return "must be a YYYY-MM-DD date"
	case "past_or_today":
		return "cannot be in the future"
	case "today_or_future":
		return "cannot be in the past"
	case "task_status":
		return "must be one of new, accepted, completed, failed"
	case "material_type":
		return "must be PDF or Video"
	default:
		return fmt.Sprintf("failed rule %s", fe.Tag())
	}
}

var (
	weekKeyPattern = regexp.MustCompile(`^\d{4}-W\d{2}$`)
	phonePattern   = regexp.MustCompile(`^\d{10}$`)
)

func hasDomain(email, domain string) bool {
	return strings.HasSuffix(strings.ToLower(strings.TrimSpace(email)), domain)
}

func todayYMD() string {
	return time.Now().UTC().Format("2006-01-02")
}

func (v *Validator) registerRules() {
	v.validate.RegisterValidation("role_email", func(fl validator.FieldLevel) bool {
		email := fl.Field().String()
		return hasDomain(email, "@employee.com") || hasDomain(email, "@trainer.com") || hasDomain(email, "@admin.com")
	})

	v.validate.RegisterValidation("employee_email", func(fl validator.FieldLevel) bool {
		return hasDomain(fl.Field().String(), "@employee.com")
	})

	v.validate.RegisterValidation("trainer_email", func(fl validator.FieldLevel) bool {
		return hasDomain(fl.Field().String(), "@trainer.com")
	})

	v.validate.RegisterValidation("week_key", func(fl validator.FieldLevel) bool {
		return weekKeyPattern.MatchString(strings.TrimSpace(fl.Field().String()))
	})

	v.validate.RegisterValidation("http_url", func(fl validator.FieldLevel) bool {
		parsed, err := url.Parse(fl.Field().String())
		if err != nil {
			return false
		}
		return parsed.Scheme == "http" || parsed.Scheme == "https"
	})

	v.validate.RegisterValidation("phone10", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(strings.TrimSpace(fl.Field().String()))
	})

	v.validate.RegisterValidation("task_status", func(fl validator.FieldLevel) bool {
		return models.TaskStatus(fl.Field().String()).Valid()
	})

	v.validate.RegisterValidation("material_type", func(fl validator.FieldLevel) bool {
		return models.MaterialType(fl.Field().String()).Valid()
	})

	v.validate.RegisterValidation("date_ymd", func(fl validator.FieldLevel) bool {
		_, err := time.Parse("2006-01-02", fl.Field().String())
		return err == nil
	})

	// Date-string comparisons follow the original's lexicographic check on
	// ISO dates.
	v.validate.RegisterValidation("past_or_today", func(fl validator.FieldLevel) bool {
		return fl.Field().String() <= todayYMD()
	})

	v.validate.RegisterValidation("today_or_future", func(fl validator.FieldLevel) bool {
		return fl.Field().String() >= todayYMD()
	})
}
