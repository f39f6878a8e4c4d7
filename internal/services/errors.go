package services

import "errors"

// Authentication and member management errors. The credential mismatch and
// unknown-user cases are deliberately not distinguished beyond the
// bootstrap-password special case.
var (
	ErrInvalidDomain          = errors.New("email must use @employee.com, @trainer.com, or @admin.com")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrUnknownUserBadPassword = errors.New("unknown account and password is not the bootstrap password")
	ErrDuplicateEmail         = errors.New("member with this email already exists")
	ErrMemberNotFound         = errors.New("member not found")
	ErrSelfRemoval            = errors.New("cannot remove your own account")
	ErrAdminProtected         = errors.New("admin accounts cannot be removed")
	ErrNotAuthenticated       = errors.New("not authenticated")
)

// Entity lookup errors.
var (
	ErrTaskNotFound       = errors.New("task not found")
	ErrModuleNotFound     = errors.New("module not found")
	ErrQuizNotFound       = errors.New("quiz not found")
	ErrOnboardingNotFound = errors.New("onboarding record not found")
)

// Attempt submission errors.
var (
	ErrInvalidScore    = errors.New("score must be a finite number")
	ErrScoreOutOfRange = errors.New("score is outside the quiz total marks range")
)
