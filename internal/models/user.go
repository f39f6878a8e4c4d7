package models

type UserRole string

const (
	RoleAdmin    UserRole = "admin"
	RoleTrainer  UserRole = "trainer"
	RoleEmployee UserRole = "employee"
)

// RoleFromEmail derives the role from the email's domain suffix. The empty
// role means the address is outside the three recognized domains.
func RoleFromEmail(email string) UserRole {
	switch {
	case hasSuffixFold(email, "@employee.com"):
		return RoleEmployee
	case hasSuffixFold(email, "@trainer.com"):
		return RoleTrainer
	case hasSuffixFold(email, "@admin.com"):
		return RoleAdmin
	default:
		return ""
	}
}

func (r UserRole) Valid() bool {
	return r == RoleAdmin || r == RoleTrainer || r == RoleEmployee
}

// DefaultDesignation is used when an account is synthesized at login or
// created without an explicit designation.
func (r UserRole) DefaultDesignation() string {
	switch r {
	case RoleAdmin:
		return "Administrator"
	case RoleTrainer:
		return "Trainer"
	default:
		return "Employee"
	}
}

type User struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Password    string   `json:"password"`
	Role        UserRole `json:"role"`
	Designation string   `json:"designation"`
}

// Session is the projection of a User held as the process-wide authenticated
// identity. Absence of a session means unauthenticated.
type Session struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Role        UserRole `json:"role"`
	Designation string   `json:"designation"`
}

func (u *User) Session() *Session {
	return &Session{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		Role:        u.Role,
		Designation: u.Designation,
	}
}
