// Package access holds the role-scoped route policy. Resolve is a pure
// function of (session, requested path) with no side effects; it is
// re-evaluated on every request.
package access

import (
	"strings"

	"github.com/EMS-F-2026/onboarding-service/internal/models"
)

const LoginPath = "/login"

// HomePath is the designated landing route per role.
func HomePath(role models.UserRole) string {
	switch role {
	case models.RoleAdmin:
		return "/admin/dashboard"
	case models.RoleTrainer:
		return "/trainer/dashboard"
	default:
		return "/employee/dashboard"
	}
}

var rolePrefix = map[models.UserRole]string{
	models.RoleAdmin:    "/admin/",
	models.RoleTrainer:  "/trainer/",
	models.RoleEmployee: "/employee/",
}

// Decision is either an allow or a redirect target.
type Decision struct {
	Allow      bool
	RedirectTo string
}

// Resolve gates a path against the active session. Unauthenticated requests
// to protected paths go to the login route; authenticated requests to
// foreign-role or unmatched paths go to the session role's home route.
func Resolve(session *models.Session, path string) Decision {
	if session == nil {
		if path == LoginPath {
			return Decision{Allow: true}
		}
		return Decision{RedirectTo: LoginPath}
	}

	home := HomePath(session.Role)
	if path == LoginPath {
		return Decision{RedirectTo: home}
	}
	if prefix, ok := rolePrefix[session.Role]; ok && strings.HasPrefix(path, prefix) {
		return Decision{Allow: true}
	}
	return Decision{RedirectTo: home}
}
