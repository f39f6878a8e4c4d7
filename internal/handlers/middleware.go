package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/EMS-F-2026/onboarding-service/internal/access"
	"github.com/EMS-F-2026/onboarding-service/internal/models"
	"github.com/EMS-F-2026/onboarding-service/internal/services"
	"github.com/EMS-F-2026/onboarding-service/internal/utils"
)

const sessionContextKey = "session"

// SetupMiddleware sets up common middleware for the Gin router.
func SetupMiddleware(router *gin.Engine, logger utils.Logger) {
	router.Use(RequestIDMiddleware())
	router.Use(CORSMiddleware())
	router.Use(gin.Recovery())
	router.Use(utils.ContextLogger(logger))
	router.Use(utils.LoggerMiddleware(logger))
	router.Use(SecurityMiddleware())
}

// RequestIDMiddleware generates a unique request ID for each request.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Header("X-Request-ID", requestID)
		c.Set("request_id", requestID)
		c.Next()
	}
}

// CORSMiddleware provides CORS support.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Request-ID")
		c.Header("Access-Control-Expose-Headers", "Content-Length")
		c.Header("Access-Control-Allow-Credentials", "true")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// SecurityMiddleware adds security headers.
func SecurityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Next()
	}
}

// SessionAuthMiddleware resolves the persisted session and gates the request
// path against the role policy. Denied requests carry the redirect target the
// policy picked instead of the requested route.
type SessionAuthMiddleware struct {
	auth   services.AuthService
	logger utils.Logger
}

func NewSessionAuthMiddleware(auth services.AuthService, logger utils.Logger) *SessionAuthMiddleware {
	return &SessionAuthMiddleware{auth: auth, logger: logger}
}

// Gate loads the session and applies the route policy to the request path.
func (m *SessionAuthMiddleware) Gate() gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := m.auth.CurrentSession(c.Request.Context())
		if err != nil {
			m.logger.Error("Failed to load session", "error", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
				Message: "Internal server error",
			})
			return
		}

		if session != nil {
			c.Set(sessionContextKey, session)
		}

		decision := access.Resolve(session, c.Request.URL.Path)
		if decision.Allow {
			c.Next()
			return
		}

		status := http.StatusForbidden
		if session == nil {
			status = http.StatusUnauthorized
		}
		c.AbortWithStatusJSON(status, gin.H{
			"message":    "Access denied",
			"redirectTo": decision.RedirectTo,
		})
	}
}

// RequireRole loads the session and rejects roles outside the allowed set.
// Routes under a role prefix are already scoped by Gate; this guards routes
// mounted outside the prefixes.
func (m *SessionAuthMiddleware) RequireRole(roles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := m.auth.CurrentSession(c.Request.Context())
		if err != nil {
			m.logger.Error("Failed to load session", "error", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
				Message: "Internal server error",
			})
			return
		}
		if session == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message":    "Access denied",
				"redirectTo": access.LoginPath,
			})
			return
		}
		c.Set(sessionContextKey, session)
		for _, role := range roles {
			if session.Role == role {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"message":    "Access denied",
			"redirectTo": access.HomePath(session.Role),
		})
	}
}

// NotFound answers paths outside the route tree with the policy's redirect
// target instead of a bare 404, mirroring the catch-all route of the pages
// this API serves.
func (m *SessionAuthMiddleware) NotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := m.auth.CurrentSession(c.Request.Context())
		if err != nil {
			m.logger.Error("Failed to load session", "error", err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{
				Message: "Internal server error",
			})
			return
		}

		decision := access.Resolve(session, c.Request.URL.Path)
		redirectTo := decision.RedirectTo
		if decision.Allow {
			// The path sits under the session's own prefix but no such
			// route exists; send it home anyway.
			redirectTo = access.LoginPath
			if session != nil {
				redirectTo = access.HomePath(session.Role)
			}
		}

		status := http.StatusNotFound
		if session == nil {
			status = http.StatusUnauthorized
		}
		c.JSON(status, gin.H{
			"message":    "Not found",
			"redirectTo": redirectTo,
		})
	}
}

// SessionFromContext returns the session set by Gate, nil when absent.
func SessionFromContext(c *gin.Context) *models.Session {
	value, exists := c.Get(sessionContextKey)
	if !exists {
		return nil
	}
	session, ok := value.(*models.Session)
	if !ok {
		return nil
	}
	return session
}
