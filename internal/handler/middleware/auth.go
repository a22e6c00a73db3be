package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"dormstay/internal/domain/student"
	"dormstay/internal/pkg/jwt"
	"dormstay/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	tokens *jwt.Service
}

const (
	ctxStudentIDKey = "student_id"
	ctxRoleKey      = "student_role"
)

var roleHierarchy = map[student.Role]int{
	student.RoleStudent: 1,
	student.RoleStaff:   2,
	student.RoleAdmin:   3,
}

func NewAuthMiddleware(tokens *jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimSpace(authHeader[len("Bearer "):])
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		claims, err := m.tokens.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ctxStudentIDKey, claims.StudentID)
		c.Set(ctxRoleKey, claims.Role)
		c.Set("jwt_claims", map[string]any{
			"student_id": claims.StudentID.String(),
			"role":       claims.Role.String(),
		})
		c.Next()
	}
}

func hasMinimumRole(role, minRole student.Role) bool {
	level, ok := roleHierarchy[role]
	minLevel, minOK := roleHierarchy[minRole]
	return ok && minOK && level >= minLevel
}

func (m *AuthMiddleware) RequireRoleAtLeast(minRole student.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetRole(c)
		if !ok {
			// Unexpected error: should be used after RequireAuth()
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
			c.Abort()
			return
		}

		if !hasMinimumRole(role, minRole) {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Insufficient permissions",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

func GetStudentID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(ctxStudentIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

func GetRole(c *gin.Context) (student.Role, bool) {
	v, exists := c.Get(ctxRoleKey)
	if !exists {
		return "", false
	}
	role, ok := v.(student.Role)
	return role, ok
}

// GetActor assembles the authorization subject from the request context.
func GetActor(c *gin.Context) (shared.Actor, bool) {
	id, ok := GetStudentID(c)
	if !ok {
		return shared.Actor{}, false
	}
	role, ok := GetRole(c)
	if !ok {
		return shared.Actor{}, false
	}
	return shared.Actor{ID: id, Role: role}, true
}
