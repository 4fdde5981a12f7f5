package middleware

import (
	"errors"
	"strings"

	"github.com/emeraldgate/core/internal/models"
	jwtpkg "github.com/emeraldgate/core/internal/pkg/jwt"
	"github.com/emeraldgate/core/internal/pkg/response"
	sessionpkg "github.com/emeraldgate/core/internal/pkg/session"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	ContextKeyUserID = "user_id"
	ContextKeySID    = "session_id"
	ContextKeyRole   = "user_role"
)

// Auth returns a middleware that enforces JWT authentication. The identity
// is placed on the request context explicitly; nothing downstream consults
// ambient session state.
func Auth(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := ValidateTokenClaims(db, extractToken(c))
		if err != nil {
			response.Unauthorized(c)
			return
		}
		setIdentity(c, db, claims)
		sessionpkg.Touch(db, claims.UserID, claims.SessionID)
		c.Next()
	}
}

// OptionalAuth sets the user identity if a valid token is present, but does
// not block the request.
func OptionalAuth(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, err := ValidateTokenClaims(db, extractToken(c)); err == nil && claims.UserID != "" {
			setIdentity(c, db, claims)
			sessionpkg.Touch(db, claims.UserID, claims.SessionID)
		}
		c.Next()
	}
}

// setIdentity puts the validated identity, including the stored role, on
// the request context.
func setIdentity(c *gin.Context, db *gorm.DB, claims *jwtpkg.Claims) {
	c.Set(ContextKeyUserID, claims.UserID)
	c.Set(ContextKeySID, claims.SessionID)

	var u models.UserModel
	if err := db.Select("role").First(&u, "id = ?", claims.UserID).Error; err == nil {
		c.Set(ContextKeyRole, u.Role)
	}
}

// RequireRole gates a route group on the authenticated user's role. It
// validates the token itself when no earlier middleware has, so it works
// standalone or after Auth/OptionalAuth.
func RequireRole(db *gorm.DB, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentUserID(c) == "" {
			claims, err := ValidateTokenClaims(db, extractToken(c))
			if err != nil {
				response.Unauthorized(c)
				return
			}
			setIdentity(c, db, claims)
		}

		if CurrentRole(c) != role {
			response.Forbidden(c)
			return
		}
		c.Next()
	}
}

// ValidateTokenClaims validates a JWT and its backing session, returning claims.
func ValidateTokenClaims(db *gorm.DB, rawToken string) (*jwtpkg.Claims, error) {
	token := NormalizeToken(rawToken)
	if token == "" {
		return nil, errors.New("token is required")
	}

	claims, err := jwtpkg.Parse(token)
	if err != nil {
		return nil, err
	}
	active, err := sessionpkg.IsActive(db, claims.UserID, claims.SessionID)
	if err != nil {
		return nil, err
	}
	if !active {
		return nil, errors.New("session expired or revoked")
	}
	return claims, nil
}

// CurrentUserID extracts the authenticated user ID from context.
func CurrentUserID(c *gin.Context) string {
	v, _ := c.Get(ContextKeyUserID)
	id, _ := v.(string)
	return id
}

// CurrentSessionID extracts the authenticated session ID from context.
func CurrentSessionID(c *gin.Context) string {
	v, _ := c.Get(ContextKeySID)
	id, _ := v.(string)
	return id
}

// CurrentRole extracts the authenticated user's stored role from context.
// Empty for anonymous requests.
func CurrentRole(c *gin.Context) string {
	v, _ := c.Get(ContextKeyRole)
	role, _ := v.(string)
	return role
}

// IsAuthenticated returns true if the request has a valid auth token.
func IsAuthenticated(c *gin.Context) bool {
	return CurrentUserID(c) != ""
}

// IsAdmin returns true if the request carries an admin identity.
func IsAdmin(c *gin.Context) bool {
	return CurrentRole(c) == models.RoleAdmin
}

func extractToken(c *gin.Context) string {
	if auth := c.GetHeader("Authorization"); auth != "" {
		return NormalizeToken(auth)
	}
	return NormalizeToken(c.Query("token"))
}

// NormalizeToken trims spaces and strips an optional Bearer prefix.
func NormalizeToken(raw string) string {
	token := strings.TrimSpace(raw)
	if token == "" {
		return ""
	}
	if strings.HasPrefix(strings.ToLower(token), "bearer ") {
		return strings.TrimSpace(token[7:])
	}
	return token
}
