package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rsharma/collegium/internal/app/models"
	"github.com/rsharma/collegium/internal/app/models/dto"
	"github.com/rsharma/collegium/internal/pkg/apperrors"
	"github.com/rsharma/collegium/internal/pkg/auth"
)

// Context keys set by RequireAuth for downstream handlers
const (
	ContextAccountID = "accountID"
	ContextEmail     = "email"
	ContextRole      = "role"
)

// AuthMiddleware guards protected routes with bearer-token checks
type AuthMiddleware struct {
	jwtService *auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{jwtService: jwtService}
}

// RequireAuth validates the Authorization header. The checks run in a fixed
// order: header present, Bearer scheme, non-empty token, valid signature,
// unexpired. Each failure aborts with 401 and a category message that does
// not reveal more than which rung failed.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := auth.ExtractBearerToken(c.GetHeader("Authorization"))
		if err != nil {
			abortUnauthorized(c, err)
			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			abortUnauthorized(c, err)
			return
		}

		c.Set(ContextAccountID, claims.AccountID)
		c.Set(ContextEmail, claims.Email)
		c.Set(ContextRole, claims.Role)
		c.Next()
	}
}

// RoleRequired rejects callers whose token was issued for a different role
func (m *AuthMiddleware) RoleRequired(role models.RoleType) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ContextRole) != string(role) {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(
				dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Insufficient permissions"),
			))
			return
		}
		c.Next()
	}
}

// AccountID returns the authenticated caller's account id from the context
func AccountID(c *gin.Context) int64 {
	id, _ := c.Get(ContextAccountID)
	accountID, _ := id.(int64)
	return accountID
}

func abortUnauthorized(c *gin.Context, err error) {
	message := "Authentication required"
	code := dto.ErrorCodeUnauthorized

	switch {
	case errors.Is(err, apperrors.ErrHeaderMissing):
		message = "Authorization header missing"
	case errors.Is(err, apperrors.ErrInvalidAuthFormat):
		message = "Invalid authorization format"
	case errors.Is(err, apperrors.ErrTokenMissing):
		message = "Token missing"
	case errors.Is(err, apperrors.ErrTokenExpired):
		message = "Token expired"
		code = dto.ErrorCodeExpiredToken
	case errors.Is(err, apperrors.ErrTokenInvalid):
		message = "Invalid token"
		code = dto.ErrorCodeInvalidToken
	}

	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(
		dto.NewErrorDetail(code, message),
	))
}
