package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"plateshare-server/internal/handler/httperr"
	"plateshare-server/internal/usecase"

	"github.com/gin-gonic/gin"
)

const (
	ctxCallerEmailKey    = "caller_email"
	ctxCallerVerifiedKey = "caller_verified"

	callerEmailQuery = "email"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// ResolveCaller decides who is asking. A bearer token wins when token
// validation is enabled; a bad token is rejected rather than ignored.
// Otherwise the caller is whoever the email query parameter names.
func (m *AuthMiddleware) ResolveCaller() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.tokenValidator.Enabled() {
			if token := bearerToken(c); token != "" {
				email, err := m.tokenValidator.ValidateToken(token)
				if err != nil {
					slog.Warn("Token validation failed in auth middleware", "error", err.Error())
					httperr.AbortWithError(c, http.StatusUnauthorized, httperr.CodeUnauthorized, err, "Invalid or expired token", nil)
					return
				}
				c.Set(ctxCallerEmailKey, email)
				c.Set(ctxCallerVerifiedKey, true)
				c.Next()
				return
			}
		}

		if email := strings.TrimSpace(c.Query(callerEmailQuery)); email != "" {
			c.Set(ctxCallerEmailKey, email)
		}
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

// GetCallerEmail returns the email set by ResolveCaller.
func GetCallerEmail(c *gin.Context) (string, bool) {
	v, exists := c.Get(ctxCallerEmailKey)
	if !exists {
		return "", false
	}
	email, ok := v.(string)
	return email, ok && email != ""
}

func IsCallerVerified(c *gin.Context) bool {
	return c.GetBool(ctxCallerVerifiedKey)
}
