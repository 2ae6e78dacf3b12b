package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/telconl/catalog-api/internal/auth"
	"github.com/telconl/catalog-api/internal/httperr"
)

const (
	ContextUsername = "username"
	ContextUserID   = "userID"
)

// AdminUsername is the reserved identity allowed on admin routes. The check
// is a literal username comparison; there is no role model.
const AdminUsername = "admin"

// AuthMiddleware resolves the Authorization header to an identity. A missing
// or non-bearer header is a different 401 than a token that fails validation.
func AuthMiddleware(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.NotAuthenticated(c)
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httperr.NotAuthenticated(c)
			c.Abort()
			return
		}

		identity, err := tokens.Validate(parts[1])
		if err != nil {
			httperr.CouldNotValidateUser(c)
			c.Abort()
			return
		}

		c.Set(ContextUsername, identity.Username)
		c.Set(ContextUserID, identity.UserID)

		c.Next()
	}
}

// RequireAdmin runs behind AuthMiddleware and rejects every identity other
// than the reserved admin username.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ContextUsername) != AdminUsername {
			httperr.AuthenticationFailed(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

// Username returns the authenticated username set by AuthMiddleware.
func Username(c *gin.Context) string {
	return c.GetString(ContextUsername)
}
