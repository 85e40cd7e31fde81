package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/foodgram/internal/auth"
	"github.com/BruksfildServices01/foodgram/internal/httperr"
	"github.com/BruksfildServices01/foodgram/internal/models"
	"github.com/BruksfildServices01/foodgram/internal/permissions"
)

const (
	ContextUserID   = "userID"
	ContextUserRole = "userRole"
	ContextIdentity = "identity"
)

// AuthMiddleware resolves the requester from the Authorization header.
// Requests without the header continue anonymously; a present but invalid
// or revoked token is rejected.
func AuthMiddleware(tokens *auth.Tokens) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !(strings.EqualFold(parts[0], "Bearer") || strings.EqualFold(parts[0], "Token")) {
			httperr.UnauthorizedJSON(c, "invalid_authorization_header", "Authorization header must be 'Token <token>'.")
			c.Abort()
			return
		}

		id, err := tokens.Verify(c.Request.Context(), strings.TrimSpace(parts[1]))
		if err != nil {
			if errors.Is(err, auth.ErrInvalidToken) || errors.Is(err, auth.ErrRevokedToken) {
				httperr.UnauthorizedJSON(c, "invalid_token", "Invalid or expired token.")
				c.Abort()
				return
			}
			httperr.Respond(c, err)
			c.Abort()
			return
		}

		c.Set(ContextUserID, id.UserID)
		c.Set(ContextUserRole, id.Role)
		c.Set(ContextIdentity, id)

		c.Next()
	}
}

// CurrentRequester returns the requester resolved by AuthMiddleware, or an
// anonymous one.
func CurrentRequester(c *gin.Context) permissions.Requester {
	userID, ok := c.Get(ContextUserID)
	if !ok {
		return permissions.Anonymous()
	}
	role, _ := c.Get(ContextUserRole)

	r := permissions.Requester{UserID: userID.(uint), Role: models.RoleUser}
	if rr, ok := role.(models.Role); ok {
		r.Role = rr
	}
	return r
}

func CurrentIdentity(c *gin.Context) (*auth.Identity, bool) {
	v, ok := c.Get(ContextIdentity)
	if !ok {
		return nil, false
	}
	id, ok := v.(*auth.Identity)
	return id, ok
}

// Allow enforces an endpoint policy: anonymous requesters are refused with
// 401, authenticated ones with 403.
func Allow(policy permissions.Policy) gin.HandlerFunc {
	return func(c *gin.Context) {
		r := CurrentRequester(c)
		if policy(c.Request.Method, r) {
			c.Next()
			return
		}

		if !r.Authenticated() {
			httperr.UnauthorizedJSON(c, "not_authenticated", "Authentication credentials were not provided.")
		} else {
			httperr.ForbiddenJSON(c, "permission_denied", "You do not have permission to perform this action.")
		}
		c.Abort()
	}
}

func RequireAuth() gin.HandlerFunc {
	return Allow(permissions.IsAuthenticated)
}
