package middleware

import (
	"context"
	"net/http"
	"strings"

	"booktracker-be/internal/jwt"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	// TokenCookieName is the cookie carrying the access token
	TokenCookieName = "jwt"

	// Gin context keys set by AuthMiddleware
	ContextUserIDKey = "user_id"
	ContextRoleKey   = "role"
)

// Identity is the verified caller attached to a request
type Identity struct {
	ID   string
	Role string
}

type identityKey struct{}

// WithIdentity stores the identity in a request context
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFromContext returns the identity stored by WithIdentity
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	return id, ok && id.ID != ""
}

// CurrentIdentity returns the identity resolved by AuthMiddleware for this request
func CurrentIdentity(c *gin.Context) (Identity, bool) {
	userID := c.GetString(ContextUserIDKey)
	if userID == "" {
		return Identity{}, false
	}
	return Identity{ID: userID, Role: c.GetString(ContextRoleKey)}, true
}

// AuthMiddleware resolves the caller from a Bearer token or the jwt cookie,
// verifies it and stores the identity on the request. It rejects otherwise.
func AuthMiddleware(jwtService *jwt.JWTService, log logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			log.WithField("path", c.Request.URL.Path).Debug("no token provided")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "Not authorized, no token provided",
			})
			return
		}

		if !jwtService.HasSecret() {
			log.Error("JWT_SECRET is not configured")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"message": "Internal Server Error: Missing JWT_SECRET",
			})
			return
		}

		claims, err := jwtService.ValidateToken(token)
		if err != nil {
			log.WithError(err).Debug("token verification failed")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "Not authorized, invalid token",
			})
			return
		}

		identity := Identity{ID: claims.UserID, Role: claims.Role}
		c.Set(ContextUserIDKey, identity.ID)
		c.Set(ContextRoleKey, identity.Role)
		c.Request = c.Request.WithContext(WithIdentity(c.Request.Context(), identity))

		c.Next()
	}
}

// extractToken reads a Bearer Authorization header, falling back to the cookie
// only when no Bearer header is present. An empty Bearer value yields no token.
func extractToken(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); strings.HasPrefix(header, "Bearer") {
		rest := strings.TrimPrefix(header, "Bearer")
		if rest == "" || rest[0] != ' ' {
			return ""
		}
		return strings.TrimSpace(rest)
	}
	if cookie, err := c.Cookie(TokenCookieName); err == nil {
		return cookie
	}
	return ""
}
