package middleware

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"vantage/auth"
	"vantage/database"
	"vantage/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// userContextKey is where AuthRequired stores the resolved principal.
const userContextKey = "currentUser"

// UserSource resolves the user referenced by a verified token.
// *database.DB satisfies it.
type UserSource interface {
	GetUser(ctx context.Context, userID uuid.UUID) (*models.User, error)
}

// AuthRequired validates the bearer token, resolves the referenced user and
// attaches it to the request context. Credential problems are 401: missing
// or malformed header, bad signature, expired token, vanished user. A store
// failure during resolution is a 500, not a credential problem.
func AuthRequired(users UserSource, tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")

		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "authorization header required"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid authorization format"})
			c.Abort()
			return
		}

		claims, err := tokens.Verify(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid or expired token"})
			c.Abort()
			return
		}

		user, err := users.GetUser(c.Request.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid or expired token"})
			} else {
				log.Printf("Failed to resolve user %s: %v", claims.UserID, err)
				c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
			}
			c.Abort()
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// AdminRequired runs after AuthRequired and rejects authenticated
// non-admin principals with 403.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "authentication required"})
			c.Abort()
			return
		}

		if !user.IsAdmin() {
			c.JSON(http.StatusForbidden, gin.H{"message": "admin access required"})
			c.Abort()
			return
		}

		c.Next()
	}
}

// CurrentUser returns the principal attached by AuthRequired, or nil.
func CurrentUser(c *gin.Context) *models.User {
	value, exists := c.Get(userContextKey)
	if !exists {
		return nil
	}
	user, ok := value.(*models.User)
	if !ok {
		return nil
	}
	return user
}
