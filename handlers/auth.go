package handlers

import (
	"errors"
	"net/http"
	"vantage/auth"
	"vantage/database"
	"vantage/middleware"
	"vantage/models"

	"github.com/gin-gonic/gin"
)

// Register creates a regular account. Admin accounts come from the
// startup bootstrap, not from this endpoint.
func Register(store UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.CredentialsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
			return
		}

		ctx := c.Request.Context()
		user, err := store.CreateUser(ctx, req.Username, hash, models.RoleUser)
		if err != nil {
			if errors.Is(err, database.ErrDuplicate) {
				c.JSON(http.StatusBadRequest, gin.H{"message": "username already taken"})
				return
			}
			respondStoreError(c, err, "user")
			return
		}

		c.JSON(http.StatusCreated, user)
	}
}

// Login verifies credentials and issues a bearer token. Bad username and
// bad password produce the same response.
func Login(store UserStore, tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.CredentialsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		ctx := c.Request.Context()
		user, err := store.GetUserByUsername(ctx, req.Username)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid credentials"})
				return
			}
			respondStoreError(c, err, "user")
			return
		}

		if !auth.VerifyPassword(req.Password, user.PasswordHash) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid credentials"})
			return
		}

		token, err := tokens.Generate(user.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
			return
		}

		c.JSON(http.StatusOK, models.LoginResponse{
			Token: token,
			User:  *user,
		})
	}
}

// Me returns the authenticated principal.
func Me() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)
		if user == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "authentication required"})
			return
		}

		c.JSON(http.StatusOK, user)
	}
}
