package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/austintylerallen/civicstack/internal/auth"
	"github.com/austintylerallen/civicstack/internal/database"
	"github.com/austintylerallen/civicstack/internal/middleware"
	"github.com/austintylerallen/civicstack/internal/models"
)

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login verifies credentials and returns a signed token. Unknown email and
// wrong password produce the same response so accounts cannot be enumerated.
func Login(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			fail(c, http.StatusBadRequest, "Email and password are required")
			return
		}

		var user models.User
		if err := database.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
			fail(c, http.StatusUnauthorized, "Invalid credentials")
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
			fail(c, http.StatusUnauthorized, "Invalid credentials")
			return
		}

		token, err := auth.Sign(&user, secret)
		if err != nil {
			fail(c, http.StatusInternalServerError, "Failed to issue token")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"user": gin.H{
				"id":    user.ID,
				"name":  user.Name,
				"role":  user.Role,
				"email": user.Email,
			},
			"token": token,
		})
	}
}

// Me returns the authenticated user's record, minus the password hash.
func Me(c *gin.Context) {
	var user models.User
	if err := database.DB.First(&user, middleware.CurrentUserID(c)).Error; err != nil {
		fail(c, http.StatusNotFound, "User not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}
