package auth

import (
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/aruzhansadakbayeva/Online-Shop-API/dto"
	"github.com/aruzhansadakbayeva/Online-Shop-API/models"
	"github.com/aruzhansadakbayeva/Online-Shop-API/store"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// POST /auth/register
// Creates the account and provisions its profile and shopping cart in the
// same transaction.
func Register(accounts *store.AccountStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input dto.RegisterInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
			return
		}

		user := models.User{
			ID:           uuid.NewString(),
			Email:        input.Email,
			Name:         input.Name,
			PasswordHash: string(hash),
		}
		if err := accounts.CreateAccount(&user); err != nil {
			status := http.StatusInternalServerError
			switch {
			case errors.Is(err, store.ErrIntegrity):
				status = http.StatusConflict
			case errors.Is(err, store.ErrValidation):
				status = http.StatusBadRequest
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message": "Registration successful",
			"user":    dto.ToAccountView(user),
			"token":   issueJWT(user.ID, user.Email, user.Name),
		})
	}
}

// POST /auth/login
func Login(accounts *store.AccountStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input dto.LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		user, err := accounts.GetByEmail(input.Email)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Login successful",
			"token":   issueJWT(user.ID, user.Email, user.Name),
		})
	}
}

// issueJWT generates a signed token for a user
func issueJWT(userID, email, name string) string {
	claims := jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"name":    name,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(os.Getenv("JWT_SECRET")))
	if err != nil {
		return ""
	}
	return signedToken
}
