package accountControllers

import (
	"errors"
	"net/http"

	"github.com/aruzhansadakbayeva/Online-Shop-API/dto"
	"github.com/aruzhansadakbayeva/Online-Shop-API/store"
	"github.com/gin-gonic/gin"
)

func fail(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, store.ErrValidation), errors.Is(err, store.ErrReference):
		status = http.StatusBadRequest
	case errors.Is(err, store.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, store.ErrIntegrity):
		status = http.StatusConflict
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// GET /user
func GetAccount(accounts *store.AccountStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := c.Get("user_id")
		id, _ := userID.(string)
		if id == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		user, err := accounts.GetByID(id)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.ToAccountView(*user))
	}
}

// PUT /user/profile
func UpdateProfile(accounts *store.AccountStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := c.Get("user_id")
		id, _ := userID.(string)
		if id == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input dto.ProfileInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		profile, err := accounts.UpdateProfile(id, input.Address, input.PhoneNumber)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.ToProfileView(*profile))
	}
}

// GET /admin/users
func GetAllUsers(accounts *store.AccountStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := accounts.ListUsers()
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, users)
	}
}

// DELETE /admin/users/:user_id
func DeleteAccount(accounts *store.AccountStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("user_id")
		if userID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
			return
		}

		if err := accounts.DeleteAccount(userID); err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Account deleted"})
	}
}
