package routes

import (
	"github.com/aruzhansadakbayeva/Online-Shop-API/auth"
	"github.com/gin-gonic/gin"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, stores Stores) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", auth.Register(stores.Accounts))
		authGroup.POST("/login", auth.Login(stores.Accounts))
	}
}
