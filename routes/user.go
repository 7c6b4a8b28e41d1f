package routes

import (
	accountControllers "github.com/aruzhansadakbayeva/Online-Shop-API/controllers/account"
	cartControllers "github.com/aruzhansadakbayeva/Online-Shop-API/controllers/cart"
	catalogControllers "github.com/aruzhansadakbayeva/Online-Shop-API/controllers/catalog"
	"github.com/aruzhansadakbayeva/Online-Shop-API/middleware"
	"github.com/gin-gonic/gin"
)

// SetupUserRoutes registers all "/user/*" endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, stores Stores) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		// ──────────────── Account & Profile ────────────────
		userGroup.GET("/", accountControllers.GetAccount(stores.Accounts))
		userGroup.PUT("/profile", accountControllers.UpdateProfile(stores.Accounts))

		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("/", cartControllers.GetUserCart(stores.Carts))
			cartGroup.POST("/", cartControllers.UpdateCartItem(stores.Carts))
			cartGroup.DELETE("/:product_id", cartControllers.DeleteCartItem(stores.Carts))
			cartGroup.DELETE("/", cartControllers.ClearUserCart(stores.Carts))
		}

		// ──────────────── Browse Products ────────────────
		userGroup.GET("/products", catalogControllers.GetProducts(stores.Products))
		userGroup.GET("/products/:id", catalogControllers.GetProductByID(stores.Products))

		// ──────────────── Browse Categories ────────────────
		userGroup.GET("/categories", catalogControllers.GetAllCategories(stores.Categories))
		userGroup.GET("/categories/:id", catalogControllers.GetCategoryByID(stores.Categories))
	}
}
