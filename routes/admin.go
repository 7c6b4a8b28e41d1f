package routes

import (
	accountControllers "github.com/aruzhansadakbayeva/Online-Shop-API/controllers/account"
	cartControllers "github.com/aruzhansadakbayeva/Online-Shop-API/controllers/cart"
	catalogControllers "github.com/aruzhansadakbayeva/Online-Shop-API/controllers/catalog"
	imageControllers "github.com/aruzhansadakbayeva/Online-Shop-API/controllers/image"
	"github.com/aruzhansadakbayeva/Online-Shop-API/middleware"
	"github.com/gin-gonic/gin"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires API-Key middleware.
func SetupAdminRoutes(r *gin.Engine, stores Stores) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		// ─────────── User Management ───────────
		adminGroup.GET("/users", accountControllers.GetAllUsers(stores.Accounts))
		adminGroup.DELETE("/users/:user_id", accountControllers.DeleteAccount(stores.Accounts))

		// ─────────── Product Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", catalogControllers.CreateProduct(stores.Products))
			productAdmin.PUT("/:id", catalogControllers.UpdateProduct(stores.Products))
			productAdmin.GET("", catalogControllers.GetProducts(stores.Products))
			productAdmin.DELETE("/:id", catalogControllers.DeleteProduct(stores.Products))
			productAdmin.POST("/:id/images", imageControllers.AttachProductImage(stores.Images))
			productAdmin.GET("/:id/images", imageControllers.ListProductImages(stores.Images))
		}

		// ─────────── Category Management ───────────
		categoryAdmin := adminGroup.Group("/categories")
		{
			categoryAdmin.POST("", catalogControllers.CreateCategory(stores.Categories))
			categoryAdmin.PUT("/:id", catalogControllers.UpdateCategory(stores.Categories))
			categoryAdmin.GET("", catalogControllers.GetAllCategories(stores.Categories))
			categoryAdmin.DELETE("/:id", catalogControllers.DeleteCategory(stores.Categories))
		}

		// ─────────── Orphan Image Upload ───────────
		adminGroup.POST("/images", imageControllers.AttachImage(stores.Images))

		// ─────────── Cart Inspection ───────────
		cartMgmt := adminGroup.Group("/user-cart")
		{
			cartMgmt.GET("/:user_id", cartControllers.GetAdminUserCart(stores.Carts))
		}
	}
}
