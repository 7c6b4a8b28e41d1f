package routes

import (
	"github.com/aruzhansadakbayeva/Online-Shop-API/store"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Stores bundles the repositories shared by every route group.
type Stores struct {
	Categories *store.CategoryStore
	Products   *store.ProductStore
	Images     *store.ImageStore
	Accounts   *store.AccountStore
	Carts      *store.CartStore
}

func NewStores(db *gorm.DB) Stores {
	return Stores{
		Categories: store.NewCategoryStore(db),
		Products:   store.NewProductStore(db),
		Images:     store.NewImageStore(db),
		Accounts:   store.NewAccountStore(db),
		Carts:      store.NewCartStore(db),
	}
}

// SetupRoutes is the single entry-point that wires up Auth, User, and Admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	stores := NewStores(db)

	// 1. Public Auth routes (no middleware)
	SetupAuthRoutes(r, stores)

	// 2. User routes (JWT-protected)
	SetupUserRoutes(r, stores)

	// 3. Admin routes (API-Key-protected)
	SetupAdminRoutes(r, stores)
}
