package store

import (
	"testing"

	"github.com/aruzhansadakbayeva/Online-Shop-API/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Category{},
		&models.Product{},
		&models.ProductImage{},
		&models.Cart{},
		&models.CartItem{},
	); err != nil {
		t.Fatalf("Failed to migrate database: %v", err)
	}

	return db
}

func seedCategory(t *testing.T, db *gorm.DB, name string, categoryType models.CategoryType) *models.Category {
	t.Helper()
	category := models.Category{Name: name, Type: categoryType}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("Failed to seed category: %v", err)
	}
	return &category
}

func seedProduct(t *testing.T, db *gorm.DB, name string, price float64, categoryID uint) *models.Product {
	t.Helper()
	product := models.Product{Name: name, Price: price, CategoryID: categoryID, InStock: true}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("Failed to seed product: %v", err)
	}
	return &product
}

func seedAccount(t *testing.T, db *gorm.DB, id, email string) *models.User {
	t.Helper()
	user := models.User{ID: id, Email: email, Name: "Test User"}
	if err := NewAccountStore(db).CreateAccount(&user); err != nil {
		t.Fatalf("Failed to seed account: %v", err)
	}
	return &user
}

func count[T any](t *testing.T, db *gorm.DB, query string, args ...interface{}) int64 {
	t.Helper()
	var model T
	var n int64
	q := db.Model(&model)
	if query != "" {
		q = q.Where(query, args...)
	}
	if err := q.Count(&n).Error; err != nil {
		t.Fatalf("Failed to count rows: %v", err)
	}
	return n
}
