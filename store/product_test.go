package store

import (
	"errors"
	"testing"

	"github.com/aruzhansadakbayeva/Online-Shop-API/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductCreateRejectsNegativePrice(t *testing.T) {
	db := setupTestDB(t)
	products := NewProductStore(db)
	category := seedCategory(t, db, "Shirts", models.CategoryTypeClothes)

	err := products.Create(&models.Product{Name: "Red Tee", Price: -1.0, CategoryID: category.ID})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))
	assert.EqualValues(t, 0, count[models.Product](t, db, ""))
}

func TestProductCreateRejectsUnknownCategory(t *testing.T) {
	db := setupTestDB(t)
	products := NewProductStore(db)

	err := products.Create(&models.Product{Name: "Red Tee", Price: 20.0, CategoryID: 404})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrReference))
}

func TestProductGetByIDEmbedsCategoryAndImages(t *testing.T) {
	db := setupTestDB(t)
	products := NewProductStore(db)
	category := seedCategory(t, db, "Shirts", models.CategoryTypeClothes)

	short := "Soft cotton tee"
	product := models.Product{
		Name:             "Red Tee",
		Price:            20.0,
		CategoryID:       category.ID,
		ShortDescription: &short,
		InStock:          true,
	}
	require.NoError(t, products.Create(&product))

	pid := product.ID
	require.NoError(t, db.Create(&models.ProductImage{Src: "/uploads/products/front.png", ProductID: &pid}).Error)
	require.NoError(t, db.Create(&models.ProductImage{Src: "/uploads/products/back.png", ProductID: &pid}).Error)

	got, err := products.GetByID(product.ID)
	require.NoError(t, err)
	assert.Equal(t, "Shirts", got.Category.Name)
	assert.Len(t, got.Images, 2)
	require.NotNil(t, got.ShortDescription)
	assert.Equal(t, short, *got.ShortDescription)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestProductUpdateKeepsCreatedAt(t *testing.T) {
	db := setupTestDB(t)
	products := NewProductStore(db)
	category := seedCategory(t, db, "Shirts", models.CategoryTypeClothes)
	product := seedProduct(t, db, "Red Tee", 20.0, category.ID)

	createdAt := product.CreatedAt
	product.Price = 25.0
	require.NoError(t, products.Update(product))

	got, err := products.GetByID(product.ID)
	require.NoError(t, err)
	assert.Equal(t, 25.0, got.Price)
	assert.True(t, got.CreatedAt.Equal(createdAt))
}

func TestProductUpdateRejectsUnknownCategory(t *testing.T) {
	db := setupTestDB(t)
	products := NewProductStore(db)
	category := seedCategory(t, db, "Shirts", models.CategoryTypeClothes)
	product := seedProduct(t, db, "Red Tee", 20.0, category.ID)

	product.CategoryID = 404
	err := products.Update(product)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrReference))
}

func TestProductListFilters(t *testing.T) {
	db := setupTestDB(t)
	products := NewProductStore(db)
	clothes := seedCategory(t, db, "Shirts", models.CategoryTypeClothes)
	accessories := seedCategory(t, db, "Belts", models.CategoryTypeAccessories)

	seedProduct(t, db, "Red Tee", 20.0, clothes.ID)
	seedProduct(t, db, "Blue Tee", 35.0, clothes.ID)
	seedProduct(t, db, "Leather Belt", 50.0, accessories.ID)

	list, err := products.List(ProductFilter{CategoryID: clothes.ID})
	require.NoError(t, err)
	assert.Len(t, list, 2)

	min := 30.0
	list, err = products.List(ProductFilter{MinPrice: &min})
	require.NoError(t, err)
	assert.Len(t, list, 2)

	list, err = products.List(ProductFilter{Search: "Belt"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Leather Belt", list[0].Name)
}

func TestProductDeleteCascades(t *testing.T) {
	db := setupTestDB(t)
	products := NewProductStore(db)
	category := seedCategory(t, db, "Shirts", models.CategoryTypeClothes)
	product := seedProduct(t, db, "Red Tee", 20.0, category.ID)

	pid := product.ID
	require.NoError(t, db.Create(&models.ProductImage{Src: "/uploads/products/tee.png", ProductID: &pid}).Error)

	user := seedAccount(t, db, "u-1", "shopper@example.com")
	_, err := NewCartStore(db).UpsertItem(user.ID, product.ID, 2)
	require.NoError(t, err)

	require.NoError(t, products.Delete(product.ID))

	_, err = products.GetByID(product.ID)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.EqualValues(t, 0, count[models.ProductImage](t, db, "product_id = ?", product.ID))
	assert.EqualValues(t, 0, count[models.CartItem](t, db, "product_id = ?", product.ID))
}
