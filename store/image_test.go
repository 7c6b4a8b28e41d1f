package store

import (
	"errors"
	"testing"

	"github.com/aruzhansadakbayeva/Online-Shop-API/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageAttachToProduct(t *testing.T) {
	db := setupTestDB(t)
	images := NewImageStore(db)

	category := seedCategory(t, db, "Shirts", models.CategoryTypeClothes)
	product := seedProduct(t, db, "Red Tee", 20.0, category.ID)

	pid := product.ID
	image, err := images.Attach("/uploads/products/front.png", &pid)
	require.NoError(t, err)
	require.NotNil(t, image.ProductID)
	assert.Equal(t, product.ID, *image.ProductID)
}

func TestImageAttachOrphan(t *testing.T) {
	db := setupTestDB(t)
	images := NewImageStore(db)

	image, err := images.Attach("/uploads/products/banner.png", nil)
	require.NoError(t, err)
	assert.Nil(t, image.ProductID)
}

func TestImageAttachUnknownProduct(t *testing.T) {
	db := setupTestDB(t)
	images := NewImageStore(db)

	unknown := uint(404)
	_, err := images.Attach("/uploads/products/ghost.png", &unknown)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrReference))
}

func TestImageAttachRequiresSrc(t *testing.T) {
	db := setupTestDB(t)
	images := NewImageStore(db)

	_, err := images.Attach("", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))
}

func TestImageListByProduct(t *testing.T) {
	db := setupTestDB(t)
	images := NewImageStore(db)

	category := seedCategory(t, db, "Shirts", models.CategoryTypeClothes)
	product := seedProduct(t, db, "Red Tee", 20.0, category.ID)
	other := seedProduct(t, db, "Blue Tee", 25.0, category.ID)

	pid, oid := product.ID, other.ID
	_, err := images.Attach("/uploads/products/front.png", &pid)
	require.NoError(t, err)
	_, err = images.Attach("/uploads/products/back.png", &pid)
	require.NoError(t, err)
	_, err = images.Attach("/uploads/products/blue.png", &oid)
	require.NoError(t, err)

	list, err := images.ListByProduct(product.ID)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestImageListUnknownProduct(t *testing.T) {
	db := setupTestDB(t)
	images := NewImageStore(db)

	_, err := images.ListByProduct(404)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}
