package store

import (
	"errors"
	"fmt"

	"github.com/aruzhansadakbayeva/Online-Shop-API/models"
	"gorm.io/gorm"
)

// ImageStore persists product images. An image may be attached without a
// product and linked to one later.
type ImageStore struct {
	db *gorm.DB
}

func NewImageStore(db *gorm.DB) *ImageStore {
	return &ImageStore{db: db}
}

// Attach stores an image record. productID is optional; when supplied it
// must reference an existing product.
func (s *ImageStore) Attach(src string, productID *uint) (*models.ProductImage, error) {
	if src == "" {
		return nil, fmt.Errorf("%w: image src is required", ErrValidation)
	}
	if productID != nil {
		var product models.Product
		if err := s.db.First(&product, *productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: product %d", ErrReference, *productID)
			}
			return nil, fmt.Errorf("validate product: %w", err)
		}
	}

	image := models.ProductImage{Src: src, ProductID: productID}
	if err := s.db.Create(&image).Error; err != nil {
		return nil, fmt.Errorf("attach image: %w", err)
	}
	return &image, nil
}

func (s *ImageStore) ListByProduct(productID uint) ([]models.ProductImage, error) {
	var product models.Product
	if err := s.db.First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: product %d", ErrNotFound, productID)
		}
		return nil, fmt.Errorf("fetch product: %w", err)
	}

	var images []models.ProductImage
	if err := s.db.Where("product_id = ?", productID).Find(&images).Error; err != nil {
		return nil, fmt.Errorf("list images: %w", err)
	}
	return images, nil
}
