package store

import (
	"errors"
	"fmt"

	"github.com/aruzhansadakbayeva/Online-Shop-API/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CategoryStore persists categories and owns the category delete cascade.
type CategoryStore struct {
	db *gorm.DB
}

func NewCategoryStore(db *gorm.DB) *CategoryStore {
	return &CategoryStore{db: db}
}

func (s *CategoryStore) Create(category *models.Category) error {
	if category.Name == "" {
		return fmt.Errorf("%w: category name is required", ErrValidation)
	}
	if !category.Type.Valid() {
		return fmt.Errorf("%w: unknown category type %d", ErrValidation, category.Type)
	}
	if err := s.db.Create(category).Error; err != nil {
		return fmt.Errorf("create category: %w", err)
	}
	return nil
}

func (s *CategoryStore) Update(category *models.Category) error {
	if category.Name == "" {
		return fmt.Errorf("%w: category name is required", ErrValidation)
	}
	if !category.Type.Valid() {
		return fmt.Errorf("%w: unknown category type %d", ErrValidation, category.Type)
	}
	var existing models.Category
	if err := s.db.First(&existing, category.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: category %d", ErrNotFound, category.ID)
		}
		return fmt.Errorf("fetch category: %w", err)
	}
	if err := s.db.Omit(clause.Associations).Save(category).Error; err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

func (s *CategoryStore) GetByID(id uint) (*models.Category, error) {
	var category models.Category
	if err := s.db.Preload("Products").First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: category %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("fetch category: %w", err)
	}
	return &category, nil
}

func (s *CategoryStore) List() ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

// Delete removes the category together with its products, their images and
// any cart items referencing them. The whole cascade runs in one
// transaction: either all of it lands or none of it does.
func (s *CategoryStore) Delete(id uint) error {
	var category models.Category
	if err := s.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: category %d", ErrNotFound, id)
		}
		return fmt.Errorf("fetch category: %w", err)
	}

	tx := s.db.Begin()
	if tx.Error != nil {
		return fmt.Errorf("begin transaction: %w", tx.Error)
	}

	var productIDs []uint
	if err := tx.Model(&models.Product{}).
		Where("category_id = ?", id).
		Pluck("id", &productIDs).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("%w: collect category products: %v", ErrIntegrity, err)
	}

	if len(productIDs) > 0 {
		if err := tx.Where("product_id IN ?", productIDs).Delete(&models.CartItem{}).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("%w: delete cart items: %v", ErrIntegrity, err)
		}
		if err := tx.Where("product_id IN ?", productIDs).Delete(&models.ProductImage{}).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("%w: delete product images: %v", ErrIntegrity, err)
		}
		if err := tx.Where("category_id = ?", id).Delete(&models.Product{}).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("%w: delete products: %v", ErrIntegrity, err)
		}
	}

	if err := tx.Delete(&category).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("%w: delete category: %v", ErrIntegrity, err)
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("commit category delete: %w", err)
	}
	return nil
}
