package store

import (
	"errors"
	"fmt"

	"github.com/aruzhansadakbayeva/Online-Shop-API/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProductStore persists products. Reads return the product together with
// its category and image list.
type ProductStore struct {
	db *gorm.DB
}

func NewProductStore(db *gorm.DB) *ProductStore {
	return &ProductStore{db: db}
}

// ProductFilter narrows List results. Zero values mean "no filter".
type ProductFilter struct {
	CategoryID uint
	Search     string
	MinPrice   *float64
	MaxPrice   *float64
}

func (s *ProductStore) validate(product *models.Product) error {
	if product.Name == "" {
		return fmt.Errorf("%w: product name is required", ErrValidation)
	}
	if product.Price < 0 {
		return fmt.Errorf("%w: price must be non-negative, got %v", ErrValidation, product.Price)
	}
	var category models.Category
	if err := s.db.First(&category, product.CategoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: category %d", ErrReference, product.CategoryID)
		}
		return fmt.Errorf("validate category: %w", err)
	}
	return nil
}

func (s *ProductStore) Create(product *models.Product) error {
	if err := s.validate(product); err != nil {
		return err
	}
	if err := s.db.Create(product).Error; err != nil {
		return fmt.Errorf("create product: %w", err)
	}
	return nil
}

func (s *ProductStore) Update(product *models.Product) error {
	var existing models.Product
	if err := s.db.First(&existing, product.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: product %d", ErrNotFound, product.ID)
		}
		return fmt.Errorf("fetch product: %w", err)
	}
	if err := s.validate(product); err != nil {
		return err
	}
	// created_at is set once, at creation
	product.CreatedAt = existing.CreatedAt
	if err := s.db.Omit(clause.Associations).Save(product).Error; err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

func (s *ProductStore) GetByID(id uint) (*models.Product, error) {
	var product models.Product
	if err := s.db.Preload("Category").Preload("Images").First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: product %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("fetch product: %w", err)
	}
	return &product, nil
}

func (s *ProductStore) List(filter ProductFilter) ([]models.Product, error) {
	query := s.db.Model(&models.Product{}).Preload("Category").Preload("Images")

	if filter.Search != "" {
		likePattern := "%" + filter.Search + "%"
		query = query.Where(
			"name LIKE ? OR short_description LIKE ? OR long_description LIKE ?",
			likePattern, likePattern, likePattern,
		)
	}
	if filter.CategoryID != 0 {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	if filter.MinPrice != nil {
		query = query.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("price <= ?", *filter.MaxPrice)
	}

	var products []models.Product
	if err := query.Order("created_at desc").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

// Delete removes the product, its images and any cart items referencing it,
// all in one transaction.
func (s *ProductStore) Delete(id uint) error {
	var product models.Product
	if err := s.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: product %d", ErrNotFound, id)
		}
		return fmt.Errorf("fetch product: %w", err)
	}

	tx := s.db.Begin()
	if tx.Error != nil {
		return fmt.Errorf("begin transaction: %w", tx.Error)
	}

	if err := tx.Where("product_id = ?", id).Delete(&models.CartItem{}).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("%w: delete cart items: %v", ErrIntegrity, err)
	}
	if err := tx.Where("product_id = ?", id).Delete(&models.ProductImage{}).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("%w: delete product images: %v", ErrIntegrity, err)
	}
	if err := tx.Delete(&product).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("%w: delete product: %v", ErrIntegrity, err)
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("commit product delete: %w", err)
	}
	return nil
}
