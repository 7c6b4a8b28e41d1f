package store

import (
	"errors"
	"fmt"
	"time"

	"github.com/aruzhansadakbayeva/Online-Shop-API/models"
	"gorm.io/gorm"
)

// CartStore persists cart items and reads carts with live product detail.
// All operations are scoped to the cart owned by the given user.
type CartStore struct {
	db *gorm.DB
}

func NewCartStore(db *gorm.DB) *CartStore {
	return &CartStore{db: db}
}

// UpsertItem adds the product to the user's cart, or replaces the quantity
// of the existing line. Quantity must be positive; an invalid quantity
// fails before anything is written.
//
// Two concurrent upserts for the same line race at row granularity: both
// may read the same row and the later write wins. The store relies on the
// database's single-row atomicity and adds no locking on top.
func (s *CartStore) UpsertItem(userID string, productID uint, quantity int) (*models.CartItem, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be a positive integer, got %d", ErrValidation, quantity)
	}

	var product models.Product
	if err := s.db.First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: product %d", ErrReference, productID)
		}
		return nil, fmt.Errorf("validate product: %w", err)
	}

	cart, err := s.cartOf(userID)
	if err != nil {
		return nil, err
	}

	var item models.CartItem
	err = s.db.Where("cart_id = ? AND product_id = ?", cart.CartID, productID).
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		item = models.CartItem{
			CartID:    cart.CartID,
			ProductID: productID,
			Quantity:  quantity,
			AddedAt:   time.Now(),
		}
		if err := s.db.Create(&item).Error; err != nil {
			return nil, fmt.Errorf("%w: add cart item: %v", ErrIntegrity, err)
		}
		item.Product = product
		return &item, nil
	}
	if err != nil {
		return nil, fmt.Errorf("fetch cart item: %w", err)
	}

	item.Quantity = quantity
	item.AddedAt = time.Now()
	if err := s.db.Save(&item).Error; err != nil {
		return nil, fmt.Errorf("%w: update cart item: %v", ErrIntegrity, err)
	}
	item.Product = product
	return &item, nil
}

// GetByUser returns the user's cart with every item carrying its product,
// so subtotals and the cart total reflect current prices.
func (s *CartStore) GetByUser(userID string) (*models.Cart, error) {
	var cart models.Cart
	err := s.db.Preload("Items.Product.Category").Preload("Items.Product.Images").
		Where("user_id = ?", userID).First(&cart).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: cart for user %s", ErrNotFound, userID)
		}
		return nil, fmt.Errorf("fetch cart: %w", err)
	}
	return &cart, nil
}

func (s *CartStore) RemoveItem(userID string, productID uint) error {
	cart, err := s.cartOf(userID)
	if err != nil {
		return err
	}

	result := s.db.Where("cart_id = ? AND product_id = ?", cart.CartID, productID).
		Delete(&models.CartItem{})
	if result.Error != nil {
		return fmt.Errorf("delete cart item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: cart item for product %d", ErrNotFound, productID)
	}
	return nil
}

func (s *CartStore) Clear(userID string) error {
	cart, err := s.cartOf(userID)
	if err != nil {
		return err
	}
	if err := s.db.Where("cart_id = ?", cart.CartID).Delete(&models.CartItem{}).Error; err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}

func (s *CartStore) cartOf(userID string) (*models.Cart, error) {
	var cart models.Cart
	if err := s.db.Where("user_id = ?", userID).First(&cart).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: cart for user %s", ErrNotFound, userID)
		}
		return nil, fmt.Errorf("fetch cart: %w", err)
	}
	return &cart, nil
}
