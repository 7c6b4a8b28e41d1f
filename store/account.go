package store

import (
	"errors"
	"fmt"

	"github.com/aruzhansadakbayeva/Online-Shop-API/models"
	"gorm.io/gorm"
)

// AccountStore persists user accounts together with the profile and
// shopping cart every account owns.
type AccountStore struct {
	db *gorm.DB
}

func NewAccountStore(db *gorm.DB) *AccountStore {
	return &AccountStore{db: db}
}

// CreateAccount persists the user and provisions its profile and shopping
// cart as a single transactional unit. Exactly one profile and one cart
// exist for the account afterwards; if any step fails, nothing is kept.
func (s *AccountStore) CreateAccount(user *models.User) error {
	if user.ID == "" {
		return fmt.Errorf("%w: user id is required", ErrValidation)
	}
	if user.Email == "" {
		return fmt.Errorf("%w: email is required", ErrValidation)
	}

	tx := s.db.Begin()
	if tx.Error != nil {
		return fmt.Errorf("begin transaction: %w", tx.Error)
	}

	if err := tx.Create(user).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: email %s already registered", ErrIntegrity, user.Email)
		}
		return fmt.Errorf("%w: create user: %v", ErrIntegrity, err)
	}
	profile := models.Profile{UserID: user.ID}
	if err := tx.Create(&profile).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("%w: provision profile: %v", ErrIntegrity, err)
	}
	cart := models.Cart{UserID: user.ID}
	if err := tx.Create(&cart).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("%w: provision cart: %v", ErrIntegrity, err)
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("commit account creation: %w", err)
	}

	user.Profile = profile
	user.Cart = cart
	return nil
}

func (s *AccountStore) GetByID(id string) (*models.User, error) {
	var user models.User
	err := s.db.Preload("Profile").Preload("Cart.Items.Product").
		First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("fetch user: %w", err)
	}
	return &user, nil
}

func (s *AccountStore) GetByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %s", ErrNotFound, email)
		}
		return nil, fmt.Errorf("fetch user: %w", err)
	}
	return &user, nil
}

// UpdateProfile re-persists the editable profile fields for the user. It
// updates the one existing profile row and never creates a second one.
func (s *AccountStore) UpdateProfile(userID string, address, phoneNumber *string) (*models.Profile, error) {
	if phoneNumber != nil && len(*phoneNumber) > 20 {
		return nil, fmt.Errorf("%w: phone number exceeds 20 characters", ErrValidation)
	}

	var profile models.Profile
	if err := s.db.First(&profile, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: profile for user %s", ErrNotFound, userID)
		}
		return nil, fmt.Errorf("fetch profile: %w", err)
	}

	if address != nil {
		profile.Address = address
	}
	if phoneNumber != nil {
		profile.PhoneNumber = phoneNumber
	}
	if err := s.db.Save(&profile).Error; err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return &profile, nil
}

// DeleteAccount removes the user with its profile, cart and cart items in
// one transaction.
func (s *AccountStore) DeleteAccount(userID string) error {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: user %s", ErrNotFound, userID)
		}
		return fmt.Errorf("fetch user: %w", err)
	}

	tx := s.db.Begin()
	if tx.Error != nil {
		return fmt.Errorf("begin transaction: %w", tx.Error)
	}

	var cart models.Cart
	if err := tx.First(&cart, "user_id = ?", userID).Error; err == nil {
		if err := tx.Where("cart_id = ?", cart.CartID).Delete(&models.CartItem{}).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("%w: delete cart items: %v", ErrIntegrity, err)
		}
		if err := tx.Delete(&cart).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("%w: delete cart: %v", ErrIntegrity, err)
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		tx.Rollback()
		return fmt.Errorf("fetch cart: %w", err)
	}

	if err := tx.Where("user_id = ?", userID).Delete(&models.Profile{}).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("%w: delete profile: %v", ErrIntegrity, err)
	}
	if err := tx.Delete(&user).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("%w: delete user: %v", ErrIntegrity, err)
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("commit account delete: %w", err)
	}
	return nil
}

// ListUsers returns public account fields, newest first.
func (s *AccountStore) ListUsers() ([]models.User, error) {
	var users []models.User
	if err := s.db.
		Select("id", "email", "name", "created_at").
		Order("created_at desc").
		Find(&users).Error; err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}
