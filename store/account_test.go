package store

import (
	"errors"
	"testing"

	"github.com/aruzhansadakbayeva/Online-Shop-API/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAccountProvisionsProfileAndCart(t *testing.T) {
	db := setupTestDB(t)
	accounts := NewAccountStore(db)

	user := models.User{ID: "u-1", Email: "new@example.com", Name: "New User"}
	require.NoError(t, accounts.CreateAccount(&user))

	assert.EqualValues(t, 1, count[models.Profile](t, db, "user_id = ?", user.ID))
	assert.EqualValues(t, 1, count[models.Cart](t, db, "user_id = ?", user.ID))

	got, err := accounts.GetByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", got.Email)
	assert.Equal(t, user.ID, got.Profile.UserID)
	assert.Equal(t, user.ID, got.Cart.UserID)
}

func TestCreateAccountDuplicateEmailLeavesNothingBehind(t *testing.T) {
	db := setupTestDB(t)
	accounts := NewAccountStore(db)

	first := models.User{ID: "u-1", Email: "dup@example.com"}
	require.NoError(t, accounts.CreateAccount(&first))

	second := models.User{ID: "u-2", Email: "dup@example.com"}
	err := accounts.CreateAccount(&second)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrIntegrity))

	// the failed registration must not leave an orphan profile or cart
	assert.EqualValues(t, 1, count[models.User](t, db, ""))
	assert.EqualValues(t, 1, count[models.Profile](t, db, ""))
	assert.EqualValues(t, 1, count[models.Cart](t, db, ""))
	assert.EqualValues(t, 0, count[models.Profile](t, db, "user_id = ?", "u-2"))
	assert.EqualValues(t, 0, count[models.Cart](t, db, "user_id = ?", "u-2"))
}

func TestUpdateProfileNeverDuplicates(t *testing.T) {
	db := setupTestDB(t)
	accounts := NewAccountStore(db)
	user := seedAccount(t, db, "u-1", "edit@example.com")

	address := "42 Main St"
	phone := "+77010000000"
	for i := 0; i < 3; i++ {
		_, err := accounts.UpdateProfile(user.ID, &address, &phone)
		require.NoError(t, err)
	}

	assert.EqualValues(t, 1, count[models.Profile](t, db, "user_id = ?", user.ID))
	assert.EqualValues(t, 1, count[models.Cart](t, db, "user_id = ?", user.ID))

	got, err := accounts.GetByID(user.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Profile.Address)
	assert.Equal(t, address, *got.Profile.Address)
	require.NotNil(t, got.Profile.PhoneNumber)
	assert.Equal(t, phone, *got.Profile.PhoneNumber)
}

func TestUpdateProfilePartialFields(t *testing.T) {
	db := setupTestDB(t)
	accounts := NewAccountStore(db)
	user := seedAccount(t, db, "u-1", "edit@example.com")

	address := "42 Main St"
	_, err := accounts.UpdateProfile(user.ID, &address, nil)
	require.NoError(t, err)

	phone := "+77010000000"
	profile, err := accounts.UpdateProfile(user.ID, nil, &phone)
	require.NoError(t, err)

	// the first update survives the second
	require.NotNil(t, profile.Address)
	assert.Equal(t, address, *profile.Address)
}

func TestUpdateProfileRejectsLongPhoneNumber(t *testing.T) {
	db := setupTestDB(t)
	accounts := NewAccountStore(db)
	user := seedAccount(t, db, "u-1", "edit@example.com")

	phone := "+7 701 000 00 00 ext 12345"
	_, err := accounts.UpdateProfile(user.ID, nil, &phone)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))
}

func TestUpdateProfileUnknownUser(t *testing.T) {
	db := setupTestDB(t)
	accounts := NewAccountStore(db)

	address := "nowhere"
	_, err := accounts.UpdateProfile("ghost", &address, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestDeleteAccountCascades(t *testing.T) {
	db := setupTestDB(t)
	accounts := NewAccountStore(db)

	shirts := seedCategory(t, db, "Shirts", models.CategoryTypeClothes)
	redTee := seedProduct(t, db, "Red Tee", 20.0, shirts.ID)
	user := seedAccount(t, db, "u-1", "leaver@example.com")

	_, err := NewCartStore(db).UpsertItem(user.ID, redTee.ID, 2)
	require.NoError(t, err)

	require.NoError(t, accounts.DeleteAccount(user.ID))

	assert.EqualValues(t, 0, count[models.User](t, db, "id = ?", user.ID))
	assert.EqualValues(t, 0, count[models.Profile](t, db, "user_id = ?", user.ID))
	assert.EqualValues(t, 0, count[models.Cart](t, db, "user_id = ?", user.ID))
	assert.EqualValues(t, 0, count[models.CartItem](t, db, ""))

	// the catalog is untouched
	assert.EqualValues(t, 1, count[models.Product](t, db, ""))
}

func TestListUsers(t *testing.T) {
	db := setupTestDB(t)
	accounts := NewAccountStore(db)

	seedAccount(t, db, "u-1", "a@example.com")
	seedAccount(t, db, "u-2", "b@example.com")

	users, err := accounts.ListUsers()
	require.NoError(t, err)
	assert.Len(t, users, 2)
	for _, u := range users {
		assert.Empty(t, u.PasswordHash)
	}
}
