package dto

import "github.com/aruzhansadakbayeva/Online-Shop-API/models"

type RegisterInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type ProfileInput struct {
	Address     *string `json:"address"`
	PhoneNumber *string `json:"phone_number" binding:"omitempty,max=20"`
}

type ProfileView struct {
	Address     *string `json:"address,omitempty"`
	PhoneNumber *string `json:"phone_number,omitempty"`
}

type AccountView struct {
	ID      string      `json:"id"`
	Email   string      `json:"email"`
	Name    string      `json:"name"`
	Profile ProfileView `json:"profile"`
	Cart    CartView    `json:"cart"`
}

func ToProfileView(profile models.Profile) ProfileView {
	return ProfileView{
		Address:     profile.Address,
		PhoneNumber: profile.PhoneNumber,
	}
}

func ToAccountView(user models.User) AccountView {
	return AccountView{
		ID:      user.ID,
		Email:   user.Email,
		Name:    user.Name,
		Profile: ToProfileView(user.Profile),
		Cart:    ToCartView(user.Cart),
	}
}
