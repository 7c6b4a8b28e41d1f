package models

import "time"

type User struct {
	ID           string  `gorm:"primaryKey" json:"id"`
	Email        string  `gorm:"unique;not null" json:"email"`
	Name         string  `json:"name"`
	PasswordHash string  `json:"-"`
	Profile      Profile `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"profile"`
	Cart         Cart    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"cart"`
	CreatedAt    time.Time
}

type Profile struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      string  `gorm:"uniqueIndex;not null" json:"user_id"` // ONE profile per user
	Address     *string `json:"address,omitempty"`
	PhoneNumber *string `gorm:"size:20" json:"phone_number,omitempty"`
}
