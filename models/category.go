package models

type CategoryType int

const (
	CategoryTypeClothes     CategoryType = 1
	CategoryTypeAccessories CategoryType = 2
)

// Valid reports whether t is one of the known category types.
func (t CategoryType) Valid() bool {
	return t == CategoryTypeClothes || t == CategoryTypeAccessories
}

type Category struct {
	ID       uint         `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     string       `gorm:"not null" json:"name"`
	Type     CategoryType `gorm:"not null;default:1" json:"type"`
	Products []Product    `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"products,omitempty"`
}
