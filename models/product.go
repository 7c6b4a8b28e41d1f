package models

import "time"

type Product struct {
	ID               uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name             string         `gorm:"not null" json:"name"`
	Price            float64        `gorm:"not null" json:"price"`
	ShortDescription *string        `json:"short_description,omitempty"`
	LongDescription  *string        `json:"long_description,omitempty"`
	InStock          bool           `gorm:"default:false" json:"in_stock"`
	CategoryID       uint           `gorm:"index;not null" json:"category_id"`
	Category         Category       `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Images           []ProductImage `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"images,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
}

// ProductImage may exist without a product; orphan uploads get attached later.
type ProductImage struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Src       string `gorm:"not null" json:"src"`
	ProductID *uint  `gorm:"index" json:"product_id,omitempty"`
}
