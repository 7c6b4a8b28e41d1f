package dto

import (
	"time"

	"github.com/aruzhansadakbayeva/Online-Shop-API/models"
)

type ProductInput struct {
	Name             string   `json:"name" binding:"required"`
	Price            *float64 `json:"price" binding:"required"`
	CategoryID       uint     `json:"category_id" binding:"required"`
	ShortDescription *string  `json:"short_description"`
	LongDescription  *string  `json:"long_description"`
	InStock          bool     `json:"in_stock"`
}

// ProductView embeds the owning category and the image list, denormalized
// into the response.
type ProductView struct {
	ID               uint         `json:"id"`
	Name             string       `json:"name"`
	Price            float64      `json:"price"`
	ShortDescription *string      `json:"short_description,omitempty"`
	LongDescription  *string      `json:"long_description,omitempty"`
	InStock          bool         `json:"in_stock"`
	Category         CategoryView `json:"category"`
	Images           []ImageView  `json:"images"`
	CreatedAt        time.Time    `json:"created_at"`
}

type ImageView struct {
	ID  uint   `json:"id"`
	Src string `json:"src"`
}

func NewProduct(in ProductInput) models.Product {
	return models.Product{
		Name:             in.Name,
		Price:            *in.Price,
		CategoryID:       in.CategoryID,
		ShortDescription: in.ShortDescription,
		LongDescription:  in.LongDescription,
		InStock:          in.InStock,
	}
}

func ApplyProductUpdate(product *models.Product, in ProductInput) {
	product.Name = in.Name
	product.Price = *in.Price
	product.CategoryID = in.CategoryID
	product.ShortDescription = in.ShortDescription
	product.LongDescription = in.LongDescription
	product.InStock = in.InStock
}

func ToProductView(product models.Product) ProductView {
	images := make([]ImageView, 0, len(product.Images))
	for _, image := range product.Images {
		images = append(images, ToImageView(image))
	}
	return ProductView{
		ID:               product.ID,
		Name:             product.Name,
		Price:            product.Price,
		ShortDescription: product.ShortDescription,
		LongDescription:  product.LongDescription,
		InStock:          product.InStock,
		Category:         ToCategoryView(product.Category),
		Images:           images,
		CreatedAt:        product.CreatedAt,
	}
}

func ToImageView(image models.ProductImage) ImageView {
	return ImageView{ID: image.ID, Src: image.Src}
}
