// Package dto holds the transfer representations exchanged with callers:
// one input shape per create/update operation (references by id, write-only
// fields) and one output view per entity (nested related entities, computed
// fields). Mapping functions are pure; validation beyond binding tags lives
// in the stores.
package dto

import "github.com/aruzhansadakbayeva/Online-Shop-API/models"

type CategoryInput struct {
	Name string `json:"name" binding:"required"`
	Type int    `json:"type" binding:"required,oneof=1 2"`
}

type CategoryView struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Type int    `json:"type"`
}

func NewCategory(in CategoryInput) models.Category {
	return models.Category{
		Name: in.Name,
		Type: models.CategoryType(in.Type),
	}
}

func ApplyCategoryUpdate(category *models.Category, in CategoryInput) {
	category.Name = in.Name
	category.Type = models.CategoryType(in.Type)
}

func ToCategoryView(category models.Category) CategoryView {
	return CategoryView{
		ID:   category.ID,
		Name: category.Name,
		Type: int(category.Type),
	}
}
