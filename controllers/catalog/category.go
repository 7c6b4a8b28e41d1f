package catalogControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/aruzhansadakbayeva/Online-Shop-API/dto"
	"github.com/aruzhansadakbayeva/Online-Shop-API/store"
	"github.com/gin-gonic/gin"
)

func fail(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, store.ErrValidation), errors.Is(err, store.ErrReference):
		status = http.StatusBadRequest
	case errors.Is(err, store.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, store.ErrIntegrity):
		status = http.StatusConflict
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func parseID(c *gin.Context) (uint, bool) {
	id64, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return uint(id64), true
}

// POST /admin/categories
func CreateCategory(categories *store.CategoryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input dto.CategoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		category := dto.NewCategory(input)
		if err := categories.Create(&category); err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusCreated, dto.ToCategoryView(category))
	}
}

// PUT /admin/categories/:id
func UpdateCategory(categories *store.CategoryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}

		var input dto.CategoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		category, err := categories.GetByID(id)
		if err != nil {
			fail(c, err)
			return
		}
		dto.ApplyCategoryUpdate(category, input)
		if err := categories.Update(category); err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.ToCategoryView(*category))
	}
}

// GET /admin/categories and GET /user/categories
func GetAllCategories(categories *store.CategoryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := categories.List()
		if err != nil {
			fail(c, err)
			return
		}
		views := make([]dto.CategoryView, 0, len(list))
		for _, category := range list {
			views = append(views, dto.ToCategoryView(category))
		}
		c.JSON(http.StatusOK, views)
	}
}

// GET /user/categories/:id
func GetCategoryByID(categories *store.CategoryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		category, err := categories.GetByID(id)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, category)
	}
}

// DELETE /admin/categories/:id
func DeleteCategory(categories *store.CategoryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		if err := categories.Delete(id); err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
	}
}
