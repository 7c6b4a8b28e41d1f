package catalogControllers

import (
	"net/http"
	"strconv"

	"github.com/aruzhansadakbayeva/Online-Shop-API/dto"
	"github.com/aruzhansadakbayeva/Online-Shop-API/store"
	"github.com/gin-gonic/gin"
)

// POST /admin/products
func CreateProduct(products *store.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input dto.ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product := dto.NewProduct(input)
		if err := products.Create(&product); err != nil {
			fail(c, err)
			return
		}

		created, err := products.GetByID(product.ID)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusCreated, dto.ToProductView(*created))
	}
}

// PUT /admin/products/:id
func UpdateProduct(products *store.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}

		var input dto.ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product, err := products.GetByID(id)
		if err != nil {
			fail(c, err)
			return
		}
		dto.ApplyProductUpdate(product, input)
		if err := products.Update(product); err != nil {
			fail(c, err)
			return
		}

		updated, err := products.GetByID(id)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.ToProductView(*updated))
	}
}

// GET /user/products/:id
func GetProductByID(products *store.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		product, err := products.GetByID(id)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.ToProductView(*product))
	}
}

// GET /user/products
// Query params: search, category_id, min_price, max_price.
func GetProducts(products *store.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var filter store.ProductFilter
		filter.Search = c.Query("search")

		if v := c.Query("category_id"); v != "" {
			cid, err := strconv.ParseUint(v, 10, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category_id"})
				return
			}
			filter.CategoryID = uint(cid)
		}
		if v := c.Query("min_price"); v != "" {
			mp, err := strconv.ParseFloat(v, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid min_price"})
				return
			}
			filter.MinPrice = &mp
		}
		if v := c.Query("max_price"); v != "" {
			mp, err := strconv.ParseFloat(v, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid max_price"})
				return
			}
			filter.MaxPrice = &mp
		}

		list, err := products.List(filter)
		if err != nil {
			fail(c, err)
			return
		}
		views := make([]dto.ProductView, 0, len(list))
		for _, product := range list {
			views = append(views, dto.ToProductView(product))
		}
		c.JSON(http.StatusOK, views)
	}
}

// DELETE /admin/products/:id
func DeleteProduct(products *store.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		if err := products.Delete(id); err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
	}
}
