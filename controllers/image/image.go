package imageControllers

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/aruzhansadakbayeva/Online-Shop-API/dto"
	"github.com/aruzhansadakbayeva/Online-Shop-API/store"
	"github.com/gin-gonic/gin"
)

const publicPath = "/uploads/products"

func uploadDir() string {
	if dir := os.Getenv("UPLOAD_DIR"); dir != "" {
		return filepath.Join(dir, "products")
	}
	return "./uploads/products"
}

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

// saveUpload stores the multipart "image" file under the upload dir and
// returns its public src path. Responds with the error itself on failure.
func saveUpload(c *gin.Context) (string, bool) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image file is required"})
		return "", false
	}

	dir := uploadDir()
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create upload folder"})
		return "", false
	}

	ext := filepath.Ext(file.Filename)
	base := strings.TrimSuffix(filepath.Base(file.Filename), ext)
	base = strings.ReplaceAll(base, " ", "_")
	filename := fmt.Sprintf("%d_%s%s", time.Now().UnixNano(), base, ext)

	if err := c.SaveUploadedFile(file, filepath.Join(dir, filename)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image"})
		return "", false
	}
	return fmt.Sprintf("%s/%s", publicPath, filename), true
}

// POST /admin/images
// Multipart form: "image" file, optional "product_id". An image uploaded
// without a product stays orphaned until linked.
func AttachImage(images *store.ImageStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var productID *uint
		if v := c.PostForm("product_id"); v != "" {
			id64, err := strconv.ParseUint(v, 10, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product_id"})
				return
			}
			id := uint(id64)
			productID = &id
		}

		src, ok := saveUpload(c)
		if !ok {
			return
		}

		image, err := images.Attach(src, productID)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusCreated, dto.ToImageView(*image))
	}
}

// POST /admin/products/:id/images
// Same upload form, product taken from the URL.
func AttachProductImage(images *store.ImageStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id64, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
			return
		}
		productID := uint(id64)

		src, ok := saveUpload(c)
		if !ok {
			return
		}

		image, err := images.Attach(src, &productID)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusCreated, dto.ToImageView(*image))
	}
}

// GET /admin/products/:id/images
func ListProductImages(images *store.ImageStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id64, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
			return
		}

		list, err := images.ListByProduct(uint(id64))
		if err != nil {
			fail(c, err)
			return
		}
		views := make([]dto.ImageView, 0, len(list))
		for _, image := range list {
			views = append(views, dto.ToImageView(image))
		}
		c.JSON(http.StatusOK, views)
	}
}
