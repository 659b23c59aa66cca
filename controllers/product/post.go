package productcontroller

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nurshapagat1/electronix-app/models"
	"gorm.io/gorm"
)

// uploadsRoot is where product and founder images land; served back under
// /uploads by the main router.
func uploadsRoot() string {
	if dir := os.Getenv("UPLOADS_DIR"); dir != "" {
		return dir
	}
	return "./uploads"
}

// saveUploadedImage stores a multipart image under uploadsRoot/<subdir>
// with a collision-proof name and returns the public URL path.
func saveUploadedImage(c *gin.Context, field, subdir string) (string, error) {
	file, err := c.FormFile(field)
	if err != nil {
		return "", err
	}

	saveDir := filepath.Join(uploadsRoot(), subdir)
	if err := os.MkdirAll(saveDir, os.ModePerm); err != nil {
		return "", err
	}

	ext := filepath.Ext(file.Filename)
	base := strings.TrimSuffix(filepath.Base(file.Filename), ext)
	base = strings.ReplaceAll(base, " ", "_")
	filename := fmt.Sprintf("%d_%s%s", time.Now().UnixNano(), base, ext)

	if err := c.SaveUploadedFile(file, filepath.Join(saveDir, filename)); err != nil {
		return "", err
	}
	return fmt.Sprintf("/uploads/%s/%s", subdir, filename), nil
}

// CreateProduct creates a new product from a multipart form with an image
// upload. POST /admin/products
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.PostForm("name")
		priceStr := c.PostForm("price")
		if name == "" || priceStr == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name and price are required"})
			return
		}

		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
			return
		}

		stock := 0
		if stockStr := c.PostForm("stock"); stockStr != "" {
			if stock, err = strconv.Atoi(stockStr); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid stock"})
				return
			}
		}

		imageURL, err := saveUploadedImage(c, "image", "products")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Image is required"})
			return
		}

		newProduct := models.Product{
			Name:     name,
			Price:    price,
			Stock:    stock,
			Details:  c.PostForm("details"),
			Image:    imageURL,
			IsActive: true,
		}
		if err := db.Create(&newProduct).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, newProduct)
	}
}
