package founderControllers

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nurshapagat1/electronix-app/models"
	"gorm.io/gorm"
)

// GetAboutPage returns active founder bios oldest-first plus storefront
// aggregate counts. Fulfilled orders are those past pending.
func GetAboutPage(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var founders []models.FounderInfo
		if err := db.Where("is_active = ?", true).
			Order("created_at ASC").
			Find(&founders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch founders"})
			return
		}

		var totalProducts, totalOrders, totalReviews int64
		db.Model(&models.Product{}).Where("is_active = ?", true).Count(&totalProducts)
		db.Model(&models.Order{}).Where("status IN ?", []models.OrderStatus{
			models.OrderStatusProcessing,
			models.OrderStatusShipped,
			models.OrderStatusCompleted,
		}).Count(&totalOrders)
		db.Model(&models.Review{}).Where("is_approved = ?", true).Count(&totalReviews)

		c.JSON(http.StatusOK, gin.H{
			"founders":       founders,
			"total_products": totalProducts,
			"total_orders":   totalOrders,
			"total_reviews":  totalReviews,
		})
	}
}

func saveFounderImage(c *gin.Context) (string, error) {
	file, err := c.FormFile("image")
	if err != nil {
		return "", err
	}

	root := os.Getenv("UPLOADS_DIR")
	if root == "" {
		root = "./uploads"
	}
	saveDir := filepath.Join(root, "founders")
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
	return fmt.Sprintf("/uploads/founders/%s", filename), nil
}

// CreateFounder adds an about-page bio from a multipart form.
// POST /admin/founders
func CreateFounder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.PostForm("name")
		if name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
			return
		}

		imageURL, err := saveFounderImage(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Image is required"})
			return
		}

		founder := models.FounderInfo{
			Name:     name,
			Position: c.PostForm("position"),
			Bio:      c.PostForm("bio"),
			Email:    c.PostForm("email"),
			LinkedIn: c.PostForm("linkedin"),
			Twitter:  c.PostForm("twitter"),
			Image:    imageURL,
			IsActive: true,
		}
		if err := db.Create(&founder).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create founder"})
			return
		}

		c.JSON(http.StatusCreated, founder)
	}
}

// UpdateFounder edits a bio; all fields optional.
// PUT /admin/founders/:id
func UpdateFounder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var founder models.FounderInfo
		if err := db.First(&founder, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Founder not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch founder"})
			return
		}

		if v := c.PostForm("name"); v != "" {
			founder.Name = v
		}
		if v := c.PostForm("position"); v != "" {
			founder.Position = v
		}
		if v := c.PostForm("bio"); v != "" {
			founder.Bio = v
		}
		if v := c.PostForm("email"); v != "" {
			founder.Email = v
		}
		if v := c.PostForm("linkedin"); v != "" {
			founder.LinkedIn = v
		}
		if v := c.PostForm("twitter"); v != "" {
			founder.Twitter = v
		}
		if v := c.PostForm("is_active"); v != "" {
			founder.IsActive = v == "true" || v == "1"
		}
		if imageURL, err := saveFounderImage(c); err == nil {
			founder.Image = imageURL
		}

		if err := db.Save(&founder).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update founder"})
			return
		}
		c.JSON(http.StatusOK, founder)
	}
}

// GetFounders is the admin listing; inactive bios included.
// GET /admin/founders
func GetFounders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var founders []models.FounderInfo
		if err := db.Order("created_at ASC").Find(&founders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch founders"})
			return
		}
		c.JSON(http.StatusOK, founders)
	}
}

// DeleteFounder removes a bio and its image file.
// DELETE /admin/founders/:id
func DeleteFounder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var founder models.FounderInfo
		if err := db.First(&founder, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Founder not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}

		if founder.Image != "" {
			root := os.Getenv("UPLOADS_DIR")
			if root == "" {
				root = "./uploads"
			}
			localPath := strings.Replace(founder.Image, "/uploads", root, 1)
			if err := os.Remove(localPath); err != nil && !os.IsNotExist(err) {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete image file"})
				return
			}
		}

		if err := db.Delete(&founder).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete founder"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Founder deleted"})
	}
}
