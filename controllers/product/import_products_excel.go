package productcontroller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/nurshapagat1/electronix-app/models"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"
)

// ImportProductsFromExcel bulk-creates or updates catalog rows from an
// uploaded spreadsheet. Expected columns: ID (blank to create), Name,
// Price, Stock, Active, Details, Image. Rows that fail to parse are
// skipped and counted.
func ImportProductsFromExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		excelFileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is required"})
			return
		}

		file, err := excelFileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open Excel file"})
			return
		}
		defer file.Close()

		xlFile, err := xlsx.OpenReaderAt(file, excelFileHeader.Size)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse Excel file"})
			return
		}

		if len(xlFile.Sheets) == 0 || xlFile.Sheets[0].MaxRow < 2 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is empty or missing header row"})
			return
		}

		sheet := xlFile.Sheets[0]
		createdCount, updatedCount, skippedCount := 0, 0, 0

		for i := 1; i < sheet.MaxRow; i++ {
			row := sheet.Rows[i]

			get := func(index int) string {
				if index < len(row.Cells) {
					return strings.TrimSpace(row.Cells[index].String())
				}
				return ""
			}

			idStr := get(0)
			name := get(1)
			price, priceErr := strconv.ParseFloat(get(2), 64)
			stock, _ := strconv.Atoi(get(3))
			active, activeErr := strconv.ParseBool(get(4))
			if activeErr != nil {
				active = true
			}
			details := get(5)
			image := get(6)

			if name == "" || priceErr != nil {
				skippedCount++
				continue
			}

			if idStr != "" {
				id, err := strconv.Atoi(idStr)
				if err != nil {
					skippedCount++
					continue
				}
				var existing models.Product
				if err := db.First(&existing, id).Error; err != nil {
					skippedCount++
					continue
				}
				existing.Name = name
				existing.Price = price
				existing.Stock = stock
				existing.IsActive = active
				existing.Details = details
				if image != "" {
					existing.Image = image
				}
				if err := db.Save(&existing).Error; err != nil {
					skippedCount++
					continue
				}
				updatedCount++
				continue
			}

			product := models.Product{
				Name:     name,
				Price:    price,
				Stock:    stock,
				IsActive: active,
				Details:  details,
				Image:    image,
			}
			if err := db.Create(&product).Error; err != nil {
				skippedCount++
				continue
			}
			createdCount++
		}

		c.JSON(http.StatusOK, gin.H{
			"created": createdCount,
			"updated": updatedCount,
			"skipped": skippedCount,
		})
	}
}
