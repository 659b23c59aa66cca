package orderControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nurshapagat1/electronix-app/models"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"
)

// ExportOrdersToExcel streams all placed orders as an .xlsx download, one
// row per order line.
func ExportOrdersToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.
			Preload("Customer.User").
			Preload("Items").
			Preload("Items.Product").
			Where("status <> ?", models.OrderStatusCart).
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Orders")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"OrderID", "OrderRef", "Status", "Customer", "Email",
			"Product", "Quantity", "UnitPrice", "Subtotal", "OrderTotal", "CreatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, o := range orders {
			for _, item := range o.Items {
				row := sheet.AddRow()
				row.AddCell().SetValue(o.ID)
				row.AddCell().SetValue(o.OrderRef)
				row.AddCell().SetValue(string(o.Status))
				row.AddCell().SetValue(o.Customer.User.Name)
				row.AddCell().SetValue(o.Customer.User.Email)
				row.AddCell().SetValue(item.Product.Name)
				row.AddCell().SetValue(item.Quantity)
				row.AddCell().SetValue(item.Price)
				row.AddCell().SetValue(item.Subtotal())
				row.AddCell().SetValue(o.TotalPrice)
				row.AddCell().SetValue(o.CreatedAt.Format("2006-01-02 15:04:05"))
			}
		}

		c.Header("Content-Disposition", "attachment; filename=orders.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
