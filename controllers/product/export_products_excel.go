package productcontroller

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/sportsstore/models"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"
)

// BuildProductSheet lays products out in the same columns ParseProductSheet reads.
func BuildProductSheet(products []models.Product) (*xlsx.File, error) {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Products")
	if err != nil {
		return nil, fmt.Errorf("add sheet: %w", err)
	}

	headerRow := sheet.AddRow()
	for _, h := range sheetHeaders {
		headerRow.AddCell().SetString(h)
	}

	for _, p := range products {
		row := sheet.AddRow()
		row.AddCell().SetInt(int(p.ID))
		row.AddCell().SetString(p.Name)
		row.AddCell().SetString(p.Description)
		// Kept as text so the decimal value survives a round trip unchanged.
		row.AddCell().SetString(p.Price.StringFixed(2))
		if p.CategoryID != nil {
			row.AddCell().SetString(strconv.FormatUint(uint64(*p.CategoryID), 10))
		} else {
			row.AddCell().SetString("")
		}
	}
	return file, nil
}

// GET /admin/products/export-excel
func ExportProductsToExcel(db *gorm.DB, deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		pc := newController(db, deps)
		products, err := pc.Products.GetAll(c.Request.Context())
		if err != nil {
			pc.Log.Error("product export failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		models.SortProductsByName(products)

		file, err := BuildProductSheet(products)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		c.Header("Content-Disposition", "attachment; filename=products.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			pc.Log.Error("write Excel file", "error", err)
		}
	}
}
