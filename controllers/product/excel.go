package productcontroller

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/sportsstore/models"
	"github.com/junaidrashid-git/sportsstore/realtime"
	"github.com/junaidrashid-git/sportsstore/viewmodels"
	"github.com/shopspring/decimal"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"
)

var sheetHeaders = []string{"ID", "Name", "Description", "Price", "CategoryID"}

// ImportRow is one spreadsheet row. Err is set when the row could not be parsed.
type ImportRow struct {
	Line int
	Form viewmodels.EditViewModel
	Err  error
}

type ImportSummary struct {
	Created int `json:"created_count"`
	Updated int `json:"updated_count"`
	Skipped int `json:"skipped_count"`
}

// ParseProductSheet reads the first sheet of an xlsx workbook. The first row
// is the header and is ignored.
func ParseProductSheet(r io.ReaderAt, size int64) ([]ImportRow, error) {
	xlFile, err := xlsx.OpenReaderAt(r, size)
	if err != nil {
		return nil, fmt.Errorf("parse workbook: %w", err)
	}
	if len(xlFile.Sheets) == 0 || xlFile.Sheets[0].MaxRow < 2 {
		return nil, errors.New("workbook is empty or missing header row")
	}

	sheet := xlFile.Sheets[0]
	rows := make([]ImportRow, 0, sheet.MaxRow-1)
	for i := 1; i < sheet.MaxRow && i < len(sheet.Rows); i++ {
		row := sheet.Rows[i]
		get := func(index int) string {
			if row != nil && index < len(row.Cells) {
				return strings.TrimSpace(row.Cells[index].String())
			}
			return ""
		}
		if get(0) == "" && get(1) == "" && get(3) == "" {
			continue
		}
		rows = append(rows, parseRow(i+1, get))
	}
	return rows, nil
}

func parseRow(line int, get func(int) string) ImportRow {
	out := ImportRow{Line: line}
	vm := viewmodels.EditViewModel{Name: get(1), Description: get(2)}

	if raw := get(0); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 0)
		if err != nil {
			out.Err = fmt.Errorf("line %d: invalid id %q", line, raw)
			return out
		}
		vm.ID = uint(id)
	}

	price, err := decimal.NewFromString(get(3))
	if err != nil {
		out.Err = fmt.Errorf("line %d: invalid price %q", line, get(3))
		return out
	}
	vm.Price = price

	if raw := get(4); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 0)
		if err != nil {
			out.Err = fmt.Errorf("line %d: invalid category id %q", line, raw)
			return out
		}
		categoryID := uint(id)
		vm.CategoryID = &categoryID
	}

	out.Form = vm
	return out
}

// Import applies the rows to the catalog. Rows naming an existing product ID
// update it; the others are added. Rows that fail to parse or break a product
// rule are skipped. Everything is committed with one SaveChanges.
func (pc *Controller) Import(ctx context.Context, rows []ImportRow) (ImportSummary, error) {
	var summary ImportSummary
	var created, updated []*models.Product

	for _, row := range rows {
		if row.Err != nil {
			pc.Log.Debug("import row skipped", "error", row.Err)
			summary.Skipped++
			continue
		}
		outcome, err := pc.validate(ctx, row.Form)
		if err != nil {
			return ImportSummary{}, err
		}
		if !outcome.IsValid() {
			pc.Log.Debug("import row rejected", "line", row.Line, "errors", outcome.Errors)
			summary.Skipped++
			continue
		}

		if row.Form.ID != 0 {
			existing, err := pc.Products.GetByID(ctx, row.Form.ID)
			if err != nil {
				return ImportSummary{}, fmt.Errorf("load product %d: %w", row.Form.ID, err)
			}
			if existing != nil {
				row.Form.ApplyTo(existing)
				updated = append(updated, existing)
				continue
			}
		}

		product := row.Form.ToProduct()
		pc.Products.Add(&product)
		created = append(created, &product)
	}

	if len(created)+len(updated) > 0 {
		if err := pc.Products.SaveChanges(ctx); err != nil {
			return ImportSummary{}, fmt.Errorf("import products: %w", err)
		}
	}
	for _, p := range created {
		pc.publish(realtime.ProductCreated, p)
	}
	for _, p := range updated {
		pc.publish(realtime.ProductUpdated, p)
	}

	summary.Created = len(created)
	summary.Updated = len(updated)
	pc.Log.Info("product import finished", "created", summary.Created, "updated", summary.Updated, "skipped", summary.Skipped)
	return summary, nil
}

// POST /admin/products/import-excel
func ImportProductsFromExcel(db *gorm.DB, deps Deps) gin.HandlerFunc {
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

		rows, err := ParseProductSheet(file, excelFileHeader.Size)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to parse Excel file: " + err.Error()})
			return
		}

		pc := newController(db, deps)
		summary, err := pc.Import(c.Request.Context(), rows)
		if err != nil {
			pc.Log.Error("product import failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to import products"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message":       "Import completed",
			"created_count": summary.Created,
			"updated_count": summary.Updated,
			"skipped_count": summary.Skipped,
		})
	}
}
