package database

import (
	"context"
	"fmt"

	"github.com/junaidrashid-git/sportsstore/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type seedProduct struct {
	name        string
	description string
	price       string
}

var seedCatalog = []struct {
	category string
	products []seedProduct
}{
	{"Soccer", []seedProduct{
		{"Football", "FIFA-approved size and weight", "25.00"},
		{"Corner flags", "Give your playing field a professional touch", "34.95"},
		{"Stadium", "Flat-packed 35,000-seat stadium", "79500.00"},
		{"Running shoes", "Protective and fashionable", "95.00"},
	}},
	{"Watersports", []seedProduct{
		{"Kayak", "A boat for one person", "275.00"},
		{"Lifejacket", "Protective and fashionable", "48.95"},
		{"Surf board", "A board in which you can surf", "120.00"},
	}},
	{"Chess", []seedProduct{
		{"Thinking cap", "Improve your brain efficiency by 75%", "16.00"},
		{"Unsteady chair", "Secretly give your opponent a disadvantage", "29.95"},
		{"Human chess board", "A fun game for the whole family", "75.00"},
		{"Bling-bling King", "Gold-plated, diamond-studded King", "1200.00"},
	}},
}

// DemoCatalog returns the demo categories with their products, unsaved.
func DemoCatalog() []models.Category {
	out := make([]models.Category, 0, len(seedCatalog))
	for _, entry := range seedCatalog {
		category := models.Category{Name: entry.category}
		for _, sp := range entry.products {
			category.Products = append(category.Products, models.Product{
				Name:        sp.name,
				Description: sp.description,
				Price:       decimal.RequireFromString(sp.price),
			})
		}
		out = append(out, category)
	}
	return out
}

// Seed fills an empty catalog. It returns false when products already exist.
func Seed(ctx context.Context, db *gorm.DB) (bool, error) {
	var count int64
	if err := db.WithContext(ctx).Model(&models.Product{}).Count(&count).Error; err != nil {
		return false, fmt.Errorf("count products: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, demo := range DemoCatalog() {
			category := models.Category{Name: demo.Name}
			if err := tx.Where(models.Category{Name: demo.Name}).FirstOrCreate(&category).Error; err != nil {
				return fmt.Errorf("seed category %s: %w", demo.Name, err)
			}
			for _, product := range demo.Products {
				product.CategoryID = &category.ID
				if err := tx.Create(&product).Error; err != nil {
					return fmt.Errorf("seed product %s: %w", product.Name, err)
				}
			}
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return true, nil
}
