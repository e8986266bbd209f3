package database_test

import (
	"testing"

	"github.com/junaidrashid-git/sportsstore/database"
	"github.com/junaidrashid-git/sportsstore/models"
	"github.com/junaidrashid-git/sportsstore/testutil"
)

func TestSeedFillsEmptyCatalogOnce(t *testing.T) {
	db := testutil.DB(t)
	ctx := t.Context()

	seeded, err := database.Seed(ctx, db)
	if err != nil {
		t.Fatalf("Seed: %v", err)
	}
	if !seeded {
		t.Fatalf("expected first Seed to insert data")
	}

	var products, categories int64
	db.Model(&models.Product{}).Count(&products)
	db.Model(&models.Category{}).Count(&categories)
	if products != 11 || categories != 3 {
		t.Fatalf("unexpected counts: products=%d categories=%d", products, categories)
	}

	seeded, err = database.Seed(ctx, db)
	if err != nil {
		t.Fatalf("second Seed: %v", err)
	}
	if seeded {
		t.Fatalf("second Seed should be a no-op")
	}
	db.Model(&models.Product{}).Count(&products)
	if products != 11 {
		t.Fatalf("second Seed duplicated products: %d", products)
	}
}

func TestSeedLinksProductsToCategories(t *testing.T) {
	db := testutil.SeededDB(t)

	var soccer models.Category
	if err := db.Preload("Products").Where("name = ?", "Soccer").First(&soccer).Error; err != nil {
		t.Fatalf("load soccer: %v", err)
	}
	if len(soccer.Products) != 4 {
		t.Fatalf("soccer products: got=%d want=4", len(soccer.Products))
	}
}
