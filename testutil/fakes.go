package testutil

import (
	"context"
	"errors"

	"github.com/junaidrashid-git/sportsstore/database"
	"github.com/junaidrashid-git/sportsstore/models"
)

var ErrStore = errors.New("store unavailable")

// Catalog is an in-memory copy of the demo catalog with IDs assigned in
// declaration order: Soccer=1, Watersports=2, Chess=3; Football=1 through
// Bling-bling King=11.
type Catalog struct {
	Categories []*models.Category
	Products   []*models.Product
}

func NewCatalog() *Catalog {
	cat := &Catalog{}
	var productID uint
	for i, demo := range database.DemoCatalog() {
		category := &models.Category{ID: uint(i + 1), Name: demo.Name}
		for _, p := range demo.Products {
			productID++
			product := p
			product.ID = productID
			product.CategoryID = &category.ID
			product.Category = &models.Category{ID: category.ID, Name: category.Name}
			cat.Products = append(cat.Products, &product)
		}
		cat.Categories = append(cat.Categories, category)
	}
	return cat
}

func (c *Catalog) Product(name string) *models.Product {
	for _, p := range c.Products {
		if p.Name == name {
			return p
		}
	}
	return nil
}

func (c *Catalog) Category(name string) *models.Category {
	for _, cat := range c.Categories {
		if cat.Name == name {
			return cat
		}
	}
	return nil
}

// FakeProductRepository serves a Catalog and counts writes.
type FakeProductRepository struct {
	Catalog *Catalog

	// GetByIDErr makes every GetByID fail.
	GetByIDErr     error
	SaveChangesErr error

	Added            []*models.Product
	Deleted          []*models.Product
	SaveChangesCalls int
}

func (r *FakeProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	out := make([]models.Product, 0, len(r.Catalog.Products))
	for _, p := range r.Catalog.Products {
		out = append(out, *p)
	}
	return out, nil
}

func (r *FakeProductRepository) GetByID(ctx context.Context, id uint) (*models.Product, error) {
	if r.GetByIDErr != nil {
		return nil, r.GetByIDErr
	}
	for _, p := range r.Catalog.Products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (r *FakeProductRepository) Add(product *models.Product) {
	r.Added = append(r.Added, product)
}

func (r *FakeProductRepository) Delete(product *models.Product) {
	r.Deleted = append(r.Deleted, product)
}

func (r *FakeProductRepository) SaveChanges(ctx context.Context) error {
	r.SaveChangesCalls++
	return r.SaveChangesErr
}

// FakeCategoryRepository serves the categories of a Catalog.
type FakeCategoryRepository struct {
	Catalog *Catalog

	SaveChangesCalls int
}

func (r *FakeCategoryRepository) GetAll(ctx context.Context) ([]models.Category, error) {
	out := make([]models.Category, 0, len(r.Catalog.Categories))
	for _, c := range r.Catalog.Categories {
		out = append(out, models.Category{ID: c.ID, Name: c.Name})
	}
	return out, nil
}

func (r *FakeCategoryRepository) GetByID(ctx context.Context, id uint) (*models.Category, error) {
	for _, c := range r.Catalog.Categories {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (r *FakeCategoryRepository) GetByIDIncludingProducts(ctx context.Context, id uint) (*models.Category, error) {
	c, _ := r.GetByID(ctx, id)
	if c == nil {
		return nil, nil
	}
	withProducts := &models.Category{ID: c.ID, Name: c.Name}
	for _, p := range r.Catalog.Products {
		if p.CategoryID != nil && *p.CategoryID == id {
			withProducts.Products = append(withProducts.Products, *p)
		}
	}
	return withProducts, nil
}

func (r *FakeCategoryRepository) Add(category *models.Category) {}

func (r *FakeCategoryRepository) Delete(category *models.Category) {}

func (r *FakeCategoryRepository) SaveChanges(ctx context.Context) error {
	r.SaveChangesCalls++
	return nil
}
