package storeControllers

import (
	"context"
	"fmt"

	"github.com/junaidrashid-git/sportsstore/models"
	"github.com/junaidrashid-git/sportsstore/repositories"
)

// Listing is one page of the catalog.
type Listing struct {
	Products   []models.Product
	Category   *models.Category
	Page       int
	PageSize   int
	TotalItems int
	TotalPages int
}

// ListProducts returns the products of categoryID (all products when nil),
// sorted by name and cut to the requested 1-based page. A pageSize of 0 turns
// paging off. found is false when categoryID names no category.
func ListProducts(ctx context.Context, products repositories.ProductRepository, categories repositories.CategoryRepository,
	categoryID *uint, page, pageSize int) (listing Listing, found bool, err error) {

	var all []models.Product
	if categoryID == nil {
		all, err = products.GetAll(ctx)
		if err != nil {
			return Listing{}, false, fmt.Errorf("list products: %w", err)
		}
	} else {
		category, err := categories.GetByIDIncludingProducts(ctx, *categoryID)
		if err != nil {
			return Listing{}, false, fmt.Errorf("load category %d: %w", *categoryID, err)
		}
		if category == nil {
			return Listing{}, false, nil
		}
		all = make([]models.Product, len(category.Products))
		copy(all, category.Products)
		listing.Category = category
	}
	models.SortProductsByName(all)

	if page < 1 {
		page = 1
	}
	if pageSize < 0 {
		pageSize = 0
	}
	listing.Page = page
	listing.PageSize = pageSize
	listing.TotalItems = len(all)
	listing.TotalPages = 1
	listing.Products = all

	if pageSize > 0 {
		listing.TotalPages = (len(all) + pageSize - 1) / pageSize
		if listing.TotalPages == 0 {
			listing.TotalPages = 1
		}
		// pages past the end are empty; checked first so page*pageSize cannot overflow
		start := len(all)
		if page <= listing.TotalPages {
			start = (page - 1) * pageSize
		}
		end := min(start+pageSize, len(all))
		listing.Products = all[start:end]
	}
	return listing, true, nil
}
