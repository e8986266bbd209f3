package storeControllers

import (
	"context"

	"github.com/junaidrashid-git/sportsstore/repositories"
	"github.com/junaidrashid-git/sportsstore/results"
	"github.com/junaidrashid-git/sportsstore/viewmodels"
)

// Controller serves the public catalog.
type Controller struct {
	Products   repositories.ProductRepository
	Categories repositories.CategoryRepository
	PageSize   int
}

// Index lists one page of products, optionally filtered by category. An
// unknown category is reported as not found.
func (sc *Controller) Index(ctx context.Context, categoryID *uint, page int) (results.Result, error) {
	listing, found, err := ListProducts(ctx, sc.Products, sc.Categories, categoryID, page, sc.PageSize)
	if err != nil {
		return results.Result{}, err
	}
	if !found {
		return results.NotFound(), nil
	}

	categories, err := sc.Categories.GetAll(ctx)
	if err != nil {
		return results.Result{}, err
	}

	return results.View("", listing.Products, map[string]any{
		"Categories": viewmodels.NewCategorySelectList(categories, categoryID),
		"CategoryId": categoryID,
		"Page":       listing.Page,
		"PageSize":   listing.PageSize,
		"TotalItems": listing.TotalItems,
		"TotalPages": listing.TotalPages,
	}), nil
}
