package repositories

import (
	"context"

	"github.com/junaidrashid-git/sportsstore/models"
)

// Reads return (nil, nil) when no row matches. Add, Delete and field changes on
// entities returned by GetByID are only written by SaveChanges.
type ProductRepository interface {
	GetAll(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id uint) (*models.Product, error)
	Add(product *models.Product)
	Delete(product *models.Product)
	SaveChanges(ctx context.Context) error
}

type CategoryRepository interface {
	GetAll(ctx context.Context) ([]models.Category, error)
	GetByID(ctx context.Context, id uint) (*models.Category, error)
	GetByIDIncludingProducts(ctx context.Context, id uint) (*models.Category, error)
	Add(category *models.Category)
	Delete(category *models.Category)
	SaveChanges(ctx context.Context) error
}
