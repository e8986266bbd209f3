package repositories

import (
	"context"
	"errors"

	"github.com/junaidrashid-git/sportsstore/models"
	"gorm.io/gorm"
)

type productRepository struct {
	uow *UnitOfWork
}

func NewProductRepository(uow *UnitOfWork) ProductRepository {
	return &productRepository{uow: uow}
}

func (r *productRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := r.uow.DB(ctx).Preload("Category").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepository) GetByID(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	if err := r.uow.DB(ctx).Preload("Category").First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	r.uow.track(&product)
	return &product, nil
}

func (r *productRepository) Add(product *models.Product) {
	r.uow.add(product)
}

func (r *productRepository) Delete(product *models.Product) {
	r.uow.remove(product)
}

func (r *productRepository) SaveChanges(ctx context.Context) error {
	return r.uow.SaveChanges(ctx)
}
