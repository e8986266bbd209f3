package repositories

import (
	"context"
	"errors"

	"github.com/junaidrashid-git/sportsstore/models"
	"gorm.io/gorm"
)

type categoryRepository struct {
	uow *UnitOfWork
}

func NewCategoryRepository(uow *UnitOfWork) CategoryRepository {
	return &categoryRepository{uow: uow}
}

func (r *categoryRepository) GetAll(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := r.uow.DB(ctx).Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepository) GetByID(ctx context.Context, id uint) (*models.Category, error) {
	return r.first(r.uow.DB(ctx), id)
}

func (r *categoryRepository) GetByIDIncludingProducts(ctx context.Context, id uint) (*models.Category, error) {
	return r.first(r.uow.DB(ctx).Preload("Products"), id)
}

func (r *categoryRepository) first(q *gorm.DB, id uint) (*models.Category, error) {
	var category models.Category
	if err := q.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	r.uow.track(&category)
	return &category, nil
}

func (r *categoryRepository) Add(category *models.Category) {
	r.uow.add(category)
}

func (r *categoryRepository) Delete(category *models.Category) {
	r.uow.remove(category)
}

func (r *categoryRepository) SaveChanges(ctx context.Context) error {
	return r.uow.SaveChanges(ctx)
}
