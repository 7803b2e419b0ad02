package repositories

import (
	"context"

	"github.com/pesonapantai/go-wisata/app/catalog"
	"github.com/pesonapantai/go-wisata/app/models"
	"gorm.io/gorm"
)

type CategoryRepositoryImpl interface {
	GetAll(ctx context.Context) ([]models.Category, error)
	GetByType(ctx context.Context, t models.CategoryType) ([]models.Category, error)
	GetByID(ctx context.Context, id string) (*models.Category, error)
	GetBySlug(ctx context.Context, slug string) (*models.Category, error)
	Create(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, id string) error
}

type categoryRepository struct {
	*catalog.Repository[models.Category]
}

func NewCategoryRepository(db *gorm.DB) CategoryRepositoryImpl {
	return &categoryRepository{catalog.NewRepository[models.Category](db)}
}

func (r *categoryRepository) GetAll(ctx context.Context) ([]models.Category, error) {
	return r.List(ctx, func(q *gorm.DB) *gorm.DB {
		return q.Order("name ASC")
	})
}

func (r *categoryRepository) GetByType(ctx context.Context, t models.CategoryType) ([]models.Category, error) {
	return r.List(ctx, func(q *gorm.DB) *gorm.DB {
		return q.Where("type = ?", t).Order("name ASC")
	})
}

func (r *categoryRepository) GetByID(ctx context.Context, id string) (*models.Category, error) {
	return r.Repository.GetByID(ctx, id)
}

func (r *categoryRepository) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	return r.Repository.GetBySlug(ctx, slug)
}

func (r *categoryRepository) Create(ctx context.Context, category *models.Category) error {
	return r.Repository.Create(ctx, category)
}
