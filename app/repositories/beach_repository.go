package repositories

import (
	"context"

	"github.com/pesonapantai/go-wisata/app/catalog"
	"github.com/pesonapantai/go-wisata/app/models"
	"gorm.io/gorm"
)

type BeachRepositoryImpl interface {
	GetAll(ctx context.Context) ([]models.Beach, error)
	GetFeatured(ctx context.Context, limit int) ([]models.Beach, error)
	GetBySlug(ctx context.Context, slug string) (*models.Beach, error)
	GetByID(ctx context.Context, id string) (*models.Beach, error)
	Create(ctx context.Context, beach *models.Beach) error
	Update(ctx context.Context, beach *models.Beach) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type beachRepository struct {
	*catalog.Repository[models.Beach]
}

func NewBeachRepository(db *gorm.DB) BeachRepositoryImpl {
	return &beachRepository{catalog.NewRepository[models.Beach](db)}
}

func (r *beachRepository) GetAll(ctx context.Context) ([]models.Beach, error) {
	return r.List(ctx, func(q *gorm.DB) *gorm.DB {
		return q.Order("is_featured DESC, created_at DESC")
	})
}

func (r *beachRepository) GetFeatured(ctx context.Context, limit int) ([]models.Beach, error) {
	return r.List(ctx, func(q *gorm.DB) *gorm.DB {
		return q.Where("is_featured = ?", true).Order("created_at DESC").Limit(limit)
	})
}

func (r *beachRepository) GetBySlug(ctx context.Context, slug string) (*models.Beach, error) {
	return r.Repository.GetBySlug(ctx, slug)
}

func (r *beachRepository) GetByID(ctx context.Context, id string) (*models.Beach, error) {
	return r.Repository.GetByID(ctx, id)
}

func (r *beachRepository) Create(ctx context.Context, beach *models.Beach) error {
	return r.Repository.Create(ctx, beach)
}

func (r *beachRepository) Update(ctx context.Context, beach *models.Beach) error {
	return r.Save(ctx, beach)
}

func (r *beachRepository) Count(ctx context.Context) (int64, error) {
	return r.Repository.Count(ctx)
}
