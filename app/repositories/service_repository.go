package repositories

import (
	"context"

	"github.com/pesonapantai/go-wisata/app/catalog"
	"github.com/pesonapantai/go-wisata/app/models"
	"gorm.io/gorm"
)

type ServiceRepositoryImpl interface {
	GetAll(ctx context.Context) ([]models.Service, error)
	GetAvailable(ctx context.Context) ([]models.Service, error)
	GetFeatured(ctx context.Context, limit int) ([]models.Service, error)
	GetBySlug(ctx context.Context, slug string) (*models.Service, error)
	GetByID(ctx context.Context, id string) (*models.Service, error)
	Create(ctx context.Context, service *models.Service) error
	Update(ctx context.Context, service *models.Service) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type serviceRepository struct {
	*catalog.Repository[models.Service]
}

func NewServiceRepository(db *gorm.DB) ServiceRepositoryImpl {
	return &serviceRepository{catalog.NewRepository[models.Service](db)}
}

func (r *serviceRepository) GetAll(ctx context.Context) ([]models.Service, error) {
	return r.List(ctx, func(q *gorm.DB) *gorm.DB {
		return q.Order("created_at DESC")
	})
}

func (r *serviceRepository) GetAvailable(ctx context.Context) ([]models.Service, error) {
	return r.List(ctx, func(q *gorm.DB) *gorm.DB {
		return q.Where("is_available = ?", true).Order("is_featured DESC, created_at DESC")
	})
}

func (r *serviceRepository) GetFeatured(ctx context.Context, limit int) ([]models.Service, error) {
	return r.List(ctx, func(q *gorm.DB) *gorm.DB {
		return q.Where("is_available = ? AND is_featured = ?", true, true).
			Order("created_at DESC").Limit(limit)
	})
}

func (r *serviceRepository) GetBySlug(ctx context.Context, slug string) (*models.Service, error) {
	return r.Repository.GetBySlug(ctx, slug)
}

func (r *serviceRepository) GetByID(ctx context.Context, id string) (*models.Service, error) {
	return r.Repository.GetByID(ctx, id)
}

func (r *serviceRepository) Create(ctx context.Context, service *models.Service) error {
	return r.Repository.Create(ctx, service)
}

func (r *serviceRepository) Update(ctx context.Context, service *models.Service) error {
	return r.Save(ctx, service)
}

func (r *serviceRepository) Count(ctx context.Context) (int64, error) {
	return r.Repository.Count(ctx)
}
