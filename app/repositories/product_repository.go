package repositories

import (
	"context"

	"github.com/pesonapantai/go-wisata/app/catalog"
	"github.com/pesonapantai/go-wisata/app/models"
	"gorm.io/gorm"
)

type ProductRepositoryImpl interface {
	GetAll(ctx context.Context) ([]models.Product, error)
	GetAvailable(ctx context.Context) ([]models.Product, error)
	GetBySlug(ctx context.Context, slug string) (*models.Product, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type productRepository struct {
	*catalog.Repository[models.Product]
}

func NewProductRepository(db *gorm.DB) ProductRepositoryImpl {
	return &productRepository{catalog.NewRepository[models.Product](db)}
}

func (r *productRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	return r.List(ctx, withCategory, func(q *gorm.DB) *gorm.DB {
		return q.Order("created_at DESC")
	})
}

// GetAvailable meniru listing publik: hanya yang tersedia, unggulan dulu.
func (r *productRepository) GetAvailable(ctx context.Context) ([]models.Product, error) {
	return r.List(ctx, withCategory, func(q *gorm.DB) *gorm.DB {
		return q.Where("is_available = ?", true).Order("is_featured DESC, created_at DESC")
	})
}

func (r *productRepository) GetBySlug(ctx context.Context, slug string) (*models.Product, error) {
	return r.Repository.GetBySlug(ctx, slug, withCategory)
}

func (r *productRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	return r.Repository.GetByID(ctx, id, withCategory)
}

func (r *productRepository) Create(ctx context.Context, product *models.Product) error {
	return r.Repository.Create(ctx, product)
}

func (r *productRepository) Update(ctx context.Context, product *models.Product) error {
	return r.Save(ctx, product)
}

func (r *productRepository) Count(ctx context.Context) (int64, error) {
	return r.Repository.Count(ctx)
}
