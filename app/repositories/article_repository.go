package repositories

import (
	"context"

	"github.com/pesonapantai/go-wisata/app/catalog"
	"github.com/pesonapantai/go-wisata/app/models"
	"gorm.io/gorm"
)

type ArticleRepositoryImpl interface {
	GetAll(ctx context.Context) ([]models.Article, error)
	GetPublished(ctx context.Context) ([]models.Article, error)
	GetLatestPublished(ctx context.Context, limit int) ([]models.Article, error)
	GetPublishedBySlug(ctx context.Context, slug string) (*models.Article, error)
	GetRelated(ctx context.Context, categoryID, excludeID string, limit int) ([]models.Article, error)
	GetByID(ctx context.Context, id string) (*models.Article, error)
	Create(ctx context.Context, article *models.Article) error
	Update(ctx context.Context, article *models.Article) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type articleRepository struct {
	*catalog.Repository[models.Article]
}

func NewArticleRepository(db *gorm.DB) ArticleRepositoryImpl {
	return &articleRepository{catalog.NewRepository[models.Article](db)}
}

func withCategory(q *gorm.DB) *gorm.DB {
	return q.Preload("Category")
}

func publishedOnly(q *gorm.DB) *gorm.DB {
	return q.Where("status = ?", models.ArticleStatusPublished)
}

// GetAll dipakai panel admin: semua status, terbaru dulu.
func (r *articleRepository) GetAll(ctx context.Context) ([]models.Article, error) {
	return r.List(ctx, withCategory, func(q *gorm.DB) *gorm.DB {
		return q.Order("created_at DESC")
	})
}

func (r *articleRepository) GetPublished(ctx context.Context) ([]models.Article, error) {
	return r.List(ctx, withCategory, publishedOnly, func(q *gorm.DB) *gorm.DB {
		return q.Order("published_at DESC")
	})
}

func (r *articleRepository) GetLatestPublished(ctx context.Context, limit int) ([]models.Article, error) {
	return r.List(ctx, withCategory, publishedOnly, func(q *gorm.DB) *gorm.DB {
		return q.Order("published_at DESC").Limit(limit)
	})
}

// GetPublishedBySlug tetap menyaring status supaya draft tidak bisa
// diintip lewat slug persisnya.
func (r *articleRepository) GetPublishedBySlug(ctx context.Context, slug string) (*models.Article, error) {
	return r.Repository.GetBySlug(ctx, slug, withCategory, publishedOnly)
}

func (r *articleRepository) GetRelated(ctx context.Context, categoryID, excludeID string, limit int) ([]models.Article, error) {
	return r.List(ctx, publishedOnly, func(q *gorm.DB) *gorm.DB {
		return q.Where("category_id = ?", categoryID).
			Where("id <> ?", excludeID).
			Order("published_at DESC").
			Limit(limit)
	})
}

func (r *articleRepository) GetByID(ctx context.Context, id string) (*models.Article, error) {
	return r.Repository.GetByID(ctx, id, withCategory)
}

func (r *articleRepository) Create(ctx context.Context, article *models.Article) error {
	return r.Repository.Create(ctx, article)
}

func (r *articleRepository) Update(ctx context.Context, article *models.Article) error {
	return r.Save(ctx, article)
}

func (r *articleRepository) Count(ctx context.Context) (int64, error) {
	return r.Repository.Count(ctx)
}
