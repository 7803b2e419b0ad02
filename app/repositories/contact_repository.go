package repositories

import (
	"context"

	"github.com/pesonapantai/go-wisata/app/catalog"
	"github.com/pesonapantai/go-wisata/app/models"
	"gorm.io/gorm"
)

type ContactRepositoryImpl interface {
	Create(ctx context.Context, contact *models.Contact) error
	GetAll(ctx context.Context) ([]models.Contact, error)
	GetByID(ctx context.Context, id string) (*models.Contact, error)
	MarkRead(ctx context.Context, id string) error
	CountUnread(ctx context.Context) (int64, error)
}

type contactRepository struct {
	*catalog.Repository[models.Contact]
}

func NewContactRepository(db *gorm.DB) ContactRepositoryImpl {
	return &contactRepository{catalog.NewRepository[models.Contact](db)}
}

func (r *contactRepository) Create(ctx context.Context, contact *models.Contact) error {
	return r.Repository.Create(ctx, contact)
}

func (r *contactRepository) GetAll(ctx context.Context) ([]models.Contact, error) {
	return r.List(ctx, func(q *gorm.DB) *gorm.DB {
		return q.Order("created_at DESC")
	})
}

func (r *contactRepository) GetByID(ctx context.Context, id string) (*models.Contact, error) {
	return r.Repository.GetByID(ctx, id)
}

func (r *contactRepository) MarkRead(ctx context.Context, id string) error {
	err := r.DB().WithContext(ctx).
		Model(&models.Contact{}).
		Where("id = ?", id).
		Update("is_read", true).Error
	if err != nil {
		return catalog.Translate(err)
	}
	return nil
}

func (r *contactRepository) CountUnread(ctx context.Context) (int64, error) {
	return r.Count(ctx, func(q *gorm.DB) *gorm.DB {
		return q.Where("is_read = ?", false)
	})
}
