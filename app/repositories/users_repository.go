package repositories

import (
	"context"

	"github.com/pesonapantai/go-wisata/app/catalog"
	"github.com/pesonapantai/go-wisata/app/models"
	"gorm.io/gorm"
)

// UserRepositoryImpl adalah interface untuk operasi user repository.
type UserRepositoryImpl interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

type userRepository struct {
	*catalog.Repository[models.User]
}

func NewUserRepository(db *gorm.DB) UserRepositoryImpl {
	return &userRepository{catalog.NewRepository[models.User](db)}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	return r.Repository.Create(ctx, user)
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	return r.GetByID(ctx, id)
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.DB().WithContext(ctx).First(&user, "email = ?", email).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, catalog.Translate(err)
	}
	return &user, nil
}
