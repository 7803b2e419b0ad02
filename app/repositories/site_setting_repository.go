package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pesonapantai/go-wisata/app/catalog"
	"github.com/pesonapantai/go-wisata/app/models"
	"gorm.io/gorm"
)

type SiteSettingRepositoryImpl interface {
	Get(ctx context.Context, key string) (string, error)
	GetAll(ctx context.Context) (map[string]string, error)
	Set(ctx context.Context, key, value string) error
}

type siteSettingRepository struct {
	*catalog.Repository[models.SiteSetting]
}

func NewSiteSettingRepository(db *gorm.DB) SiteSettingRepositoryImpl {
	return &siteSettingRepository{catalog.NewRepository[models.SiteSetting](db)}
}

// Get mengembalikan string kosong untuk kunci yang belum pernah diset.
func (r *siteSettingRepository) Get(ctx context.Context, key string) (string, error) {
	var setting models.SiteSetting
	err := r.DB().WithContext(ctx).First(&setting, "`key` = ?", key).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return "", nil
		}
		return "", catalog.Translate(err)
	}
	return setting.Value, nil
}

func (r *siteSettingRepository) GetAll(ctx context.Context) (map[string]string, error) {
	rows, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	settings := make(map[string]string, len(rows))
	for _, row := range rows {
		settings[row.Key] = row.Value
	}
	return settings, nil
}

func (r *siteSettingRepository) Set(ctx context.Context, key, value string) error {
	var setting models.SiteSetting
	err := r.DB().WithContext(ctx).First(&setting, "`key` = ?", key).Error
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			return catalog.Translate(err)
		}
		setting = models.SiteSetting{ID: uuid.New().String(), Key: key}
	}
	setting.Value = value
	setting.UpdatedAt = time.Now()
	return r.Save(ctx, &setting)
}
