package migrations

import (
	"github.com/pesonapantai/go-wisata/app/models"
	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{}, &models.Category{}, &models.Beach{}, &models.Article{}, &models.Product{}, &models.Service{}, &models.Contact{}, &models.SiteSetting{})
}
