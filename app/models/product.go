package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID             string           `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Name           string           `gorm:"size:255;not null" json:"name"`
	Slug           string           `gorm:"size:255;not null;uniqueIndex" json:"slug"`
	Description    string           `gorm:"type:text" json:"description"`
	Price          *decimal.Decimal `gorm:"type:decimal(16,2)" json:"price"`
	PriceText      string           `gorm:"size:100" json:"price_text"`
	FeaturedImage  string           `gorm:"size:500" json:"featured_image"`
	Images         StringList       `gorm:"type:text" json:"images"`
	WhatsappNumber string           `gorm:"size:30" json:"whatsapp_number"`
	CategoryID     *string          `gorm:"size:36;index" json:"category_id"`
	Category       *Category        `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	IsAvailable    bool             `gorm:"default:true" json:"is_available"`
	IsFeatured     bool             `gorm:"default:false" json:"is_featured"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}
