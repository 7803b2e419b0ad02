package models

import "time"

type ServiceType string

const (
	ServiceTypeBrilink ServiceType = "brilink"
	ServiceTypeRental  ServiceType = "rental"
)

type Service struct {
	ID              string      `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Name            string      `gorm:"size:255;not null" json:"name"`
	Slug            string      `gorm:"size:255;not null;uniqueIndex" json:"slug"`
	ServiceType     ServiceType `gorm:"size:20;not null;index" json:"service_type"`
	Description     string      `gorm:"type:text" json:"description"`
	Location        string      `gorm:"size:255" json:"location"`
	Address         string      `gorm:"size:500" json:"address"`
	OpeningHours    string      `gorm:"size:100" json:"opening_hours"`
	WhatsappNumber  string      `gorm:"size:30" json:"whatsapp_number"`
	ServicesOffered StringList  `gorm:"type:text" json:"services_offered"`
	FeaturedImage   string      `gorm:"size:500" json:"featured_image"`
	Images          StringList  `gorm:"type:text" json:"images"`
	IsAvailable     bool        `gorm:"default:true" json:"is_available"`
	IsFeatured      bool        `gorm:"default:false" json:"is_featured"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}
