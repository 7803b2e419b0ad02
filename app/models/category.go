package models

import "time"

type CategoryType string

const (
	CategoryTypeArticle CategoryType = "article"
	CategoryTypeProduct CategoryType = "product"
	CategoryTypeService CategoryType = "service"
)

type Category struct {
	ID          string       `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Name        string       `gorm:"size:100;not null" json:"name"`
	Slug        string       `gorm:"size:100;not null;uniqueIndex" json:"slug"`
	Description string       `gorm:"size:500" json:"description"`
	Type        CategoryType `gorm:"size:20;not null;index" json:"type"`
	CreatedAt   time.Time    `json:"created_at"`
}
