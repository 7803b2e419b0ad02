package models

import "time"

type ArticleStatus string

const (
	ArticleStatusDraft     ArticleStatus = "draft"
	ArticleStatusPublished ArticleStatus = "published"
)

type Article struct {
	ID            string        `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Title         string        `gorm:"size:255;not null" json:"title"`
	Slug          string        `gorm:"size:255;not null;uniqueIndex" json:"slug"`
	Excerpt       string        `gorm:"size:500" json:"excerpt"`
	Content       string        `gorm:"type:text" json:"content"`
	FeaturedImage string        `gorm:"size:500" json:"featured_image"`
	Status        ArticleStatus `gorm:"size:20;not null;default:draft" json:"status"`
	PublishedAt   *time.Time    `json:"published_at"`
	AuthorID      *string       `gorm:"size:36" json:"author_id"`
	CategoryID    *string       `gorm:"size:36;index" json:"category_id"`
	Category      *Category     `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}
