package models

import "time"

type Beach struct {
	ID               string     `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Name             string     `gorm:"size:255;not null" json:"name"`
	Slug             string     `gorm:"size:255;not null;uniqueIndex" json:"slug"`
	ShortDescription string     `gorm:"size:500" json:"short_description"`
	Description      string     `gorm:"type:text" json:"description"`
	Location         string     `gorm:"size:255" json:"location"`
	Facilities       StringList `gorm:"type:text" json:"facilities"`
	FeaturedImage    string     `gorm:"size:500" json:"featured_image"`
	Images           StringList `gorm:"type:text" json:"images"`
	TicketPrice      string     `gorm:"size:100" json:"ticket_price"`
	OpeningHours     string     `gorm:"size:100" json:"opening_hours"`
	AccessInfo       string     `gorm:"type:text" json:"access_info"`
	Tips             string     `gorm:"type:text" json:"tips"`
	MapEmbed         string     `gorm:"type:text" json:"map_embed"`
	IsFeatured       bool       `gorm:"default:false" json:"is_featured"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}
