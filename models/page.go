package models

import "time"

// Page is a static page (about, legal notice, editors and similar), grouped
// into sections and ordered within each section.
type Page struct {
	ID           int64     `gorm:"column:id;primaryKey" json:"id"`
	Slug         string    `gorm:"column:slug;type:varchar(255);not null;uniqueIndex" json:"slug"`
	Title        string    `gorm:"column:title;type:varchar(255);not null" json:"title"`
	Content      string    `gorm:"column:content;type:longtext" json:"content"`
	Section      string    `gorm:"column:section;type:varchar(64);not null;index" json:"section"`
	ImageURL     string    `gorm:"column:image_url;type:varchar(512)" json:"image_url"`
	DisplayOrder int       `gorm:"column:display_order;not null;default:0" json:"display_order"`
	IsActive     bool      `gorm:"column:is_active;not null;default:true" json:"is_active"`
	CreatedAt    time.Time `gorm:"column:created_at;not null" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at;not null" json:"updated_at"`
}

func (Page) TableName() string {
	return "pages"
}
