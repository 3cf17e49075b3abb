package models

import "time"

type Post struct {
	ID              int64     `gorm:"column:id;primaryKey" json:"id"`
	Slug            string    `gorm:"column:slug;type:varchar(255);not null;uniqueIndex" json:"slug"`
	Title           string    `gorm:"column:title;type:varchar(255);not null" json:"title"`
	Subtitle        string    `gorm:"column:subtitle;type:varchar(255)" json:"subtitle"`
	Description     string    `gorm:"column:description;type:varchar(512)" json:"description"`
	Category        string    `gorm:"column:category;type:varchar(64);not null;index" json:"category"`
	Content         string    `gorm:"column:content;type:longtext" json:"content"`
	CoverImage      string    `gorm:"column:cover_image;type:varchar(512)" json:"cover_image"`
	BackgroundColor string    `gorm:"column:background_color;type:varchar(16)" json:"background_color"`
	AuthorID        int64     `gorm:"column:author_id;index" json:"author_id"`
	CreatedAt       time.Time `gorm:"column:created_at;not null;index" json:"created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at;not null" json:"updated_at"`
}

func (Post) TableName() string {
	return "posts"
}
