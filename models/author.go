package models

import "time"

type Author struct {
	ID              int64     `gorm:"column:id;primaryKey" json:"id"`
	UserID          int64     `gorm:"column:user_id;not null;index" json:"user_id"`
	DisplayName     string    `gorm:"column:display_name;type:varchar(128);not null" json:"display_name"`
	Bio             string    `gorm:"column:bio;type:text" json:"bio"`
	ProfileImageURL string    `gorm:"column:profile_image_url;type:varchar(512)" json:"profile_image_url"`
	Slug            string    `gorm:"column:slug;type:varchar(255);not null;uniqueIndex" json:"slug"`
	CreatedAt       time.Time `gorm:"column:created_at;not null" json:"created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at;not null" json:"updated_at"`
}

func (Author) TableName() string {
	return "authors"
}
