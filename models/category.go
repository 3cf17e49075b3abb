package models

import "time"

type Category struct {
	ID           int64     `gorm:"column:id;primaryKey" json:"id"`
	Slug         string    `gorm:"column:slug;type:varchar(64);not null;uniqueIndex" json:"slug"`
	Name         string    `gorm:"column:name;type:varchar(128);not null" json:"name"`
	DisplayOrder int       `gorm:"column:display_order;not null;default:0" json:"display_order"`
	IsActive     bool      `gorm:"column:is_active;not null;default:true" json:"is_active"`
	CreatedAt    time.Time `gorm:"column:created_at;not null" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at;not null" json:"updated_at"`
}

func (Category) TableName() string {
	return "categories"
}
