package models

import "time"

type SiteSetting struct {
	ID          int64     `gorm:"column:id;primaryKey" json:"id"`
	Key         string    `gorm:"column:setting_key;type:varchar(128);not null;uniqueIndex" json:"key"`
	Value       string    `gorm:"column:setting_value;type:text" json:"value"`
	Description string    `gorm:"column:description;type:varchar(512)" json:"description"`
	CreatedAt   time.Time `gorm:"column:created_at;not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;not null" json:"updated_at"`
}

func (SiteSetting) TableName() string {
	return "site_settings"
}
