package models

import "time"

// Image is one row of the content-image ledger. Every image inserted into a
// post body gets a row here; cover images do not (their URL lives directly on
// the post row).
type Image struct {
	ID          int64     `gorm:"column:id;primaryKey" json:"id"`
	UserID      int64     `gorm:"column:user_id;not null;index:idx_user_status,priority:1" json:"user_id"`
	StoragePath string    `gorm:"column:storage_path;type:varchar(255);not null" json:"storage_path"`
	PublicURL   string    `gorm:"column:public_url;type:varchar(512);not null" json:"public_url"`
	Status      string    `gorm:"column:status;type:varchar(16);not null;index:idx_user_status,priority:2;index:idx_status_created,priority:1" json:"status"`
	CreatedAt   time.Time `gorm:"column:created_at;not null;index:idx_status_created,priority:2" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;not null" json:"updated_at"`
}

func (Image) TableName() string {
	return "images"
}
