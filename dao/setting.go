package dao

import (
	"context"
	"time"

	"sideb/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingDAO struct {
	Repo[models.SiteSetting]
}

func NewSettingDAO(db *gorm.DB) *SettingDAO {
	return &SettingDAO{Repo: NewRepo[models.SiteSetting](db)}
}

func (d *SettingDAO) FindAll(ctx context.Context) ([]*models.SiteSetting, error) {
	var settings []*models.SiteSetting
	err := d.Db.WithContext(ctx).Order("setting_key ASC").Find(&settings).Error
	return settings, err
}

func (d *SettingDAO) FindByKey(ctx context.Context, key string) (*models.SiteSetting, error) {
	var setting models.SiteSetting
	err := d.Db.WithContext(ctx).Where("setting_key = ?", key).First(&setting).Error
	if err != nil {
		return nil, err
	}
	return &setting, nil
}

// Upsert inserts the key or updates its value in place.
func (d *SettingDAO) Upsert(ctx context.Context, setting *models.SiteSetting) error {
	setting.UpdatedAt = time.Now()
	return d.Db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "setting_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"setting_value", "updated_at"}),
		}).
		Create(setting).Error
}
