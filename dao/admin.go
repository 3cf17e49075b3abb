package dao

import (
	"context"

	"sideb/models"

	"gorm.io/gorm"
)

type AdminDAO struct {
	Repo[models.Admin]
}

func NewAdminDAO(db *gorm.DB) *AdminDAO {
	return &AdminDAO{Repo: NewRepo[models.Admin](db)}
}

func (d *AdminDAO) FindByEmail(ctx context.Context, email string) (*models.Admin, error) {
	var admin models.Admin
	err := d.Db.WithContext(ctx).Where("email = ?", email).First(&admin).Error
	if err != nil {
		return nil, err
	}
	return &admin, nil
}
