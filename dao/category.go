package dao

import (
	"context"

	"sideb/models"

	"gorm.io/gorm"
)

type CategoryDAO struct {
	Repo[models.Category]
}

func NewCategoryDAO(db *gorm.DB) *CategoryDAO {
	return &CategoryDAO{Repo: NewRepo[models.Category](db)}
}

func (d *CategoryDAO) FindActive(ctx context.Context) ([]*models.Category, error) {
	var categories []*models.Category
	err := d.Db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("display_order ASC").
		Find(&categories).Error
	return categories, err
}

func (d *CategoryDAO) FindBySlug(ctx context.Context, slug string) (*models.Category, error) {
	var category models.Category
	err := d.Db.WithContext(ctx).Where("slug = ?", slug).First(&category).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (d *CategoryDAO) Update(ctx context.Context, category *models.Category) error {
	return d.Db.WithContext(ctx).Save(category).Error
}
