package dao

import (
	"context"

	"sideb/models"

	"gorm.io/gorm"
)

type PageDAO struct {
	Repo[models.Page]
}

func NewPageDAO(db *gorm.DB) *PageDAO {
	return &PageDAO{Repo: NewRepo[models.Page](db)}
}

func (d *PageDAO) FindBySlug(ctx context.Context, slug string) (*models.Page, error) {
	var page models.Page
	err := d.Db.WithContext(ctx).
		Where("slug = ? AND is_active = ?", slug, true).
		First(&page).Error
	if err != nil {
		return nil, err
	}
	return &page, nil
}

// FindBySlugAny ignores the is_active flag; the admin editor needs to reach
// deactivated pages too.
func (d *PageDAO) FindBySlugAny(ctx context.Context, slug string) (*models.Page, error) {
	var page models.Page
	err := d.Db.WithContext(ctx).Where("slug = ?", slug).First(&page).Error
	if err != nil {
		return nil, err
	}
	return &page, nil
}

func (d *PageDAO) FindBySection(ctx context.Context, section string) ([]*models.Page, error) {
	var pages []*models.Page
	err := d.Db.WithContext(ctx).
		Where("section = ? AND is_active = ?", section, true).
		Order("display_order ASC").
		Find(&pages).Error
	return pages, err
}

func (d *PageDAO) Update(ctx context.Context, page *models.Page) error {
	return d.Db.WithContext(ctx).Save(page).Error
}
