package dao

import (
	"context"

	"sideb/models"

	"gorm.io/gorm"
)

type AuthorDAO struct {
	Repo[models.Author]
}

func NewAuthorDAO(db *gorm.DB) *AuthorDAO {
	return &AuthorDAO{Repo: NewRepo[models.Author](db)}
}

func (d *AuthorDAO) FindBySlug(ctx context.Context, slug string) (*models.Author, error) {
	var author models.Author
	err := d.Db.WithContext(ctx).Where("slug = ?", slug).First(&author).Error
	if err != nil {
		return nil, err
	}
	return &author, nil
}

func (d *AuthorDAO) FindAll(ctx context.Context) ([]*models.Author, error) {
	var authors []*models.Author
	err := d.Db.WithContext(ctx).Order("display_name ASC").Find(&authors).Error
	return authors, err
}

func (d *AuthorDAO) Update(ctx context.Context, author *models.Author) error {
	return d.Db.WithContext(ctx).Save(author).Error
}
