package dao

import (
	"context"

	"sideb/models"

	"gorm.io/gorm"
)

type PostDAO struct {
	Repo[models.Post]
}

func NewPostDAO(db *gorm.DB) *PostDAO {
	return &PostDAO{Repo: NewRepo[models.Post](db)}
}

func (d *PostDAO) FindBySlug(ctx context.Context, slug string) (*models.Post, error) {
	var post models.Post
	err := d.Db.WithContext(ctx).Where("slug = ?", slug).First(&post).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// List returns one page of posts, newest first, optionally filtered by
// category slug.
func (d *PostDAO) List(ctx context.Context, category string, limit, offset int) ([]*models.Post, int64, error) {
	q := d.Db.WithContext(ctx).Model(&models.Post{})
	if category != "" {
		q = q.Where("category = ?", category)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []*models.Post
	err := q.Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	return posts, total, err
}

func (d *PostDAO) Update(ctx context.Context, post *models.Post) error {
	return d.Db.WithContext(ctx).Save(post).Error
}

func (d *PostDAO) SlugExists(ctx context.Context, slug string, excludeID int64) (bool, error) {
	var count int64
	err := d.Db.WithContext(ctx).
		Model(&models.Post{}).
		Where("slug = ? AND id <> ?", slug, excludeID).
		Count(&count).Error
	return count > 0, err
}
