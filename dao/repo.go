package dao

import (
	"context"

	"gorm.io/gorm"
)

// Repo is the generic base embedded by every DAO.
type Repo[T any] struct {
	Db *gorm.DB
}

func NewRepo[T any](db *gorm.DB) Repo[T] {
	return Repo[T]{Db: db}
}

func (r Repo[T]) FindByID(ctx context.Context, id int64) (*T, error) {
	var out T
	err := r.Db.WithContext(ctx).First(&out, id).Error
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r Repo[T]) Create(ctx context.Context, row *T) error {
	return r.Db.WithContext(ctx).Create(row).Error
}

func (r Repo[T]) DeleteByID(ctx context.Context, id int64) error {
	var zero T
	return r.Db.WithContext(ctx).Where("id = ?", id).Delete(&zero).Error
}
