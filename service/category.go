package service

import (
	"context"
	"errors"
	"time"

	"sideb/dao"
	"sideb/models"
	"sideb/pkg/snowflake"
	"sideb/types"

	"gorm.io/gorm"
)

var _ ICategoryService = (*CategoryService)(nil)

type ICategoryService interface {
	ListActive(ctx context.Context) ([]*models.Category, error)
	Save(ctx context.Context, req *types.SaveCategoryRequest) (*models.Category, error)
	Delete(ctx context.Context, id int64) error
}

type CategoryService struct {
	CategoryDAO *dao.CategoryDAO
}

func (s *CategoryService) ListActive(ctx context.Context) ([]*models.Category, error) {
	return s.CategoryDAO.FindActive(ctx)
}

// Save upserts by slug: an existing category is updated in place, otherwise a
// new one is created.
func (s *CategoryService) Save(ctx context.Context, req *types.SaveCategoryRequest) (*models.Category, error) {
	now := time.Now()

	category, err := s.CategoryDAO.FindBySlug(ctx, req.Slug)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		category = &models.Category{
			ID:        snowflake.GenID(),
			Slug:      req.Slug,
			IsActive:  true,
			CreatedAt: now,
		}
	}

	category.Name = req.Name
	category.DisplayOrder = req.DisplayOrder
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}
	category.UpdatedAt = now

	if err := s.CategoryDAO.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) Delete(ctx context.Context, id int64) error {
	return s.CategoryDAO.DeleteByID(ctx, id)
}
