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

var ErrPageNotFound = errors.New("page not found")

var _ IPageService = (*PageService)(nil)

type IPageService interface {
	GetBySlug(ctx context.Context, slug string) (*models.Page, error)
	ListBySection(ctx context.Context, section string) ([]*models.Page, error)
	Save(ctx context.Context, req *types.SavePageRequest) (*models.Page, error)
	Delete(ctx context.Context, id int64) error
}

type PageService struct {
	PageDAO *dao.PageDAO
}

func (s *PageService) GetBySlug(ctx context.Context, slug string) (*models.Page, error) {
	page, err := s.PageDAO.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPageNotFound
		}
		return nil, err
	}
	return page, nil
}

func (s *PageService) ListBySection(ctx context.Context, section string) ([]*models.Page, error) {
	return s.PageDAO.FindBySection(ctx, section)
}

func (s *PageService) Save(ctx context.Context, req *types.SavePageRequest) (*models.Page, error) {
	now := time.Now()

	page, err := s.PageDAO.FindBySlugAny(ctx, req.Slug)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		page = &models.Page{
			ID:        snowflake.GenID(),
			Slug:      req.Slug,
			IsActive:  true,
			CreatedAt: now,
		}
	}

	page.Title = req.Title
	page.Content = req.Content
	page.Section = req.Section
	page.ImageURL = req.ImageURL
	page.DisplayOrder = req.DisplayOrder
	if req.IsActive != nil {
		page.IsActive = *req.IsActive
	}
	page.UpdatedAt = now

	if err := s.PageDAO.Update(ctx, page); err != nil {
		return nil, err
	}
	return page, nil
}

func (s *PageService) Delete(ctx context.Context, id int64) error {
	return s.PageDAO.DeleteByID(ctx, id)
}
