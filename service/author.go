package service

import (
	"context"
	"errors"
	"time"

	"sideb/dao"
	"sideb/models"
	"sideb/pkg/snowflake"
	"sideb/pkg/strutil"
	"sideb/types"

	"gorm.io/gorm"
)

var ErrAuthorNotFound = errors.New("author not found")

var _ IAuthorService = (*AuthorService)(nil)

type IAuthorService interface {
	GetBySlug(ctx context.Context, slug string) (*models.Author, error)
	ListAll(ctx context.Context) ([]*models.Author, error)
	Create(ctx context.Context, userID int64, req *types.SaveAuthorRequest) (*models.Author, error)
	Update(ctx context.Context, id int64, req *types.SaveAuthorRequest) (*models.Author, error)
	Delete(ctx context.Context, id int64) error
}

type AuthorService struct {
	AuthorDAO *dao.AuthorDAO
}

func (s *AuthorService) GetBySlug(ctx context.Context, slug string) (*models.Author, error) {
	author, err := s.AuthorDAO.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAuthorNotFound
		}
		return nil, err
	}
	return author, nil
}

func (s *AuthorService) ListAll(ctx context.Context) ([]*models.Author, error) {
	return s.AuthorDAO.FindAll(ctx)
}

func (s *AuthorService) Create(ctx context.Context, userID int64, req *types.SaveAuthorRequest) (*models.Author, error) {
	now := time.Now()
	author := &models.Author{
		ID:              snowflake.GenID(),
		UserID:          userID,
		DisplayName:     req.DisplayName,
		Bio:             req.Bio,
		ProfileImageURL: req.ProfileImageURL,
		Slug:            strutil.AuthorSlug(req.DisplayName),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.AuthorDAO.Create(ctx, author); err != nil {
		return nil, err
	}
	return author, nil
}

func (s *AuthorService) Update(ctx context.Context, id int64, req *types.SaveAuthorRequest) (*models.Author, error) {
	author, err := s.AuthorDAO.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAuthorNotFound
		}
		return nil, err
	}

	author.DisplayName = req.DisplayName
	author.Bio = req.Bio
	author.ProfileImageURL = req.ProfileImageURL
	author.Slug = strutil.AuthorSlug(req.DisplayName)
	author.UpdatedAt = time.Now()

	if err := s.AuthorDAO.Update(ctx, author); err != nil {
		return nil, err
	}
	return author, nil
}

func (s *AuthorService) Delete(ctx context.Context, id int64) error {
	return s.AuthorDAO.DeleteByID(ctx, id)
}
