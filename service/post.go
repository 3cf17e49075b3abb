package service

import (
	"context"
	"errors"
	"time"

	"sideb/dao"
	"sideb/models"
	"sideb/pkg/log"
	"sideb/pkg/markdown"
	"sideb/pkg/snowflake"
	"sideb/pkg/strutil"
	"sideb/types"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrSlugTaken    = errors.New("slug already in use")
	ErrPostNotFound = errors.New("post not found")
)

var _ IPostService = (*PostService)(nil)

type IPostService interface {
	CreatePost(ctx context.Context, userID int64, req *types.SavePostRequest) (int64, error)
	UpdatePost(ctx context.Context, userID int64, postID int64, req *types.SavePostRequest) error
	DeletePost(ctx context.Context, postID int64) error
	ListPosts(ctx context.Context, req *types.ListPostsRequest) (*types.ListPostsResp, error)
	GetPostBySlug(ctx context.Context, slug string) (*types.PostDetailResp, error)
}

type PostService struct {
	PostDAO   *dao.PostDAO
	AuthorDAO *dao.AuthorDAO
	Images    IImageService
}

func (s *PostService) CreatePost(ctx context.Context, userID int64, req *types.SavePostRequest) (int64, error) {
	slug := req.Slug
	if slug == "" {
		slug = strutil.Slugify(req.Title)
	}

	taken, err := s.PostDAO.SlugExists(ctx, slug, 0)
	if err != nil {
		return 0, err
	}
	if taken {
		return 0, ErrSlugTaken
	}

	now := time.Now()
	post := &models.Post{
		ID:              snowflake.GenID(),
		Slug:            slug,
		Title:           req.Title,
		Subtitle:        req.Subtitle,
		Description:     req.Description,
		Category:        req.Category,
		Content:         req.Content,
		CoverImage:      req.CoverImage,
		BackgroundColor: req.BackgroundColor,
		AuthorID:        req.AuthorID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.PostDAO.Create(ctx, post); err != nil {
		return 0, err
	}

	s.reconcileAfterSave(ctx, userID, post)
	return post.ID, nil
}

func (s *PostService) UpdatePost(ctx context.Context, userID int64, postID int64, req *types.SavePostRequest) error {
	post, err := s.PostDAO.FindByID(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPostNotFound
		}
		return err
	}

	if req.Slug != "" && req.Slug != post.Slug {
		taken, err := s.PostDAO.SlugExists(ctx, req.Slug, postID)
		if err != nil {
			return err
		}
		if taken {
			return ErrSlugTaken
		}
		post.Slug = req.Slug
	}

	post.Title = req.Title
	post.Subtitle = req.Subtitle
	post.Description = req.Description
	post.Category = req.Category
	post.Content = req.Content
	post.CoverImage = req.CoverImage
	post.BackgroundColor = req.BackgroundColor
	post.AuthorID = req.AuthorID
	post.UpdatedAt = time.Now()

	if err := s.PostDAO.Update(ctx, post); err != nil {
		return err
	}

	s.reconcileAfterSave(ctx, userID, post)
	return nil
}

// reconcileAfterSave runs once the post row is durably saved. A failure here
// never surfaces to the admin: the image states self-correct on the next save
// and aged-out leftovers are picked up by the sweep.
func (s *PostService) reconcileAfterSave(ctx context.Context, userID int64, post *models.Post) {
	if err := s.Images.Reconcile(ctx, userID, post.Content); err != nil {
		log.L.Error("reconcile content images",
			zap.Int64("post_id", post.ID),
			zap.Int64("user_id", userID),
			zap.Error(err))
	}
}

func (s *PostService) DeletePost(ctx context.Context, postID int64) error {
	return s.PostDAO.DeleteByID(ctx, postID)
}

func (s *PostService) ListPosts(ctx context.Context, req *types.ListPostsRequest) (*types.ListPostsResp, error) {
	page := req.Page
	if page < 1 {
		page = 1
	}
	pageSize := req.PageSize
	if pageSize < 1 || pageSize > 50 {
		pageSize = 10
	}

	posts, total, err := s.PostDAO.List(ctx, req.Category, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, err
	}

	resp := &types.ListPostsResp{
		Posts: make([]*types.PostListItem, 0, len(posts)),
		Total: total,
		Page:  page,
	}
	for _, p := range posts {
		item := &types.PostListItem{
			ID:          p.ID,
			Slug:        p.Slug,
			Title:       p.Title,
			Description: p.Description,
			Category:    p.Category,
			CoverImage:  p.CoverImage,
			CreatedAt:   p.CreatedAt,
		}
		if p.AuthorID != 0 {
			if author, err := s.AuthorDAO.FindByID(ctx, p.AuthorID); err == nil {
				item.Author = author
			}
		}
		resp.Posts = append(resp.Posts, item)
	}
	return resp, nil
}

func (s *PostService) GetPostBySlug(ctx context.Context, slug string) (*types.PostDetailResp, error) {
	post, err := s.PostDAO.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	html, err := markdown.Render(post.Content)
	if err != nil {
		return nil, err
	}

	resp := &types.PostDetailResp{
		Post:        post,
		ContentHTML: html,
	}
	if post.AuthorID != 0 {
		if author, err := s.AuthorDAO.FindByID(ctx, post.AuthorID); err == nil {
			resp.Author = author
		}
	}
	return resp, nil
}
