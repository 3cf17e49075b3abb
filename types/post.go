package types

import (
	"time"

	"sideb/models"
)

type SavePostRequest struct {
	Slug            string `json:"slug"`
	Title           string `json:"title" binding:"required"`
	Subtitle        string `json:"subtitle"`
	Description     string `json:"description"`
	Category        string `json:"category" binding:"required"`
	Content         string `json:"content"`
	CoverImage      string `json:"cover_image"`
	BackgroundColor string `json:"background_color"`
	AuthorID        int64  `json:"author_id"`
}

type ListPostsRequest struct {
	Category string `form:"category"`
	Page     int    `form:"page,default=1"`
	PageSize int    `form:"page_size,default=10"`
}

type PostListItem struct {
	ID          int64          `json:"id"`
	Slug        string         `json:"slug"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Category    string         `json:"category"`
	CoverImage  string         `json:"cover_image"`
	Author      *models.Author `json:"author,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
}

type ListPostsResp struct {
	Posts []*PostListItem `json:"posts"`
	Total int64           `json:"total"`
	Page  int             `json:"page"`
}

type PostDetailResp struct {
	Post        *models.Post   `json:"post"`
	ContentHTML string         `json:"content_html"`
	Author      *models.Author `json:"author,omitempty"`
}
