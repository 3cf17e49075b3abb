package handler

import (
	"errors"
	"net/http"
	"strconv"

	"sideb/config"
	"sideb/middleware"
	"sideb/pkg/context"
	"sideb/pkg/response"
	"sideb/service"
	"sideb/types"

	"github.com/gin-gonic/gin"
)

type Post struct {
	Config      *config.Config
	PostService service.IPostService
}

func (h *Post) RegisterRouter(r gin.IRouter) {
	g := r.Group("/v1/posts")
	g.GET("", context.Wrap(h.List))
	g.GET("/:slug", context.Wrap(h.GetBySlug))

	authorize := middleware.AuthWithRotation(h.Config.Jwt)
	admin := r.Group("/v1/admin/posts")
	admin.Use(authorize)
	admin.POST("", context.Wrap(h.Create))
	admin.PUT("/:id", context.Wrap(h.Update))
	admin.DELETE("/:id", context.Wrap(h.Delete))
}

func (h *Post) List(c *gin.Context) error {
	var req types.ListPostsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "invalid query parameters")
	}

	resp, err := h.PostService.ListPosts(c.Request.Context(), &req)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}
	response.Success(c, resp)
	return nil
}

func (h *Post) GetBySlug(c *gin.Context) error {
	resp, err := h.PostService.GetPostBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			return response.NewError(http.StatusNotFound, "post not found")
		}
		return response.NewError(http.StatusInternalServerError, err.Error())
	}
	response.Success(c, resp)
	return nil
}

func (h *Post) Create(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "not signed in")
	}

	var req types.SavePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "invalid request body")
	}

	postID, err := h.PostService.CreatePost(c.Request.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, service.ErrSlugTaken) {
			return response.NewError(http.StatusConflict, err.Error())
		}
		return response.NewError(http.StatusInternalServerError, err.Error())
	}
	response.Success(c, gin.H{"post_id": postID})
	return nil
}

func (h *Post) Update(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "not signed in")
	}

	postID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "invalid post id")
	}

	var req types.SavePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "invalid request body")
	}

	if err := h.PostService.UpdatePost(c.Request.Context(), userID, postID, &req); err != nil {
		switch {
		case errors.Is(err, service.ErrPostNotFound):
			return response.NewError(http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrSlugTaken):
			return response.NewError(http.StatusConflict, err.Error())
		}
		return response.NewError(http.StatusInternalServerError, err.Error())
	}
	response.Success(c, gin.H{"post_id": postID})
	return nil
}

func (h *Post) Delete(c *gin.Context) error {
	postID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "invalid post id")
	}

	if err := h.PostService.DeletePost(c.Request.Context(), postID); err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}
	response.Success(c, gin.H{"deleted": postID})
	return nil
}
