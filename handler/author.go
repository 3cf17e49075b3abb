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

type Author struct {
	Config        *config.Config
	AuthorService service.IAuthorService
}

func (h *Author) RegisterRouter(r gin.IRouter) {
	g := r.Group("/v1/authors")
	g.GET("", context.Wrap(h.ListAll))
	g.GET("/:slug", context.Wrap(h.GetBySlug))

	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	admin := r.Group("/v1/admin/authors")
	admin.Use(authorize)
	admin.POST("", context.Wrap(h.Create))
	admin.PUT("/:id", context.Wrap(h.Update))
	admin.DELETE("/:id", context.Wrap(h.Delete))
}

func (h *Author) ListAll(c *gin.Context) error {
	authors, err := h.AuthorService.ListAll(c.Request.Context())
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}
	response.Success(c, authors)
	return nil
}

func (h *Author) GetBySlug(c *gin.Context) error {
	author, err := h.AuthorService.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, service.ErrAuthorNotFound) {
			return response.NewError(http.StatusNotFound, "author not found")
		}
		return response.NewError(http.StatusInternalServerError, err.Error())
	}
	response.Success(c, author)
	return nil
}

func (h *Author) Create(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "not signed in")
	}

	var req types.SaveAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "invalid request body")
	}

	author, err := h.AuthorService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}
	response.Success(c, author)
	return nil
}

func (h *Author) Update(c *gin.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "invalid author id")
	}

	var req types.SaveAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "invalid request body")
	}

	author, err := h.AuthorService.Update(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, service.ErrAuthorNotFound) {
			return response.NewError(http.StatusNotFound, err.Error())
		}
		return response.NewError(http.StatusInternalServerError, err.Error())
	}
	response.Success(c, author)
	return nil
}

func (h *Author) Delete(c *gin.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "invalid author id")
	}

	if err := h.AuthorService.Delete(c.Request.Context(), id); err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}
	response.Success(c, gin.H{"deleted": id})
	return nil
}
