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

type Page struct {
	Config      *config.Config
	PageService service.IPageService
}

func (h *Page) RegisterRouter(r gin.IRouter) {
	g := r.Group("/v1/pages")
	g.GET("", context.Wrap(h.ListBySection))
	g.GET("/:slug", context.Wrap(h.GetBySlug))

	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	admin := r.Group("/v1/admin/pages")
	admin.Use(authorize)
	admin.POST("", context.Wrap(h.Save))
	admin.DELETE("/:id", context.Wrap(h.Delete))
}

func (h *Page) ListBySection(c *gin.Context) error {
	section := c.Query("section")
	if section == "" {
		return response.NewError(http.StatusBadRequest, "section is required")
	}

	pages, err := h.PageService.ListBySection(c.Request.Context(), section)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}
	response.Success(c, pages)
	return nil
}

func (h *Page) GetBySlug(c *gin.Context) error {
	page, err := h.PageService.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, service.ErrPageNotFound) {
			return response.NewError(http.StatusNotFound, "page not found")
		}
		return response.NewError(http.StatusInternalServerError, err.Error())
	}
	response.Success(c, page)
	return nil
}

func (h *Page) Save(c *gin.Context) error {
	var req types.SavePageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "invalid request body")
	}

	page, err := h.PageService.Save(c.Request.Context(), &req)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}
	response.Success(c, page)
	return nil
}

func (h *Page) Delete(c *gin.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "invalid page id")
	}

	if err := h.PageService.Delete(c.Request.Context(), id); err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}
	response.Success(c, gin.H{"deleted": id})
	return nil
}
