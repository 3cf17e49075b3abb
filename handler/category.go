package handler

import (
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

type Category struct {
	Config          *config.Config
	CategoryService service.ICategoryService
}

func (h *Category) RegisterRouter(r gin.IRouter) {
	g := r.Group("/v1/categories")
	g.GET("", context.Wrap(h.ListActive))

	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	admin := r.Group("/v1/admin/categories")
	admin.Use(authorize)
	admin.POST("", context.Wrap(h.Save))
	admin.DELETE("/:id", context.Wrap(h.Delete))
}

func (h *Category) ListActive(c *gin.Context) error {
	categories, err := h.CategoryService.ListActive(c.Request.Context())
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}
	response.Success(c, categories)
	return nil
}

func (h *Category) Save(c *gin.Context) error {
	var req types.SaveCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "invalid request body")
	}

	category, err := h.CategoryService.Save(c.Request.Context(), &req)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}
	response.Success(c, category)
	return nil
}

func (h *Category) Delete(c *gin.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "invalid category id")
	}

	if err := h.CategoryService.Delete(c.Request.Context(), id); err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}
	response.Success(c, gin.H{"deleted": id})
	return nil
}
