package handler

import (
	"net/http"

	"sideb/config"
	"sideb/middleware"
	"sideb/pkg/context"
	"sideb/pkg/response"
	"sideb/service"
	"sideb/types"

	"github.com/gin-gonic/gin"
)

type Setting struct {
	Config         *config.Config
	SettingService service.ISettingService
}

func (h *Setting) RegisterRouter(r gin.IRouter) {
	g := r.Group("/v1/settings")
	g.GET("", context.Wrap(h.GetAll))

	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	admin := r.Group("/v1/admin/settings")
	admin.Use(authorize)
	admin.PUT("", context.Wrap(h.Update))
}

func (h *Setting) GetAll(c *gin.Context) error {
	settings, err := h.SettingService.GetAll(c.Request.Context())
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}
	response.Success(c, settings)
	return nil
}

func (h *Setting) Update(c *gin.Context) error {
	var req types.UpdateSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "invalid request body")
	}

	if err := h.SettingService.Update(c.Request.Context(), &req); err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}
	response.Success(c, gin.H{"key": req.Key})
	return nil
}
