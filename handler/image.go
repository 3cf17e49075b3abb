package handler

import (
	"net/http"
	"strconv"

	"sideb/config"
	"sideb/middleware"
	"sideb/pkg/context"
	"sideb/pkg/response"
	"sideb/service"

	"github.com/gin-gonic/gin"
)

type Image struct {
	Config       *config.Config
	ImageService service.IImageService
}

func (h *Image) RegisterRouter(r gin.IRouter) {
	// Rotation keeps the editor signed in while a long draft is open.
	authorize := middleware.AuthWithRotation(h.Config.Jwt)
	g := r.Group("/v1/admin/images")
	g.Use(authorize)
	g.POST("/content", context.Wrap(h.UploadContent))
	g.POST("/cover", context.Wrap(h.UploadCover))
	g.GET("", context.Wrap(h.ListMine))
	g.POST("/cleanup", context.Wrap(h.Cleanup))
}

// UploadContent stores an image for use inside a post body. The entry comes
// back provisional; it is adopted once the post is saved with the URL in it.
func (h *Image) UploadContent(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "not signed in")
	}

	header, err := c.FormFile("image")
	if err != nil {
		return response.NewError(http.StatusBadRequest, "image file required")
	}

	resp, err := h.ImageService.UploadContentImage(c.Request.Context(), userID, header)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}
	response.Success(c, resp)
	return nil
}

// UploadCover is the one-shot path for a post's representative image.
func (h *Image) UploadCover(c *gin.Context) error {
	header, err := c.FormFile("image")
	if err != nil {
		return response.NewError(http.StatusBadRequest, "image file required")
	}

	resp, err := h.ImageService.UploadCoverImage(c.Request.Context(), header)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}
	response.Success(c, resp)
	return nil
}

func (h *Image) ListMine(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "not signed in")
	}

	resp, err := h.ImageService.ListOwnerImages(c.Request.Context(), userID)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}
	response.Success(c, resp)
	return nil
}

// Cleanup triggers an ad-hoc sweep. ?hours=0 sweeps every provisional image
// regardless of age; omitted it falls back to the configured threshold.
func (h *Image) Cleanup(c *gin.Context) error {
	hours := h.Config.Cleanup.ThresholdOrDefault()
	if raw, ok := c.GetQuery("hours"); ok {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return response.NewError(http.StatusBadRequest, "hours must be a non-negative integer")
		}
		hours = parsed
	}

	report, err := h.ImageService.Sweep(c.Request.Context(), hours)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return nil
	}
	response.Success(c, report)
	return nil
}
