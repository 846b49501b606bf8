package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pgaray/landing-api/internal/common"
	"github.com/pgaray/landing-api/internal/service"
)

// AppHandler handles HTTP requests for the portfolio apps catalog
type AppHandler struct {
	service service.AppService
}

// NewAppHandler creates a new AppHandler
func NewAppHandler(service service.AppService) *AppHandler {
	return &AppHandler{service: service}
}

// ListApps godoc
// @Summary      List portfolio apps
// @Tags         apps
// @Produce      json
// @Success      200  {array}   domain.App
// @Failure      404  {object}  common.ErrorBody
// @Failure      500  {object}  common.ErrorBody
// @Router       /api/apps [get]
func (h *AppHandler) ListApps(c *gin.Context) {
	apps, err := h.service.ListApps()
	if errors.Is(err, common.ErrAppsNotFound) {
		common.ErrorResponse(c, http.StatusNotFound, "Apps data not found", nil)
		return
	}
	var formatErr *common.DataFormatError
	if errors.As(err, &formatErr) {
		logFailure(c, err, "decode apps data")
		common.ErrorResponse(c, http.StatusInternalServerError, "Invalid apps data format", err)
		return
	}
	if err != nil {
		logFailure(c, err, "list apps")
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch apps", err)
		return
	}

	common.SuccessResponse(c, http.StatusOK, apps)
}
