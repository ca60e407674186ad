package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ccbc-ox/boathouse-api/internal/middleware"
	"github.com/ccbc-ox/boathouse-api/internal/service"
	"github.com/ccbc-ox/boathouse-api/pkg/response"
)

// FlagHandler exposes the river flag status endpoint.
type FlagHandler struct {
	flags *service.FlagService
}

// NewFlagHandler constructs FlagHandler.
func NewFlagHandler(flags *service.FlagService) *FlagHandler {
	return &FlagHandler{flags: flags}
}

// Current godoc
// @Summary Current river flag status
// @Tags Flag
// @Produce json
// @Param force query bool false "Bypass the cache"
// @Success 200 {object} response.Envelope
// @Router /flag-status [get]
func (h *FlagHandler) Current(c *gin.Context) {
	force := c.Query("force") == "true"
	hit := !force && h.flags.Cached()

	flag, err := h.flags.Current(c.Request.Context(), force)
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetCacheHit(c, hit)
	response.JSON(c, http.StatusOK, flag, middleware.ExtractMeta(c))
}
