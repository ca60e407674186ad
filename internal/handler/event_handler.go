package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ccbc-ox/boathouse-api/internal/middleware"
	"github.com/ccbc-ox/boathouse-api/internal/service"
	"github.com/ccbc-ox/boathouse-api/pkg/response"
)

// EventHandler exposes the club calendar endpoint.
type EventHandler struct {
	events *service.EventService
}

// NewEventHandler constructs EventHandler.
func NewEventHandler(events *service.EventService) *EventHandler {
	return &EventHandler{events: events}
}

// List godoc
// @Summary List club calendar events in date order
// @Tags Events
// @Produce json
// @Param force query bool false "Bypass the cache"
// @Success 200 {object} response.Envelope
// @Router /events [get]
func (h *EventHandler) List(c *gin.Context) {
	force := c.Query("force") == "true"
	hit := !force && h.events.Cached()

	events, err := h.events.List(c.Request.Context(), force)
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetCacheHit(c, hit)
	response.JSON(c, http.StatusOK, events, middleware.ExtractMeta(c))
}
