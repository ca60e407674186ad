package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ccbc-ox/boathouse-api/internal/middleware"
	"github.com/ccbc-ox/boathouse-api/internal/service"
	appErrors "github.com/ccbc-ox/boathouse-api/pkg/errors"
	"github.com/ccbc-ox/boathouse-api/pkg/response"
)

// OutingHandler exposes outing and crew endpoints.
type OutingHandler struct {
	outings *service.OutingService
}

// NewOutingHandler constructs OutingHandler.
func NewOutingHandler(outings *service.OutingService) *OutingHandler {
	return &OutingHandler{outings: outings}
}

// List godoc
// @Summary List published outings
// @Tags Outings
// @Produce json
// @Param start query string false "Window start (YYYY-MM-DD)"
// @Param end query string false "Window end (YYYY-MM-DD)"
// @Param force query bool false "Bypass the cache"
// @Success 200 {object} response.Envelope
// @Router /outings [get]
func (h *OutingHandler) List(c *gin.Context) {
	var from, to time.Time
	if raw := c.Query("start"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			response.Error(c, appErrors.Clone(appErrors.ErrValidation, "start must be YYYY-MM-DD"))
			return
		}
		from = parsed
	}
	if raw := c.Query("end"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			response.Error(c, appErrors.Clone(appErrors.ErrValidation, "end must be YYYY-MM-DD"))
			return
		}
		// Window end is inclusive of the whole day.
		to = parsed.Add(24*time.Hour - time.Nanosecond)
	}

	force := c.Query("force") == "true"
	hit := !force && h.outings.Cached()

	outings, err := h.outings.List(c.Request.Context(), from, to, force)
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetCacheHit(c, hit)
	response.JSON(c, http.StatusOK, outings, middleware.ExtractMeta(c))
}

// Get godoc
// @Summary Get one outing with its crew
// @Tags Outings
// @Produce json
// @Param id path string true "Outing ID"
// @Success 200 {object} response.Envelope
// @Router /outings/{id} [get]
func (h *OutingHandler) Get(c *gin.Context) {
	outing, err := h.outings.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, outing)
}

// AssignSeat godoc
// @Summary Seat a member (or empty a seat)
// @Tags Outings
// @Accept json
// @Produce json
// @Param id path string true "Outing ID"
// @Param payload body service.AssignSeatRequest true "Seat assignment"
// @Success 200 {object} response.Envelope
// @Router /outings/{id}/seats [put]
func (h *OutingHandler) AssignSeat(c *gin.Context) {
	var req service.AssignSeatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	outing, err := h.outings.AssignSeat(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, outing)
}

// UpdateSeatStatus godoc
// @Summary Record a rower's response for their seat
// @Tags Outings
// @Accept json
// @Produce json
// @Param id path string true "Outing ID"
// @Param payload body service.UpdateSeatStatusRequest true "Seat status"
// @Success 200 {object} response.Envelope
// @Router /outings/{id}/seat-status [put]
func (h *OutingHandler) UpdateSeatStatus(c *gin.Context) {
	var req service.UpdateSeatStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	outing, err := h.outings.UpdateSeatStatus(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, outing)
}

// Report godoc
// @Summary Read the debrief for an outing
// @Tags Outings
// @Produce json
// @Param id path string true "Outing ID"
// @Success 200 {object} response.Envelope
// @Router /outings/{id}/report [get]
func (h *OutingHandler) Report(c *gin.Context) {
	report, err := h.outings.Report(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, report)
}

// UpdateReport godoc
// @Summary Submit debrief fields for an outing
// @Tags Outings
// @Accept json
// @Produce json
// @Param id path string true "Outing ID"
// @Param payload body service.UpdateOutingReportRequest true "Report fields"
// @Success 200 {object} response.Envelope
// @Router /outings/{id}/report [put]
func (h *OutingHandler) UpdateReport(c *gin.Context) {
	var req service.UpdateOutingReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	report, err := h.outings.UpdateReport(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, report)
}

// UpdateStatus godoc
// @Summary Update an outing's lifecycle status
// @Tags Outings
// @Accept json
// @Produce json
// @Param id path string true "Outing ID"
// @Param payload body service.UpdateOutingStatusRequest true "Outing status"
// @Success 200 {object} response.Envelope
// @Router /outings/{id}/status [put]
func (h *OutingHandler) UpdateStatus(c *gin.Context) {
	var req service.UpdateOutingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	outing, err := h.outings.UpdateStatus(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, outing)
}
