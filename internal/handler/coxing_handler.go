package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ccbc-ox/boathouse-api/internal/service"
	appErrors "github.com/ccbc-ox/boathouse-api/pkg/errors"
	"github.com/ccbc-ox/boathouse-api/pkg/response"
)

// CoxingHandler exposes coxing availability and eligibility endpoints.
type CoxingHandler struct {
	coxing *service.CoxingService
}

// NewCoxingHandler constructs CoxingHandler.
func NewCoxingHandler(coxing *service.CoxingService) *CoxingHandler {
	return &CoxingHandler{coxing: coxing}
}

// Days godoc
// @Summary List per-date coxing sign-ups
// @Tags Coxing
// @Produce json
// @Param start query string false "Window start (YYYY-MM-DD)"
// @Param end query string false "Window end (YYYY-MM-DD)"
// @Success 200 {object} response.Envelope
// @Router /coxing/availability [get]
func (h *CoxingHandler) Days(c *gin.Context) {
	days, err := h.coxing.Days(c.Request.Context(), c.Query("start"), c.Query("end"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, days)
}

// UpdateSlot godoc
// @Summary Add or remove a member's slot sign-up
// @Tags Coxing
// @Accept json
// @Produce json
// @Param payload body service.UpdateCoxingSlotRequest true "Slot update"
// @Success 200 {object} response.Envelope
// @Router /coxing/availability [post]
func (h *CoxingHandler) UpdateSlot(c *gin.Context) {
	var req service.UpdateCoxingSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	if err := h.coxing.UpdateSlot(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"updated": true})
}

// Eligible godoc
// @Summary List members eligible to cox at a date and time
// @Tags Coxing
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param time query string true "Time of day (HH:MM)"
// @Success 200 {object} response.Envelope
// @Router /coxing/eligible [get]
func (h *CoxingHandler) Eligible(c *gin.Context) {
	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "date must be YYYY-MM-DD"))
		return
	}
	timeOfDay := c.Query("time")
	if timeOfDay == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "time is required (HH:MM)"))
		return
	}

	eligible, flag, err := h.coxing.Eligible(c.Request.Context(), date, timeOfDay)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"eligible": eligible, "flag": flag})
}

// Overview godoc
// @Summary Day-granularity coxing availability overview
// @Tags Coxing
// @Produce json
// @Param start query string false "Window start (YYYY-MM-DD)"
// @Param end query string false "Window end (YYYY-MM-DD)"
// @Success 200 {object} response.Envelope
// @Router /coxing/overview [get]
func (h *CoxingHandler) Overview(c *gin.Context) {
	overview, err := h.coxing.Overview(c.Request.Context(), c.Query("start"), c.Query("end"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, overview)
}
