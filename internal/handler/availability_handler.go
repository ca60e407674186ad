package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ccbc-ox/boathouse-api/internal/service"
	appErrors "github.com/ccbc-ox/boathouse-api/pkg/errors"
	"github.com/ccbc-ox/boathouse-api/pkg/response"
)

// AvailabilityHandler exposes weekly unavailability endpoints.
type AvailabilityHandler struct {
	availability *service.AvailabilityService
}

// NewAvailabilityHandler constructs AvailabilityHandler.
func NewAvailabilityHandler(availability *service.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{availability: availability}
}

// Get godoc
// @Summary Get a member's weekly unavailability
// @Tags Availability
// @Produce json
// @Param id path string true "Member ID"
// @Success 200 {object} response.Envelope
// @Router /members/{id}/availability [get]
func (h *AvailabilityHandler) Get(c *gin.Context) {
	week, err := h.availability.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, week)
}

// Update godoc
// @Summary Replace a member's weekly unavailability
// @Tags Availability
// @Accept json
// @Produce json
// @Param id path string true "Member ID"
// @Param payload body service.UpdateAvailabilityRequest true "Full week of unavailable windows"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope "Per-day validation messages in meta.validation"
// @Router /members/{id}/availability [put]
func (h *AvailabilityHandler) Update(c *gin.Context) {
	var req service.UpdateAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}

	week, validation, err := h.availability.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		if !validation.Valid {
			appErr := appErrors.FromError(err)
			c.JSON(appErr.Status, response.Envelope{
				Error: appErr,
				Meta:  map[string]interface{}{"validation": validation.Errors},
			})
			return
		}
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, week)
}
