package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ccbc-ox/boathouse-api/internal/service"
	appErrors "github.com/ccbc-ox/boathouse-api/pkg/errors"
	"github.com/ccbc-ox/boathouse-api/pkg/response"
)

// AssignmentHandler exposes the draft seat assignment endpoints.
type AssignmentHandler struct {
	assignments *service.AssignmentService
}

// NewAssignmentHandler constructs AssignmentHandler.
func NewAssignmentHandler(assignments *service.AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{assignments: assignments}
}

// Get godoc
// @Summary Load the draft assignment state for an outing
// @Tags Assignments
// @Produce json
// @Param id path string true "Outing ID"
// @Success 200 {object} response.Envelope
// @Router /outings/{id}/assignments [get]
func (h *AssignmentHandler) Get(c *gin.Context) {
	state, err := h.assignments.Load(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, state)
}

// Save godoc
// @Summary Save the draft assignment state for an outing
// @Tags Assignments
// @Accept json
// @Produce json
// @Param id path string true "Outing ID"
// @Param payload body service.SaveAssignmentsRequest true "Draft assignments"
// @Success 200 {object} response.Envelope
// @Router /outings/{id}/assignments [put]
func (h *AssignmentHandler) Save(c *gin.Context) {
	var req service.SaveAssignmentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	state, err := h.assignments.Save(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, state)
}

// Clear godoc
// @Summary Discard the draft assignment state for an outing
// @Tags Assignments
// @Param id path string true "Outing ID"
// @Success 204
// @Router /outings/{id}/assignments [delete]
func (h *AssignmentHandler) Clear(c *gin.Context) {
	if err := h.assignments.Clear(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
