package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ccbc-ox/boathouse-api/internal/middleware"
	"github.com/ccbc-ox/boathouse-api/internal/service"
	appErrors "github.com/ccbc-ox/boathouse-api/pkg/errors"
	"github.com/ccbc-ox/boathouse-api/pkg/response"
)

// TestHandler exposes the swim test session endpoints.
type TestHandler struct {
	tests *service.TestService
}

// NewTestHandler constructs TestHandler.
func NewTestHandler(tests *service.TestService) *TestHandler {
	return &TestHandler{tests: tests}
}

// List godoc
// @Summary List upcoming test sessions
// @Tags Tests
// @Produce json
// @Param force query bool false "Bypass the cache"
// @Success 200 {object} response.Envelope
// @Router /tests [get]
func (h *TestHandler) List(c *gin.Context) {
	force := c.Query("force") == "true"
	hit := !force && h.tests.Cached()

	tests, err := h.tests.List(c.Request.Context(), force)
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetCacheHit(c, hit)
	response.JSON(c, http.StatusOK, tests, middleware.ExtractMeta(c))
}

// Get godoc
// @Summary Get one test session with its slots
// @Tags Tests
// @Produce json
// @Param id path string true "Test ID"
// @Success 200 {object} response.Envelope
// @Router /tests/{id} [get]
func (h *TestHandler) Get(c *gin.Context) {
	test, err := h.tests.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, test)
}

// AssignSlot godoc
// @Summary Book a member into a test slot
// @Tags Tests
// @Accept json
// @Produce json
// @Param id path string true "Test ID"
// @Param payload body service.AssignTestSlotRequest true "Slot booking"
// @Success 200 {object} response.Envelope
// @Router /tests/{id}/slots [put]
func (h *TestHandler) AssignSlot(c *gin.Context) {
	var req service.AssignTestSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	test, err := h.tests.AssignSlot(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, test)
}

// UpdateOutcome godoc
// @Summary Record the outcome of a test slot
// @Tags Tests
// @Accept json
// @Produce json
// @Param id path string true "Test ID"
// @Param payload body service.UpdateTestOutcomeRequest true "Slot outcome"
// @Success 200 {object} response.Envelope
// @Router /tests/{id}/outcome [put]
func (h *TestHandler) UpdateOutcome(c *gin.Context) {
	var req service.UpdateTestOutcomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	test, err := h.tests.UpdateOutcome(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, test)
}
