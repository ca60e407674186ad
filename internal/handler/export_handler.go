package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ccbc-ox/boathouse-api/internal/service"
	"github.com/ccbc-ox/boathouse-api/pkg/response"
)

// ExportHandler serves downloadable crew sheets and availability exports.
type ExportHandler struct {
	exports *service.ExportService
}

// NewExportHandler constructs ExportHandler.
func NewExportHandler(exports *service.ExportService) *ExportHandler {
	return &ExportHandler{exports: exports}
}

// CrewSheet godoc
// @Summary Download a printable crew sheet for an outing
// @Tags Exports
// @Produce application/pdf
// @Param id path string true "Outing ID"
// @Success 200 {file} binary
// @Router /outings/{id}/crew-sheet.pdf [get]
func (h *ExportHandler) CrewSheet(c *gin.Context) {
	payload, filename, err := h.exports.CrewSheetPDF(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", payload)
}

// AvailabilityCSV godoc
// @Summary Download the weekly availability grid as CSV
// @Tags Exports
// @Produce text/csv
// @Success 200 {file} binary
// @Router /availability/export.csv [get]
func (h *ExportHandler) AvailabilityCSV(c *gin.Context) {
	payload, filename, err := h.exports.AvailabilityCSV(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv", payload)
}
