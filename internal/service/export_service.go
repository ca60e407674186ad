package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ccbc-ox/boathouse-api/internal/models"
	"github.com/ccbc-ox/boathouse-api/internal/schedule"
	"github.com/ccbc-ox/boathouse-api/pkg/export"
)

type outingProvider interface {
	Get(ctx context.Context, outingID string) (models.Outing, error)
}

type csvRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type pdfRenderer interface {
	Render(data export.Dataset, title string) ([]byte, error)
}

// ExportService renders crew sheets and availability tables for download.
type ExportService struct {
	outings      outingProvider
	roster       rosterProvider
	availability weeklyProvider
	csv          csvRenderer
	pdf          pdfRenderer
	logger       *zap.Logger
}

// NewExportService constructs an ExportService.
func NewExportService(outings outingProvider, roster rosterProvider, availability weeklyProvider, logger *zap.Logger, csv csvRenderer, pdf pdfRenderer) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	if pdf == nil {
		pdf = export.NewPDFExporter()
	}
	return &ExportService{
		outings:      outings,
		roster:       roster,
		availability: availability,
		csv:          csv,
		pdf:          pdf,
		logger:       logger,
	}
}

// CrewSheetPDF renders the crew list for one outing, seat by seat, with each
// rower's response status. Returns the document and a download filename.
func (s *ExportService) CrewSheetPDF(ctx context.Context, outingID string) ([]byte, string, error) {
	outing, err := s.outings.Get(ctx, outingID)
	if err != nil {
		return nil, "", err
	}
	members, err := s.roster.List(ctx, false)
	if err != nil {
		return nil, "", err
	}

	namesByID := make(map[string]string, len(members))
	for _, member := range members {
		namesByID[member.ID] = member.Name
	}

	dataset := export.Dataset{Headers: []string{"Seat", "Member", "Status"}}
	for _, seat := range models.CrewSeats {
		assignment, filled := outing.Seats[seat]
		row := map[string]string{"Seat": string(seat)}
		if filled {
			name := namesByID[assignment.MemberID]
			if name == "" {
				name = assignment.MemberID
			}
			row["Member"] = name
			row["Status"] = string(assignment.Status)
		}
		dataset.Rows = append(dataset.Rows, row)
	}

	title := outing.Name
	if !outing.Start.IsZero() {
		title = fmt.Sprintf("%s %s", outing.Name, outing.Start.Format("Mon 2 Jan 2006"))
	}

	payload, err := s.pdf.Render(dataset, title)
	if err != nil {
		return nil, "", err
	}

	s.logger.Info("crew sheet rendered", zap.String("outing_id", outingID))
	return payload, crewSheetFilename(outing), nil
}

// AvailabilityCSV renders every member's weekly unavailable windows as one
// row per member.
func (s *ExportService) AvailabilityCSV(ctx context.Context) ([]byte, string, error) {
	members, err := s.roster.List(ctx, false)
	if err != nil {
		return nil, "", err
	}
	weekly, err := s.availability.AllWeekly(ctx)
	if err != nil {
		return nil, "", err
	}

	headers := []string{"Member"}
	for _, day := range models.DaysOfWeek {
		headers = append(headers, models.DayLabels[day])
	}

	dataset := export.Dataset{Headers: headers}
	for _, member := range members {
		row := map[string]string{"Member": member.Name}
		week := weekly[member.ID]
		for _, day := range models.DaysOfWeek {
			row[models.DayLabels[day]] = schedule.StringifyTimeRanges(week.Ranges(day))
		}
		dataset.Rows = append(dataset.Rows, row)
	}

	payload, err := s.csv.Render(dataset)
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("availability-%s.csv", time.Now().UTC().Format("2006-01-02"))
	return payload, filename, nil
}

func crewSheetFilename(outing models.Outing) string {
	name := strings.ToLower(strings.TrimSpace(outing.Name))
	name = strings.ReplaceAll(name, " ", "-")
	if name == "" {
		name = outing.ID
	}
	if !outing.Start.IsZero() {
		return fmt.Sprintf("crew-sheet-%s-%s.pdf", name, outing.Start.Format("2006-01-02"))
	}
	return fmt.Sprintf("crew-sheet-%s.pdf", name)
}
