package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/ccbc-ox/boathouse-api/internal/models"
	"github.com/ccbc-ox/boathouse-api/internal/notion"
	appErrors "github.com/ccbc-ox/boathouse-api/pkg/errors"
	"github.com/ccbc-ox/boathouse-api/pkg/resourcecache"
)

type outingStore interface {
	Outings(ctx context.Context, from, to time.Time) ([]models.Outing, error)
	Outing(ctx context.Context, outingID string) (models.Outing, error)
	AssignSeat(ctx context.Context, outingID string, seat models.Seat, memberID string) error
	UpdateSeatStatus(ctx context.Context, outingID string, seat models.Seat, status models.SeatStatus) error
	UpdateOutingStatus(ctx context.Context, outingID string, status models.OutingStatus) error
	OutingReport(ctx context.Context, outingID string) (models.OutingReport, error)
	UpdateOutingReport(ctx context.Context, outingID string, update notion.ReportUpdate) error
}

// AssignSeatRequest names one seat and the member to sit in it. An empty
// member ID empties the seat.
type AssignSeatRequest struct {
	Seat     models.Seat `json:"seat" validate:"required"`
	MemberID string      `json:"memberId"`
}

// UpdateSeatStatusRequest records a rower's response for their seat.
type UpdateSeatStatusRequest struct {
	Seat   models.Seat       `json:"seat" validate:"required"`
	Status models.SeatStatus `json:"status" validate:"required,oneof='Available' 'Maybe Available' 'Awaiting Approval' 'Not Available'"`
}

// UpdateOutingStatusRequest moves an outing through its lifecycle.
type UpdateOutingStatusRequest struct {
	Status models.OutingStatus `json:"status" validate:"required,oneof='Provisional Outing' 'Outing Confirmed' 'Outing Cancelled'"`
}

// UpdateOutingReportRequest carries debrief fields for an outing. Omitted
// fields keep their stored value, so crew and coach can submit separately.
type UpdateOutingReportRequest struct {
	OutingSummary   *string `json:"outingSummary"`
	BoatFeel        *string `json:"boatFeel"`
	OutingSuccesses *string `json:"outingSuccesses"`
	NextFocus       *string `json:"nextFocus"`
	CoachFeedback   *string `json:"coachFeedback"`
}

func (r UpdateOutingReportRequest) empty() bool {
	return r.OutingSummary == nil && r.BoatFeel == nil && r.OutingSuccesses == nil &&
		r.NextFocus == nil && r.CoachFeedback == nil
}

// OutingService serves published outings through a shared cache and applies
// seat and status changes back to the datastore.
type OutingService struct {
	store     outingStore
	cache     *resourcecache.ListCache[models.Outing]
	validator *validator.Validate
	logger    *zap.Logger
}

// NewOutingService constructs the outing service.
func NewOutingService(store outingStore, cache *resourcecache.ListCache[models.Outing], validate *validator.Validate, logger *zap.Logger) *OutingService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OutingService{store: store, cache: cache, validator: validate, logger: logger}
}

// Cached reports whether the next List would be served from the snapshot.
func (s *OutingService) Cached() bool {
	return s.cache.Fresh()
}

// List returns published outings, filtered to the window when one is given.
// The cache holds the full published list; windowing happens in memory.
func (s *OutingService) List(ctx context.Context, from, to time.Time, force bool) ([]models.Outing, error) {
	outings, err := s.cache.Load(ctx, force)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, "failed to load outings")
	}
	if from.IsZero() && to.IsZero() {
		return outings, nil
	}

	filtered := make([]models.Outing, 0, len(outings))
	for _, outing := range outings {
		if !from.IsZero() && outing.Start.Before(from) {
			continue
		}
		if !to.IsZero() && outing.Start.After(to) {
			continue
		}
		filtered = append(filtered, outing)
	}
	return filtered, nil
}

// Get fetches one outing directly, bypassing the list cache so seat detail
// is never stale, and folds the result back into the cache.
func (s *OutingService) Get(ctx context.Context, outingID string) (models.Outing, error) {
	outing, err := s.store.Outing(ctx, outingID)
	if err != nil {
		return models.Outing{}, appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, "failed to load outing")
	}
	s.cache.UpdateOne(outing)
	return outing, nil
}

// AssignSeat seats a member (or empties the seat) and returns the refreshed
// outing.
func (s *OutingService) AssignSeat(ctx context.Context, outingID string, req AssignSeatRequest) (models.Outing, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.Outing{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid seat assignment")
	}
	if err := s.store.AssignSeat(ctx, outingID, req.Seat, req.MemberID); err != nil {
		return models.Outing{}, wrapUpstream(err, "failed to assign seat")
	}
	s.logger.Info("seat assigned",
		zap.String("outing_id", outingID),
		zap.String("seat", string(req.Seat)),
		zap.String("member_id", req.MemberID))
	return s.Get(ctx, outingID)
}

// UpdateSeatStatus records a rower's response and returns the refreshed
// outing.
func (s *OutingService) UpdateSeatStatus(ctx context.Context, outingID string, req UpdateSeatStatusRequest) (models.Outing, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.Outing{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid seat status")
	}
	if err := s.store.UpdateSeatStatus(ctx, outingID, req.Seat, req.Status); err != nil {
		return models.Outing{}, wrapUpstream(err, "failed to update seat status")
	}
	return s.Get(ctx, outingID)
}

// UpdateStatus moves the outing through its lifecycle and returns the
// refreshed outing.
func (s *OutingService) UpdateStatus(ctx context.Context, outingID string, req UpdateOutingStatusRequest) (models.Outing, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.Outing{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid outing status")
	}
	if err := s.store.UpdateOutingStatus(ctx, outingID, req.Status); err != nil {
		return models.Outing{}, wrapUpstream(err, "failed to update outing status")
	}
	s.logger.Info("outing status updated",
		zap.String("outing_id", outingID),
		zap.String("status", string(req.Status)))
	return s.Get(ctx, outingID)
}

// Report reads the debrief for one outing.
func (s *OutingService) Report(ctx context.Context, outingID string) (models.OutingReport, error) {
	report, err := s.store.OutingReport(ctx, outingID)
	if err != nil {
		return models.OutingReport{}, wrapUpstream(err, "failed to load outing report")
	}
	return report, nil
}

// UpdateReport writes the provided debrief fields and returns the full
// refreshed report.
func (s *OutingService) UpdateReport(ctx context.Context, outingID string, req UpdateOutingReportRequest) (models.OutingReport, error) {
	if req.empty() {
		return models.OutingReport{}, appErrors.Clone(appErrors.ErrValidation, "report update has no fields")
	}
	update := notion.ReportUpdate{
		OutingSummary:   req.OutingSummary,
		BoatFeel:        req.BoatFeel,
		OutingSuccesses: req.OutingSuccesses,
		NextFocus:       req.NextFocus,
		CoachFeedback:   req.CoachFeedback,
	}
	if err := s.store.UpdateOutingReport(ctx, outingID, update); err != nil {
		return models.OutingReport{}, wrapUpstream(err, "failed to submit outing report")
	}
	s.logger.Info("outing report submitted", zap.String("outing_id", outingID))
	return s.Report(ctx, outingID)
}

// wrapUpstream keeps typed validation errors intact and labels the rest as
// upstream failures.
func wrapUpstream(err error, message string) error {
	typed := appErrors.FromError(err)
	if typed.Code == appErrors.ErrValidation.Code || typed.Code == appErrors.ErrConflict.Code || typed.Code == appErrors.ErrNotFound.Code {
		return typed
	}
	return appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, message)
}
