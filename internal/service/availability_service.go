package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/ccbc-ox/boathouse-api/internal/models"
	"github.com/ccbc-ox/boathouse-api/internal/schedule"
	appErrors "github.com/ccbc-ox/boathouse-api/pkg/errors"
)

type availabilityStore interface {
	MemberAvailability(ctx context.Context, memberID string) (models.WeeklyUnavailability, error)
	AllAvailability(ctx context.Context) (map[string]models.WeeklyUnavailability, error)
	UpdateMemberAvailability(ctx context.Context, memberID string, week models.WeeklyUnavailability) error
}

// UpdateAvailabilityRequest carries a member's full week of unavailable windows.
type UpdateAvailabilityRequest struct {
	Days map[models.Day][]models.TimeRange `json:"days"`
}

// AvailabilityService reads and writes weekly rower unavailability.
type AvailabilityService struct {
	store  availabilityStore
	logger *zap.Logger
}

// NewAvailabilityService constructs the availability service.
func NewAvailabilityService(store availabilityStore, logger *zap.Logger) *AvailabilityService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AvailabilityService{store: store, logger: logger}
}

// Get returns one member's weekly unavailability.
func (s *AvailabilityService) Get(ctx context.Context, memberID string) (models.WeeklyUnavailability, error) {
	week, err := s.store.MemberAvailability(ctx, memberID)
	if err != nil {
		return models.WeeklyUnavailability{}, appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, "failed to load availability")
	}
	return week, nil
}

// Update validates the whole week and writes all seven days at once. A single
// invalid day rejects the entire update; the per-day messages come back with
// the validation error so the caller can show every problem.
func (s *AvailabilityService) Update(ctx context.Context, memberID string, req UpdateAvailabilityRequest) (models.WeeklyUnavailability, schedule.Validation, error) {
	week := models.WeeklyUnavailability{MemberID: memberID, Days: req.Days}
	if week.Days == nil {
		week.Days = map[models.Day][]models.TimeRange{}
	}

	validation := schedule.ValidateWeek(week)
	if !validation.Valid {
		return models.WeeklyUnavailability{}, validation, appErrors.Clone(appErrors.ErrValidation, "availability has invalid time ranges")
	}

	if err := s.store.UpdateMemberAvailability(ctx, memberID, week); err != nil {
		return models.WeeklyUnavailability{}, validation, appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, "failed to update availability")
	}

	s.logger.Info("availability updated", zap.String("member_id", memberID))
	return week, validation, nil
}

// AllWeekly returns every member's weekly unavailability keyed by member ID.
func (s *AvailabilityService) AllWeekly(ctx context.Context) (map[string]models.WeeklyUnavailability, error) {
	weekly, err := s.store.AllAvailability(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, "failed to load availability")
	}
	return weekly, nil
}
