package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/ccbc-ox/boathouse-api/internal/models"
	"github.com/ccbc-ox/boathouse-api/internal/notion"
	"github.com/ccbc-ox/boathouse-api/internal/schedule"
	appErrors "github.com/ccbc-ox/boathouse-api/pkg/errors"
)

type coxingStore interface {
	CoxingDays(ctx context.Context, startDate, endDate string) ([]models.CoxingDay, error)
	UpdateCoxingSlot(ctx context.Context, date string, slot models.TimeSlot, memberID string, action notion.SlotAction) error
}

type rosterProvider interface {
	List(ctx context.Context, force bool) ([]models.Member, error)
}

type flagProvider interface {
	Current(ctx context.Context, force bool) (models.Flag, error)
}

type weeklyProvider interface {
	AllWeekly(ctx context.Context) (map[string]models.WeeklyUnavailability, error)
}

// UpdateCoxingSlotRequest adds or removes one member's sign-up for a slot.
type UpdateCoxingSlotRequest struct {
	MemberID string          `json:"memberId" validate:"required"`
	Date     string          `json:"date" validate:"required,datetime=2006-01-02"`
	TimeSlot models.TimeSlot `json:"timeSlot" validate:"required,oneof=earlyAM midAM midPM latePM"`
	Action   string          `json:"action" validate:"required,oneof=add remove"`
}

// CoxingService combines coxing sign-ups, the river flag and weekly
// availability into eligibility answers.
type CoxingService struct {
	store        coxingStore
	roster       rosterProvider
	flags        flagProvider
	availability weeklyProvider
	validator    *validator.Validate
	logger       *zap.Logger
}

// NewCoxingService constructs the coxing service.
func NewCoxingService(store coxingStore, roster rosterProvider, flags flagProvider, availability weeklyProvider, validate *validator.Validate, logger *zap.Logger) *CoxingService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CoxingService{
		store:        store,
		roster:       roster,
		flags:        flags,
		availability: availability,
		validator:    validate,
		logger:       logger,
	}
}

// Days lists per-date coxing sign-ups for the window.
func (s *CoxingService) Days(ctx context.Context, startDate, endDate string) ([]models.CoxingDay, error) {
	days, err := s.store.CoxingDays(ctx, startDate, endDate)
	if err != nil {
		return nil, wrapUpstream(err, "failed to load coxing availability")
	}
	return days, nil
}

// UpdateSlot applies one add or remove to a date's slot sign-ups.
func (s *CoxingService) UpdateSlot(ctx context.Context, req UpdateCoxingSlotRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid coxing update")
	}
	if err := s.store.UpdateCoxingSlot(ctx, req.Date, req.TimeSlot, req.MemberID, notion.SlotAction(req.Action)); err != nil {
		return wrapUpstream(err, "failed to update coxing availability")
	}
	s.logger.Info("coxing slot updated",
		zap.String("member_id", req.MemberID),
		zap.String("date", req.Date),
		zap.String("slot", string(req.TimeSlot)),
		zap.String("action", req.Action))
	return nil
}

// Eligible returns the members who may cox at the given date and time under
// the current flag, filtered to those not marked unavailable then.
func (s *CoxingService) Eligible(ctx context.Context, date time.Time, timeOfDay string) ([]models.Member, models.Flag, error) {
	members, err := s.roster.List(ctx, false)
	if err != nil {
		return nil, models.Flag{}, err
	}
	flag, err := s.flags.Current(ctx, false)
	if err != nil {
		return nil, models.Flag{}, err
	}
	weekly, err := s.availability.AllWeekly(ctx)
	if err != nil {
		return nil, models.Flag{}, err
	}

	eligible := schedule.EligibleCoxes(members, flag.Status, date, timeOfDay, weekly)
	return eligible, flag, nil
}

// Overview reports who can cox on which day of the window at day granularity.
// Any slot sign-up marks the whole day, with no time-range checks.
func (s *CoxingService) Overview(ctx context.Context, startDate, endDate string) ([]schedule.CoxOverview, error) {
	members, err := s.roster.List(ctx, false)
	if err != nil {
		return nil, err
	}
	days, err := s.Days(ctx, startDate, endDate)
	if err != nil {
		return nil, err
	}
	return schedule.BuildCoxingOverview(members, days), nil
}
