package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/ccbc-ox/boathouse-api/internal/models"
	appErrors "github.com/ccbc-ox/boathouse-api/pkg/errors"
	"github.com/ccbc-ox/boathouse-api/pkg/resourcecache"
)

type testStore interface {
	Tests(ctx context.Context) ([]models.Test, error)
	Test(ctx context.Context, testID string) (models.Test, error)
	AssignTestSlot(ctx context.Context, testID string, slotNumber int, memberID string) error
	UpdateTestOutcome(ctx context.Context, testID string, slotNumber int, outcome models.TestOutcome) error
}

// AssignTestSlotRequest books a member into a numbered slot.
type AssignTestSlotRequest struct {
	SlotNumber int    `json:"slotNumber" validate:"required,min=1,max=6"`
	MemberID   string `json:"memberId" validate:"required"`
}

// UpdateTestOutcomeRequest records the result for a numbered slot.
type UpdateTestOutcomeRequest struct {
	SlotNumber int                `json:"slotNumber" validate:"required,min=1,max=6"`
	Outcome    models.TestOutcome `json:"outcome" validate:"required,oneof='No Show' 'Test Booked' 'Failed' 'Passed'"`
}

// TestService serves swim and capsize test sessions through a shared cache.
type TestService struct {
	store     testStore
	cache     *resourcecache.ListCache[models.Test]
	validator *validator.Validate
	logger    *zap.Logger
}

// NewTestService constructs the test service.
func NewTestService(store testStore, cache *resourcecache.ListCache[models.Test], validate *validator.Validate, logger *zap.Logger) *TestService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TestService{store: store, cache: cache, validator: validate, logger: logger}
}

// Cached reports whether the next List would be served from the snapshot.
func (s *TestService) Cached() bool {
	return s.cache.Fresh()
}

// List returns test sessions, served from cache inside the freshness window.
func (s *TestService) List(ctx context.Context, force bool) ([]models.Test, error) {
	tests, err := s.cache.Load(ctx, force)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, "failed to load tests")
	}
	return tests, nil
}

// Get fetches one test session directly and folds it into the cache.
func (s *TestService) Get(ctx context.Context, testID string) (models.Test, error) {
	test, err := s.store.Test(ctx, testID)
	if err != nil {
		return models.Test{}, wrapUpstream(err, "failed to load test")
	}
	s.cache.UpdateOne(test)
	return test, nil
}

// AssignSlot books a member into a slot and returns the refreshed session.
func (s *TestService) AssignSlot(ctx context.Context, testID string, req AssignTestSlotRequest) (models.Test, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.Test{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid slot booking")
	}
	if err := s.store.AssignTestSlot(ctx, testID, req.SlotNumber, req.MemberID); err != nil {
		return models.Test{}, wrapUpstream(err, "failed to book test slot")
	}
	s.logger.Info("test slot booked",
		zap.String("test_id", testID),
		zap.Int("slot", req.SlotNumber),
		zap.String("member_id", req.MemberID))
	return s.Get(ctx, testID)
}

// UpdateOutcome records a slot result and returns the refreshed session.
func (s *TestService) UpdateOutcome(ctx context.Context, testID string, req UpdateTestOutcomeRequest) (models.Test, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.Test{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid test outcome")
	}
	if err := s.store.UpdateTestOutcome(ctx, testID, req.SlotNumber, req.Outcome); err != nil {
		return models.Test{}, wrapUpstream(err, "failed to record test outcome")
	}
	return s.Get(ctx, testID)
}
