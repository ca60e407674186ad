package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/ccbc-ox/boathouse-api/internal/models"
	"github.com/ccbc-ox/boathouse-api/internal/statecache"
	appErrors "github.com/ccbc-ox/boathouse-api/pkg/errors"
)

// SaveAssignmentsRequest is the full draft for one outing. Saving always
// overwrites the stored draft wholesale.
type SaveAssignmentsRequest struct {
	Assignments map[string]string `json:"assignments"`
}

// AssignmentService keeps in-progress crew drafts in the durable state cache
// and broadcasts every change so other sessions see it immediately.
type AssignmentService struct {
	store       statecache.Store
	broadcaster statecache.Broadcaster
	logger      *zap.Logger
}

// NewAssignmentService constructs the assignment service.
func NewAssignmentService(store statecache.Store, broadcaster statecache.Broadcaster, logger *zap.Logger) *AssignmentService {
	if broadcaster == nil {
		broadcaster = statecache.NewNotifier()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AssignmentService{store: store, broadcaster: broadcaster, logger: logger}
}

// Load returns the draft for an outing, or nil when none exists or the draft
// has aged out.
func (s *AssignmentService) Load(ctx context.Context, outingID string) (*models.AssignmentState, error) {
	state, err := s.store.Load(ctx, outingID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load draft assignments")
	}
	return state, nil
}

// Save overwrites the draft and notifies subscribers. Last write wins.
func (s *AssignmentService) Save(ctx context.Context, outingID string, req SaveAssignmentsRequest) (*models.AssignmentState, error) {
	state, err := s.store.Save(ctx, outingID, req.Assignments)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save draft assignments")
	}

	if err := s.broadcaster.Publish(ctx, statecache.Change{OutingID: outingID, State: state}); err != nil {
		// The draft is saved; a missed notification only delays other sessions.
		s.logger.Warn("draft change broadcast failed", zap.String("outing_id", outingID), zap.Error(err))
	}
	return state, nil
}

// Clear removes the draft for one outing and notifies subscribers.
func (s *AssignmentService) Clear(ctx context.Context, outingID string) error {
	if err := s.store.Clear(ctx, outingID); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to clear draft assignments")
	}

	if err := s.broadcaster.Publish(ctx, statecache.Change{OutingID: outingID}); err != nil {
		s.logger.Warn("draft change broadcast failed", zap.String("outing_id", outingID), zap.Error(err))
	}
	return nil
}

// Subscribe registers a listener for draft changes from any session.
func (s *AssignmentService) Subscribe(fn func(statecache.Change)) {
	s.broadcaster.Subscribe(fn)
}
