package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/ccbc-ox/boathouse-api/internal/models"
	appErrors "github.com/ccbc-ox/boathouse-api/pkg/errors"
	"github.com/ccbc-ox/boathouse-api/pkg/resourcecache"
)

type eventStore interface {
	Events(ctx context.Context) ([]models.Event, error)
}

// EventService serves the club calendar through a shared cache.
type EventService struct {
	store  eventStore
	cache  *resourcecache.ListCache[models.Event]
	logger *zap.Logger
}

// NewEventService constructs the event service.
func NewEventService(store eventStore, cache *resourcecache.ListCache[models.Event], logger *zap.Logger) *EventService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EventService{store: store, cache: cache, logger: logger}
}

// Cached reports whether the next List would be served from the snapshot.
func (s *EventService) Cached() bool {
	return s.cache.Fresh()
}

// List returns calendar events in date order, served from cache inside the
// freshness window.
func (s *EventService) List(ctx context.Context, force bool) ([]models.Event, error) {
	events, err := s.cache.Load(ctx, force)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, "failed to load events")
	}
	return events, nil
}
