package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/ccbc-ox/boathouse-api/internal/models"
	appErrors "github.com/ccbc-ox/boathouse-api/pkg/errors"
	"github.com/ccbc-ox/boathouse-api/pkg/resourcecache"
)

// FlagService serves the river flag through a short-TTL cache so bursts of
// page loads do not hammer the conditions service.
type FlagService struct {
	cache  *resourcecache.Cache[models.Flag]
	logger *zap.Logger
}

// NewFlagService constructs the flag service.
func NewFlagService(cache *resourcecache.Cache[models.Flag], logger *zap.Logger) *FlagService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FlagService{cache: cache, logger: logger}
}

// Cached reports whether the next Current would be served from the snapshot.
func (s *FlagService) Cached() bool {
	return s.cache.Fresh()
}

// Current returns the flag, falling back to the last known value when the
// conditions service is unreachable.
func (s *FlagService) Current(ctx context.Context, force bool) (models.Flag, error) {
	flag, err := s.cache.Load(ctx, force)
	if err != nil {
		if stale, ok := s.cache.Peek(); ok {
			s.logger.Warn("serving stale flag status", zap.Error(err))
			return stale, nil
		}
		return models.Flag{}, appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, "failed to fetch flag status")
	}
	return flag, nil
}
