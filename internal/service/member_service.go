package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/ccbc-ox/boathouse-api/internal/models"
	"github.com/ccbc-ox/boathouse-api/internal/notion"
	appErrors "github.com/ccbc-ox/boathouse-api/pkg/errors"
	"github.com/ccbc-ox/boathouse-api/pkg/resourcecache"
)

type memberDirectory interface {
	Members(ctx context.Context) ([]models.Member, error)
	CreateMember(ctx context.Context, input notion.NewMember) (models.Member, error)
}

// CreateMemberRequest holds payload for club sign-ups.
type CreateMemberRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"omitempty,email"`
	Role    string `json:"role" validate:"required"`
	College string `json:"college"`
}

// MemberService serves the club roster through a shared cache.
type MemberService struct {
	directory memberDirectory
	cache     *resourcecache.ListCache[models.Member]
	validator *validator.Validate
	logger    *zap.Logger
}

// NewMemberService constructs the member service and its roster cache.
func NewMemberService(directory memberDirectory, cache *resourcecache.ListCache[models.Member], validate *validator.Validate, logger *zap.Logger) *MemberService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MemberService{directory: directory, cache: cache, validator: validate, logger: logger}
}

// Cached reports whether the next List would be served from the snapshot.
func (s *MemberService) Cached() bool {
	return s.cache.Fresh()
}

// List returns the roster, served from cache inside the freshness window.
func (s *MemberService) List(ctx context.Context, force bool) ([]models.Member, error) {
	members, err := s.cache.Load(ctx, force)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, "failed to load members")
	}
	return members, nil
}

// Get returns one member from the roster, refreshing the cache when absent.
func (s *MemberService) Get(ctx context.Context, id string) (models.Member, error) {
	members, err := s.List(ctx, false)
	if err != nil {
		return models.Member{}, err
	}
	if member, ok := findMember(members, id); ok {
		return member, nil
	}

	// The member may have been added since the last refresh.
	members, err = s.List(ctx, true)
	if err != nil {
		return models.Member{}, err
	}
	if member, ok := findMember(members, id); ok {
		return member, nil
	}
	return models.Member{}, appErrors.Clone(appErrors.ErrNotFound, "member not found")
}

// Create signs up a new member and folds them into the cached roster.
func (s *MemberService) Create(ctx context.Context, req CreateMemberRequest) (models.Member, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.Member{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid member payload")
	}

	member, err := s.directory.CreateMember(ctx, notion.NewMember{
		Name:    req.Name,
		Email:   req.Email,
		Role:    req.Role,
		College: req.College,
	})
	if err != nil {
		return models.Member{}, appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, "failed to create member")
	}

	s.cache.UpdateOne(member)
	s.logger.Info("member created", zap.String("member_id", member.ID))
	return member, nil
}

func findMember(members []models.Member, id string) (models.Member, bool) {
	for _, member := range members {
		if member.ID == id {
			return member, true
		}
	}
	return models.Member{}, false
}
