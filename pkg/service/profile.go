package service

import (
	"context"
	"fmt"

	"github.com/sense-social/sense/cli/pkg/api"
	"github.com/sense-social/sense/cli/pkg/enrich"
	"github.com/sense-social/sense/cli/pkg/validate"
)

// ProfileService reads and updates profiles
type ProfileService struct {
	backend  *api.Backend
	enricher *enrich.Enricher
}

// NewProfileService creates a new profile service
func NewProfileService(d Deps) *ProfileService {
	return &ProfileService{backend: d.Backend, enricher: d.Enricher}
}

// Me returns the logged-in user's profile with the avatar resolved
func (s *ProfileService) Me(ctx context.Context) (*api.Profile, error) {
	u, err := s.backend.GetMyProfile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}
	p := s.enricher.ProfileAvatar(ctx, api.NormalizeProfile(*u))
	return &p, nil
}

// Get returns another user's profile with the avatar resolved
func (s *ProfileService) Get(ctx context.Context, id string) (*api.Profile, error) {
	u, err := s.backend.GetUser(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile %s: %w", id, err)
	}
	p := s.enricher.ProfileAvatar(ctx, api.NormalizeProfile(*u))
	return &p, nil
}

// Update changes the given fields of the logged-in user's profile
func (s *ProfileService) Update(ctx context.Context, req api.UpdateProfileRequest) (*api.Profile, error) {
	if req == (api.UpdateProfileRequest{}) {
		return nil, validate.Errors{"profile": "Nothing to update"}
	}
	if req.Username != "" {
		errs := validate.Errors{}
		validate.Username(errs, req.Username)
		if err := errs.Err(); err != nil {
			return nil, err
		}
	}

	u, err := s.backend.UpdateMyProfile(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	p := s.enricher.ProfileAvatar(ctx, api.NormalizeProfile(*u))
	return &p, nil
}
