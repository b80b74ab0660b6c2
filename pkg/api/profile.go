package api

import (
	"context"

	"github.com/sense-social/sense/cli/pkg/logger"
)

// GetUser fetches a user by id from /profile/:id
func (b *Backend) GetUser(ctx context.Context, id string) (*UserResponse, error) {
	logger.Debug("Fetching profile", "user_id", id)

	var resp UserResponse
	if err := b.http.Get(ctx, "/profile/"+pathID(id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetMyProfile fetches the authenticated user's profile
func (b *Backend) GetMyProfile(ctx context.Context) (*UserResponse, error) {
	logger.Debug("Fetching own profile")

	var resp UserResponse
	if err := b.http.Get(ctx, "/profile/me", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateMyProfile posts the changed profile fields
func (b *Backend) UpdateMyProfile(ctx context.Context, req UpdateProfileRequest) (*UserResponse, error) {
	logger.Debug("Updating own profile")

	var resp UserResponse
	if err := b.http.Post(ctx, "/profile/me", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
