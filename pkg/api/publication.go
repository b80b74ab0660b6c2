package api

import (
	"context"

	"github.com/sense-social/sense/cli/pkg/logger"
)

// CreatePublication creates a publication. Visibility defaults to public.
func (b *Backend) CreatePublication(ctx context.Context, req CreatePublicationRequest) (*FeedItem, error) {
	logger.Debug("Creating publication", "type", req.Type)

	if req.Visibility == "" {
		req.Visibility = "public"
	}

	var resp FeedItem
	if err := b.http.Post(ctx, "/publication/create", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetPublication fetches a single publication
func (b *Backend) GetPublication(ctx context.Context, id string) (*FeedItem, error) {
	logger.Debug("Fetching publication", "publication_id", id)

	var resp FeedItem
	if err := b.http.Get(ctx, "/publication/"+pathID(id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdatePublication replaces the title and content of a publication
func (b *Backend) UpdatePublication(ctx context.Context, id string, req UpdatePublicationRequest) (*FeedItem, error) {
	logger.Debug("Updating publication", "publication_id", id)

	var resp FeedItem
	if err := b.http.Put(ctx, "/publication/"+pathID(id), req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeletePublication deletes a publication
func (b *Backend) DeletePublication(ctx context.Context, id string) error {
	logger.Debug("Deleting publication", "publication_id", id)
	return b.http.Delete(ctx, "/publication/"+pathID(id), nil)
}

// ToggleLike flips the viewer's like on a publication
func (b *Backend) ToggleLike(ctx context.Context, id string) error {
	logger.Debug("Toggling like", "publication_id", id)
	return b.http.Post(ctx, "/publication/"+pathID(id)+"/like", nil, nil)
}

// ToggleSave flips the viewer's save on a publication
func (b *Backend) ToggleSave(ctx context.Context, id string) error {
	logger.Debug("Toggling save", "publication_id", id)
	return b.http.Post(ctx, "/publication/"+pathID(id)+"/save", nil, nil)
}

// GetLikes lists the users who liked a publication
func (b *Backend) GetLikes(ctx context.Context, id string) (*LikesResponse, error) {
	logger.Debug("Fetching likes", "publication_id", id)

	var resp LikesResponse
	if err := b.http.Get(ctx, "/publication/"+pathID(id)+"/likes", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
