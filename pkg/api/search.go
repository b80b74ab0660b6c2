package api

import (
	"context"

	"github.com/sense-social/sense/cli/pkg/logger"
)

// SearchPublications runs a full-text search over publications. Results use
// the feed item shape.
func (b *Backend) SearchPublications(ctx context.Context, query string) ([]FeedItem, error) {
	logger.Debug("Searching publications", "query", query)

	var resp []FeedItem
	if err := b.http.Get(ctx, "/search", map[string]string{"q": query}, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// SearchUsers searches accounts by name
func (b *Backend) SearchUsers(ctx context.Context, query string) ([]UserResponse, error) {
	logger.Debug("Searching users", "query", query)

	var resp []UserResponse
	if err := b.http.Get(ctx, "/search/users", map[string]string{"q": query}, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// WarmupSearch asks the backend to prime its search index
func (b *Backend) WarmupSearch(ctx context.Context) error {
	logger.Debug("Warming up search")
	return b.http.Post(ctx, "/search/warmup", nil, nil)
}
