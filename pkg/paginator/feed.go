package paginator

import (
	"context"

	"github.com/sense-social/sense/cli/pkg/api"
)

// FeedFetcher reads raw feed pages
type FeedFetcher interface {
	GetFeed(ctx context.Context, src api.FeedSource, limit, offset int) (*api.FeedResponse, error)
}

// PageEnricher turns raw items into publications
type PageEnricher interface {
	Page(ctx context.Context, items []api.FeedItem) []api.Publication
}

// FeedPages builds a PageFunc that fetches a page of src and enriches it.
// The page settles only after every item's enrichment has.
func FeedPages(f FeedFetcher, src api.FeedSource, e PageEnricher) PageFunc {
	return func(ctx context.Context, limit, offset int) (Page, error) {
		resp, err := f.GetFeed(ctx, src, limit, offset)
		if err != nil {
			return Page{}, err
		}
		return Page{Items: e.Page(ctx, resp.Items), Total: resp.Total}, nil
	}
}
