package service

import (
	"context"
	"fmt"

	"github.com/sense-social/sense/cli/pkg/api"
	"github.com/sense-social/sense/cli/pkg/enrich"
	"github.com/sense-social/sense/cli/pkg/logger"
	"github.com/sense-social/sense/cli/pkg/paginator"
	"github.com/sense-social/sense/cli/pkg/telemetry"
	"go.opentelemetry.io/otel/attribute"
)

// FeedService reads paginated feeds
type FeedService struct {
	backend  *api.Backend
	enricher *enrich.Enricher
	pageSize int
}

// NewFeedService creates a new feed service
func NewFeedService(d Deps) *FeedService {
	size := d.PageSize
	if size <= 0 {
		size = 10
	}
	return &FeedService{backend: d.Backend, enricher: d.Enricher, pageSize: size}
}

// PageSize returns the configured batch size
func (fs *FeedService) PageSize() int {
	return fs.pageSize
}

// Page fetches and enriches a single page
func (fs *FeedService) Page(ctx context.Context, src api.FeedSource, limit, offset int) (*api.Feed, error) {
	if limit <= 0 {
		limit = fs.pageSize
	}

	page, err := fs.pages(src)(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s feed: %w", src, err)
	}
	return &api.Feed{Items: page.Items, Total: page.Total, Limit: limit, Offset: offset}, nil
}

// NewPaginator returns an idle paginator over src
func (fs *FeedService) NewPaginator(src api.FeedSource) *paginator.Paginator {
	return paginator.New(fs.pages(src), fs.pageSize)
}

// Collect loads up to pages pages of src through a paginator, or every page
// when pages is zero or less. Loading stops at the first short page.
func (fs *FeedService) Collect(ctx context.Context, src api.FeedSource, pages int) (*api.Feed, error) {
	p := fs.NewPaginator(src)
	defer p.Close()

	if err := p.Load(ctx); err != nil {
		return nil, fmt.Errorf("failed to fetch %s feed: %w", src, err)
	}

	for loaded := 1; pages <= 0 || loaded < pages; loaded++ {
		fetched, err := p.LoadMore(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch %s feed at offset %d: %w", src, p.Offset(), err)
		}
		if !fetched {
			break
		}
	}

	feed := p.Snapshot()
	logger.Debug("Feed collected", "feed", src.String(), "items", len(feed.Items), "state", p.State())
	return &feed, nil
}

// pages wraps the paginator fetch in a span per page
func (fs *FeedService) pages(src api.FeedSource) paginator.PageFunc {
	fetch := paginator.FeedPages(fs.backend, src, fs.enricher)
	return func(ctx context.Context, limit, offset int) (paginator.Page, error) {
		ctx, span := telemetry.StartSpan(ctx, "feed.page",
			attribute.String("feed", src.String()),
			attribute.Int("limit", limit),
			attribute.Int("offset", offset),
		)
		page, err := fetch(ctx, limit, offset)
		span.SetAttributes(attribute.Int("items", len(page.Items)))
		telemetry.End(span, err)
		return page, err
	}
}
