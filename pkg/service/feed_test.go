package service

import (
	"testing"

	"github.com/sense-social/sense/cli/pkg/api"
	"github.com/sense-social/sense/cli/pkg/paginator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedService_PageEnrichesItems(t *testing.T) {
	f := newFakeServer(t)
	f.seedFeed(3)
	d, _ := newDeps(t, f)

	feed, err := NewFeedService(d).Page(bg, api.FeedSource{Kind: api.FeedGlobal}, 0, 0)
	require.NoError(t, err)
	require.Len(t, feed.Items, 3)
	assert.Equal(t, 10, feed.Limit)
	assert.Equal(t, 3, feed.Total)
	for _, p := range feed.Items {
		require.NotNil(t, p.Author)
		assert.Equal(t, "alice", p.Author.Username)
		assert.Equal(t, api.RoleCreator, p.Author.Role)
	}
	assert.Equal(t, 3, f.countPrefix("GET /profile/u1"), "one profile fetch per item")
}

func TestFeedService_CollectStopsAtShortPage(t *testing.T) {
	f := newFakeServer(t)
	f.seedFeed(14)
	d, _ := newDeps(t, f)

	feed, err := NewFeedService(d).Collect(bg, api.FeedSource{Kind: api.FeedGlobal}, 0)
	require.NoError(t, err)
	assert.Len(t, feed.Items, 14)
	assert.Equal(t, 10, feed.Offset)
	assert.Equal(t, "p13", feed.Items[13].ID)
	assert.Equal(t, 2, f.countPrefix("GET /feed"))
}

func TestFeedService_CollectHonoursPageCount(t *testing.T) {
	f := newFakeServer(t)
	f.seedFeed(50)
	d, _ := newDeps(t, f)

	feed, err := NewFeedService(d).Collect(bg, api.FeedSource{Kind: api.FeedMine}, 2)
	require.NoError(t, err)
	assert.Len(t, feed.Items, 20)
	assert.Equal(t, 2, f.countPrefix("GET /feed/me"))
}

func TestFeedService_PageErrorIsWrapped(t *testing.T) {
	f := newFakeServer(t)
	f.failPath["GET /feed/me/saved"] = 500
	d, _ := newDeps(t, f)

	_, err := NewFeedService(d).Page(bg, api.FeedSource{Kind: api.FeedSaved}, 10, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "saved")
	assert.Contains(t, err.Error(), "forced failure")
}

func TestFeedService_PaginatorEndToEnd(t *testing.T) {
	f := newFakeServer(t)
	f.seedFeed(10)
	d, _ := newDeps(t, f)

	p := NewFeedService(d).NewPaginator(api.FeedSource{Kind: api.FeedGlobal})
	require.NoError(t, p.Load(bg))
	assert.Equal(t, paginator.Ready, p.State())

	fetched, err := p.LoadMore(bg)
	require.NoError(t, err)
	assert.True(t, fetched)
	assert.Equal(t, paginator.Exhausted, p.State())
	assert.Equal(t, 10, p.Len())
	assert.Equal(t, 20, p.Offset())
}
