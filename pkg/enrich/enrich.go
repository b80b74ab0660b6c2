// Package enrich resolves the author and media references of feed items
// into inline data. Enrichment is best-effort: a failed lookup is logged and
// the item keeps whatever the feed embedded.
package enrich

import (
	"context"
	"fmt"
	"strings"

	"github.com/sense-social/sense/cli/pkg/api"
	"github.com/sense-social/sense/cli/pkg/logger"
	"github.com/sense-social/sense/cli/pkg/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// ProfileFetcher loads a user by id
type ProfileFetcher interface {
	GetUser(ctx context.Context, id string) (*api.UserResponse, error)
}

// MediaResolver turns a media id into a servable URL
type MediaResolver interface {
	MediaURL(ctx context.Context, mediaID string) (string, error)
}

// Backend is everything the enricher needs from the API
type Backend interface {
	ProfileFetcher
	MediaResolver
}

const avatarFallback = "https://i.pravatar.cc/150?u=%s"

// Enricher fans out author and media lookups for feed items
type Enricher struct {
	profiles ProfileFetcher
	media    MediaResolver

	limit int
	group *singleflight.Group
}

// Option configures an Enricher
type Option func(*Enricher)

// WithConcurrency caps the number of items enriched at once. Zero or less
// means unbounded.
func WithConcurrency(n int) Option {
	return func(e *Enricher) {
		e.limit = n
	}
}

// WithCoalescing shares one lookup between concurrent requests for the same
// author or media id. Nothing is cached once a lookup completes.
func WithCoalescing() Option {
	return func(e *Enricher) {
		e.group = &singleflight.Group{}
	}
}

// New creates an enricher over b
func New(b Backend, opts ...Option) *Enricher {
	e := &Enricher{profiles: b, media: b}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Page enriches every item concurrently and returns them in input order
// once all lookups have settled. Items are never dropped.
func (e *Enricher) Page(ctx context.Context, items []api.FeedItem) []api.Publication {
	if len(items) == 0 {
		return []api.Publication{}
	}

	ctx, span := telemetry.StartSpan(ctx, "enrich.page", attribute.Int("items", len(items)))
	defer span.End()

	out := make([]api.Publication, len(items))
	var g errgroup.Group
	if e.limit > 0 {
		g.SetLimit(e.limit)
	}

	for i, item := range items {
		g.Go(func() error {
			out[i] = e.Item(ctx, item)
			return nil
		})
	}
	_ = g.Wait()

	return out
}

// Item normalizes and enriches one feed item. The author and media lookups
// run concurrently.
func (e *Enricher) Item(ctx context.Context, item api.FeedItem) api.Publication {
	pub := api.NormalizeFeedItem(item)

	var (
		g      errgroup.Group
		author *api.User
		media  *api.Media
	)

	if pub.AuthorID != "" {
		g.Go(func() error {
			u, err := e.fetchUser(ctx, pub.AuthorID)
			if err != nil {
				logger.Warn("Author enrichment failed", "item_id", pub.ID, "author_id", pub.AuthorID, "error", err)
				return nil
			}
			normalized := api.NormalizeUser(*u)
			author = &normalized
			return nil
		})
	}

	if mediaID, ok := item.FirstMediaID(); ok {
		g.Go(func() error {
			url, err := e.resolveMedia(ctx, mediaID)
			if err != nil {
				logger.Warn("Media enrichment failed", "item_id", pub.ID, "media_id", mediaID, "error", err)
				return nil
			}
			media = &api.Media{URL: url}
			return nil
		})
	}

	_ = g.Wait()

	if author != nil {
		pub.Author = author
	}
	if media != nil {
		pub.Media = media
	}
	return pub
}

// Comments normalizes comments and fills in their authors. An embedded
// author only has its icon id resolved to a URL; a comment without one gets
// the author's profile fetched.
func (e *Enricher) Comments(ctx context.Context, comments []api.CommentResponse) []api.Comment {
	if len(comments) == 0 {
		return nil
	}

	out := make([]api.Comment, len(comments))
	var g errgroup.Group
	if e.limit > 0 {
		g.SetLimit(e.limit)
	}

	for i, c := range comments {
		g.Go(func() error {
			out[i] = e.comment(ctx, c)
			return nil
		})
	}
	_ = g.Wait()

	return out
}

func (e *Enricher) comment(ctx context.Context, c api.CommentResponse) api.Comment {
	comment := api.NormalizeComment(c)

	if comment.Author != nil {
		if icon := comment.Author.IconURL; icon != "" && !isURL(icon) {
			url, err := e.resolveMedia(ctx, icon)
			if err != nil {
				logger.Warn("Comment avatar enrichment failed", "comment_id", comment.ID, "media_id", icon, "error", err)
				return comment
			}
			author := *comment.Author
			author.IconURL = url
			comment.Author = &author
		}
		return comment
	}

	if comment.AuthorID == "" {
		return comment
	}

	u, err := e.fetchUser(ctx, comment.AuthorID)
	if err != nil {
		logger.Warn("Comment author enrichment failed", "comment_id", comment.ID, "author_id", comment.AuthorID, "error", err)
		return comment
	}
	author := api.NormalizeUser(*u)
	comment.Author = &author
	return comment
}

// ProfileAvatar resolves a profile's avatar id to a URL. A failed lookup
// falls back to a generated placeholder avatar.
func (e *Enricher) ProfileAvatar(ctx context.Context, p api.Profile) api.Profile {
	if p.AvatarURL == "" || isURL(p.AvatarURL) {
		return p
	}

	url, err := e.resolveMedia(ctx, p.AvatarURL)
	if err != nil {
		logger.Warn("Avatar enrichment failed", "user_id", p.ID, "media_id", p.AvatarURL, "error", err)
		url = fmt.Sprintf(avatarFallback, p.AvatarURL)
	}
	p.AvatarURL = url
	return p
}

func (e *Enricher) fetchUser(ctx context.Context, id string) (*api.UserResponse, error) {
	if e.group == nil {
		return e.profiles.GetUser(ctx, id)
	}
	v, err, _ := e.group.Do("user:"+id, func() (interface{}, error) {
		return e.profiles.GetUser(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	u := *v.(*api.UserResponse)
	return &u, nil
}

func (e *Enricher) resolveMedia(ctx context.Context, id string) (string, error) {
	if e.group == nil {
		return e.media.MediaURL(ctx, id)
	}
	v, err, _ := e.group.Do("media:"+id, func() (interface{}, error) {
		return e.media.MediaURL(ctx, id)
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http")
}
