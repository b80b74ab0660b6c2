package api

import (
	"context"
	"fmt"

	"github.com/sense-social/sense/cli/pkg/logger"
)

// FeedKind selects which feed endpoint a FeedSource reads
type FeedKind string

const (
	FeedGlobal FeedKind = "global"
	FeedMine   FeedKind = "me"
	FeedSaved  FeedKind = "saved"
	FeedUser   FeedKind = "user"
)

// FeedSource identifies one paginated feed
type FeedSource struct {
	Kind   FeedKind
	UserID string
}

// ParseFeedSource resolves a kind name (and user id for FeedUser)
func ParseFeedSource(kind, userID string) (FeedSource, error) {
	switch FeedKind(kind) {
	case "", FeedGlobal:
		return FeedSource{Kind: FeedGlobal}, nil
	case FeedMine, FeedSaved:
		return FeedSource{Kind: FeedKind(kind)}, nil
	case FeedUser:
		if userID == "" {
			return FeedSource{}, fmt.Errorf("user feed requires a user id")
		}
		return FeedSource{Kind: FeedUser, UserID: userID}, nil
	}
	return FeedSource{}, fmt.Errorf("unknown feed %q (use global, me, saved or user)", kind)
}

// Path returns the endpoint path for the source
func (s FeedSource) Path() string {
	switch s.Kind {
	case FeedMine:
		return "/feed/me"
	case FeedSaved:
		return "/feed/me/saved"
	case FeedUser:
		return "/feed/user/" + pathID(s.UserID)
	default:
		return "/feed"
	}
}

func (s FeedSource) String() string {
	if s.Kind == FeedUser {
		return "user:" + s.UserID
	}
	if s.Kind == "" {
		return string(FeedGlobal)
	}
	return string(s.Kind)
}

// GetFeed fetches one raw page of a feed. Zero limit or offset is left out
// of the query so the backend defaults apply.
func (b *Backend) GetFeed(ctx context.Context, src FeedSource, limit, offset int) (*FeedResponse, error) {
	logger.Debug("Fetching feed", "feed", src.String(), "limit", limit, "offset", offset)

	var resp FeedResponse
	if err := b.http.Get(ctx, src.Path(), pageQuery(limit, offset), &resp); err != nil {
		return nil, err
	}

	logger.Debug("Feed page received", "feed", src.String(), "items", len(resp.Items), "total", resp.Total)
	return &resp, nil
}
