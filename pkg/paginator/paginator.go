// Package paginator holds the offset cursor and the growing item list of an
// infinitely scrolled feed.
package paginator

import (
	"context"
	"errors"
	"sync"

	"github.com/sense-social/sense/cli/pkg/api"
	"github.com/sense-social/sense/cli/pkg/logger"
)

// State is the paginator's lifecycle state
type State int

const (
	Idle State = iota
	InitialLoading
	Ready
	LoadingMore
	Exhausted
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case InitialLoading:
		return "initial-loading"
	case Ready:
		return "ready"
	case LoadingMore:
		return "loading-more"
	case Exhausted:
		return "exhausted"
	}
	return "unknown"
}

// ErrClosed is returned by loads started after Close
var ErrClosed = errors.New("paginator closed")

// Page is one fetched and enriched page
type Page struct {
	Items []api.Publication
	Total int
}

// PageFunc fetches the page at offset with room for limit items
type PageFunc func(ctx context.Context, limit, offset int) (Page, error)

// ScrollMetrics describes a scrollable view in any unit (pixels, lines)
type ScrollMetrics struct {
	ContentHeight  int
	ScrollPosition int
	ViewportHeight int
}

// NearBottom reports whether the remaining distance below the viewport is
// within threshold.
func NearBottom(m ScrollMetrics, threshold int) bool {
	return m.ContentHeight-(m.ScrollPosition+m.ViewportHeight) <= threshold
}

// Paginator owns the feed list and cursor. It is safe for concurrent use;
// at most one fetch is in flight at any time.
type Paginator struct {
	fetch    PageFunc
	pageSize int

	mu         sync.Mutex
	state      State
	items      []api.Publication
	offset     int
	lastOffset int
	total      int
	hasMore    bool
	err        error
	generation uint64
	closed     bool
}

// New creates an idle paginator
func New(fetch PageFunc, pageSize int) *Paginator {
	if pageSize <= 0 {
		pageSize = 10
	}
	return &Paginator{fetch: fetch, pageSize: pageSize, hasMore: true}
}

// PageSize returns the fixed batch size
func (p *Paginator) PageSize() int {
	return p.pageSize
}

// Load fetches the first page. It is a no-op unless the paginator is idle.
func (p *Paginator) Load(ctx context.Context) error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return ErrClosed
	}
	if p.state != Idle {
		p.mu.Unlock()
		return nil
	}
	p.state = InitialLoading
	p.err = nil
	gen := p.generation
	p.mu.Unlock()

	logger.Debug("Loading first page", "page_size", p.pageSize)
	page, err := p.fetch(ctx, p.pageSize, 0)

	p.mu.Lock()
	defer p.mu.Unlock()
	if gen != p.generation {
		logger.Debug("Discarding stale page", "offset", 0)
		return nil
	}
	if err != nil {
		p.state = Idle
		p.err = err
		return err
	}
	p.apply(page, 0)
	return nil
}

// LoadMore fetches the next page. It returns false without fetching when
// another load is in flight, the feed is exhausted, or nothing was loaded
// yet.
func (p *Paginator) LoadMore(ctx context.Context) (bool, error) {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return false, ErrClosed
	}
	if p.state != Ready || !p.hasMore {
		p.mu.Unlock()
		return false, nil
	}
	p.state = LoadingMore
	p.err = nil
	gen := p.generation
	offset := p.offset
	p.mu.Unlock()

	logger.Debug("Loading more", "offset", offset, "page_size", p.pageSize)
	page, err := p.fetch(ctx, p.pageSize, offset)

	p.mu.Lock()
	defer p.mu.Unlock()
	if gen != p.generation {
		logger.Debug("Discarding stale page", "offset", offset)
		return false, nil
	}
	if err != nil {
		p.state = Ready
		p.err = err
		return true, err
	}
	p.apply(page, offset)
	return true, nil
}

// apply appends a successful page. Caller holds mu.
func (p *Paginator) apply(page Page, offset int) {
	p.items = append(p.items, page.Items...)
	p.lastOffset = offset
	p.offset = offset + p.pageSize
	p.total = page.Total
	p.hasMore = len(page.Items) == p.pageSize
	if p.hasMore {
		p.state = Ready
	} else {
		p.state = Exhausted
	}
	logger.Debug("Page applied", "received", len(page.Items), "held", len(p.items), "next_offset", p.offset, "has_more", p.hasMore)
}

// OnScroll triggers LoadMore when the view is within threshold of the
// bottom. It reports whether a fetch was issued.
func (p *Paginator) OnScroll(ctx context.Context, m ScrollMetrics, threshold int) (bool, error) {
	if !NearBottom(m, threshold) {
		return false, nil
	}
	return p.LoadMore(ctx)
}

// Snapshot returns a copy of the held items. Limit and Offset describe the
// last requested page.
func (p *Paginator) Snapshot() api.Feed {
	p.mu.Lock()
	defer p.mu.Unlock()

	items := make([]api.Publication, len(p.items))
	copy(items, p.items)
	return api.Feed{
		Items:  items,
		Total:  p.total,
		Limit:  p.pageSize,
		Offset: p.lastOffset,
	}
}

// Len returns the number of held items
func (p *Paginator) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.items)
}

// State returns the current state
func (p *Paginator) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// HasMore reports whether another page may exist
func (p *Paginator) HasMore() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.hasMore
}

// Offset returns the offset the next page will be fetched from
func (p *Paginator) Offset() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.offset
}

// Err returns the error of the last failed load, if any
func (p *Paginator) Err() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.err
}

// Loading reports whether a fetch is in flight
func (p *Paginator) Loading() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state == InitialLoading || p.state == LoadingMore
}

// Reset drops all items and returns to Idle. A fetch still in flight is
// discarded when it completes.
func (p *Paginator) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.generation++
	p.state = Idle
	p.items = nil
	p.offset = 0
	p.lastOffset = 0
	p.total = 0
	p.hasMore = true
	p.err = nil
}

// Close discards in-flight results and rejects further loads
func (p *Paginator) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.generation++
	p.closed = true
}
