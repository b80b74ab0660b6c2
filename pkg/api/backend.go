package api

import (
	"net/url"
	"strconv"

	"github.com/sense-social/sense/cli/pkg/client"
)

// Backend exposes the Sense REST endpoints over a request client
type Backend struct {
	http *client.Client
}

// NewBackend wraps c
func NewBackend(c *client.Client) *Backend {
	return &Backend{http: c}
}

// Client returns the underlying request client
func (b *Backend) Client() *client.Client {
	return b.http
}

func pathID(id string) string {
	return url.PathEscape(id)
}

func pageQuery(limit, offset int) map[string]string {
	q := map[string]string{}
	if limit > 0 {
		q["limit"] = strconv.Itoa(limit)
	}
	if offset > 0 {
		q["offset"] = strconv.Itoa(offset)
	}
	return q
}
