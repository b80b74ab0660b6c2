package api

import (
	"context"

	"github.com/sense-social/sense/cli/pkg/client"
	"github.com/sense-social/sense/cli/pkg/logger"
)

type ComposeRequest struct {
	Query    string                 `json:"query"`
	Metadata map[string]interface{} `json:"metadata"`
}

type ComposeResponse struct {
	Response string `json:"response"`
}

// Composer talks to the writing assistant, which lives on its own base URL
type Composer struct {
	http *client.Client
}

// NewComposer wraps a client pointed at the assistant
func NewComposer(c *client.Client) *Composer {
	return &Composer{http: c}
}

// Compose asks the assistant for a draft
func (c *Composer) Compose(ctx context.Context, query string) (string, error) {
	logger.Debug("Composing draft", "query_len", len(query))

	var resp ComposeResponse
	req := ComposeRequest{Query: query, Metadata: map[string]interface{}{}}
	if err := c.http.Post(ctx, "/api/compose", req, &resp); err != nil {
		return "", err
	}
	return resp.Response, nil
}
