package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	json "github.com/json-iterator/go"
	"github.com/sense-social/sense/cli/pkg/logger"
)

const userAgent = "Sense-CLI/0.1.0"

// TokenSource yields the bearer token to attach, or "" for none
type TokenSource interface {
	Token() string
}

type noToken struct{}

func (noToken) Token() string { return "" }

// Options configures a Client
type Options struct {
	BaseURL string
	// Timeout of zero leaves requests bounded only by their context
	Timeout   time.Duration
	Tokens    TokenSource
	Transport http.RoundTripper
}

// File is one part of a multipart request
type File struct {
	Param  string
	Name   string
	Reader io.Reader
}

// RequestOptions describes a single call
type RequestOptions struct {
	Query    map[string]string
	Body     interface{}
	Files    []File
	FormData map[string]string
}

// Client issues authenticated JSON requests to the Sense backend
type Client struct {
	http   *resty.Client
	tokens TokenSource
}

// New creates a client. No retries are configured.
func New(opts Options) *Client {
	httpClient := resty.New()
	httpClient.SetBaseURL(opts.BaseURL)
	httpClient.SetHeader("User-Agent", userAgent)
	if opts.Timeout > 0 {
		httpClient.SetTimeout(opts.Timeout)
	}
	if opts.Transport != nil {
		httpClient.SetTransport(opts.Transport)
	}

	httpClient.OnBeforeRequest(func(c *resty.Client, req *resty.Request) error {
		req.Header.Set("X-Request-ID", uuid.NewString())
		logger.Debug("HTTP Request", "method", req.Method, "url", req.URL)
		return nil
	})

	httpClient.OnAfterResponse(func(c *resty.Client, resp *resty.Response) error {
		logger.Debug("HTTP Response", "status", resp.StatusCode(), "url", resp.Request.URL, "duration", resp.Time())
		return nil
	})

	tokens := opts.Tokens
	if tokens == nil {
		tokens = noToken{}
	}

	return &Client{http: httpClient, tokens: tokens}
}

// BaseURL returns the root every endpoint is resolved against
func (c *Client) BaseURL() string {
	return c.http.BaseURL
}

// Do performs the request and returns the raw response body. Any status
// outside 2xx becomes a *RequestError.
func (c *Client) Do(ctx context.Context, method, endpoint string, opts RequestOptions) ([]byte, error) {
	req := c.http.R().SetContext(ctx)

	if len(opts.Query) > 0 {
		req.SetQueryParams(opts.Query)
	}

	if len(opts.Files) > 0 {
		// resty sets the multipart content type and boundary itself
		for _, f := range opts.Files {
			req.SetFileReader(f.Param, f.Name, f.Reader)
		}
		if len(opts.FormData) > 0 {
			req.SetFormData(opts.FormData)
		}
	} else {
		req.SetHeader("Content-Type", "application/json")
		if opts.Body != nil {
			data, err := json.Marshal(opts.Body)
			if err != nil {
				return nil, fmt.Errorf("encode request body: %w", err)
			}
			req.SetBody(data)
		}
	}

	if token := c.tokens.Token(); token != "" {
		req.SetAuthToken(token)
	}

	resp, err := req.Execute(method, endpoint)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, endpoint, err)
	}

	if !resp.IsSuccess() {
		return nil, ParseError(resp)
	}

	return resp.Body(), nil
}

// JSON performs the request and decodes a non-empty body into out
func (c *Client) JSON(ctx context.Context, method, endpoint string, opts RequestOptions, out interface{}) error {
	body, err := c.Do(ctx, method, endpoint, opts)
	if err != nil {
		return err
	}
	if out == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode %s response: %w", endpoint, err)
	}
	return nil
}

// Get is JSON with GET
func (c *Client) Get(ctx context.Context, endpoint string, query map[string]string, out interface{}) error {
	return c.JSON(ctx, http.MethodGet, endpoint, RequestOptions{Query: query}, out)
}

// Post is JSON with POST
func (c *Client) Post(ctx context.Context, endpoint string, body, out interface{}) error {
	return c.JSON(ctx, http.MethodPost, endpoint, RequestOptions{Body: body}, out)
}

// Put is JSON with PUT
func (c *Client) Put(ctx context.Context, endpoint string, body, out interface{}) error {
	return c.JSON(ctx, http.MethodPut, endpoint, RequestOptions{Body: body}, out)
}

// Delete is JSON with DELETE
func (c *Client) Delete(ctx context.Context, endpoint string, out interface{}) error {
	return c.JSON(ctx, http.MethodDelete, endpoint, RequestOptions{}, out)
}
