package rest

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/kbukum/fidor/httpclient"
)

// Client sends JSON bodies to the API and decodes JSON replies.
type Client struct {
	http *httpclient.Client
}

// New creates a REST client. Requests default to a JSON content type.
func New(cfg httpclient.Config, opts ...httpclient.Option) (*Client, error) {
	if cfg.Headers == nil {
		cfg.Headers = make(map[string]string)
	}
	if _, ok := cfg.Headers["Content-Type"]; !ok {
		cfg.Headers["Content-Type"] = "application/json"
	}

	c, err := httpclient.New(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Client{http: c}, nil
}

// RequestOption configures a single request.
type RequestOption func(*httpclient.Request)

// WithQuery merges params into the request query string.
func WithQuery(params map[string]string) RequestOption {
	return func(r *httpclient.Request) {
		if len(params) == 0 {
			return
		}
		if r.Query == nil {
			r.Query = make(map[string]string, len(params))
		}
		for k, v := range params {
			r.Query[k] = v
		}
	}
}

// Response is a decoded reply.
type Response[T any] struct {
	StatusCode int
	Headers    map[string]string
	// Data is Raw decoded as T.
	Data T
	Raw  []byte
}

// Get reads path and decodes the reply into T.
func Get[T any](ctx context.Context, c *Client, path string, opts ...RequestOption) (*Response[T], error) {
	return do[T](ctx, c, http.MethodGet, path, nil, opts...)
}

// Post creates a resource under path.
func Post[T any](ctx context.Context, c *Client, path string, body any, opts ...RequestOption) (*Response[T], error) {
	return do[T](ctx, c, http.MethodPost, path, body, opts...)
}

// Patch updates the resource at path with the attributes in body.
func Patch[T any](ctx context.Context, c *Client, path string, body any, opts ...RequestOption) (*Response[T], error) {
	return do[T](ctx, c, http.MethodPatch, path, body, opts...)
}

func do[T any](ctx context.Context, c *Client, method, path string, body any, opts ...RequestOption) (*Response[T], error) {
	req := httpclient.Request{Method: method, Path: path, Body: body}
	for _, opt := range opts {
		opt(&req)
	}

	resp, err := c.http.Do(ctx, req)
	if err != nil {
		// rejections carry an error body the caller may want
		if resp == nil {
			return nil, err
		}
		out, decErr := decode[T](resp)
		if decErr != nil {
			return nil, err
		}
		return out, err
	}

	out, err := decode[T](resp)
	if err != nil {
		return nil, &DecodeError{StatusCode: resp.StatusCode, Body: resp.Body, Err: err}
	}
	return out, nil
}

// decode unmarshals resp.Body into T; an empty body yields T's zero value.
func decode[T any](resp *httpclient.Response) (*Response[T], error) {
	out := &Response[T]{StatusCode: resp.StatusCode, Headers: resp.Headers, Raw: resp.Body}
	if len(resp.Body) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(resp.Body, &out.Data); err != nil {
		return nil, err
	}
	return out, nil
}
