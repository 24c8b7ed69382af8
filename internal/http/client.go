// Package http wraps the HTTP transport: it attaches auth and identification
// headers, serializes request bodies, and translates non-2xx responses into
// the typed errors of pkg/fakturoid.
package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/fakturoid-community/fakturoid-go/internal/auth"
	"github.com/fakturoid-community/fakturoid-go/internal/constants"
	"github.com/fakturoid-community/fakturoid-go/pkg/fakturoid"
	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"
)

// Request represents one API request.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Body    interface{}
	RawBody []byte
	Headers map[string]string
}

// Response represents one API response with its body fully read.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Client is the HTTP session shared by all accessors. It holds the base URL,
// the token manager, and the default headers.
type Client struct {
	baseURL      string
	httpClient   *retryablehttp.Client
	tokenManager auth.TokenManager
	userAgent    string
	logger       fakturoid.Logger
	debug        bool
}

// Option configures a Client.
type Option func(*Client)

// WithUserAgent sets the User-Agent header sent on every request.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger fakturoid.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithTimeout bounds every request round trip.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.HTTPClient.Timeout = timeout
	}
}

// WithRetryConfig enables transport-level retries. The default is zero
// retries: the core never retries on its own.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = retryMax
		c.httpClient.RetryWaitMin = waitMin
		c.httpClient.RetryWaitMax = waitMax
	}
}

// NewClient creates a client for the given base URL. tokenManager may be nil
// for unauthenticated requests (tests).
func NewClient(baseURL string, tokenManager auth.TokenManager, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = constants.DefaultRetryMax
	retryClient.RetryWaitMin = constants.DefaultRetryWaitMin
	retryClient.RetryWaitMax = constants.DefaultRetryWaitMax
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout
	retryClient.Logger = nil

	client := &Client{
		baseURL:      baseURL,
		httpClient:   retryClient,
		tokenManager: tokenManager,
		userAgent:    fakturoid.DefaultUserAgent,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Do executes the request and translates error statuses: 404 becomes
// NotFoundError, any other non-2xx becomes APIError with the raw body.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	fullURL := c.baseURL + req.Path
	if len(req.Query) > 0 {
		fullURL += "?" + req.Query.Encode()
	}

	body, err := encodeBody(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	err = c.setHeaders(ctx, httpReq, req, body != nil)
	if err != nil {
		return nil, err
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    fullURL,
		})
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}

	defer func() { _ = httpResp.Body.Close() }()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       respBody,
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"status": resp.StatusCode,
			"url":    fullURL,
		})
	}

	switch {
	case httpResp.StatusCode == http.StatusNotFound:
		return resp, &fakturoid.NotFoundError{URL: fullURL}
	case httpResp.StatusCode >= http.StatusBadRequest:
		return resp, &fakturoid.APIError{
			StatusCode: httpResp.StatusCode,
			URL:        fullURL,
			Body:       string(respBody),
		}
	}

	return resp, nil
}

func encodeBody(req *Request) ([]byte, error) {
	if req.RawBody != nil {
		return req.RawBody, nil
	}

	if req.Body == nil {
		return nil, nil
	}

	data, err := json.Marshal(req.Body)
	if err != nil {
		return nil, fmt.Errorf("marshaling request body: %w", err)
	}

	return data, nil
}

// setHeaders attaches the standard headers. The Authorization header is
// recomputed from the token manager on every request, which transparently
// renews the credential when its renewal point has passed.
func (c *Client) setHeaders(ctx context.Context, httpReq *retryablehttp.Request, req *Request, hasBody bool) error {
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)
	httpReq.Header.Set("X-Request-Id", uuid.NewString())

	if hasBody {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	if c.tokenManager != nil {
		authorization, err := c.tokenManager.Authorization(ctx)
		if err != nil {
			return fmt.Errorf("authenticating request: %w", err)
		}

		httpReq.Header.Set("Authorization", authorization)
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	return nil
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post performs a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

// PostQuery performs a POST request with query parameters and no body.
func (c *Client) PostQuery(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Query: query})
}

// Patch performs a PATCH request with a pre-serialized JSON body.
func (c *Client) Patch(ctx context.Context, path string, rawBody []byte) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPatch, Path: path, RawBody: rawBody})
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path})
}
