package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"flexzone/pkg/httpclient"
	"flexzone/pkg/logger"
	"flexzone/pkg/tracing"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.uber.org/zap"
)

// TokenSource supplies the bearer token for each request
type TokenSource interface {
	GetToken() string
}

// Client handles communication with the gym backend
type Client struct {
	// Base URL of the backend, without a trailing slash
	BaseURL string

	// HTTP client without a timeout
	client httpclient.Client

	// Source of the bearer token, read on every request
	tokens TokenSource
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(client httpclient.Client) Option {
	return func(c *Client) {
		c.client = client
	}
}

// NewClient creates a new API client. tokens may be nil for unauthenticated use.
func NewClient(baseURL string, tokens TokenSource, opts ...Option) *Client {
	c := &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		client:  httpclient.NewStandardClient(),
		tokens:  tokens,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Do issues a request against a path relative to the base URL. A non-nil body
// is sent as JSON and override headers are applied last. It returns the body of
// a 2xx response, a *NetworkError when no response arrived, or an *HTTPError.
func (c *Client) Do(ctx context.Context, method, path string, body interface{}, headers http.Header) ([]byte, error) {
	requestID := uuid.NewString()
	ctx, span := tracing.StartSpan(ctx, method+" "+path,
		attribute.String("http.request.method", method),
		attribute.String("url.path", path),
		attribute.String("request.id", requestID),
	)
	defer span.End()

	var reader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("error marshalling request: %w", err)
		}
		reader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if token := c.tokens.GetToken(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	for key, values := range headers {
		req.Header.Del(key)
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}
	tracing.Inject(ctx, propagation.HeaderCarrier(req.Header))

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		logger.LogAPICall(method, path, 0, time.Since(start).Seconds(),
			zap.String("request_id", requestID), zap.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "transport failure")
		return nil, &NetworkError{Method: method, Path: path, Err: err}
	}
	defer func(Body io.ReadCloser) {
		err := Body.Close()
		if err != nil {
			logger.Warn("Failed to close response body", zap.Error(err))
		}
	}(resp.Body)

	logger.LogAPICall(method, path, resp.StatusCode, time.Since(start).Seconds(),
		zap.String("request_id", requestID))
	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "body read failure")
		return nil, &NetworkError{Method: method, Path: path, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		span.SetStatus(codes.Error, http.StatusText(resp.StatusCode))
		return nil, &HTTPError{Method: method, Path: path, Status: resp.StatusCode, Body: responseBody}
	}

	return responseBody, nil
}

// doJSON runs Do and decodes a successful body into out
func (c *Client) doJSON(ctx context.Context, method, path string, body, out interface{}) error {
	responseBody, err := c.Do(ctx, method, path, body, nil)
	if err != nil {
		return err
	}
	if out == nil || len(bytes.TrimSpace(responseBody)) == 0 {
		return nil
	}
	if err := json.Unmarshal(responseBody, out); err != nil {
		return fmt.Errorf("error decoding response: %w", err)
	}
	return nil
}
