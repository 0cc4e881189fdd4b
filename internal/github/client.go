package github

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/akyairhashvil/contribcheck/internal/models"
	"go.uber.org/zap"
)

// Doer performs one HTTP exchange. *http.Client satisfies it.
//
//go:generate mockgen -source=client.go -destination=mock_doer_test.go -package=github
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client fetches contribution calendars. It never retries.
type Client struct {
	endpoint  string
	token     string
	userAgent string
	doer      Doer
	logger    *zap.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithDoer replaces the HTTP transport.
func WithDoer(d Doer) ClientOption {
	return func(c *Client) { c.doer = d }
}

// WithLogger attaches a logger.
func WithLogger(l *zap.Logger) ClientOption {
	return func(c *Client) { c.logger = l }
}

// WithUserAgent sets the client identifier header.
func WithUserAgent(ua string) ClientOption {
	return func(c *Client) { c.userAgent = ua }
}

// NewClient returns a client for endpoint. The default transport is an
// http.Client without a timeout of its own.
func NewClient(endpoint, token string, opts ...ClientOption) *Client {
	c := &Client{
		endpoint:  endpoint,
		token:     token,
		userAgent: "contribcheck",
		doer:      &http.Client{},
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchCalendar runs the calendar query for login. Errors are one of
// *TransportError, *ParseError, *APIError or *MissingDataError.
func (c *Client) FetchCalendar(ctx context.Context, login string) (models.ContributionCalendar, error) {
	payload, err := json.Marshal(BuildQuery(login))
	if err != nil {
		return models.ContributionCalendar{}, fmt.Errorf("encode query: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return models.ContributionCalendar{}, &TransportError{Err: err}
	}
	req.Header.Set("Authorization", "bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	start := time.Now()
	resp, err := c.doer.Do(req)
	if err != nil {
		c.logger.Warn("graphql request failed", zap.String("login", login), zap.Error(err))
		return models.ContributionCalendar{}, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.ContributionCalendar{}, &TransportError{Err: err}
	}
	c.logger.Debug("graphql response",
		zap.String("login", login),
		zap.Int("status", resp.StatusCode),
		zap.Int("bytes", len(body)),
		zap.Duration("elapsed", time.Since(start)))

	return ParseEnvelope(body)
}
