package directory

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"userdir/internal/jsonutil"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// DefaultEndpoint is the users collection fetched when none is configured.
const DefaultEndpoint = "https://jsonplaceholder.typicode.com/users"

// ErrFetchFailed is returned when the endpoint answers with a non-success status.
var ErrFetchFailed = errors.New("failed to fetch users")

// Fetcher loads the users collection.
type Fetcher interface {
	FetchUsers(ctx context.Context) ([]User, error)
}

// Client fetches the users collection over HTTP.
type Client struct {
	endpoint string
	http     *http.Client
	tracer   trace.Tracer
	logger   *slog.Logger
}

// Ensure Client implements Fetcher.
var _ Fetcher = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTracer sets the tracer that records the fetch span.
func WithTracer(t trace.Tracer) Option {
	return func(c *Client) {
		if t != nil {
			c.tracer = t
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewClient creates a client for the given endpoint. An empty endpoint means
// DefaultEndpoint. The default HTTP client has no timeout.
func NewClient(endpoint string, opts ...Option) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	c := &Client{
		endpoint: endpoint,
		http:     &http.Client{},
		tracer:   noop.NewTracerProvider().Tracer("userdir/directory"),
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Endpoint returns the URL the client reads from.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// FetchUsers issues a single GET against the endpoint and decodes the body as
// a JSON array of users. Any non-2xx status yields an error wrapping
// ErrFetchFailed.
func (c *Client) FetchUsers(ctx context.Context) (users []User, err error) {
	ctx, span := c.tracer.Start(ctx, "directory.FetchUsers",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("http.url", c.endpoint)),
	)
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else {
			span.SetAttributes(attribute.Int("userdir.user_count", len(users)))
		}
		span.End()
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	c.logger.Debug("fetching users", slog.String("endpoint", c.endpoint))
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("fetch users", slog.Any("error", err))
		return nil, err
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warn("fetch users: unexpected status", slog.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("%w: %s", ErrFetchFailed, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read users: %w", err)
	}
	users, err = jsonutil.UnmarshalArrayAllowEmpty[User](body, "decode users")
	if err != nil {
		return nil, err
	}
	c.logger.Info("fetched users", slog.Int("count", len(users)))
	return users, nil
}
