package clockify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Honeyfield-Org/clockify-mcp/internal/output"
)

// DefaultUserAgent is sent when WithUserAgent is not used.
const DefaultUserAgent = "clockify-mcp"

// defaultTimeout bounds every request made through the default HTTP client.
const defaultTimeout = 30 * time.Second

// HTTPDoer defines the HTTP operations required by Client.
// This allows injection of test doubles for testing.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Config is the static configuration a Client is built from.
type Config struct {
	APIKey      string
	Region      Region
	WorkspaceID string // optional default workspace for GetCurrentWorkspace
}

// Option customizes a Client.
type Option func(*clientOptions)

type clientOptions struct {
	httpClient HTTPDoer
	apiURL     string
	reportsURL string
	userAgent  string
}

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(doer HTTPDoer) Option {
	return func(o *clientOptions) { o.httpClient = doer }
}

// WithBaseURLs overrides the region's base URLs. Empty values keep the
// region default.
func WithBaseURLs(apiURL, reportsURL string) Option {
	return func(o *clientOptions) {
		if apiURL != "" {
			o.apiURL = apiURL
		}
		if reportsURL != "" {
			o.reportsURL = reportsURL
		}
	}
}

// WithUserAgent sets the User-Agent header sent on every request.
func WithUserAgent(userAgent string) Option {
	return func(o *clientOptions) { o.userAgent = userAgent }
}

// Client talks to the Clockify entity and reports APIs.
// It is safe for concurrent use.
type Client struct {
	api         *transport
	reports     *transport
	region      Region
	workspaceID string
	now         func() time.Time
}

// New builds a Client. It performs no network I/O.
func New(cfg Config, opts ...Option) (*Client, error) {
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil, output.NewConfigError("API_KEY environment variable not set", ErrMissingAPIKey)
	}

	region := cfg.Region
	if region == "" {
		region = DefaultRegion
	}
	region, err := ParseRegion(string(region))
	if err != nil {
		return nil, output.NewConfigError(err.Error(), err)
	}

	o := clientOptions{
		httpClient: &http.Client{Timeout: defaultTimeout},
		apiURL:     region.APIBaseURL(),
		reportsURL: region.ReportsBaseURL(),
		userAgent:  DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(&o)
	}

	newTransport := func(source, baseURL string) *transport {
		return &transport{
			source:     source,
			baseURL:    strings.TrimRight(baseURL, "/"),
			apiKey:     apiKey,
			userAgent:  o.userAgent,
			httpClient: o.httpClient,
		}
	}

	return &Client{
		api:         newTransport(SourceAPI, o.apiURL),
		reports:     newTransport(SourceReports, o.reportsURL),
		region:      region,
		workspaceID: strings.TrimSpace(cfg.WorkspaceID),
		now:         time.Now,
	}, nil
}

// Region returns the region the client was built for.
func (c *Client) Region() Region {
	return c.region
}

// DefaultWorkspaceID returns the configured default workspace, if any.
func (c *Client) DefaultWorkspaceID() string {
	return c.workspaceID
}

// transport is one base URL plus the shared credentials. Every call goes
// through call, which is the only place errors are normalized.
type transport struct {
	source     string
	baseURL    string
	apiKey     string
	userAgent  string
	httpClient HTTPDoer
}

// call performs one request and returns the 2xx body untouched, or nil when
// the body is empty. Any failure is returned as *APIError.
func (t *transport) call(ctx context.Context, method, path string, query url.Values, body any) (json.RawMessage, error) {
	req, err := t.newRequest(ctx, method, path, query, body)
	if err != nil {
		return nil, &APIError{Source: t.source, Cause: err}
	}

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, &APIError{Source: t.source, Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &APIError{Source: t.source, Cause: fmt.Errorf("reading response: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{
			Source:     t.source,
			StatusCode: resp.StatusCode,
			Message:    errorMessage(resp.StatusCode, data),
		}
	}

	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, nil
	}
	if !json.Valid(data) {
		return nil, &APIError{Source: t.source, Cause: errors.New("decoding response: body is not valid JSON")}
	}
	return json.RawMessage(data), nil
}

// decode reads the few fields the client itself needs out of a raw body.
func (t *transport) decode(data json.RawMessage, out any) error {
	if err := json.Unmarshal(data, out); err != nil {
		return &APIError{Source: t.source, Cause: fmt.Errorf("decoding response: %w", err)}
	}
	return nil
}

func (t *transport) newRequest(ctx context.Context, method, path string, query url.Values, body any) (*http.Request, error) {
	target := t.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("X-Api-Key", t.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", t.userAgent)
	return req, nil
}

// errorMessage prefers the string "message" field of a JSON error body and
// falls back to the HTTP status text.
func errorMessage(statusCode int, body []byte) string {
	var payload struct {
		Message *string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != nil {
		return *payload.Message
	}
	return http.StatusText(statusCode)
}

// endpoint joins path segments, escaping each one.
func endpoint(segments ...string) string {
	var b strings.Builder
	for _, s := range segments {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(s))
	}
	return b.String()
}

// workspacePath returns /workspaces/{ws}/<segments...>.
func workspacePath(workspaceID string, segments ...string) string {
	return endpoint(append([]string{"workspaces", workspaceID}, segments...)...)
}
