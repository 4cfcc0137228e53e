package graphql

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/jamesprial/unraid-cli/internal/config"
)

const (
	defaultTimeout = 15 * time.Second
	maxRedirects   = 5
)

// Session is a long-lived client for the Unraid GraphQL API. It is
// constructed once per process; the endpoint and header set are mutated
// only by redirect discovery during construction and are read-only
// afterwards.
type Session struct {
	httpClient *http.Client
	baseURL    string
	endpoint   string
	headers    http.Header
	logger     *zap.Logger
}

// Option modifies a Session during construction.
type Option func(*Session)

// WithLogger sets the logger used for discovery diagnostics. The default
// is a nop logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Session) {
		s.logger = l
	}
}

// WithHTTPClient specifies the underlying http.Client to use when making
// requests.
func WithHTTPClient(c *http.Client) Option {
	return func(s *Session) {
		s.httpClient = c
	}
}

// NewSession constructs a Session from the provided ServerConfig. Unless
// cfg.Direct is set, it probes the base address once for an HTTP redirect
// and, if one is found, retargets the session at the redirect location
// and derives Host, Origin, and Referer headers from its authority. A
// probe failure is not fatal: the session falls back to the base address.
func NewSession(cfg config.ServerConfig, opts ...Option) (*Session, error) {
	if cfg.Address == "" {
		return nil, fmt.Errorf("graphql: server address is required")
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("graphql: API key is required")
	}

	timeout := time.Duration(cfg.Timeout) * time.Second
	if cfg.Timeout <= 0 {
		timeout = defaultTimeout
	}

	base := fmt.Sprintf("http://%s:%d", cfg.Address, cfg.Port)

	headers := make(http.Header)
	headers.Set("Content-Type", "application/json")
	headers.Set("Accept", "application/json")
	headers.Set("x-api-key", cfg.APIKey)

	s := &Session{
		baseURL:  base,
		endpoint: base + "/graphql",
		headers:  headers,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.httpClient == nil {
		s.httpClient = &http.Client{
			Timeout:   timeout,
			Transport: insecureTransport(),
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= maxRedirects {
					return errors.Errorf("stopped after %d redirects", maxRedirects)
				}
				return nil
			},
		}
	}

	if !cfg.Direct {
		s.discoverRedirect(timeout)
	}

	return s, nil
}

// Endpoint returns the effective GraphQL endpoint for this session.
func (s *Session) Endpoint() string {
	return s.endpoint
}

// Headers returns a copy of the session's current header set.
func (s *Session) Headers() http.Header {
	return s.headers.Clone()
}

// discoverRedirect sends a single unauthenticated probe to the base
// GraphQL address with redirect-following disabled. A 3xx response with a
// Location header switches the session endpoint to that location and sets
// Host, Origin, and Referer to match the target's authority. Any probe
// failure leaves the session unchanged.
func (s *Session) discoverRedirect(timeout time.Duration) {
	probe := &http.Client{
		Timeout:   timeout,
		Transport: insecureTransport(),
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	resp, err := probe.Get(s.endpoint)
	if err != nil {
		s.logger.Warn("redirect discovery failed, using base endpoint",
			zap.String("endpoint", s.endpoint),
			zap.Error(err),
		)
		return
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 300 || resp.StatusCode >= 400 {
		return
	}

	loc := resp.Header.Get("Location")
	if loc == "" {
		// A redirect status without a target is treated as no redirect.
		return
	}

	s.endpoint = loc
	if u, err := url.Parse(loc); err == nil && u.Host != "" {
		s.headers.Set("Host", u.Host)
		s.headers.Set("Origin", "https://"+u.Host)
		s.headers.Set("Referer", "https://"+u.Host+"/dashboard")
	}

	s.logger.Info("discovered redirect endpoint", zap.String("endpoint", loc))
}

// graphqlRequest is the JSON body shape for a GraphQL HTTP request. The
// variables key is omitted entirely when no variables are supplied.
type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

// Execute sends a GraphQL document to the session endpoint and returns
// the full decoded response body. Each call is attempted exactly once.
//
// Failures are returned as *RequestError values:
//   - connection errors and timeouts carry only a message (ErrTransport)
//   - non-2xx responses carry the status code and raw body (ErrHTTPStatus)
//   - 2xx responses that are not valid JSON carry the raw body (ErrMalformed)
func (s *Session) Execute(ctx context.Context, query string, variables map[string]any) (map[string]any, error) {
	reqBody := graphqlRequest{Query: query}
	if len(variables) > 0 {
		reqBody.Variables = variables
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return nil, errors.Wrap(err, "graphql: encode request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, errors.Wrap(err, "graphql: create request")
	}
	for key, values := range s.headers {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}
	// net/http ignores a Host entry in Header; the request field is
	// authoritative.
	if host := s.headers.Get("Host"); host != "" {
		req.Host = host
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, NewTransportError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, NewTransportError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, NewHTTPStatusError(resp.StatusCode, string(raw))
	}

	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, NewMalformedError(err, string(raw))
	}

	return doc, nil
}

// insecureTransport returns a transport that skips certificate
// verification. The target is typically a local server with a
// self-signed certificate.
func insecureTransport() *http.Transport {
	return &http.Transport{
		TLSClientConfig: &tls.Config{InsecureSkipVerify: true}, // #nosec G402
	}
}
