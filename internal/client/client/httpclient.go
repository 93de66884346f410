package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/gophaccount/internal/client/models"
	"github.com/dmitrijs2005/gophaccount/internal/common"
	"github.com/dmitrijs2005/gophaccount/internal/logging"
	"github.com/dmitrijs2005/gophaccount/internal/netx"
	"github.com/google/uuid"
)

type HTTPClient struct {
	baseURL      string
	hc           *http.Client
	logger       logging.Logger
	newRequestID func() string
}

// Option customises HTTPClient construction.
type Option func(*HTTPClient)

// WithHTTPClient overrides the underlying *http.Client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *HTTPClient) {
		if h != nil {
			c.hc = h
		}
	}
}

// WithLogger sets the logger used for request diagnostics.
func WithLogger(l logging.Logger) Option {
	return func(c *HTTPClient) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewHTTPClient builds a client for the user service at baseURL. A missing
// scheme defaults to http.
func NewHTTPClient(baseURL string, timeout time.Duration, opts ...Option) (*HTTPClient, error) {
	base := strings.TrimSpace(baseURL)
	if base == "" {
		return nil, fmt.Errorf("api base url is empty")
	}
	if !strings.HasPrefix(base, "http://") && !strings.HasPrefix(base, "https://") {
		base = "http://" + base
	}
	if _, err := url.Parse(base); err != nil {
		return nil, fmt.Errorf("invalid api base url: %w", err)
	}

	c := &HTTPClient{
		baseURL:      strings.TrimRight(base, "/"),
		hc:           &http.Client{Timeout: timeout},
		logger:       logging.Nop(),
		newRequestID: func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *HTTPClient) RegisterUser(ctx context.Context, creds models.Credentials) error {
	resp, err := c.do(ctx, http.MethodPost, "/users/register", creds)
	if err != nil {
		return err
	}
	if !resp.OK() {
		return newStatusError(resp.StatusCode, extractError(resp.Body))
	}
	return nil
}

func (c *HTTPClient) GetUser(ctx context.Context, username string) (*models.User, error) {
	resp, err := c.do(ctx, http.MethodGet, "/users/"+url.PathEscape(username), nil)
	if err != nil {
		return nil, err
	}
	if !resp.OK() {
		return nil, newStatusError(resp.StatusCode, extractError(resp.Body))
	}

	var user models.User
	if err := json.Unmarshal(resp.Body, &user); err != nil {
		return nil, &TransportError{Cause: fmt.Errorf("decode user: %w", err)}
	}
	return &user, nil
}

func (c *HTTPClient) UpdateUser(ctx context.Context, id int64, creds models.Credentials) error {
	resp, err := c.do(ctx, http.MethodPut, "/users/"+strconv.FormatInt(id, 10), creds)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return newStatusError(resp.StatusCode, extractError(resp.Body))
	}
	return nil
}

func (c *HTTPClient) Close() error {
	c.hc.CloseIdleConnections()
	return nil
}

func (c *HTTPClient) do(ctx context.Context, method, path string, body any) (*netx.Response, error) {
	requestID := c.newRequestID()
	header := http.Header{}
	header.Set(common.RequestIDHeaderName, requestID)

	log := c.logger.With("method", method, "path", path, "request_id", requestID)

	start := time.Now()
	resp, err := netx.DoJSON(ctx, c.hc, method, c.baseURL+path, body, header)
	if err != nil {
		log.Warn(ctx, "request failed", "error", err)
		return nil, c.mapError(err)
	}

	log.Debug(ctx, "request done", "status", resp.StatusCode, "elapsed", time.Since(start))
	return resp, nil
}

func (c *HTTPClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	return &TransportError{Cause: err}
}

// extractError pulls {"error": "..."} out of a response body, falling back
// to the trimmed raw text.
func extractError(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return strings.TrimSpace(string(body))
	}
	return strings.TrimSpace(payload.Error)
}
