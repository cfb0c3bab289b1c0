// Package apiclient calls the storefront's JSON endpoints and checks the shape
// of what comes back.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/themizzi/saucesuite/internal/logging"
)

// Client talks to the storefront API
type Client interface {
	Products(ctx context.Context) (*Response, error)
	Login(ctx context.Context, username, password string) (*Response, error)
}

// HTTPClient implements Client over net/http
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	log        *logrus.Entry
}

// New creates a client for the storefront at baseURL
func New(baseURL string, timeout time.Duration, log logrus.FieldLogger) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        logging.Category(log, "api"),
	}
}

// Response is a raw API response; the checks in this package interpret it
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// LoginRequest is the /api/login payload
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Products fetches GET /api/product
func (c *HTTPClient) Products(ctx context.Context) (*Response, error) {
	return c.do(ctx, http.MethodGet, "/api/product", nil)
}

// Login posts credentials to /api/login
func (c *HTTPClient) Login(ctx context.Context, username, password string) (*Response, error) {
	reqBody, err := json.Marshal(LoginRequest{Username: username, Password: password})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}
	return c.do(ctx, http.MethodPost, "/api/login", reqBody)
}

func (c *HTTPClient) do(ctx context.Context, method, path string, body []byte) (*Response, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	c.log.WithField("method", method).WithField("path", path).WithField("status", resp.StatusCode).Debug("api call")
	return &Response{StatusCode: resp.StatusCode, Header: resp.Header, Body: respBody}, nil
}
