// Package authclient sends auth form submissions to the JSON endpoints.
package authclient

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

	"cloudvault/internal/authform"

	"github.com/sirupsen/logrus"
)

const (
	defaultTimeout   = 10 * time.Second
	maxResponseBytes = 1 << 20
)

// Client posts JSON bodies to the auth endpoints under baseURL.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a Client. A non-positive timeout falls back to 10s so that a
// hung endpoint never blocks a submit forever.
func New(baseURL string, timeout time.Duration) (*Client, error) {
	trimmed := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if trimmed == "" {
		return nil, errors.New("authclient: base url must not be empty")
	}
	parsed, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("authclient: parse base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("authclient: unsupported scheme %q", parsed.Scheme)
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:    trimmed,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

type messageBody struct {
	Message string `json:"message"`
}

// PostJSON sends body to path and returns the status with the decoded message.
// A 2xx reply whose body is not JSON still succeeds; a non-2xx reply must
// carry a JSON body.
func (c *Client) PostJSON(ctx context.Context, path string, body any) (*authform.Response, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	target := c.baseURL + "/" + strings.TrimLeft(path, "/")
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"path":   path,
		"status": resp.StatusCode,
	}).Debug("authclient: response received")

	result := &authform.Response{StatusCode: resp.StatusCode}
	var decoded messageBody
	if err := json.Unmarshal(raw, &decoded); err != nil {
		if resp.StatusCode >= 200 && resp.StatusCode <= 299 {
			return result, nil
		}
		return nil, fmt.Errorf("decode response: %w", err)
	}
	result.Message = decoded.Message
	return result, nil
}

var _ authform.Poster = (*Client)(nil)
