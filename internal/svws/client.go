// Package svws is the HTTP client for the school-information server.
//
// All calls use HTTP basic auth over TLS. Demo servers run with
// self-signed certificates, so verification is disabled. Failures carry
// the server-provided message truncated to a line-friendly length.
package svws

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/conn-castle/mockfactory/internal/config"
	"github.com/conn-castle/mockfactory/internal/messages"
)

const (
	readTimeout  = 10 * time.Second
	writeTimeout = 20 * time.Second
	patchTimeout = 30 * time.Second

	// maxErrorMessageLen bounds server error text in progress lines.
	maxErrorMessageLen = 120
)

// APIError is a non-success response from the school server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("HTTP %d - %s", e.StatusCode, e.Message)
}

// IsConflict reports whether err is a server rejection of a duplicate
// resource (the class-name collision case).
func IsConflict(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusConflict
}

// Client talks to one school schema on one server.
type Client struct {
	baseURL  string
	schema   string
	username string
	password string

	readClient  *http.Client
	writeClient *http.Client
	patchClient *http.Client
}

// NewClient builds a client from the run configuration.
func NewClient(cfg *config.Config) *Client {
	transport := &http.Transport{
		TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
	}
	return &Client{
		baseURL:     fmt.Sprintf("https://%s:%d", cfg.Server, cfg.HTTPSPort),
		schema:      cfg.Schema,
		username:    cfg.Username,
		password:    cfg.Password,
		readClient:  &http.Client{Timeout: readTimeout, Transport: transport},
		writeClient: &http.Client{Timeout: writeTimeout, Transport: transport},
		patchClient: &http.Client{Timeout: patchTimeout, Transport: transport},
	}
}

// BaseURL returns the server address the client targets.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// do issues one request and decodes a JSON response into out (skipped
// when out is nil). Non-2xx responses become *APIError.
func (c *Client) do(ctx context.Context, client *http.Client, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf(messages.SvwsCreateRequestErrFmt, err)
		}
		reader = bytes.NewReader(data)
	}

	url := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf(messages.SvwsCreateRequestErrFmt, err)
	}
	req.SetBasicAuth(c.username, c.password)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf(messages.SvwsRequestFailedFmt, method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    readErrorMessage(resp.Body),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf(messages.SvwsDecodeResponseFmt, path, err)
	}
	return nil
}

// readErrorMessage extracts the server's error text, preferring the
// "message" field of a JSON body and truncating the result.
func readErrorMessage(body io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(body, 4096))
	if err != nil || len(data) == 0 {
		return ""
	}
	var payload struct {
		Message string `json:"message"`
	}
	text := string(data)
	if err := json.Unmarshal(data, &payload); err == nil && payload.Message != "" {
		text = payload.Message
	}
	return truncate(text, maxErrorMessageLen)
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit]
}
