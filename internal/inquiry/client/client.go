// Package client implements the balance inquiry HTTP client.
// It sends exactly one request per call, never retries, and folds every failure
// into an *inquiry.APIError.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cloud-inquiry-balance-web/internal/config"
	"github.com/cloud-inquiry-balance-web/internal/domain/inquiry"
	"github.com/cloud-inquiry-balance-web/internal/platform/correlation"
)

const (
	// InquiryPath is the backend endpoint for balance inquiries
	InquiryPath = "/api/v1/inquiry"
	// HealthPath is the backend health endpoint
	HealthPath = "/api/v1/health"

	// DefaultTimeout bounds one round trip when the config leaves it unset
	DefaultTimeout = 30 * time.Second

	maxBodyBytes   = 1 << 20
	maxDetailBytes = 512
)

// Client talks to the inquiry backend
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

var _ inquiry.Inquirer = (*Client)(nil)

// New creates a client for the backend described by cfg
func New(logger *slog.Logger, cfg *config.BackendConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return NewWithHTTPClient(logger, cfg.BaseURL, &http.Client{Timeout: timeout})
}

// NewWithHTTPClient creates a client using a caller supplied http.Client
func NewWithHTTPClient(logger *slog.Logger, baseURL string, httpClient *http.Client) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		logger:     logger,
	}
}

// InquiryBalance posts {"account": accountNumber} and returns the decoded payload.
// The account number is sent as given; callers validate it beforehand.
func (c *Client) InquiryBalance(ctx context.Context, accountNumber string) (*inquiry.Response, error) {
	logger := c.requestLogger(ctx).With("account", inquiry.MaskAccountNumber(accountNumber))

	body, err := json.Marshal(inquiry.Request{Account: accountNumber})
	if err != nil {
		logger.Error("Failed to encode inquiry request", "error", err)
		return nil, inquiry.NewClientError(err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, InquiryPath, body)
	if err != nil {
		logger.Error("Failed to build inquiry request", "error", err)
		return nil, inquiry.NewClientError(err)
	}

	payload, err := c.do(logger, req)
	if err != nil {
		return nil, err
	}

	var resp inquiry.Response
	if err := json.Unmarshal(payload, &resp); err != nil {
		logger.Error("Failed to decode inquiry response", "error", err)
		return nil, inquiry.NewMalformedResponseError(fmt.Errorf("decode response: %w", err))
	}

	if err := resp.Validate(); err != nil {
		logger.Warn("Inquiry response failed contract check", "error", err)
		return nil, inquiry.NewMalformedResponseError(err)
	}

	logger.Info("Inquiry completed",
		"status", string(resp.Account.Status),
		"has_customer", resp.Customer != nil,
	)
	return &resp, nil
}

// HealthCheck fetches the backend health payload.
// A body that is not a JSON object is returned under the "status" key: JSON scalars and
// arrays decoded, anything else as trimmed text.
func (c *Client) HealthCheck(ctx context.Context) (inquiry.HealthStatus, error) {
	logger := c.requestLogger(ctx)

	req, err := c.newRequest(ctx, http.MethodGet, HealthPath, nil)
	if err != nil {
		logger.Error("Failed to build health request", "error", err)
		return nil, inquiry.NewClientError(err)
	}

	payload, err := c.do(logger, req)
	if err != nil {
		return nil, err
	}
	return decodeHealth(payload), nil
}

func decodeHealth(payload []byte) inquiry.HealthStatus {
	var status inquiry.HealthStatus
	if err := json.Unmarshal(payload, &status); err == nil && status != nil {
		return status
	}

	var value any
	if err := json.Unmarshal(payload, &value); err == nil && value != nil {
		return inquiry.HealthStatus{"status": value}
	}
	return inquiry.HealthStatus{"status": strings.TrimSpace(string(payload))}
}

func (c *Client) requestLogger(ctx context.Context) *slog.Logger {
	logger := c.logger
	if id := correlation.FromContext(ctx); id != "" {
		logger = logger.With("correlation_id", id)
	}
	return logger
}

// newRequest builds a request against the base URL. Any failure here means nothing was sent.
func (c *Client) newRequest(ctx context.Context, method, path string, body []byte) (*http.Request, error) {
	base, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid backend base URL: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("invalid backend base URL %q: scheme must be http or https", c.baseURL)
	}
	if base.Host == "" {
		return nil, fmt.Errorf("invalid backend base URL %q: missing host", c.baseURL)
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if id := correlation.FromContext(ctx); id != "" {
		req.Header.Set(correlation.Header, id)
	}

	return req, nil
}

// do sends req once and returns the body of a 2xx response.
// Errors are normalized: server envelope or no response (503).
func (c *Client) do(logger *slog.Logger, req *http.Request) ([]byte, error) {
	start := time.Now()
	logger.Debug("Sending backend request", "method", req.Method, "path", req.URL.Path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Error("No response from backend",
			"method", req.Method,
			"path", req.URL.Path,
			"latency", time.Since(start),
			"error", err,
		)
		return nil, inquiry.NewUnavailableError()
	}
	defer func() {
		// drain so the connection can be reused
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		logger.Error("Failed to read backend response", "status", resp.StatusCode, "error", err)
		return nil, inquiry.NewUnavailableError()
	}

	logger.Debug("Backend responded",
		"method", req.Method,
		"path", req.URL.Path,
		"status", resp.StatusCode,
		"latency", time.Since(start),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := decodeErrorBody(resp.StatusCode, payload)
		logger.Warn("Backend returned an error",
			"status", resp.StatusCode,
			"response_code", apiErr.ResponseCode,
			"response_message", apiErr.ResponseMessage,
		)
		return nil, apiErr
	}

	return payload, nil
}

// decodeErrorBody returns the server envelope's code, message and error fields;
// a numeric response_code is kept as its decimal text and other fields are dropped.
// Bodies that are not an envelope are described by the HTTP status instead.
func decodeErrorBody(statusCode int, payload []byte) *inquiry.APIError {
	var envelope inquiry.APIError
	if err := json.Unmarshal(payload, &envelope); err == nil &&
		(envelope.ResponseCode != "" || envelope.ResponseMessage != "") {
		return &envelope
	}

	return &inquiry.APIError{
		ResponseCode:    strconv.Itoa(statusCode),
		ResponseMessage: http.StatusText(statusCode),
		Detail:          truncate(strings.TrimSpace(string(payload)), maxDetailBytes),
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// IsUnavailable reports whether err is the synthesized no-response error
func IsUnavailable(err error) bool {
	var apiErr *inquiry.APIError
	return errors.As(err, &apiErr) && apiErr.ResponseCode == inquiry.CodeUnavailable &&
		apiErr.Detail == inquiry.DetailNoResponse
}
