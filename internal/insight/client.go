package insight

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Configuration defaults for the chat completions client.
const (
	// DefaultBaseURL is the OpenAI-compatible API root.
	DefaultBaseURL = "https://api.openai.com/v1"

	// DefaultModel is the model used for all insight prompts.
	DefaultModel = "openai/gpt-4o-mini"

	// DefaultTimeout bounds a single completion request.
	DefaultTimeout = 60 * time.Second

	// maxResponseSize caps the response body read to keep a misbehaving
	// endpoint from exhausting memory.
	maxResponseSize = 1 << 20 // 1MB
)

var (
	// ErrNotConfigured indicates the client has no API key.
	ErrNotConfigured = errors.New("text generation not configured: missing API key")

	// ErrEmptyCompletion indicates the service answered 2xx but returned
	// no usable completion text.
	ErrEmptyCompletion = errors.New("completion response contained no choices")
)

// APIError represents a non-success response from the completions endpoint.
type APIError struct {
	Status  int
	Message string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("completions API error (HTTP %d): %s", e.Status, e.Message)
	}
	return fmt.Sprintf("completions API error (HTTP %d)", e.Status)
}

// chatMessage is a single message in a chat completion request.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatRequest is the request body for the chat completions endpoint.
type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

// chatResponse is the subset of the completions response we consume.
type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// apiErrorResponse is the error body shape of OpenAI-compatible endpoints.
type apiErrorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Client is an OpenAI-compatible chat completions client implementing
// Generator. Each Generate call is a single attempt; there is no retry
// or backoff, matching the dashboard's one-shot insight requests.
type Client struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithBaseURL points the client at a different API root. Useful for
// OpenAI-compatible gateways and for tests.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) { c.baseURL = strings.TrimRight(baseURL, "/") }
}

// WithModel overrides the default model.
func WithModel(model string) ClientOption {
	return func(c *Client) {
		if model != "" {
			c.model = model
		}
	}
}

// WithTimeout overrides the default request timeout.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// NewClient creates a completions client with the given API key.
// An empty key yields a client whose Generate always fails with
// ErrNotConfigured, which downstream requesters turn into fallbacks.
func NewClient(apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		apiKey:  strings.TrimSpace(apiKey),
		baseURL: DefaultBaseURL,
		model:   DefaultModel,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ Generator = (*Client)(nil)

// Generate sends prompt as a single user message and returns the first
// choice's content.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", ErrNotConfigured
	}

	body, err := json.Marshal(chatRequest{
		Model:    c.model,
		Messages: []chatMessage{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build completion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return "", fmt.Errorf("failed to read completion response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr apiErrorResponse
		// Best effort: the error body may not be JSON at all.
		_ = json.Unmarshal(raw, &apiErr)
		return "", &APIError{Status: resp.StatusCode, Message: apiErr.Error.Message}
	}

	var parsed chatResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("failed to decode completion response: %w", err)
	}
	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		return "", ErrEmptyCompletion
	}
	return parsed.Choices[0].Message.Content, nil
}
