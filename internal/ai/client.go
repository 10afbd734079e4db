// Package ai holds the chat completion client for the upstream LLM
// service (Mistral's OpenAI-compatible API).
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

type ErrorKind string

const (
	// ErrorKindUnreachable covers DNS, TCP, TLS and timeout failures
	// before an HTTP response arrives.
	ErrorKindUnreachable ErrorKind = "unreachable"
	// ErrorKindUpstreamStatus means the upstream answered with a
	// non-success HTTP status.
	ErrorKindUpstreamStatus ErrorKind = "upstream_status"
	// ErrorKindMalformedResponse means a success status whose payload
	// lacks choices[0].message.content.
	ErrorKindMalformedResponse ErrorKind = "malformed_response"
)

type ProxyError struct {
	Kind       ErrorKind
	StatusCode int
	Body       string
	Err        error
}

func (e *ProxyError) Error() string {
	switch e.Kind {
	case ErrorKindUpstreamStatus:
		return fmt.Sprintf("upstream status %d: %s", e.StatusCode, e.Body)
	case ErrorKindMalformedResponse:
		return "upstream response missing message content"
	default:
		return fmt.Sprintf("upstream unreachable: %v", e.Err)
	}
}

func (e *ProxyError) Unwrap() error { return e.Err }

type Config struct {
	BaseURL     string
	APIKey      string
	Model       string
	Temperature float64
	MaxTokens   int
}

type Client struct {
	httpClient *http.Client
	cfg        Config
}

func NewClient(cfg Config, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		cfg:        cfg,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

// Send forwards a single user message as the sole conversation turn
// and returns the assistant's reply text. One attempt, no retries.
func (c *Client) Send(ctx context.Context, message string) (string, error) {
	reqBody := chatRequest{
		Model:       c.cfg.Model,
		Messages:    []chatMessage{{Role: "user", Content: message}},
		Temperature: c.cfg.Temperature,
		MaxTokens:   c.cfg.MaxTokens,
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal llm request failed: %w", err)
	}

	url := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("build llm request failed: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &ProxyError{Kind: ErrorKindUnreachable, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &ProxyError{Kind: ErrorKindUnreachable, Err: err}
	}
	if resp.StatusCode >= 300 {
		return "", &ProxyError{
			Kind:       ErrorKindUpstreamStatus,
			StatusCode: resp.StatusCode,
			Body:       string(raw),
		}
	}

	var parsed struct {
		Choices []struct {
			Message struct {
				Content *string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", &ProxyError{Kind: ErrorKindMalformedResponse, Err: err}
	}
	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == nil {
		return "", &ProxyError{Kind: ErrorKindMalformedResponse}
	}
	return *parsed.Choices[0].Message.Content, nil
}
