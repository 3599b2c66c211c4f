package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rotisserie/eris"
)

const (
	openaiBaseURL   = "https://api.openai.com/v1"
	deepseekBaseURL = "https://api.deepseek.com/v1"
	defaultModel    = "gpt-4o-mini"
)

// ErrNotConfigured is returned when the client was built with provider
// "none" or without credentials. Callers with a deterministic fallback
// branch on it via IsNotConfigured.
var ErrNotConfigured = eris.New("llm: not configured")

// IsNotConfigured reports whether err stems from a missing provider or
// credentials rather than a failed remote call.
func IsNotConfigured(err error) bool {
	return eris.Is(err, ErrNotConfigured)
}

// Client performs chat completions against an OpenAI-compatible API.
type Client interface {
	ChatCompletion(ctx context.Context, req ChatCompletionRequest) (string, error)
}

// ChatCompletionRequest is the request body for POST /chat/completions.
type ChatCompletionRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature *float64  `json:"temperature,omitempty"`
	MaxTokens   *int      `json:"max_tokens,omitempty"`
}

// Message represents a single message in the conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
}

// Option configures the client.
type Option func(*httpClient)

// WithBaseURL overrides the provider's default API base URL.
func WithBaseURL(url string) Option {
	return func(c *httpClient) {
		if url != "" {
			c.baseURL = url
		}
	}
}

// WithModel overrides the default model.
func WithModel(model string) Option {
	return func(c *httpClient) {
		if model != "" {
			c.model = model
		}
	}
}

// WithTimeout overrides the default request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *httpClient) {
		c.http.Timeout = d
	}
}

// WithHTTPClient overrides the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *httpClient) {
		c.http = hc
	}
}

type httpClient struct {
	provider string
	apiKey   string
	baseURL  string
	model    string
	http     *http.Client
}

// NewClient creates a chat-completion client for the given provider
// (none|openai|deepseek|custom). Provider "none" yields a client whose
// calls fail with ErrNotConfigured, keeping offline mode explicit.
func NewClient(provider, apiKey string, opts ...Option) Client {
	c := &httpClient{
		provider: strings.ToLower(strings.TrimSpace(provider)),
		apiKey:   apiKey,
		model:    defaultModel,
		http: &http.Client{
			Timeout: 60 * time.Second,
			Transport: &http.Transport{
				MaxIdleConnsPerHost: 20,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
	switch c.provider {
	case "openai":
		c.baseURL = openaiBaseURL
	case "deepseek":
		c.baseURL = deepseekBaseURL
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *httpClient) ChatCompletion(ctx context.Context, req ChatCompletionRequest) (string, error) {
	if c.provider == "" || c.provider == "none" {
		return "", eris.Wrap(ErrNotConfigured, "llm: provider=none (offline mode)")
	}
	if c.baseURL == "" {
		return "", eris.Wrap(ErrNotConfigured, "llm: missing base URL for custom provider")
	}
	if c.apiKey == "" {
		return "", eris.Wrap(ErrNotConfigured, "llm: missing API key")
	}

	if req.Model == "" {
		req.Model = c.model
	}

	body, err := json.Marshal(req)
	if err != nil {
		return "", eris.Wrap(err, "llm: marshal request")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, strings.TrimSuffix(c.baseURL, "/")+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", eris.Wrap(err, "llm: create request")
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return "", eris.Wrap(err, "llm: send request")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", eris.Wrap(err, "llm: read response")
	}

	if resp.StatusCode != http.StatusOK {
		return "", eris.Errorf("llm: unexpected status %d: %s", resp.StatusCode, truncate(string(respBody), 400))
	}

	var result chatCompletionResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", eris.Wrap(err, "llm: unmarshal response")
	}
	if len(result.Choices) == 0 {
		return "", eris.Errorf("llm: empty choices in response: %s", truncate(string(respBody), 400))
	}

	return result.Choices[0].Message.Content, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
