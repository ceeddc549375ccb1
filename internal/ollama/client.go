// Package ollama is the HTTP transport to a local Ollama server. It sends
// one prompt per call to /api/generate and returns the model's raw text;
// interpreting that text is left to the recipe pipeline.
package ollama

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

	"github.com/hammamikhairi/recipestudio/internal/domain"
	"github.com/hammamikhairi/recipestudio/internal/logger"
)

// Defaults match a stock local Ollama install.
const (
	DefaultEndpoint    = "http://127.0.0.1:11434"
	DefaultModel       = "tinyllama"
	DefaultTemperature = 0.2
	DefaultTimeout     = 90 * time.Second
)

// Compile-time interface check.
var _ domain.ModelClient = (*Client)(nil)

// request is the body sent to /api/generate.
type request struct {
	Model   string  `json:"model"`
	Prompt  string  `json:"prompt"`
	System  string  `json:"system"`
	Stream  bool    `json:"stream"`
	Options options `json:"options"`
	Format  string  `json:"format"`
}

type options struct {
	Temperature float64 `json:"temperature"`
}

// response is both the single reply and one NDJSON chunk when streaming.
type response struct {
	Response string `json:"response"`
	Done     bool   `json:"done"`
	Error    string `json:"error"`
}

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithModel overrides the default model name.
func WithModel(model string) ClientOption {
	return func(c *Client) { c.model = model }
}

// WithTemperature overrides the sampling temperature.
func WithTemperature(t float64) ClientOption {
	return func(c *Client) { c.temperature = t }
}

// WithHTTPTimeout sets the HTTP client timeout.
func WithHTTPTimeout(d time.Duration) ClientOption {
	return func(c *Client) { c.http.Timeout = d }
}

// WithStream switches to streamed NDJSON responses.
func WithStream(on bool) ClientOption {
	return func(c *Client) { c.stream = on }
}

// WithHTTPClient replaces the underlying HTTP client. The configured
// timeout is kept unless the given client sets its own.
func WithHTTPClient(h *http.Client) ClientOption {
	return func(c *Client) {
		if h.Timeout == 0 {
			h.Timeout = c.http.Timeout
		}
		c.http = h
	}
}

// Client talks to Ollama's generate endpoint.
type Client struct {
	endpoint    string
	model       string
	temperature float64
	stream      bool
	http        *http.Client
	log         *logger.Logger
}

// NewClient creates an Ollama client. endpoint is the server base URL
// (e.g. "http://127.0.0.1:11434"); an empty endpoint uses the default.
func NewClient(endpoint string, log *logger.Logger, opts ...ClientOption) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	c := &Client{
		endpoint:    strings.TrimRight(endpoint, "/"),
		model:       DefaultModel,
		temperature: DefaultTemperature,
		http:        &http.Client{Timeout: DefaultTimeout},
		log:         log,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Model returns the configured model name.
func (c *Client) Model() string { return c.model }

// Generate sends prompt and returns the model's text. Every error wraps
// domain.ErrTransport. In streaming mode a failure after some chunks have
// arrived returns the partial text along with the error.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	body := request{
		Model:   c.model,
		Prompt:  prompt,
		System:  SystemStyle,
		Stream:  c.stream,
		Options: options{Temperature: c.temperature},
		Format:  "json",
	}

	jsonData, err := json.Marshal(body)
	if err != nil {
		return "", transportErr("marshal payload", err)
	}

	url := c.endpoint + "/api/generate"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonData))
	if err != nil {
		return "", transportErr("create request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.log.Debug("ollama: POST %s model=%s stream=%v (%d bytes)", url, c.model, c.stream, len(jsonData))

	resp, err := c.http.Do(req)
	if err != nil {
		return "", transportErr("request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		excerpt, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", transportErr("API "+resp.Status, errors.New(strings.TrimSpace(string(excerpt))))
	}

	if c.stream {
		return c.readStream(resp.Body)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", transportErr("read response", err)
	}

	var result response
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", transportErr("unmarshal response", err)
	}
	if result.Error != "" {
		return "", transportErr("model error", errors.New(result.Error))
	}

	c.log.Debug("ollama: reply (%d chars): %s", len(result.Response), truncate(result.Response, 120))
	return result.Response, nil
}

// readStream concatenates NDJSON chunks until one reports done.
func (c *Client) readStream(r io.Reader) (string, error) {
	var sb strings.Builder
	dec := json.NewDecoder(r)
	for {
		var chunk response
		if err := dec.Decode(&chunk); err != nil {
			if err == io.EOF {
				// Server closed without a done chunk.
				return sb.String(), transportErr("stream ended early", io.ErrUnexpectedEOF)
			}
			return sb.String(), transportErr("read stream", err)
		}
		if chunk.Error != "" {
			return sb.String(), transportErr("model error", errors.New(chunk.Error))
		}
		sb.WriteString(chunk.Response)
		if chunk.Done {
			break
		}
	}

	c.log.Debug("ollama: streamed reply (%d chars): %s", sb.Len(), truncate(sb.String(), 120))
	return sb.String(), nil
}

func transportErr(op string, err error) error {
	return fmt.Errorf("ollama: %s: %w: %w", op, domain.ErrTransport, err)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
