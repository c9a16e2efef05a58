// Package ollama implements the extraction-service client against an Ollama
// /api/generate endpoint.
package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/transcript-harvester/internal/llm"
)

// Config for the Ollama client.
type Config struct {
	BaseURL string        // default http://localhost:11434
	Model   string        // e.g., "qwen2.5:7b"
	Timeout time.Duration // http client timeout; default 120s

	// Sentinel, when non-empty, classifies responses containing it as
	// not-found instead of hits. Set for search-style prompts, left empty
	// for rewrite-style prompts whose output may legitimately contain the
	// marker text.
	Sentinel string
}

type Client struct {
	cfg    Config
	http   *http.Client
	logger *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:11434"
	}
	if cfg.Model == "" {
		cfg.Model = "qwen2.5:7b"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 120 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

type generateResponse struct {
	Model    string `json:"model"`
	Response string `json:"response"`
	Done     bool   `json:"done"`
}

// envelopeSchema guards the shape of the generate response before the
// "response" field is trusted.
var envelopeSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"model":    map[string]any{"type": "string"},
		"response": map[string]any{"type": "string"},
		"done":     map[string]any{"type": "boolean"},
	},
	"required": []string{"response"},
}

// Complete sends one rendered prompt and classifies the result. Transport
// errors, non-success statuses and empty bodies all come back as tagged
// outcomes so the caller can fall through to its next chunk or variant.
func (c *Client) Complete(ctx context.Context, prompt string) llm.Outcome {
	rid := uuid.New().String()
	start := time.Now()

	c.logger.Debug("llm.request",
		"req_id", rid,
		"model", c.cfg.Model,
		"prompt_len", len(prompt),
	)

	raw, status, err := c.post(ctx, generateRequest{
		Model:  c.cfg.Model,
		Prompt: prompt,
		Stream: false,
	})
	if err != nil {
		c.logger.Warn("llm.request.transport_error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.Outcome{Status: llm.StatusTransport, Err: err}
	}
	if status/100 != 2 {
		c.logger.Warn("llm.request.service_error",
			"req_id", rid, "status", status,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.Outcome{Status: llm.StatusServiceError}
	}

	if err := llm.ValidateJSONAgainstSchema(envelopeSchema, raw); err != nil {
		c.logger.Warn("llm.request.envelope_invalid",
			"req_id", rid, "error", err, "bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.Outcome{Status: llm.StatusServiceError, Err: err}
	}

	var env generateResponse
	if err := json.Unmarshal(raw, &env); err != nil {
		return llm.Outcome{Status: llm.StatusServiceError, Err: err}
	}

	text := strings.TrimSpace(env.Response)
	if text == "" {
		c.logger.Debug("llm.request.empty",
			"req_id", rid,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.Outcome{Status: llm.StatusEmpty}
	}
	if c.cfg.Sentinel != "" && strings.Contains(text, c.cfg.Sentinel) {
		c.logger.Debug("llm.request.not_found",
			"req_id", rid,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.Outcome{Status: llm.StatusNotFound}
	}

	c.logger.Debug("llm.request.ok",
		"req_id", rid,
		"response_len", len(text),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return llm.Outcome{Status: llm.StatusHit, Text: text}
}

func (c *Client) post(ctx context.Context, body generateRequest) ([]byte, int, error) {
	bs, err := json.Marshal(body)
	if err != nil {
		return nil, 0, err
	}

	url := strings.TrimRight(c.cfg.BaseURL, "/") + "/api/generate"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bs))
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer func(b io.ReadCloser) {
		if err := b.Close(); err != nil {
			c.logger.Warn("llm.response_body_close_error", "error", err)
		}
	}(resp.Body)

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, err
	}
	return raw, resp.StatusCode, nil
}
