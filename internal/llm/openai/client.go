package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"invoice-extractor/internal/common"
	"invoice-extractor/internal/llm"
)

// Extract implements llm.VisionExtractor against the chat/completions
// endpoint. The image travels as a base64 data URL in an image_url content
// part; in auto mode the JSON schema is attached as a trailing system
// message so the model returns machine-parseable output.
func (c *Client) Extract(ctx context.Context, req llm.ExtractRequest) (string, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.log.Info("llm.extract.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"temp", c.cfg.Temperature,
		"mode", string(req.Mode),
		"image_bytes", len(req.Image),
		"mime_type", req.MIMEType,
	)

	userParts := []map[string]any{
		{"type": "text", "text": llm.BuildUserPrompt(req)},
		{"type": "image_url", "image_url": map[string]any{
			"url": llm.EncodeImageDataURL(req.Image, req.MIMEType),
		}},
	}

	messages := []map[string]any{
		{"role": "system", "content": llm.BuildSystemPrompt(req.Mode)},
		{"role": "user", "content": userParts},
	}

	body := map[string]any{
		"model":       c.cfg.Model,
		"temperature": c.cfg.Temperature,
		"messages":    messages,
	}
	if req.Mode == llm.ModeAuto {
		body["response_format"] = map[string]any{"type": "json_object"}
		body["messages"] = append(messages, map[string]any{
			"role":    "system",
			"content": "JSON Schema:\n" + mustJSON(llm.BuildInvoiceJSONSchema()),
		})
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	raw, httpErr := c.post(ctx, endpoint, body)
	if httpErr != nil {
		c.log.Error("llm.extract.http_error",
			"req_id", rid, "error", httpErr,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return "", common.UpstreamError("chat completion request", httpErr)
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		c.log.Error("llm.extract.decode_error",
			"req_id", rid, "error", err, "raw_bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return "", common.UpstreamError("decode openai response", err)
	}
	if len(cc.Choices) == 0 {
		c.log.Error("llm.extract.no_choices",
			"req_id", rid, "raw", string(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return "", common.UpstreamError("no choices in openai response", nil)
	}

	content := strings.TrimSpace(cc.Choices[0].Message.Content)
	c.log.Info("llm.extract.ok",
		"req_id", rid,
		"content_len", len(content),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return content, nil
}

func (c *Client) post(ctx context.Context, url string, body map[string]any) ([]byte, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("openai http error: %w", err)
	}
	defer func(Body io.ReadCloser) {
		err := Body.Close()
		if err != nil {
			c.log.Warn("openai response body close error", "error", err)
		}
	}(resp.Body)

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("openai status %d: %s", resp.StatusCode, string(raw))
	}
	return raw, nil
}

func mustJSON(v any) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}
