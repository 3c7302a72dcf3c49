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

	"targetcheck/internal/common"
	"targetcheck/internal/verifier"
)

// Verify implements verifier.Verifier over chat/completions. Transport and
// HTTP-status failures wrap common.ErrTransport so the caller can tell them
// apart from a verdict the model produced but we could not read.
func (c *Client) Verify(ctx context.Context, req verifier.VerifyRequest) (verifier.Verdict, []byte, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.logger.Info("verify.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"temp", c.cfg.Temperature,
		"text_len", len(req.Document),
		"targets", len(req.Expected.Targets),
	)

	schema := verifier.BuildVerdictJSONSchema()
	body := map[string]any{
		"model":           c.cfg.Model,
		"temperature":     c.cfg.Temperature,
		"response_format": map[string]any{"type": "json_object"},
		"messages": []map[string]any{
			{"role": "system", "content": verifier.BuildSystemPrompt()},
			{"role": "user", "content": verifier.BuildUserPrompt(req)},
			{"role": "system", "content": "JSON Schema:\n" + mustJSON(schema)},
		},
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	raw, httpErr := c.post(ctx, endpoint, body)
	if httpErr != nil {
		c.logger.Error("verify.http_error",
			"req_id", rid, "error", httpErr,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return verifier.Verdict{}, nil, fmt.Errorf("%w: %w", common.ErrTransport, httpErr)
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		c.logger.Error("verify.decode_error",
			"req_id", rid, "error", err, "raw_bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return verifier.Verdict{}, raw, common.NewAppError("MALFORMED_RESPONSE", "decode chat completion", fmt.Errorf("%w: %w", common.ErrMalformedResponse, err))
	}
	if len(cc.Choices) == 0 {
		c.logger.Error("verify.no_choices",
			"req_id", rid, "raw", string(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return verifier.Verdict{}, raw, common.NewAppError("MALFORMED_RESPONSE", "no choices in chat completion", common.ErrMalformedResponse)
	}

	content, err := verifier.ExtractJSON(cc.Choices[0].Message.Content)
	if err != nil {
		c.logger.Error("verify.sanitize_failed",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return verifier.Verdict{}, raw, err
	}

	verdict, err := verifier.ParseVerdict([]byte(content))
	if err != nil {
		c.logger.Error("verify.parse_failed",
			"req_id", rid, "error", err, "content", content,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return verifier.Verdict{}, []byte(content), err
	}

	c.logger.Info("verify.ok",
		"req_id", rid,
		"is_valid", verdict.IsValid,
		"mismatches", len(verdict.Mismatches),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return verdict, []byte(content), nil
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

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("openai http error: %w", err)
	}
	defer func(Body io.ReadCloser) {
		err := Body.Close()
		if err != nil {
			c.logger.Warn("openai response body close error", "error", err)
		}
	}(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		buf := new(bytes.Buffer)
		_, _ = buf.ReadFrom(resp.Body)
		return nil, fmt.Errorf("openai status %d: %s", resp.StatusCode, buf.String())
	}

	buf := new(bytes.Buffer)
	_, _ = buf.ReadFrom(resp.Body)
	return buf.Bytes(), nil
}

func mustJSON(v any) string {
	b, _ := json.Marshal(v)
	return string(b)
}
