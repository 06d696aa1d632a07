package openai

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/campdesk/slip-ingest/internal/common"
	"github.com/campdesk/slip-ingest/internal/vision"
)

// Classify implements vision.Classifier over chat/completions with an inline
// image part. Every failure path resolves to the sentinel record; no error
// ever reaches the orchestrator.
func (c *Client) Classify(ctx context.Context, img vision.SlipImage) vision.Extraction {
	rid := uuid.New().String()
	start := time.Now()

	c.logger.Info("vision.classify.start",
		"req_id", rid,
		"batch_id", common.BatchIDFromContext(ctx),
		"model", c.cfg.Model,
		"filename", img.Filename,
		"mime_type", img.MIMEType,
		"bytes", len(img.Data),
	)

	ctx, cancel := common.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	body := map[string]any{
		"model":           c.cfg.Model,
		"temperature":     c.cfg.Temperature,
		"response_format": map[string]any{"type": "json_object"},
		"messages": []map[string]any{
			{
				"role": "user",
				"content": []map[string]any{
					{"type": "text", "text": vision.BuildInstruction(c.cfg.DefaultCurrency)},
					{"type": "image_url", "image_url": map[string]any{"url": dataURL(img.MIMEType, img.Data)}},
				},
			},
		},
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	headers := map[string]string{"Authorization": "Bearer " + c.cfg.APIKey}
	raw, status, err := vision.SendJSON(ctx, c.http, endpoint, body, headers, c.logger)
	if err != nil {
		c.logger.Error("vision.classify.call_failed",
			"req_id", rid, "status", status, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return vision.FailureSentinel("model call failed: " + err.Error())
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		c.logger.Error("vision.classify.decode_error",
			"req_id", rid, "error", err, "raw_bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return vision.FailureSentinel("decode model response: " + err.Error())
	}
	if len(cc.Choices) == 0 {
		c.logger.Error("vision.classify.no_choices",
			"req_id", rid, "raw_bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return vision.FailureSentinel("no choices in model response")
	}

	content := strings.TrimSpace(cc.Choices[0].Message.Content)
	ext := vision.ParseExtraction(content, c.cfg.DefaultCurrency)
	if ext.Failed {
		c.logger.Warn("vision.classify.unparseable_content",
			"req_id", rid, "reason", ext.FailureReason, "content_len", len(content),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return ext
	}

	c.logger.Info("vision.classify.ok",
		"req_id", rid,
		"name", ext.PersonName,
		"amount", ext.Amount,
		"item", ext.ItemName,
		"currency", ext.Currency,
		"confidence", ext.Confidence,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return ext
}

func dataURL(mimeType string, b []byte) string {
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(b)
}
