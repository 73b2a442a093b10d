package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
)

const defaultGatewayTimeout = 15 * time.Second

// objectionPrompt instructs the text-classification service to return one
// JSON array of typed objections with short verbatim customer quotes
const objectionPrompt = `You are analyzing the transcript of one door-to-door sales conversation.

List every objection the customer states. Return ONLY a JSON array, where
each entry is {"type": "...", "text": "..."}:
- "type" must be one of: diy, spouse, price, competitor, delay,
  not_interested, no_problem, no_soliciting
- "text" must be a short verbatim quote (3-10 words) spoken by the customer

Return an empty array [] if the customer raised no objections.

TRANSCRIPT:
%s`

// GatewayConfig carries the connection settings for the extraction gateway
type GatewayConfig struct {
	URL     string
	Model   string
	APIKey  string
	Timeout time.Duration
}

// GatewayExtractor calls an OpenAI-compatible chat-completions gateway to
// extract customer objections from a conversation transcript
type GatewayExtractor struct {
	config GatewayConfig
	client *http.Client
	logger *zap.Logger
}

// NewGatewayExtractor creates a new GatewayExtractor with the given config
func NewGatewayExtractor(config GatewayConfig) *GatewayExtractor {
	return NewGatewayExtractorWithLogger(config, nil)
}

// NewGatewayExtractorWithLogger creates a new GatewayExtractor with the given config and logger
func NewGatewayExtractorWithLogger(config GatewayConfig, logger *zap.Logger) *GatewayExtractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	if config.Timeout <= 0 {
		config.Timeout = defaultGatewayTimeout
	}

	return &GatewayExtractor{
		config: config,
		client: &http.Client{Timeout: config.Timeout},
		logger: logger,
	}
}

// Extract implements ObjectionExtractor. Client errors (4xx) are permanent;
// server errors and unparseable responses are retried with exponential
// backoff until the elapsed budget runs out.
func (g *GatewayExtractor) Extract(ctx context.Context, segmentText string) ([]Objection, error) {
	if g.config.URL == "" || g.config.APIKey == "" {
		return nil, fmt.Errorf("extraction gateway not configured")
	}

	requestBody := map[string]interface{}{
		"model": g.config.Model,
		"messages": []map[string]string{
			{"role": "user", "content": fmt.Sprintf(objectionPrompt, segmentText)},
		},
		"temperature": 0.0,
	}
	payload, err := json.Marshal(requestBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal gateway request: %w", err)
	}

	var objections []Objection
	operation := func() error {
		result, opErr := g.callGateway(ctx, payload)
		if opErr != nil {
			return opErr
		}
		objections = result
		return nil
	}

	policy := backoff.NewExponentialBackOff()
	policy.MaxElapsedTime = 2 * g.config.Timeout
	if err := backoff.Retry(operation, backoff.WithContext(policy, ctx)); err != nil {
		return nil, fmt.Errorf("objection extraction failed: %w", err)
	}

	g.logger.Debug("objection extraction succeeded",
		zap.Int("objection_count", len(objections)))

	return objections, nil
}

// callGateway performs one request/parse attempt against the gateway
func (g *GatewayExtractor) callGateway(ctx context.Context, payload []byte) ([]Objection, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.config.URL, bytes.NewReader(payload))
	if err != nil {
		return nil, backoff.Permanent(fmt.Errorf("failed to build gateway request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.config.APIKey)

	resp, err := g.client.Do(req)
	if err != nil {
		g.logger.Warn("gateway request failed", zap.Error(err))
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read gateway response: %w", err)
	}

	if resp.StatusCode >= 400 && resp.StatusCode < 500 {
		return nil, backoff.Permanent(fmt.Errorf("gateway rejected request: status %d", resp.StatusCode))
	}
	if resp.StatusCode >= 500 {
		return nil, fmt.Errorf("gateway server error: status %d", resp.StatusCode)
	}

	// Prefer the OpenAI-style choices content, fall back to scanning the
	// whole body for an array literal
	content := extractChoicesContent(body)
	if content == "" {
		content = string(body)
	}

	objections, err := ParseObjectionResponse(content)
	if err != nil {
		g.logger.Warn("gateway response unparseable", zap.Error(err))
		return nil, err
	}

	return objections, nil
}

// extractChoicesContent reads choices[0].message.content from an
// OpenAI-style chat-completions response body
func extractChoicesContent(body []byte) string {
	var parsed struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return ""
	}
	if len(parsed.Choices) == 0 {
		return ""
	}
	return strings.TrimSpace(parsed.Choices[0].Message.Content)
}
