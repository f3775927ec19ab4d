// Package gemini implements the text-generation collaborator on top of the
// Google GenAI API.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/fairwork-za/wilmatch/internal/utils"
)

const (
	defaultModel      = "gemini-2.5-flash"
	defaultMaxRetries = 2
	retryBackoff      = 2 * time.Second
)

// Client wraps the Google GenAI client behind the ai.Generator contract.
type Client struct {
	client     *genai.Client
	modelName  string
	maxRetries int
	logger     *zap.Logger
}

// NewClient creates a client for the Gemini API backend. maxRetries <= 0
// falls back to the default; an empty model falls back to the default model.
func NewClient(ctx context.Context, apiKey, model string, maxRetries int, logger *zap.Logger) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	cfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	if model = strings.TrimSpace(model); model == "" {
		model = defaultModel
	}
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		client:     client,
		modelName:  model,
		maxRetries: maxRetries,
		logger:     logger,
	}, nil
}

// GenerateContent sends the prompt to Gemini and returns the joined textual
// response, retrying transient failures with a fixed backoff.
func (c *Client) GenerateContent(ctx context.Context, prompt string) (string, error) {
	if c == nil || c.client == nil {
		return "", errors.New("gemini client is not initialized")
	}

	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "", errors.New("prompt must not be empty")
	}

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			c.logger.Warn("retrying gemini request",
				zap.Int("attempt", attempt),
				zap.Error(lastErr),
			)
			if err := utils.WaitFor(ctx, retryBackoff); err != nil {
				return "", err
			}
		}

		resp, err := c.client.Models.GenerateContent(ctx, c.modelName, genai.Text(prompt), nil)
		if err != nil {
			lastErr = fmt.Errorf("generate content: %w", err)
			continue
		}

		output := joinCandidates(resp)
		if output == "" {
			lastErr = errors.New("gemini api returned empty response")
			continue
		}

		return output, nil
	}

	return "", lastErr
}

// Model returns the configured model name.
func (c *Client) Model() string {
	if c == nil {
		return ""
	}
	return c.modelName
}

func joinCandidates(resp *genai.GenerateContentResponse) string {
	var builder strings.Builder

	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part == nil {
				continue
			}
			text := strings.TrimSpace(part.Text)
			if text == "" {
				continue
			}
			if builder.Len() > 0 {
				builder.WriteString("\n")
			}
			builder.WriteString(text)
		}
	}

	return strings.TrimSpace(builder.String())
}
