package content

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Generator produces prose from a natural-language prompt. A nil
// Generator means the capability is absent and callers fall back to
// templates.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GeminiGenerator generates content through the Gemini API.
type GeminiGenerator struct {
	client    *genai.Client
	model     string
	maxTokens int32
	logger    *slog.Logger
}

// NewGeminiGenerator creates a Gemini-backed generator. An empty API key
// returns (nil, nil): content generation then degrades to templates.
func NewGeminiGenerator(ctx context.Context, apiKey, model string, maxTokens int32, logger *slog.Logger) (*GeminiGenerator, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if apiKey == "" {
		logger.Info("no AI API key configured, using template fallback")
		return nil, nil
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &GeminiGenerator{
		client:    client,
		model:     model,
		maxTokens: maxTokens,
		logger:    logger,
	}, nil
}

// Generate sends the prompt to Gemini and returns the first candidate's
// text. The call is made once, with the client's default timeout.
func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	model := g.client.GenerativeModel(g.model)
	model.SetMaxOutputTokens(g.maxTokens)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	var sb strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				sb.WriteString(string(text))
			}
		}
		break
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("empty response from model %s", g.model)
	}
	return sb.String(), nil
}

// Close releases the underlying API client.
func (g *GeminiGenerator) Close() error {
	if g == nil || g.client == nil {
		return nil
	}
	return g.client.Close()
}
