package llm

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/callpipe/callpipe/domain/repositories"
)

const defaultGeminiModel = "gemini-2.0-flash"

// GeminiConfig holds configuration for the GeminiDialogue adapter.
// Required fields:
// - APIKey: Your Google AI API key
// Optional fields with defaults:
// - Model: generation model (default: gemini-2.0-flash)
type GeminiConfig struct {
	APIKey string
	Model  string
}

// GeminiDialogue implements the Dialogue interface using Google's Gemini API
type GeminiDialogue struct {
	client *genai.Client
	model  string
	logger *zap.Logger
}

var _ repositories.Dialogue = (*GeminiDialogue)(nil)

// NewGeminiDialogue creates a new Gemini dialogue adapter
func NewGeminiDialogue(ctx context.Context, config GeminiConfig, logger *zap.Logger) (*GeminiDialogue, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("Google AI API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  config.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := config.Model
	if model == "" {
		model = defaultGeminiModel
	}

	return &GeminiDialogue{
		client: client,
		model:  model,
		logger: logger,
	}, nil
}

// Reply sends the transcript as a single user message and returns the
// model's reply. No conversation history is carried between calls.
func (g *GeminiDialogue) Reply(ctx context.Context, prompt string) (string, error) {
	contents := []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	}

	response, err := g.client.Models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	if len(response.Candidates) == 0 || response.Candidates[0].Content == nil ||
		len(response.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content generated")
	}

	var reply string
	for _, part := range response.Candidates[0].Content.Parts {
		if part.Text != "" {
			reply += part.Text
		}
	}
	if reply == "" {
		return "", fmt.Errorf("empty response from model")
	}

	g.logger.Info("Dialogue reply generated",
		zap.Int("promptLength", len(prompt)),
		zap.Int("replyLength", len(reply)))

	return reply, nil
}
