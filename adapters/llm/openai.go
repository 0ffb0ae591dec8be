package llm

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/callpipe/callpipe/domain/repositories"
)

// OpenAIConfig holds configuration for the OpenAIDialogue adapter.
// Required fields:
// - APIKey: Your OpenAI API key
// Optional fields with defaults:
// - APIBaseURL: override of the OpenAI API base URL (used by tests)
// - Model: chat model (default: gpt-3.5-turbo)
type OpenAIConfig struct {
	APIKey     string
	APIBaseURL string
	Model      string
}

// OpenAIDialogue implements the Dialogue interface using OpenAI chat completions
type OpenAIDialogue struct {
	client *openai.Client
	model  string
	logger *zap.Logger
}

var _ repositories.Dialogue = (*OpenAIDialogue)(nil)

// NewOpenAIDialogue creates a new OpenAI dialogue adapter
func NewOpenAIDialogue(config OpenAIConfig, logger *zap.Logger) (*OpenAIDialogue, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	clientConfig := openai.DefaultConfig(config.APIKey)
	if config.APIBaseURL != "" {
		clientConfig.BaseURL = config.APIBaseURL
	}

	model := config.Model
	if model == "" {
		model = openai.GPT3Dot5Turbo
	}

	return &OpenAIDialogue{
		client: openai.NewClientWithConfig(clientConfig),
		model:  model,
		logger: logger,
	}, nil
}

// Reply sends the transcript as a single user message, with no history
// and no system prompt, and returns the model's reply.
func (o *OpenAIDialogue) Reply(ctx context.Context, prompt string) (string, error) {
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}

	reply := resp.Choices[0].Message.Content
	o.logger.Info("Dialogue reply generated",
		zap.Int("promptLength", len(prompt)),
		zap.Int("replyLength", len(reply)))

	return reply, nil
}
