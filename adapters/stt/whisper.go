package stt

import (
	"bytes"
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/callpipe/callpipe/domain/repositories"
)

// WhisperConfig holds configuration for the WhisperSpeechToText adapter.
// Required fields:
// - APIKey: Your OpenAI API key
// Optional fields with defaults:
// - APIBaseURL: override of the OpenAI API base URL (used by tests)
// - Model: transcription model (default: whisper-1)
type WhisperConfig struct {
	APIKey     string
	APIBaseURL string
	Model      string
}

// WhisperSpeechToText implements SpeechToText using OpenAI Whisper
type WhisperSpeechToText struct {
	client *openai.Client
	model  string
	logger *zap.Logger
}

var _ repositories.SpeechToText = (*WhisperSpeechToText)(nil)

// NewWhisperSpeechToText creates a new Whisper transcription adapter
func NewWhisperSpeechToText(config WhisperConfig, logger *zap.Logger) (*WhisperSpeechToText, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	clientConfig := openai.DefaultConfig(config.APIKey)
	if config.APIBaseURL != "" {
		clientConfig.BaseURL = config.APIBaseURL
	}

	model := config.Model
	if model == "" {
		model = openai.Whisper1
	}

	return &WhisperSpeechToText{
		client: openai.NewClientWithConfig(clientConfig),
		model:  model,
		logger: logger,
	}, nil
}

// Transcribe converts recorded audio to text using the Whisper API.
// An empty transcript is returned as-is; silence is not an error.
func (w *WhisperSpeechToText) Transcribe(ctx context.Context, audio []byte) (string, error) {
	if len(audio) == 0 {
		return "", fmt.Errorf("audio data is empty")
	}

	resp, err := w.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    w.model,
		Reader:   bytes.NewReader(audio),
		FilePath: "recording.wav",
	})
	if err != nil {
		return "", fmt.Errorf("whisper transcription failed: %w", err)
	}

	w.logger.Info("Transcription completed",
		zap.Int("audioBytes", len(audio)),
		zap.Int("textLength", len(resp.Text)))

	return resp.Text, nil
}
