package stt

import (
	"context"
	"fmt"
	"strings"

	speech "cloud.google.com/go/speech/apiv1"
	"cloud.google.com/go/speech/apiv1/speechpb"
	"go.uber.org/zap"

	"github.com/callpipe/callpipe/domain/repositories"
)

const (
	defaultSampleRate = 8000 // telephony recordings are 8kHz
	defaultLanguage   = "en-US"
)

// GoogleConfig holds configuration for the GoogleSpeechToText adapter.
// Credentials come from the ambient Google application default
// credentials, as with every Cloud client.
type GoogleConfig struct {
	SampleRate int    // Optional: sample rate in Hz (default: 8000)
	Language   string // Optional: BCP-47 language code (default: "en-US")
}

// GoogleSpeechToText implements SpeechToText using Google Cloud Speech-to-Text
type GoogleSpeechToText struct {
	sampleRate int
	language   string
	logger     *zap.Logger
}

var _ repositories.SpeechToText = (*GoogleSpeechToText)(nil)

// NewGoogleSpeechToText creates a new Google Cloud transcription adapter
func NewGoogleSpeechToText(config GoogleConfig, logger *zap.Logger) *GoogleSpeechToText {
	sampleRate := config.SampleRate
	if sampleRate == 0 {
		sampleRate = defaultSampleRate
	}
	language := config.Language
	if language == "" {
		language = defaultLanguage
	}
	return &GoogleSpeechToText{
		sampleRate: sampleRate,
		language:   language,
		logger:     logger,
	}
}

// Transcribe converts a recorded utterance to text with a synchronous
// Recognize call. Recordings here are short (maxLength is 10 seconds)
// so the synchronous API is sufficient; no streaming session is needed.
func (g *GoogleSpeechToText) Transcribe(ctx context.Context, audio []byte) (string, error) {
	if len(audio) == 0 {
		return "", fmt.Errorf("audio data is empty")
	}

	client, err := speech.NewClient(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to create speech client: %w", err)
	}
	defer client.Close()

	resp, err := client.Recognize(ctx, &speechpb.RecognizeRequest{
		Config: &speechpb.RecognitionConfig{
			Encoding:        speechpb.RecognitionConfig_LINEAR16,
			SampleRateHertz: int32(g.sampleRate),
			LanguageCode:    g.language,
		},
		Audio: &speechpb.RecognitionAudio{
			AudioSource: &speechpb.RecognitionAudio_Content{Content: audio},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to recognize audio: %w", err)
	}

	var parts []string
	for _, result := range resp.Results {
		if len(result.Alternatives) > 0 {
			parts = append(parts, result.Alternatives[0].Transcript)
		}
	}
	transcript := strings.Join(parts, " ")

	g.logger.Info("Transcription completed",
		zap.Int("audioBytes", len(audio)),
		zap.Int("textLength", len(transcript)))

	return transcript, nil
}
