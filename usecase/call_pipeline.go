package usecase

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/callpipe/callpipe/domain/repositories"
)

// recordingSuffix is the provider convention: appending the audio
// format suffix to a recording reference yields the downloadable asset.
const recordingSuffix = ".wav"

// Options tune pipeline behavior beyond its collaborators.
type Options struct {
	// SkipEmptyTranscript short-circuits the dialogue call when the
	// transcript is empty, synthesizing EmptyReplyPrompt instead.
	// Default is to pass the empty transcript through unchanged.
	SkipEmptyTranscript bool
	EmptyReplyPrompt    string

	// HTTPClient fetches recordings; defaults to a client with a
	// 30 second timeout.
	HTTPClient *http.Client
}

// CallPipeline orchestrates one recorded utterance through fetch,
// staging, transcription, dialogue and synthesis, ending with a
// publicly playable reply URL.
type CallPipeline struct {
	speechToText repositories.SpeechToText
	dialogue     repositories.Dialogue
	textToSpeech repositories.TextToSpeech
	store        repositories.AudioStore
	httpClient   *http.Client
	opts         Options
	logger       *zap.Logger
}

// NewCallPipeline creates a new call pipeline
func NewCallPipeline(
	stt repositories.SpeechToText,
	dialogue repositories.Dialogue,
	tts repositories.TextToSpeech,
	store repositories.AudioStore,
	opts Options,
	logger *zap.Logger,
) *CallPipeline {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &CallPipeline{
		speechToText: stt,
		dialogue:     dialogue,
		textToSpeech: tts,
		store:        store,
		httpClient:   httpClient,
		opts:         opts,
		logger:       logger,
	}
}

// Process runs the full chain for one recording reference and returns
// the public URL of the synthesized reply. The chain is all-or-nothing:
// the first failing stage aborts the run with a StageError and the
// caller answers the live call with an apology instead.
func (p *CallPipeline) Process(ctx context.Context, recordingURL string) (string, error) {
	if recordingURL == "" {
		return "", ErrMissingRecordingURL
	}

	requestID := uuid.NewString()
	logger := p.logger.With(zap.String("requestID", requestID))
	logger.Info("Processing recording", zap.String("recordingURL", recordingURL))

	// Step 1: fetch the recorded audio from the provider
	audio, err := p.fetchRecording(ctx, recordingURL+recordingSuffix)
	if err != nil {
		return "", stageErr(StageFetch, err)
	}

	// Step 2: stage it locally, isolated per request so concurrent
	// calls cannot corrupt each other's input
	recordingPath, err := p.store.StageRecording(fmt.Sprintf("user_%s.wav", requestID), audio)
	if err != nil {
		return "", stageErr(StageStore, err)
	}
	defer func() {
		if err := p.store.Remove(recordingPath); err != nil {
			logger.Warn("Failed to remove staged recording", zap.Error(err))
		}
	}()

	// Step 3: transcribe
	transcript, err := p.speechToText.Transcribe(ctx, audio)
	if err != nil {
		return "", stageErr(StageTranscribe, err)
	}
	logger.Info("Transcribed text", zap.String("text", transcript))

	// Step 4: converse. An empty transcript passes through unchanged
	// unless the short-circuit option is on.
	var reply string
	if transcript == "" && p.opts.SkipEmptyTranscript {
		reply = p.opts.EmptyReplyPrompt
		logger.Info("Empty transcript, skipping dialogue")
	} else {
		reply, err = p.dialogue.Reply(ctx, transcript)
		if err != nil {
			return "", stageErr(StageConverse, err)
		}
	}
	logger.Info("AI reply", zap.String("text", reply))

	// Step 5: synthesize
	replyAudio, err := p.textToSpeech.Synthesize(ctx, reply)
	if err != nil {
		return "", stageErr(StageSynthesize, err)
	}

	// Step 6: stage the reply under a name unique for the process
	// lifetime. The timestamp alone has millisecond resolution, a
	// near-miss under concurrent requests, so the request ID is
	// appended as well.
	replyName := fmt.Sprintf("reply_%d_%s.mp3", time.Now().UnixMilli(), requestID[:8])
	playURL, err := p.store.StageReply(replyName, replyAudio)
	if err != nil {
		return "", stageErr(StageStore, err)
	}

	logger.Info("Reply staged", zap.String("playURL", playURL), zap.Int("bytes", len(replyAudio)))
	return playURL, nil
}

func (p *CallPipeline) fetchRecording(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download recording: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("recording download returned %d", resp.StatusCode)
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read recording body: %w", err)
	}
	return audio, nil
}
