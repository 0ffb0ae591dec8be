package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/callpipe/callpipe/adapters/llm"
	"github.com/callpipe/callpipe/adapters/storage"
	"github.com/callpipe/callpipe/adapters/stt"
	"github.com/callpipe/callpipe/adapters/telephony"
	"github.com/callpipe/callpipe/adapters/tts"
	"github.com/callpipe/callpipe/domain/repositories"
	"github.com/callpipe/callpipe/internal/api"
	"github.com/callpipe/callpipe/internal/config"
	"github.com/callpipe/callpipe/usecase"
)

const sweepInterval = time.Minute

func main() {
	// Initialize logger
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	// Load .env if present; real deployments set the environment directly
	if err := godotenv.Load(); err == nil {
		logger.Info("Loaded environment from .env")
	}

	cfg := config.New(logger)

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Initialize adapters
	speechToText := buildSpeechToText(cfg, logger)
	dialogue := buildDialogue(cfg, logger)
	textToSpeech := buildTextToSpeech(cfg, logger)
	originator := telephony.NewTwilioOriginator(telephony.TwilioConfig{
		AccountSID: cfg.TwilioAccountSID,
		AuthToken:  cfg.TwilioAuthToken,
		FromNumber: cfg.TwilioFromNumber,
	}, logger)

	store, err := storage.NewLocalStore(cfg.AudioDir, cfg.PublicBaseURL, cfg.AudioTTL, logger)
	if err != nil {
		logger.Fatal("Failed to initialize audio store", zap.Error(err))
	}
	store.StartSweeper(sweepInterval)
	defer store.StopSweeper()

	// Initialize the call pipeline
	pipeline := usecase.NewCallPipeline(speechToText, dialogue, textToSpeech, store, usecase.Options{
		SkipEmptyTranscript: cfg.SkipEmptyTranscript,
		EmptyReplyPrompt:    cfg.EmptyReplyPrompt,
	}, logger)

	// Initialize API routes
	handler := api.NewHandler(pipeline, originator, cfg, logger)
	api.InitRoutes(e, handler, store.Dir())

	// Graceful shutdown
	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			logger.Fatal("shutting down the server", zap.Error(err))
		}
	}()

	logger.Info("Server started", zap.String("port", cfg.Port), zap.String("baseURL", cfg.PublicBaseURL))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}

func buildSpeechToText(cfg config.Config, logger *zap.Logger) repositories.SpeechToText {
	if cfg.STTProvider == "google" {
		return stt.NewGoogleSpeechToText(stt.GoogleConfig{}, logger)
	}
	whisper, err := stt.NewWhisperSpeechToText(stt.WhisperConfig{APIKey: cfg.OpenAIAPIKey}, logger)
	if err != nil {
		logger.Warn("Speech-to-text unavailable", zap.Error(err))
		return stt.Unconfigured(err)
	}
	return whisper
}

func buildDialogue(cfg config.Config, logger *zap.Logger) repositories.Dialogue {
	if cfg.DialogueProvider == "gemini" {
		gemini, err := llm.NewGeminiDialogue(context.Background(), llm.GeminiConfig{APIKey: cfg.GeminiAPIKey}, logger)
		if err != nil {
			logger.Warn("Dialogue unavailable", zap.Error(err))
			return llm.Unconfigured(err)
		}
		return gemini
	}
	openAI, err := llm.NewOpenAIDialogue(llm.OpenAIConfig{APIKey: cfg.OpenAIAPIKey}, logger)
	if err != nil {
		logger.Warn("Dialogue unavailable", zap.Error(err))
		return llm.Unconfigured(err)
	}
	return openAI
}

func buildTextToSpeech(cfg config.Config, logger *zap.Logger) repositories.TextToSpeech {
	elevenLabs, err := tts.NewElevenLabsTTS(tts.ElevenLabsConfig{
		APIKey:  cfg.ElevenAPIKey,
		VoiceID: cfg.ElevenVoiceID,
	}, logger)
	if err != nil {
		logger.Warn("Text-to-speech unavailable", zap.Error(err))
		return tts.Unconfigured(err)
	}
	return elevenLabs
}
