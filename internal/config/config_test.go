package config

import (
	"testing"
	"time"

	"go.uber.org/zap/zaptest"
)

func TestNewDefaults(t *testing.T) {
	logger := zaptest.NewLogger(t)
	for _, key := range []string{
		"PORT", "PUBLIC_BASE_URL", "TWILIO_ACCOUNT_SID", "TWILIO_AUTH_TOKEN",
		"TWILIO_PHONE_NUMBER", "OPENAI_API_KEY", "ELEVEN_API_KEY", "ELEVEN_VOICE_ID",
		"AUDIO_DIR", "AUDIO_TTL", "STT_PROVIDER", "DIALOGUE_PROVIDER", "SKIP_EMPTY_TRANSCRIPT",
	} {
		t.Setenv(key, "")
	}

	cfg := New(logger)

	if cfg.Port != "3000" {
		t.Errorf("Expected default port 3000, got %q", cfg.Port)
	}
	if cfg.PublicBaseURL != "http://localhost:3000" {
		t.Errorf("Expected localhost base URL, got %q", cfg.PublicBaseURL)
	}
	if cfg.AudioDir != "./audio" {
		t.Errorf("Expected default audio dir, got %q", cfg.AudioDir)
	}
	if cfg.AudioTTL != 10*time.Minute {
		t.Errorf("Expected default TTL 10m, got %v", cfg.AudioTTL)
	}
	if cfg.STTProvider != "whisper" || cfg.DialogueProvider != "openai" {
		t.Errorf("Expected default providers, got %q / %q", cfg.STTProvider, cfg.DialogueProvider)
	}
	if cfg.SkipEmptyTranscript {
		t.Error("Expected pass-through of empty transcripts by default")
	}
	if cfg.TelephonyConfigured() {
		t.Error("Expected telephony to be unconfigured")
	}
}

func TestNewFromEnvironment(t *testing.T) {
	logger := zaptest.NewLogger(t)
	t.Setenv("PORT", "8080")
	t.Setenv("PUBLIC_BASE_URL", "https://relay.example.com")
	t.Setenv("TWILIO_ACCOUNT_SID", "AC1")
	t.Setenv("TWILIO_AUTH_TOKEN", "tok")
	t.Setenv("TWILIO_PHONE_NUMBER", "+15550001111")
	t.Setenv("AUDIO_TTL", "30m")
	t.Setenv("SKIP_EMPTY_TRANSCRIPT", "true")
	t.Setenv("STT_PROVIDER", "google")
	t.Setenv("DIALOGUE_PROVIDER", "gemini")

	cfg := New(logger)

	if cfg.Port != "8080" {
		t.Errorf("Expected port 8080, got %q", cfg.Port)
	}
	if cfg.PublicBaseURL != "https://relay.example.com" {
		t.Errorf("Unexpected base URL %q", cfg.PublicBaseURL)
	}
	if !cfg.TelephonyConfigured() {
		t.Error("Expected telephony to be configured")
	}
	if cfg.AudioTTL != 30*time.Minute {
		t.Errorf("Expected TTL 30m, got %v", cfg.AudioTTL)
	}
	if !cfg.SkipEmptyTranscript {
		t.Error("Expected empty-transcript short-circuit to be enabled")
	}
	if cfg.STTProvider != "google" || cfg.DialogueProvider != "gemini" {
		t.Errorf("Unexpected providers %q / %q", cfg.STTProvider, cfg.DialogueProvider)
	}
}

func TestInvalidTTLFallsBack(t *testing.T) {
	logger := zaptest.NewLogger(t)
	t.Setenv("AUDIO_TTL", "not-a-duration")

	cfg := New(logger)
	if cfg.AudioTTL != 10*time.Minute {
		t.Errorf("Expected fallback TTL, got %v", cfg.AudioTTL)
	}
}
