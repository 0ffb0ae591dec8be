package config

import (
	"os"
	"strconv"
	"time"

	"go.uber.org/zap"
)

const (
	defaultPort         = "3000"
	defaultAudioDir     = "./audio"
	defaultAudioTTL     = 10 * time.Minute
	defaultSTTProvider  = "whisper"
	defaultLLMProvider  = "openai"
	defaultElevenVoice  = "21m00Tcm4TlvDq8ikWAM" // Rachel voice
	defaultGreeting     = "Hello! This is your AI IVR. Please say something after the beep."
	defaultApology      = "Sorry, an error occurred."
	defaultEmptyPrompt  = "Sorry, I did not catch that. Please call again."
	defaultBaseURLLocal = "http://localhost:"
)

// Config holds all process-wide configuration, constructed once at
// startup and passed explicitly into constructors. Nothing reads the
// environment after New returns.
type Config struct {
	Port          string
	PublicBaseURL string

	TwilioAccountSID string
	TwilioAuthToken  string
	TwilioFromNumber string

	OpenAIAPIKey string
	GeminiAPIKey string

	ElevenAPIKey  string
	ElevenVoiceID string

	AudioDir string
	AudioTTL time.Duration

	STTProvider      string // "whisper" or "google"
	DialogueProvider string // "openai" or "gemini"

	// SkipEmptyTranscript short-circuits the dialogue call when the
	// transcription comes back empty, answering with a fixed prompt
	// instead. Default is pass-through.
	SkipEmptyTranscript bool

	Greeting         string
	Apology          string
	EmptyReplyPrompt string
}

// New builds a Config from the environment. Missing credentials are
// reported but never fatal; the affected endpoints fail in-request.
func New(logger *zap.Logger) Config {
	cfg := Config{
		Port:          envOr("PORT", defaultPort),
		PublicBaseURL: os.Getenv("PUBLIC_BASE_URL"),

		TwilioAccountSID: os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:  os.Getenv("TWILIO_AUTH_TOKEN"),
		TwilioFromNumber: os.Getenv("TWILIO_PHONE_NUMBER"),

		OpenAIAPIKey: os.Getenv("OPENAI_API_KEY"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),

		ElevenAPIKey:  os.Getenv("ELEVEN_API_KEY"),
		ElevenVoiceID: envOr("ELEVEN_VOICE_ID", defaultElevenVoice),

		AudioDir: envOr("AUDIO_DIR", defaultAudioDir),
		AudioTTL: envDurationOr("AUDIO_TTL", defaultAudioTTL),

		STTProvider:      envOr("STT_PROVIDER", defaultSTTProvider),
		DialogueProvider: envOr("DIALOGUE_PROVIDER", defaultLLMProvider),

		SkipEmptyTranscript: envBool("SKIP_EMPTY_TRANSCRIPT"),

		Greeting:         defaultGreeting,
		Apology:          defaultApology,
		EmptyReplyPrompt: defaultEmptyPrompt,
	}

	if cfg.PublicBaseURL == "" {
		cfg.PublicBaseURL = defaultBaseURLLocal + cfg.Port
	}

	logger.Info("Checking environment variables")
	reportPresence(logger, "TWILIO_ACCOUNT_SID", cfg.TwilioAccountSID)
	reportPresence(logger, "TWILIO_AUTH_TOKEN", cfg.TwilioAuthToken)
	reportPresence(logger, "TWILIO_PHONE_NUMBER", cfg.TwilioFromNumber)
	reportPresence(logger, "OPENAI_API_KEY", cfg.OpenAIAPIKey)
	reportPresence(logger, "ELEVEN_API_KEY", cfg.ElevenAPIKey)
	reportPresence(logger, "ELEVEN_VOICE_ID", cfg.ElevenVoiceID)

	if !cfg.TelephonyConfigured() {
		logger.Warn("Twilio credentials missing, outbound calls will fail")
	}
	if cfg.OpenAIAPIKey == "" {
		logger.Warn("OpenAI API key missing")
	}
	if cfg.ElevenAPIKey == "" {
		logger.Warn("ElevenLabs credentials missing")
	}

	return cfg
}

// TelephonyConfigured reports whether everything needed to place an
// outbound call is present.
func (c Config) TelephonyConfigured() bool {
	return c.TwilioAccountSID != "" && c.TwilioAuthToken != "" && c.TwilioFromNumber != ""
}

func reportPresence(logger *zap.Logger, name, value string) {
	state := "SET"
	if value == "" {
		state = "MISSING"
	}
	logger.Info(name, zap.String("state", state))
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envDurationOr(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func envBool(key string) bool {
	b, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && b
}
