package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var ErrEmptyEnvironmentVariable = errors.New("empty environment variable")

// Speech-to-text and LLM providers
const (
	STTProviderSarvam     = "sarvam"
	STTProviderWhisper    = "whisper"
	LLMProviderOpenRouter = "openrouter"
	LLMProviderGemini     = "gemini"
)

// Config holds all application configuration
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Twilio    TwilioConfig
	Services  ServicesConfig
	Voice     VoiceConfig
	Dashboard DashboardConfig
	Redis     RedisConfig
	Kafka     KafkaConfig
	Email     EmailConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port int
	// PublicHost overrides the Host header when building the media stream URL.
	PublicHost string
	// AllowedOrigins for the dashboard CORS policy.
	AllowedOrigins []string
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Driver string // sqlite3 or pgx
	DSN    string
}

// TwilioConfig holds telephony settings
type TwilioConfig struct {
	AccountSID        string
	AuthToken         string
	ValidateSignature bool
}

// ServicesConfig holds external service API keys and endpoints
type ServicesConfig struct {
	STTProvider      string // sarvam or whisper
	SarvamAPIKey     string
	SarvamURL        string
	SarvamModel      string
	OpenAIAPIKey     string
	CartesiaAPIKey   string
	CartesiaVoiceID  string
	CartesiaModel    string
	LLMProvider      string // openrouter or gemini
	OpenRouterAPIKey string
	OpenRouterURL    string
	LLMModel         string
	GoogleAIAPIKey   string
	GeminiModel      string
	ClassifierURL    string
}

// VoiceConfig holds the tuning of the per-call session
type VoiceConfig struct {
	VADMode                string // webrtc or energy
	VADAggressiveness      int
	EnergyThreshold        float64
	SilenceThresholdFrames int
	MinSpeechFrames        int
	CooldownFrames         int
	ClassificationWindow   time.Duration
	ClassifierTimeout      time.Duration
	MinClassifySpeech      int
	MinSentenceLength      int
	Temperature            float64
	HistoryLimit           int
	Language               string
	AnnouncementLanguage   string
	GreetingText           string
	AnnouncementText       string
	SystemPromptFile       string
}

// DashboardConfig holds operator dashboard settings
type DashboardConfig struct {
	APIKeyHash string
	JWTSecret  string
	// TokenRateLimit is the number of token requests allowed per client IP per minute.
	TokenRateLimit int
}

// RedisConfig holds Redis settings used by the call-state mirror and job queue
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

// Addr returns host:port for clients that take a single address.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// KafkaConfig holds call event streaming configuration
type KafkaConfig struct {
	Brokers string
	Topic   string
}

// EmailConfig holds post-call notification settings
type EmailConfig struct {
	ResendAPIKey  string
	Sender        string
	OperatorEmail string
}

// Load reads and validates all required environment variables
func Load() (*Config, error) {
	// Load env.local in non-production environments
	if os.Getenv("GO_ENV") != "production" {
		if err := godotenv.Load("env.local"); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env.local: %w", err)
		}
	}

	cfg := &Config{}
	var err error

	// Server configuration
	if cfg.Server.Port, err = getIntWithDefault("SERVER_PORT", 8080); err != nil {
		return nil, err
	}
	cfg.Server.PublicHost = os.Getenv("PUBLIC_HOST")
	cfg.Server.AllowedOrigins = splitList(getEnvWithDefault("ALLOWED_ORIGINS", "http://localhost:3000"))

	// Database configuration
	cfg.Database.Driver = getEnvWithDefault("DB_DRIVER", "sqlite3")
	cfg.Database.DSN = getEnvWithDefault("DB_DSN", "karma.db")

	// Twilio configuration
	cfg.Twilio.AccountSID = os.Getenv("TWILIO_ACCOUNT_SID")
	cfg.Twilio.AuthToken = os.Getenv("TWILIO_AUTH_TOKEN")
	if cfg.Twilio.ValidateSignature, err = getBoolWithDefault("TWILIO_VALIDATE_SIGNATURE", false); err != nil {
		return nil, err
	}
	if cfg.Twilio.ValidateSignature && cfg.Twilio.AuthToken == "" {
		return nil, fmt.Errorf("TWILIO_AUTH_TOKEN is required when signature validation is on: %w", ErrEmptyEnvironmentVariable)
	}

	// Services configuration
	cfg.Services.STTProvider = getEnvWithDefault("STT_PROVIDER", STTProviderSarvam)
	switch cfg.Services.STTProvider {
	case STTProviderSarvam:
		if cfg.Services.SarvamAPIKey, err = requireEnv("SARVAM_API_KEY"); err != nil {
			return nil, err
		}
	case STTProviderWhisper:
		if cfg.Services.OpenAIAPIKey, err = requireEnv("OPENAI_API_KEY"); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported STT_PROVIDER %q", cfg.Services.STTProvider)
	}
	cfg.Services.SarvamURL = getEnvWithDefault("SARVAM_URL", "https://api.sarvam.ai/speech-to-text")
	cfg.Services.SarvamModel = getEnvWithDefault("SARVAM_MODEL", "saaras:v3")

	if cfg.Services.CartesiaAPIKey, err = requireEnv("CARTESIA_API_KEY"); err != nil {
		return nil, err
	}
	cfg.Services.CartesiaVoiceID = getEnvWithDefault("CARTESIA_VOICE_ID", "3b554273-4299-48b9-9aaf-eefd438e3941")
	cfg.Services.CartesiaModel = getEnvWithDefault("CARTESIA_MODEL", "sonic-3")

	cfg.Services.LLMProvider = getEnvWithDefault("LLM_PROVIDER", LLMProviderOpenRouter)
	switch cfg.Services.LLMProvider {
	case LLMProviderOpenRouter:
		if cfg.Services.OpenRouterAPIKey, err = requireEnv("OPENROUTER_API_KEY"); err != nil {
			return nil, err
		}
	case LLMProviderGemini:
		if cfg.Services.GoogleAIAPIKey, err = requireEnv("GOOGLE_AI_API_KEY"); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported LLM_PROVIDER %q", cfg.Services.LLMProvider)
	}
	cfg.Services.OpenRouterURL = getEnvWithDefault("OPENROUTER_URL", "https://openrouter.ai/api/v1")
	cfg.Services.LLMModel = getEnvWithDefault("LLM_MODEL", "openai/gpt-oss-120b")
	cfg.Services.GeminiModel = getEnvWithDefault("GEMINI_MODEL", "gemini-2.5-flash")
	cfg.Services.ClassifierURL = getEnvWithDefault("CLASSIFIER_URL", "http://localhost:8000")

	if err := loadVoice(&cfg.Voice); err != nil {
		return nil, err
	}

	// Dashboard configuration
	cfg.Dashboard.APIKeyHash = os.Getenv("DASHBOARD_API_KEY_HASH")
	cfg.Dashboard.JWTSecret = os.Getenv("JWT_SECRET")
	if cfg.Dashboard.TokenRateLimit, err = getIntWithDefault("DASHBOARD_TOKEN_RATE_LIMIT", 10); err != nil {
		return nil, err
	}
	if cfg.Dashboard.APIKeyHash != "" && cfg.Dashboard.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required when DASHBOARD_API_KEY_HASH is set: %w", ErrEmptyEnvironmentVariable)
	}

	// Redis configuration
	if cfg.Redis.Enabled, err = getBoolWithDefault("REDIS_ENABLED", false); err != nil {
		return nil, err
	}
	cfg.Redis.Host = getEnvWithDefault("REDIS_HOST", "localhost")
	if cfg.Redis.Port, err = getIntWithDefault("REDIS_PORT", 6379); err != nil {
		return nil, err
	}
	cfg.Redis.Password = os.Getenv("REDIS_PASSWORD")
	if cfg.Redis.DB, err = getIntWithDefault("REDIS_DB", 0); err != nil {
		return nil, err
	}

	// Kafka configuration
	cfg.Kafka.Brokers = os.Getenv("KAFKA_BROKERS")
	cfg.Kafka.Topic = getEnvWithDefault("KAFKA_TOPIC", "call-events")

	// Email configuration
	cfg.Email.ResendAPIKey = os.Getenv("RESEND_API_KEY")
	cfg.Email.Sender = getEnvWithDefault("DEFAULT_EMAIL_SENDER_ADDRESS", "alerts@karma.local")
	cfg.Email.OperatorEmail = os.Getenv("OPERATOR_EMAIL")

	return cfg, nil
}

func loadVoice(v *VoiceConfig) error {
	var err error
	v.VADMode = getEnvWithDefault("VAD_MODE", "webrtc")
	if v.VADMode != "webrtc" && v.VADMode != "energy" {
		return fmt.Errorf("unsupported VAD_MODE %q", v.VADMode)
	}
	if v.VADAggressiveness, err = getIntWithDefault("VAD_AGGRESSIVENESS", 3); err != nil {
		return err
	}
	if v.EnergyThreshold, err = getFloatWithDefault("VAD_ENERGY_THRESHOLD", 500); err != nil {
		return err
	}
	if v.SilenceThresholdFrames, err = getIntWithDefault("SILENCE_THRESHOLD_FRAMES", 25); err != nil {
		return err
	}
	if v.MinSpeechFrames, err = getIntWithDefault("MIN_SPEECH_FRAMES", 20); err != nil {
		return err
	}
	if v.CooldownFrames, err = getIntWithDefault("COOLDOWN_FRAMES", 50); err != nil {
		return err
	}
	if v.ClassificationWindow, err = getDurationWithDefault("CLASSIFICATION_WINDOW", 3500*time.Millisecond); err != nil {
		return err
	}
	if v.ClassifierTimeout, err = getDurationWithDefault("CLASSIFIER_TIMEOUT", 10*time.Second); err != nil {
		return err
	}
	if v.MinClassifySpeech, err = getIntWithDefault("MIN_CLASSIFY_SPEECH_FRAMES", 5); err != nil {
		return err
	}
	if v.MinSentenceLength, err = getIntWithDefault("MIN_SENTENCE_LENGTH", 15); err != nil {
		return err
	}
	if v.Temperature, err = getFloatWithDefault("LLM_TEMPERATURE", 0.8); err != nil {
		return err
	}
	if v.HistoryLimit, err = getIntWithDefault("HISTORY_LIMIT", 20); err != nil {
		return err
	}
	v.Language = getEnvWithDefault("CALL_LANGUAGE", "hi-IN")
	v.AnnouncementLanguage = getEnvWithDefault("ANNOUNCEMENT_LANGUAGE", "en")
	v.GreetingText = getEnvWithDefault("GREETING_TEXT", "Haaaan? Hello? Kaun bol raha hai?")
	v.AnnouncementText = getEnvWithDefault("ANNOUNCEMENT_TEXT", "Caller is classified as AI.")
	v.SystemPromptFile = os.Getenv("SYSTEM_PROMPT_FILE")
	return nil
}

// requireEnv gets an environment variable or returns an error if it's empty
func requireEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s: %w", key, ErrEmptyEnvironmentVariable)
	}
	return value, nil
}

// getEnvWithDefault gets an environment variable or returns a default value
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntWithDefault(key string, defaultValue int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return v, nil
}

func getFloatWithDefault(key string, defaultValue float64) (float64, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return v, nil
}

func getBoolWithDefault(key string, defaultValue bool) (bool, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return v, nil
}

func getDurationWithDefault(key string, defaultValue time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return v, nil
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
