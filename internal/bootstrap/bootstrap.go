package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"karma-server/internal/ai"
	"karma-server/internal/clients/cartesia"
	"karma-server/internal/clients/classifier"
	"karma-server/internal/clients/googleai"
	kafkaClient "karma-server/internal/clients/kafka"
	openaiClient "karma-server/internal/clients/openai"
	redisClient "karma-server/internal/clients/redis"
	"karma-server/internal/clients/sarvam"
	twilioClient "karma-server/internal/clients/twilio"
	"karma-server/internal/config"
	"karma-server/internal/conversation"
	"karma-server/internal/dashboard"
	"karma-server/internal/jobs"
	"karma-server/internal/observability"
	"karma-server/internal/ratelimit"
	"karma-server/internal/reporting"
	"karma-server/internal/store"
	"karma-server/internal/summary"
	"karma-server/internal/voice/vad"
	"karma-server/internal/voicecall/callstate"
	voiceCallHandler "karma-server/internal/voicecall/handler"
	voiceCallProcessor "karma-server/internal/voicecall/processor"
	"karma-server/internal/voicecall/session"
	"karma-server/internal/workers"
)

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	// Core
	Store  *store.Store
	Logger *observability.Logger

	// Handlers
	VoiceCallHandler voiceCallHandler.Handler
	DashboardHandler dashboard.Handler

	// Live call state
	Hub           *dashboard.Hub
	ReportingPool workers.WorkerPool
	Conversations *conversation.Manager
	Classifier    *classifier.Client

	// Optional infrastructure (nil when disabled)
	Redis         *redisClient.Client
	KafkaProducer *kafkaClient.Producer
	JobClient     *jobs.Client
}

// Initialize sets up all application dependencies
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger: logger,
	}

	// Initialize database store
	var err error
	deps.Store, err = store.New(cfg.Database.Driver, cfg.Database.DSN, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := deps.Store.Migrate(ctx); err != nil {
		deps.Cleanup()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	// Initialize Redis, used for the call-state mirror and the job queue
	deps.Redis, err = redisClient.NewClient(ctx, cfg.Redis, logger)
	if err != nil {
		deps.Cleanup()
		return nil, err
	}
	var mirror callstate.Mirror
	if deps.Redis != nil {
		mirror = deps.Redis
		deps.JobClient = jobs.NewClient(jobs.RedisOpt(cfg.Redis), logger)
	}
	callStates := callstate.New(mirror, logger)

	// Initialize Kafka producer for the call event stream
	var publisher reporting.Publisher
	if cfg.Kafka.Brokers != "" {
		deps.KafkaProducer = kafkaClient.NewProducer(kafkaClient.ProducerConfig{
			Brokers: strings.Split(cfg.Kafka.Brokers, ","),
			Topic:   cfg.Kafka.Topic,
		}, logger)
		publisher = deps.KafkaProducer
	}

	// Initialize dashboard fan-out and the reporting pipeline feeding it
	deps.Hub = dashboard.NewHub(logger)
	reportingProc := reporting.NewProcessor(deps.Store, callStates, deps.Hub, publisher, logger)
	deps.ReportingPool = workers.NewWorkerPool(workers.WorkerPoolConfig{}, reportingProc, logger)
	reporter := reporting.NewReporter(deps.ReportingPool, logger)

	// Initialize AI clients
	llm, err := NewChatClient(ctx, cfg.Services, logger)
	if err != nil {
		deps.Cleanup()
		return nil, err
	}
	transcriber, err := newTranscriber(cfg.Services, logger)
	if err != nil {
		deps.Cleanup()
		return nil, err
	}
	tts, err := cartesia.NewClient(cfg.Services.CartesiaAPIKey, cfg.Services.CartesiaVoiceID, cfg.Services.CartesiaModel, logger)
	if err != nil {
		deps.Cleanup()
		return nil, fmt.Errorf("failed to create cartesia client: %w", err)
	}
	deps.Classifier = classifier.NewClient(cfg.Services.ClassifierURL, logger)

	// Initialize conversation memory
	systemPrompt, err := conversation.LoadSystemPrompt(cfg.Voice.SystemPromptFile)
	if err != nil {
		deps.Cleanup()
		return nil, err
	}
	deps.Conversations = conversation.New(systemPrompt, cfg.Voice.HistoryLimit)

	// Initialize the voice session factory
	sessionCfg := session.ConfigFromVoice(cfg.Voice)
	detectors, err := vad.NewFactory(ctx, cfg.Voice.VADMode, cfg.Voice.VADAggressiveness, cfg.Voice.EnergyThreshold, logger)
	if err != nil {
		deps.Cleanup()
		return nil, fmt.Errorf("failed to create voice activity detector: %w", err)
	}
	prompts := session.PreparePrompts(ctx, tts, sessionCfg, logger)
	sessions := session.NewFactory(sessionCfg, session.Dependencies{
		Transcriber:  transcriber,
		Synthesizer:  tts,
		Chat:         llm,
		Classifier:   deps.Classifier,
		Reporter:     reporter,
		Conversation: deps.Conversations,
		Mutes:        callStates,
	}, detectors, prompts, logger)

	// Initialize call processor
	var jobQueue voiceCallProcessor.JobQueue
	if deps.JobClient != nil {
		jobQueue = deps.JobClient
	}
	telephony := twilioClient.NewClient(cfg.Twilio.AccountSID, cfg.Twilio.AuthToken, logger)
	callProc := voiceCallProcessor.New(
		deps.Store,
		deps.Conversations,
		callStates,
		reporter,
		telephony,
		jobQueue,
		sessionCfg.GreetingText,
		logger,
	)

	// Initialize voice call handler
	var signatures voiceCallHandler.SignatureChecker
	if cfg.Twilio.ValidateSignature {
		signatures = twilioClient.NewSignatureValidator(cfg.Twilio.AuthToken)
	}
	deps.VoiceCallHandler = voiceCallHandler.New(callProc, sessions, signatures, cfg.Server.PublicHost, logger)

	// Initialize dashboard handler
	summarizer := summary.New(deps.Store, llm, logger)
	auth := dashboard.NewAuthenticator(cfg.Dashboard.APIKeyHash, cfg.Dashboard.JWTSecret)
	deps.DashboardHandler = dashboard.New(
		deps.Store,
		summarizer,
		callProc,
		reportingProc,
		deps.Hub,
		auth,
		cfg.Server.AllowedOrigins,
		logger,
	)
	var window ratelimit.WindowStore
	if deps.Redis != nil {
		window = deps.Redis
	}
	tokenLimiter := ratelimit.NewService(window, cfg.Dashboard.TokenRateLimit, time.Minute, logger)
	deps.DashboardHandler.SetTokenLimiter(tokenLimiter.Middleware("dashboard_token"))

	return deps, nil
}

// NewChatClient builds the configured LLM provider.
func NewChatClient(ctx context.Context, cfg config.ServicesConfig, logger *observability.Logger) (ai.ChatClient, error) {
	switch cfg.LLMProvider {
	case config.LLMProviderGemini:
		client, err := googleai.NewChatClient(ctx, cfg.GoogleAIAPIKey, cfg.GeminiModel, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini client: %w", err)
		}
		return client, nil
	default:
		client, err := openaiClient.NewOpenRouterClient(cfg.OpenRouterAPIKey, cfg.OpenRouterURL, cfg.LLMModel, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create openrouter client: %w", err)
		}
		return client, nil
	}
}

func newTranscriber(cfg config.ServicesConfig, logger *observability.Logger) (session.Transcriber, error) {
	switch cfg.STTProvider {
	case config.STTProviderWhisper:
		client, err := openaiClient.NewTranscriber(cfg.OpenAIAPIKey, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create whisper client: %w", err)
		}
		return client, nil
	default:
		client, err := sarvam.NewClient(cfg.SarvamAPIKey, cfg.SarvamURL, cfg.SarvamModel, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create sarvam client: %w", err)
		}
		return client, nil
	}
}

// Start launches the background loops that live call reporting depends on.
func (d *Dependencies) Start(ctx context.Context) error {
	go d.Hub.Run(ctx)
	if err := d.ReportingPool.Start(ctx); err != nil {
		return fmt.Errorf("failed to start reporting pool: %w", err)
	}
	return nil
}

// Cleanup closes all resources that need cleanup
func (d *Dependencies) Cleanup() {
	ctx := context.Background()

	if d.ReportingPool != nil {
		if err := d.ReportingPool.Drain(ctx); err != nil && !errors.Is(err, workers.ErrNotStarted) {
			d.Logger.Error(ctx, "failed to drain reporting pool", err)
		}
	}
	if d.KafkaProducer != nil {
		if err := d.KafkaProducer.Close(); err != nil {
			d.Logger.Error(ctx, "failed to close kafka producer", err)
		}
	}
	if d.JobClient != nil {
		if err := d.JobClient.Close(); err != nil {
			d.Logger.Error(ctx, "failed to close job client", err)
		}
	}
	if d.Redis != nil {
		if err := d.Redis.Close(); err != nil {
			d.Logger.Error(ctx, "failed to close redis client", err)
		}
	}
	if d.Store != nil {
		if err := d.Store.Close(); err != nil {
			d.Logger.Error(ctx, "failed to close database", err)
		}
	}
}
