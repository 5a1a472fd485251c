package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"

	"karma-server/internal/bootstrap"
	"karma-server/internal/clients/mail"
	"karma-server/internal/config"
	"karma-server/internal/jobs"
	"karma-server/internal/jobs/workers"
	"karma-server/internal/observability"
	"karma-server/internal/store"
	"karma-server/internal/summary"
	"karma-server/internal/voicecall/callstate"
)

// sweepSchedule is how often calls orphaned by a crashed server are closed.
const sweepSchedule = "@every 15m"

func main() {
	// Initialize logger
	logger := observability.NewLogger()
	defer logger.Sync()
	ctx := context.Background()

	logger.Info(ctx, "Starting background worker server...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if !cfg.Redis.Enabled {
		log.Fatal("REDIS_ENABLED must be true to run the worker")
	}
	redisOpt := jobs.RedisOpt(cfg.Redis)

	// Initialize store
	dataStore, err := store.New(cfg.Database.Driver, cfg.Database.DSN, logger)
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer dataStore.Close()
	if err := dataStore.Migrate(ctx); err != nil {
		log.Fatalf("Failed to migrate store: %v", err)
	}

	// Initialize summarizer
	llm, err := bootstrap.NewChatClient(ctx, cfg.Services, logger)
	if err != nil {
		log.Fatalf("Failed to initialize LLM client: %v", err)
	}
	summarizer := summary.New(dataStore, llm, logger)

	// Initialize mailer when operator notifications are configured
	var mailer workers.Mailer
	if cfg.Email.ResendAPIKey != "" {
		resend, err := mail.NewResendClient(cfg.Email.ResendAPIKey, logger)
		if err != nil {
			log.Fatalf("Failed to initialize mail client: %v", err)
		}
		mailer = resend
	}

	// Initialize workers
	summaryWorker := workers.NewSummaryWorker(summarizer, dataStore, mailer, cfg.Email.Sender, cfg.Email.OperatorEmail, logger)
	sweepWorker := workers.NewSweepWorker(dataStore, callstate.TTL, logger)

	// Create Asynq server with queue configuration
	srv := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Concurrency: 4,
			Queues: map[string]int{
				jobs.QueueDefault: 3,
				jobs.QueueLow:     1,
			},
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				logger.Error(ctx, fmt.Sprintf("task %s failed", task.Type()), err)
			}),
			RetryDelayFunc: asynq.DefaultRetryDelayFunc,
			Logger:         &asynqLogger{logger: logger},
		},
	)

	// Create task handler (mux)
	mux := asynq.NewServeMux()
	mux.HandleFunc(jobs.TypeCallSummarize, summaryWorker.ProcessSummaryTask)
	mux.HandleFunc(jobs.TypeStaleCallSweep, sweepWorker.ProcessSweepTask)

	// Setup periodic stale call sweep
	scheduler := asynq.NewScheduler(
		redisOpt,
		&asynq.SchedulerOpts{
			Logger: &asynqLogger{logger: logger},
		},
	)
	if _, err := scheduler.Register(sweepSchedule, jobs.NewStaleCallSweepTask()); err != nil {
		logger.Error(ctx, "failed to register stale call sweep", err)
	}

	if err := scheduler.Start(); err != nil {
		log.Fatalf("Failed to start scheduler: %v", err)
	}
	defer scheduler.Shutdown()

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	if err := srv.Start(mux); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
	logger.Info(ctx, fmt.Sprintf("Worker server started on Redis: %s", redisOpt.Addr))

	<-sigChan
	logger.Info(ctx, "Shutting down worker server...")

	srv.Shutdown()
	logger.Info(ctx, "Worker server stopped")
}

// asynqLogger adapts observability.Logger to asynq.Logger interface
type asynqLogger struct {
	logger *observability.Logger
}

func (l *asynqLogger) Debug(args ...interface{}) {
	l.logger.Debug(context.Background(), fmt.Sprint(args...))
}

func (l *asynqLogger) Info(args ...interface{}) {
	l.logger.Info(context.Background(), fmt.Sprint(args...))
}

func (l *asynqLogger) Warn(args ...interface{}) {
	l.logger.Warn(context.Background(), fmt.Sprint(args...))
}

func (l *asynqLogger) Error(args ...interface{}) {
	l.logger.Error(context.Background(), fmt.Sprint(args...), nil)
}

func (l *asynqLogger) Fatal(args ...interface{}) {
	l.logger.Error(context.Background(), fmt.Sprint(args...), nil)
	os.Exit(1)
}
