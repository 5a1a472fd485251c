package jobs

import (
	"context"
	"errors"
	"fmt"

	"github.com/hibiken/asynq"

	"karma-server/internal/config"
	"karma-server/internal/observability"
)

// RedisOpt builds the asynq connection options from the Redis settings.
func RedisOpt(cfg config.RedisConfig) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	}
}

// Client handles enqueueing background jobs
type Client struct {
	client *asynq.Client
	logger *observability.Logger
}

// NewClient creates a new job client
func NewClient(opt asynq.RedisClientOpt, logger *observability.Logger) *Client {
	return &Client{
		client: asynq.NewClient(opt),
		logger: logger,
	}
}

// Close closes the client connection
func (c *Client) Close() error {
	return c.client.Close()
}

// EnqueueSummary schedules the post-call summary. A summary already queued
// for the call is not duplicated.
func (c *Client) EnqueueSummary(ctx context.Context, callID string) error {
	ctx = observability.WithFields(ctx, observability.Field{Key: "call_sid", Value: callID})

	task, err := NewSummarizeTask(SummarizeJobPayload{CallID: callID})
	if err != nil {
		c.logger.Error(ctx, "failed to create summary task", err)
		return fmt.Errorf("failed to create summary task: %w", err)
	}

	info, err := c.client.EnqueueContext(ctx, task)
	if err != nil {
		if errors.Is(err, asynq.ErrTaskIDConflict) {
			return nil
		}
		c.logger.Error(ctx, "failed to enqueue summary task", err)
		return fmt.Errorf("failed to enqueue summary task: %w", err)
	}

	c.logger.Info(ctx, fmt.Sprintf("enqueued summary task: %s (queue: %s)", info.ID, info.Queue))
	return nil
}
