package workers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hibiken/asynq"

	"karma-server/internal/clients/mail"
	"karma-server/internal/jobs"
	"karma-server/internal/observability"
	"karma-server/internal/store"
	"karma-server/internal/summary"
)

// Summarizer produces and stores a call summary.
type Summarizer interface {
	Summarize(ctx context.Context, callID string) (string, error)
}

// CallReader loads the call details shown in the notification.
type CallReader interface {
	GetCall(ctx context.Context, id string) (store.Call, error)
	GetIntel(ctx context.Context, callID string) ([]store.Intel, error)
}

// Mailer sends the call summary notification.
type Mailer interface {
	SendCallSummary(ctx context.Context, from, to string, summary mail.CallSummary) (string, error)
}

// SummaryWorker summarises finished calls and notifies the operator.
type SummaryWorker struct {
	summarizer Summarizer
	calls      CallReader
	mailer     Mailer
	sender     string
	operator   string
	logger     *observability.Logger
}

// NewSummaryWorker creates a new summary worker. mailer may be nil, and no
// email is sent when operator is empty.
func NewSummaryWorker(summarizer Summarizer, calls CallReader, mailer Mailer, sender, operator string, logger *observability.Logger) *SummaryWorker {
	return &SummaryWorker{
		summarizer: summarizer,
		calls:      calls,
		mailer:     mailer,
		sender:     sender,
		operator:   operator,
		logger:     logger,
	}
}

// ProcessSummaryTask processes a summary task (for Asynq)
func (w *SummaryWorker) ProcessSummaryTask(ctx context.Context, task *asynq.Task) error {
	var payload jobs.SummarizeJobPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		w.logger.Error(ctx, "failed to unmarshal summary job payload", err)
		return fmt.Errorf("failed to unmarshal summary job payload: %w: %w", err, asynq.SkipRetry)
	}
	if payload.CallID == "" {
		return fmt.Errorf("summary job without call id: %w", asynq.SkipRetry)
	}
	return w.process(ctx, payload.CallID)
}

func (w *SummaryWorker) process(ctx context.Context, callID string) error {
	ctx = observability.WithFields(ctx, observability.Field{Key: "call_sid", Value: callID})

	text, err := w.summarizer.Summarize(ctx, callID)
	if err != nil {
		if errors.Is(err, summary.ErrNoTranscript) || errors.Is(err, store.ErrNotFound) {
			w.logger.Info(ctx, "nothing to summarise for call")
			return nil
		}
		return err
	}

	if w.mailer == nil || w.operator == "" {
		return nil
	}

	call, err := w.calls.GetCall(ctx, callID)
	if err != nil {
		return fmt.Errorf("failed to load call for notification: %w", err)
	}
	intel, err := w.calls.GetIntel(ctx, callID)
	if err != nil {
		return fmt.Errorf("failed to load intel for notification: %w", err)
	}

	if _, err := w.mailer.SendCallSummary(ctx, w.sender, w.operator, callSummary(call, intel, text)); err != nil {
		// The summary is stored; a retry would only resend the email.
		w.logger.Error(ctx, "failed to send summary email", err)
	}
	return nil
}

func callSummary(call store.Call, intel []store.Intel, text string) mail.CallSummary {
	items := make([]mail.IntelItem, 0, len(intel))
	for _, item := range intel {
		items = append(items, mail.IntelItem{Field: item.FieldName, Value: item.FieldValue, Confidence: item.Confidence})
	}
	return mail.CallSummary{
		CallID:          call.ID,
		Caller:          call.CallerNumber,
		Status:          call.Status,
		DurationSeconds: call.DurationSeconds,
		Summary:         text,
		Intel:           items,
	}
}
