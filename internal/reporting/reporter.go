package reporting

import (
	"context"
	"errors"

	"karma-server/internal/clients/kafka"
	"karma-server/internal/intel"
	"karma-server/internal/observability"
	"karma-server/internal/workers"
)

// Reporter queues call activity for the event processor. Its methods never
// block; an event that does not fit the queue is dropped with a warning.
type Reporter struct {
	pool   workers.WorkerPool
	logger *observability.Logger
}

func NewReporter(pool workers.WorkerPool, logger *observability.Logger) *Reporter {
	return &Reporter{pool: pool, logger: logger}
}

func (r *Reporter) ReportTranscript(callID, speaker, text string) {
	r.submit(kafka.NewEventMessage(EventTranscriptMessage, callID, map[string]any{
		"speaker": speaker,
		"text":    text,
	}))
}

func (r *Reporter) ReportStatus(callID, status string) {
	r.submit(kafka.NewEventMessage(EventAIStatus, callID, map[string]any{
		"status": status,
	}))
}

func (r *Reporter) ReportIntel(callID string, items []intel.Item) {
	if len(items) == 0 {
		return
	}
	r.submit(kafka.NewEventMessage(EventIntelUpdate, callID, map[string]any{
		"items": items,
	}))
}

func (r *Reporter) ReportCallStarted(callID, caller string) {
	r.submit(kafka.NewEventMessage(EventCallStarted, callID, map[string]any{
		"caller": caller,
	}))
}

func (r *Reporter) ReportCallEnded(callID, status string, duration int) {
	r.submit(kafka.NewEventMessage(EventCallEnded, callID, map[string]any{
		"status":   status,
		"duration": duration,
	}))
}

func (r *Reporter) submit(ev kafka.EventMessage) {
	err := r.pool.TrySubmit(ev)
	if err == nil {
		return
	}

	ctx := observability.WithFields(context.Background(),
		observability.Field{Key: "call_sid", Value: ev.CallID},
		observability.Field{Key: "event_type", Value: ev.Type},
	)
	if errors.Is(err, workers.ErrQueueFull) {
		r.logger.Warn(ctx, "report queue full, dropping event")
		return
	}
	r.logger.Warn(ctx, "report not queued: "+err.Error())
}
