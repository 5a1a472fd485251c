package reporting

import (
	"context"
	"fmt"

	"karma-server/internal/clients/kafka"
	"karma-server/internal/intel"
	"karma-server/internal/observability"
)

// Processor applies queued events: it persists transcript and intel, records
// status, broadcasts to viewers and streams the event when a publisher is set.
type Processor struct {
	store     Store
	calls     StatusSetter
	hub       Broadcaster
	publisher Publisher
	logger    *observability.Logger
}

// NewProcessor wires the processor. publisher may be nil.
func NewProcessor(store Store, calls StatusSetter, hub Broadcaster, publisher Publisher, logger *observability.Logger) *Processor {
	return &Processor{
		store:     store,
		calls:     calls,
		hub:       hub,
		publisher: publisher,
		logger:    logger,
	}
}

func (p *Processor) Name() string {
	return "call-reporting"
}

// Process handles one event. Persistence errors are returned after the
// broadcast so viewers still see live activity.
func (p *Processor) Process(ctx context.Context, ev kafka.EventMessage) error {
	var err error
	switch ev.Type {
	case EventTranscriptMessage:
		err = p.transcript(ctx, ev)
	case EventAIStatus:
		p.status(ev)
	case EventIntelUpdate:
		err = p.intel(ctx, ev)
	case EventCallStarted:
		p.hub.Broadcast(EventCallStarted, map[string]any{
			"call_sid":  ev.CallID,
			"caller":    ev.Data["caller"],
			"timestamp": ev.Timestamp,
		})
		p.BroadcastCallList(ctx)
	case EventCallEnded:
		p.hub.Broadcast(EventCallEnded, map[string]any{
			"call_sid": ev.CallID,
			"duration": ev.Data["duration"],
		})
		p.BroadcastCallList(ctx)
	default:
		return fmt.Errorf("unknown event type %q", ev.Type)
	}

	if p.publisher != nil {
		if perr := p.publisher.PublishEvent(ctx, ev); perr != nil {
			p.logger.Error(ctx, "failed to stream call event", perr)
		}
	}
	return err
}

func (p *Processor) transcript(ctx context.Context, ev kafka.EventMessage) error {
	speaker, _ := ev.Data["speaker"].(string)
	text, _ := ev.Data["text"].(string)

	p.hub.Broadcast(EventTranscriptMessage, map[string]any{
		"call_sid":  ev.CallID,
		"speaker":   speaker,
		"text":      text,
		"timestamp": ev.Timestamp,
	})

	if err := p.store.SaveMessage(ctx, ev.CallID, roleFor(speaker), text); err != nil {
		return fmt.Errorf("failed to persist transcript: %w", err)
	}
	return nil
}

func (p *Processor) status(ev kafka.EventMessage) {
	status, _ := ev.Data["status"].(string)
	p.calls.SetStatus(ev.CallID, status)
	p.hub.Broadcast(EventAIStatus, map[string]any{
		"call_sid": ev.CallID,
		"status":   status,
	})
}

func (p *Processor) intel(ctx context.Context, ev kafka.EventMessage) error {
	items, _ := ev.Data["items"].([]intel.Item)

	if update := intelUpdate(ev.CallID, items); update != nil {
		p.hub.Broadcast(EventIntelUpdate, update)
	}

	var firstErr error
	saved := 0
	for _, item := range items {
		fresh, err := p.store.SaveIntel(ctx, ev.CallID, item.FieldName, item.FieldValue, item.Confidence)
		if err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("failed to persist intel: %w", err)
			}
			continue
		}
		if fresh {
			saved++
		}
	}
	if saved > 0 {
		p.logger.Metrics(ctx, observability.MetricField{Key: "intel_saved", Value: saved})
	}
	return firstErr
}

// BroadcastCallList sends the active calls and the most recent history.
func (p *Processor) BroadcastCallList(ctx context.Context) {
	active, err := p.store.ListActiveCalls(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to load active calls for broadcast", err)
		return
	}
	recent, err := p.store.ListCalls(ctx, recentCallsLimit, 0)
	if err != nil {
		p.logger.Error(ctx, "failed to load recent calls for broadcast", err)
		return
	}
	p.hub.Broadcast(EventCallListUpdate, map[string]any{
		"active_calls": active,
		"recent_calls": recent,
	})
}
