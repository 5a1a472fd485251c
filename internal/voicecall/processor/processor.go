// Package processor owns the call lifecycle outside the media stream: call
// creation, termination and operator controls.
package processor

import (
	"context"
	"errors"
	"fmt"

	"karma-server/internal/observability"
	"karma-server/internal/reporting"
	"karma-server/internal/store"
)

var (
	ErrMissingCallID = errors.New("call id is required")
	ErrCallNotFound  = errors.New("call not found")
	ErrCallNotActive = errors.New("call is not active")
)

// Agent statuses set by operator controls.
const (
	StatusMuted  = "MUTED"
	StatusActive = "ACTIVE"
)

// terminalStatuses are provider call states that end a call.
var terminalStatuses = map[string]bool{
	store.CallStatusCompleted: true,
	store.CallStatusFailed:    true,
	store.CallStatusBusy:      true,
	store.CallStatusNoAnswer:  true,
	store.CallStatusCanceled:  true,
}

// IsTerminalStatus reports whether a provider status ends the call.
func IsTerminalStatus(status string) bool {
	return terminalStatuses[status]
}

type CallProcessor struct {
	store     CallStore
	convs     Conversations
	state     CallState
	reporter  Reporter
	telephony Telephony
	jobs      JobQueue
	greeting  string
	logger    *observability.Logger
}

// New creates a call processor. telephony and jobs may be nil.
func New(store CallStore, convs Conversations, state CallState, reporter Reporter, telephony Telephony, jobs JobQueue, greeting string, logger *observability.Logger) *CallProcessor {
	return &CallProcessor{
		store:     store,
		convs:     convs,
		state:     state,
		reporter:  reporter,
		telephony: telephony,
		jobs:      jobs,
		greeting:  greeting,
		logger:    logger,
	}
}

func withCall(ctx context.Context, callID string) context.Context {
	return observability.WithFields(ctx, observability.Field{Key: "call_sid", Value: callID})
}

// StartCall registers an incoming call: it seeds the conversation, records
// the call and announces it together with the greeting the caller will hear.
func (p *CallProcessor) StartCall(ctx context.Context, callID, caller, mode string) error {
	if callID == "" {
		return ErrMissingCallID
	}
	ctx = withCall(ctx, callID)

	p.convs.GetOrCreate(callID)
	if err := p.store.CreateCall(ctx, callID, caller, mode); err != nil {
		return fmt.Errorf("failed to start call: %w", err)
	}

	p.reporter.ReportCallStarted(callID, caller)
	if p.greeting != "" {
		p.reporter.ReportTranscript(callID, reporting.SpeakerAI, p.greeting)
	}

	p.logger.Info(ctx, fmt.Sprintf("call started from %s", caller))
	return nil
}

// EndCall closes a call with the given status. It is safe to call more than
// once; the first terminal status is kept.
func (p *CallProcessor) EndCall(ctx context.Context, callID, status string) error {
	if callID == "" {
		return ErrMissingCallID
	}
	ctx = withCall(ctx, callID)

	p.convs.End(callID)
	p.state.Clear(callID)

	if err := p.store.EndCall(ctx, callID, status); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrCallNotFound
		}
		return fmt.Errorf("failed to end call: %w", err)
	}

	call, err := p.store.GetCall(ctx, callID)
	if err != nil {
		return fmt.Errorf("failed to load ended call: %w", err)
	}
	p.reporter.ReportCallEnded(callID, call.Status, call.DurationSeconds)

	if p.jobs != nil {
		if err := p.jobs.EnqueueSummary(ctx, callID); err != nil {
			p.logger.Error(ctx, "failed to schedule call summary", err)
		}
	}

	p.logger.Info(ctx, fmt.Sprintf("call ended: %s after %ds", call.Status, call.DurationSeconds))
	return nil
}

// SetMuted stops or resumes the agent's replies on a call.
func (p *CallProcessor) SetMuted(ctx context.Context, callID string, muted bool) error {
	if callID == "" {
		return ErrMissingCallID
	}

	p.state.SetMuted(callID, muted)

	status := StatusActive
	if muted {
		status = StatusMuted
	}
	p.reporter.ReportStatus(callID, status)

	p.logger.Info(withCall(ctx, callID), "agent status set to "+status)
	return nil
}

// DropCall hangs up a live call at the provider and ends it as dropped. A
// provider failure is logged and the call is still ended locally.
func (p *CallProcessor) DropCall(ctx context.Context, callID string) error {
	if callID == "" {
		return ErrMissingCallID
	}
	ctx = withCall(ctx, callID)

	call, err := p.store.GetCall(ctx, callID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrCallNotFound
		}
		return fmt.Errorf("failed to load call: %w", err)
	}
	if call.Status != store.CallStatusActive {
		return ErrCallNotActive
	}

	if p.telephony != nil {
		if err := p.telephony.Hangup(ctx, callID); err != nil {
			p.logger.Error(ctx, "failed to hang up call at provider", err)
		}
	}

	return p.EndCall(ctx, callID, store.CallStatusDropped)
}
