package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"

	"karma-server/internal/ai"
	"karma-server/internal/store"
)

// CallStore defines the database operations required by CallProcessor
type CallStore interface {
	CreateCall(ctx context.Context, id, caller, mode string) error
	EndCall(ctx context.Context, id, status string) error
	GetCall(ctx context.Context, id string) (store.Call, error)
}

// Conversations holds the chat history of live calls.
type Conversations interface {
	GetOrCreate(callID string) []ai.Message
	End(callID string)
}

// CallState holds operator controls for live calls.
type CallState interface {
	SetMuted(callID string, muted bool)
	Clear(callID string)
}

// Reporter publishes call lifecycle activity.
type Reporter interface {
	ReportCallStarted(callID, caller string)
	ReportCallEnded(callID, status string, duration int)
	ReportTranscript(callID, speaker, text string)
	ReportStatus(callID, status string)
}

// Telephony hangs up live calls at the provider.
type Telephony interface {
	Hangup(ctx context.Context, callSid string) error
}

// JobQueue schedules post-call work.
type JobQueue interface {
	EnqueueSummary(ctx context.Context, callID string) error
}
