package dashboard

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=dashboard

import (
	"context"

	"karma-server/internal/store"
	"karma-server/internal/summary"
)

// CallStore defines the database operations required by the dashboard
type CallStore interface {
	GetStats(ctx context.Context) (store.Stats, error)
	ListCalls(ctx context.Context, limit, offset int) ([]store.CallSummary, error)
	CountCalls(ctx context.Context) (int, error)
	GetCall(ctx context.Context, id string) (store.Call, error)
	GetTranscript(ctx context.Context, callID string) ([]store.Message, error)
	GetIntel(ctx context.Context, callID string) ([]store.Intel, error)
	ListActiveCalls(ctx context.Context) ([]store.Call, error)
	DeleteCall(ctx context.Context, id string) error
}

// Summarizer produces the analyst summary and dossier of a call.
type Summarizer interface {
	Summarize(ctx context.Context, callID string) (string, error)
	Analyze(ctx context.Context, callID string) (summary.AnalysisResult, error)
}

// Controller applies operator actions to live calls.
type Controller interface {
	SetMuted(ctx context.Context, callID string, muted bool) error
	DropCall(ctx context.Context, callID string) error
}

// CallListNotifier pushes the refreshed call list to viewers.
type CallListNotifier interface {
	BroadcastCallList(ctx context.Context)
}
