package reporting

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=reporting

import (
	"context"

	"karma-server/internal/clients/kafka"
	"karma-server/internal/store"
)

// Store is the persistence the event processor writes through.
type Store interface {
	SaveMessage(ctx context.Context, callID, role, content string) error
	SaveIntel(ctx context.Context, callID, name, value string, confidence float64) (bool, error)
	ListActiveCalls(ctx context.Context) ([]store.Call, error)
	ListCalls(ctx context.Context, limit, offset int) ([]store.CallSummary, error)
}

// StatusSetter records the latest agent status of a call.
type StatusSetter interface {
	SetStatus(callID, status string)
}

// Broadcaster fans an event out to dashboard viewers.
type Broadcaster interface {
	Broadcast(eventType string, data any)
}

// Publisher streams events to an external topic.
type Publisher interface {
	PublishEvent(ctx context.Context, event kafka.EventMessage) error
}
