package workers

import (
	"context"

	kafka "karma-server/internal/clients/kafka"
)

// EventMessage is an alias for the Kafka event envelope, so the same value
// can be processed locally and then streamed.
type EventMessage = kafka.EventMessage

// EventProcessor handles events taken off the pool's queues.
type EventProcessor interface {
	// Process handles a single event. Errors are logged by the pool.
	Process(ctx context.Context, event EventMessage) error

	// Name returns the processor name for logging.
	Name() string
}

// WorkerPool defines the interface for managing a pool of event processing workers.
type WorkerPool interface {
	// Start launches the workers.
	Start(ctx context.Context) error

	// Submit queues an event, blocking while its queue is full.
	Submit(ctx context.Context, event EventMessage) error

	// TrySubmit queues an event without blocking. It returns ErrQueueFull
	// when the event's queue has no room.
	TrySubmit(event EventMessage) error

	// Drain stops accepting new events and waits for queued events to complete.
	Drain(ctx context.Context) error

	// Stop immediately stops all workers.
	Stop()
}
