package workers

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"sync"
	"time"

	"karma-server/internal/observability"
)

var (
	ErrQueueFull    = errors.New("worker pool queue is full")
	ErrNotStarted   = errors.New("worker pool not started")
	ErrShuttingDown = errors.New("worker pool is shutting down")
)

// ProcessingResult represents the result of processing an event.
type ProcessingResult struct {
	Event EventMessage
	Error error
}

// ResultCallback is called after each event is processed.
type ResultCallback func(result ProcessingResult)

// WorkerPoolConfig holds configuration for the worker pool.
type WorkerPoolConfig struct {
	// NumWorkers is the number of concurrent workers to run. Each worker owns
	// one queue.
	NumWorkers int

	// QueueSize is the buffer size of each worker's queue.
	QueueSize int

	// DrainTimeout is the maximum time to wait for queued events
	// to complete during graceful shutdown.
	DrainTimeout time.Duration

	// OnResult is called after each event is processed (optional).
	OnResult ResultCallback
}

// DefaultWorkerPoolConfig returns sensible defaults for a worker pool.
func DefaultWorkerPoolConfig() WorkerPoolConfig {
	return WorkerPoolConfig{
		NumWorkers:   4,
		QueueSize:    256,
		DrainTimeout: 10 * time.Second,
	}
}

// pool implements the WorkerPool interface. Events are sharded by call id,
// so events of one call are processed in submission order.
type pool struct {
	config    WorkerPoolConfig
	processor EventProcessor
	logger    *observability.Logger

	queues []chan EventMessage
	wg     sync.WaitGroup

	// Lifecycle management
	mu       sync.RWMutex
	started  bool
	draining bool
	stopped  bool
	cancelFn context.CancelFunc
}

// NewWorkerPool creates a new worker pool for processing events.
func NewWorkerPool(
	config WorkerPoolConfig,
	processor EventProcessor,
	logger *observability.Logger,
) WorkerPool {
	defaults := DefaultWorkerPoolConfig()
	if config.NumWorkers <= 0 {
		config.NumWorkers = defaults.NumWorkers
	}
	if config.QueueSize <= 0 {
		config.QueueSize = defaults.QueueSize
	}
	if config.DrainTimeout <= 0 {
		config.DrainTimeout = defaults.DrainTimeout
	}

	queues := make([]chan EventMessage, config.NumWorkers)
	for i := range queues {
		queues[i] = make(chan EventMessage, config.QueueSize)
	}

	return &pool{
		config:    config,
		processor: processor,
		logger:    logger,
		queues:    queues,
	}
}

// Start initializes the worker pool with N workers.
func (p *pool) Start(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.started {
		return fmt.Errorf("worker pool already started")
	}
	if p.stopped {
		return fmt.Errorf("worker pool already stopped")
	}

	workerCtx, cancel := context.WithCancel(ctx)
	p.cancelFn = cancel
	p.started = true

	for i := range p.queues {
		p.wg.Add(1)
		go p.worker(workerCtx, i)
	}

	p.logger.Info(ctx, fmt.Sprintf("started %d workers for %s processor",
		p.config.NumWorkers, p.processor.Name()))

	return nil
}

func (p *pool) queueFor(event EventMessage) chan EventMessage {
	h := fnv.New32a()
	h.Write([]byte(event.CallID))
	return p.queues[h.Sum32()%uint32(len(p.queues))]
}

// Submit adds an event to the worker pool for processing.
func (p *pool) Submit(ctx context.Context, event EventMessage) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if err := p.acceptingLocked(); err != nil {
		return err
	}

	select {
	case p.queueFor(event) <- event:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// TrySubmit adds an event without blocking.
func (p *pool) TrySubmit(event EventMessage) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if err := p.acceptingLocked(); err != nil {
		return err
	}

	select {
	case p.queueFor(event) <- event:
		return nil
	default:
		return ErrQueueFull
	}
}

// acceptingLocked must be called with mu held. Holding the read lock while
// sending keeps queues open until the send completes.
func (p *pool) acceptingLocked() error {
	if !p.started {
		return ErrNotStarted
	}
	if p.draining || p.stopped {
		return ErrShuttingDown
	}
	return nil
}

func (p *pool) closeQueues() {
	for _, q := range p.queues {
		close(q)
	}
}

// Drain stops accepting new events and waits for queued events to complete.
func (p *pool) Drain(ctx context.Context) error {
	p.mu.Lock()
	if !p.started {
		p.mu.Unlock()
		return ErrNotStarted
	}
	if p.draining || p.stopped {
		p.mu.Unlock()
		return fmt.Errorf("worker pool already draining")
	}
	p.draining = true
	p.closeQueues()
	p.mu.Unlock()

	p.logger.Info(ctx, fmt.Sprintf("draining worker pool for %s processor", p.processor.Name()))

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	drainCtx, cancel := context.WithTimeout(ctx, p.config.DrainTimeout)
	defer cancel()

	select {
	case <-done:
		p.logger.Info(ctx, fmt.Sprintf("drained worker pool for %s processor", p.processor.Name()))
		return nil
	case <-drainCtx.Done():
		p.logger.Warn(ctx, fmt.Sprintf("drain timeout exceeded for %s processor, forcing shutdown",
			p.processor.Name()))
		p.Stop()
		return fmt.Errorf("drain timeout exceeded")
	}
}

// Stop immediately stops all workers. Queued events are discarded.
func (p *pool) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.stopped {
		return
	}
	p.stopped = true

	if p.cancelFn != nil {
		p.cancelFn()
	}
	if !p.draining {
		p.closeQueues()
	}
}

// worker processes one queue until it is closed or the pool is stopped.
func (p *pool) worker(ctx context.Context, workerID int) {
	defer p.wg.Done()

	workerCtx := observability.WithFields(ctx,
		observability.Field{Key: "worker_id", Value: workerID},
		observability.Field{Key: "processor", Value: p.processor.Name()},
	)
	queue := p.queues[workerID]

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-queue:
			if !ok {
				return
			}

			eventCtx := observability.WithFields(workerCtx,
				observability.Field{Key: "event_id", Value: event.ID},
				observability.Field{Key: "event_type", Value: event.Type},
				observability.Field{Key: "call_sid", Value: event.CallID},
			)

			err := p.processor.Process(eventCtx, event)
			if err != nil {
				p.logger.Error(eventCtx, fmt.Sprintf("worker %d failed to process event", workerID), err)
			}

			if p.config.OnResult != nil {
				p.config.OnResult(ProcessingResult{
					Event: event,
					Error: err,
				})
			}
		}
	}
}
