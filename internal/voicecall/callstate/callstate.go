// Package callstate holds per-call operator controls shared between the
// webhooks, the dashboard and running sessions.
package callstate

import (
	"context"
	"strconv"
	"sync"
	"time"

	"karma-server/internal/observability"
)

const (
	keyPrefix = "karma:call:"
	// TTL of mirrored entries; longer than any call.
	TTL = 6 * time.Hour

	fieldMuted  = "muted"
	fieldStatus = "status"

	mirrorTimeout = 500 * time.Millisecond
)

// Mirror is a shared hash store, satisfied by the Redis client.
type Mirror interface {
	HSet(ctx context.Context, key string, ttl time.Duration, values ...any) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	Del(ctx context.Context, keys ...string) error
}

// State is what is known about one call.
type State struct {
	Muted  bool   `json:"muted"`
	Status string `json:"status,omitempty"`
}

// Table is safe for concurrent use.
type Table struct {
	mu     sync.RWMutex
	calls  map[string]State
	mirror Mirror
	logger *observability.Logger
}

// New returns a table. mirror may be nil.
func New(mirror Mirror, logger *observability.Logger) *Table {
	return &Table{
		calls:  make(map[string]State),
		mirror: mirror,
		logger: logger,
	}
}

func key(callID string) string {
	return keyPrefix + callID
}

func (t *Table) SetMuted(callID string, muted bool) {
	t.mu.Lock()
	st := t.calls[callID]
	st.Muted = muted
	t.calls[callID] = st
	t.mu.Unlock()

	t.write(callID, fieldMuted, strconv.FormatBool(muted))
}

// IsMuted defaults to false for unknown calls.
func (t *Table) IsMuted(callID string) bool {
	st, _ := t.lookup(callID)
	return st.Muted
}

func (t *Table) SetStatus(callID, status string) {
	t.mu.Lock()
	st := t.calls[callID]
	st.Status = status
	t.calls[callID] = st
	t.mu.Unlock()

	t.write(callID, fieldStatus, status)
}

func (t *Table) Status(callID string) string {
	st, _ := t.lookup(callID)
	return st.Status
}

// Clear forgets a call locally and in the mirror.
func (t *Table) Clear(callID string) {
	t.mu.Lock()
	delete(t.calls, callID)
	t.mu.Unlock()

	if t.mirror == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), mirrorTimeout)
	defer cancel()
	if err := t.mirror.Del(ctx, key(callID)); err != nil {
		t.logger.Error(withCall(ctx, callID), "failed to clear mirrored call state", err)
	}
}

// Snapshot copies the local table.
func (t *Table) Snapshot() map[string]State {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make(map[string]State, len(t.calls))
	for id, st := range t.calls {
		out[id] = st
	}
	return out
}

func (t *Table) lookup(callID string) (State, bool) {
	t.mu.RLock()
	st, ok := t.calls[callID]
	t.mu.RUnlock()
	if ok || t.mirror == nil {
		return st, ok
	}

	ctx, cancel := context.WithTimeout(context.Background(), mirrorTimeout)
	defer cancel()
	fields, err := t.mirror.HGetAll(ctx, key(callID))
	if err != nil {
		t.logger.Warn(withCall(ctx, callID), "failed to read mirrored call state: "+err.Error())
		return State{}, false
	}
	if len(fields) == 0 {
		return State{}, false
	}

	st.Muted, _ = strconv.ParseBool(fields[fieldMuted])
	st.Status = fields[fieldStatus]

	t.mu.Lock()
	if _, raced := t.calls[callID]; !raced {
		t.calls[callID] = st
	}
	t.mu.Unlock()
	return st, true
}

func (t *Table) write(callID, field, value string) {
	if t.mirror == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), mirrorTimeout)
	defer cancel()
	if err := t.mirror.HSet(ctx, key(callID), TTL, field, value); err != nil {
		t.logger.Error(withCall(ctx, callID), "failed to mirror call state", err)
	}
}

func withCall(ctx context.Context, callID string) context.Context {
	return observability.WithFields(ctx, observability.Field{Key: "call_sid", Value: callID})
}
