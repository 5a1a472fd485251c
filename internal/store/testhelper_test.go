package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"karma-server/internal/observability"
)

// testClock is a settable time source for the store.
type testClock struct {
	t time.Time
}

func (c *testClock) now() time.Time { return c.t }

func (c *testClock) advance(d time.Duration) { c.t = c.t.Add(d) }

// setupTestStore opens a migrated in-memory SQLite store.
func setupTestStore(t *testing.T) (*Store, *testClock) {
	t.Helper()

	s, err := New(DriverSQLite, ":memory:", observability.NewNopLogger())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	clock := &testClock{t: time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)}
	s.now = clock.now

	require.NoError(t, s.Migrate(context.Background()))
	return s, clock
}
