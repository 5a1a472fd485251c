package ratelimit

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=ratelimit

import (
	"context"
	"time"
)

// WindowStore records hits in a sliding window shared across processes.
type WindowStore interface {
	IsEnabled() bool
	WindowHit(ctx context.Context, key string, now time.Time, window time.Duration) (int64, time.Time, error)
}
