package ratelimit

import (
	"context"
	"time"

	"karma-server/internal/observability"
)

// Result represents the outcome of one rate limit check
type Result struct {
	Allowed    bool          `json:"allowed"`
	Limit      int           `json:"limit"`
	Remaining  int           `json:"remaining"`
	ResetAt    time.Time     `json:"reset_at"`
	RetryAfter time.Duration `json:"retry_after,omitempty"`
}

// Service limits hits per key over a sliding window. Denied hits are counted,
// so a client that keeps retrying stays blocked.
type Service struct {
	shared WindowStore
	local  *memoryWindow
	limit  int
	window time.Duration
	now    func() time.Time
	logger *observability.Logger
}

// NewService creates a limiter allowing limit hits per window. shared may be
// nil, in which case hits are counted in process.
func NewService(shared WindowStore, limit int, window time.Duration, logger *observability.Logger) *Service {
	return &Service{
		shared: shared,
		local:  newMemoryWindow(),
		limit:  limit,
		window: window,
		now:    time.Now,
		logger: logger,
	}
}

// Check records a hit for key and reports whether it is within the limit.
// Redis is preferred; the in-process window is used when it is disabled or failing.
func (s *Service) Check(ctx context.Context, key string) Result {
	now := s.now()

	if s.shared != nil && s.shared.IsEnabled() {
		count, oldest, err := s.shared.WindowHit(ctx, key, now, s.window)
		if err == nil {
			return s.result(now, count, oldest)
		}
		s.logger.Error(ctx, "redis rate limit check failed, falling back to local window", err)
	}

	count, oldest := s.local.hit(key, now, s.window)
	return s.result(now, count, oldest)
}

func (s *Service) result(now time.Time, count int64, oldest time.Time) Result {
	resetAt := oldest.Add(s.window)
	res := Result{
		Allowed:   count <= int64(s.limit),
		Limit:     s.limit,
		Remaining: s.limit - int(count),
		ResetAt:   resetAt,
	}
	if res.Remaining < 0 {
		res.Remaining = 0
	}
	if !res.Allowed {
		res.RetryAfter = resetAt.Sub(now)
		if res.RetryAfter < 0 {
			res.RetryAfter = 0
		}
	}
	return res
}
