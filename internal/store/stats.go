package store

import (
	"context"
	"fmt"
	"math"
	"time"
)

const sqlCallCounts = `
SELECT
    COUNT(*) AS total,
    COALESCE(SUM(CASE WHEN status = 'active' THEN 1 ELSE 0 END), 0) AS active,
    COALESCE(SUM(CASE WHEN status = 'completed' THEN 1 ELSE 0 END), 0) AS completed,
    COALESCE(SUM(CASE WHEN duration_seconds > 0 THEN duration_seconds ELSE 0 END), 0) AS total_duration
FROM calls`

const sqlAvgDuration = `
SELECT COALESCE(AVG(duration_seconds), 0)
FROM calls WHERE status = 'completed' AND duration_seconds > 0`

const sqlCountIntel = `SELECT COUNT(*) FROM intel`

const sqlDailyCalls = `
SELECT substr(start_time, 1, 10) AS day, COUNT(*) AS n
FROM calls
WHERE start_time >= ?
GROUP BY substr(start_time, 1, 10)`

type callCounts struct {
	Total         int `db:"total"`
	Active        int `db:"active"`
	Completed     int `db:"completed"`
	TotalDuration int `db:"total_duration"`
}

type dailyCount struct {
	Day string `db:"day"`
	N   int    `db:"n"`
}

// GetStats aggregates dashboard metrics. Days are UTC calendar days.
func (s *Store) GetStats(ctx context.Context) (Stats, error) {
	var counts callCounts
	if err := s.db.GetContext(ctx, &counts, sqlCallCounts); err != nil {
		s.logger.Error(ctx, "failed to count calls for stats", err)
		return Stats{}, fmt.Errorf("failed to count calls: %w", err)
	}

	var avg float64
	if err := s.db.GetContext(ctx, &avg, sqlAvgDuration); err != nil {
		s.logger.Error(ctx, "failed to average call duration", err)
		return Stats{}, fmt.Errorf("failed to average call duration: %w", err)
	}

	var intel int
	if err := s.db.GetContext(ctx, &intel, sqlCountIntel); err != nil {
		s.logger.Error(ctx, "failed to count intel", err)
		return Stats{}, fmt.Errorf("failed to count intel: %w", err)
	}

	today := s.now().UTC().Truncate(24 * time.Hour)
	weekStart := today.AddDate(0, 0, -6)

	var daily []dailyCount
	if err := s.db.SelectContext(ctx, &daily, s.db.Rebind(sqlDailyCalls), weekStart.Format(timeLayout)); err != nil {
		s.logger.Error(ctx, "failed to count daily calls", err)
		return Stats{}, fmt.Errorf("failed to count daily calls: %w", err)
	}
	byDay := make(map[string]int, len(daily))
	for _, d := range daily {
		byDay[d.Day] = d.N
	}

	week := make([]int, 7)
	for i := range week {
		week[i] = byDay[weekStart.AddDate(0, 0, i).Format(time.DateOnly)]
	}

	var successRate float64
	if counts.Total > 0 {
		successRate = math.Round(float64(counts.Completed)/float64(counts.Total)*1000) / 10
	}

	return Stats{
		TotalCalls:             counts.Total,
		ActiveCalls:            counts.Active,
		CompletedCalls:         counts.Completed,
		AvgDurationSeconds:     int(math.Round(avg)),
		TotalTimeWastedSeconds: counts.TotalDuration,
		IntelExtracted:         intel,
		SuccessRate:            successRate,
		CallsToday:             week[6],
		CallsThisWeek:          week,
	}, nil
}
