package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

const sqlCreateCall = `
INSERT INTO calls (id, caller_number, start_time, status, mode)
VALUES (?, ?, ?, 'active', ?)
ON CONFLICT (id) DO NOTHING`

// CreateCall records a new active call. An existing id is left untouched.
func (s *Store) CreateCall(ctx context.Context, id, caller, mode string) error {
	if caller == "" {
		caller = "unknown"
	}
	if mode == "" {
		mode = CallModeTwilio
	}
	_, err := s.db.ExecContext(ctx, s.db.Rebind(sqlCreateCall), id, caller, s.timestamp(), mode)
	if err != nil {
		s.logger.Error(ctx, "failed to create call", err)
		return fmt.Errorf("failed to create call: %w", err)
	}
	return nil
}

const sqlGetCall = `SELECT * FROM calls WHERE id = ?`

func (s *Store) GetCall(ctx context.Context, id string) (Call, error) {
	var call Call
	err := s.db.GetContext(ctx, &call, s.db.Rebind(sqlGetCall), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Call{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get call", err)
		return Call{}, fmt.Errorf("failed to get call: %w", err)
	}
	return call, nil
}

const sqlEndCall = `
UPDATE calls SET end_time = ?, duration_seconds = ?, status = ?
WHERE id = ? AND status = 'active'`

// EndCall closes an active call and records its duration. Ending a call that
// has already ended is a no-op, so the first terminal status wins.
func (s *Store) EndCall(ctx context.Context, id, status string) error {
	call, err := s.GetCall(ctx, id)
	if err != nil {
		return err
	}
	if call.Status != CallStatusActive {
		return nil
	}

	now := s.now().UTC()
	duration := 0
	if start, err := time.Parse(timeLayout, call.StartTime); err == nil {
		duration = int(now.Sub(start).Seconds())
		if duration < 0 {
			duration = 0
		}
	}

	_, err = s.db.ExecContext(ctx, s.db.Rebind(sqlEndCall), now.Format(timeLayout), duration, status, id)
	if err != nil {
		s.logger.Error(ctx, "failed to end call", err)
		return fmt.Errorf("failed to end call: %w", err)
	}
	return nil
}

const sqlListCalls = `
SELECT c.*,
    (SELECT COUNT(*) FROM messages m WHERE m.call_id = c.id) AS message_count,
    (SELECT COUNT(*) FROM intel i WHERE i.call_id = c.id) AS intel_count
FROM calls c
ORDER BY c.start_time DESC
LIMIT ? OFFSET ?`

// ListCalls returns call history, newest first.
func (s *Store) ListCalls(ctx context.Context, limit, offset int) ([]CallSummary, error) {
	calls := []CallSummary{}
	err := s.db.SelectContext(ctx, &calls, s.db.Rebind(sqlListCalls), limit, offset)
	if err != nil {
		s.logger.Error(ctx, "failed to list calls", err)
		return nil, fmt.Errorf("failed to list calls: %w", err)
	}
	return calls, nil
}

const sqlCountCalls = `SELECT COUNT(*) FROM calls`

func (s *Store) CountCalls(ctx context.Context) (int, error) {
	var total int
	if err := s.db.GetContext(ctx, &total, sqlCountCalls); err != nil {
		s.logger.Error(ctx, "failed to count calls", err)
		return 0, fmt.Errorf("failed to count calls: %w", err)
	}
	return total, nil
}

const sqlListActiveCalls = `
SELECT * FROM calls WHERE status = 'active' ORDER BY start_time DESC`

func (s *Store) ListActiveCalls(ctx context.Context) ([]Call, error) {
	calls := []Call{}
	if err := s.db.SelectContext(ctx, &calls, sqlListActiveCalls); err != nil {
		s.logger.Error(ctx, "failed to list active calls", err)
		return nil, fmt.Errorf("failed to list active calls: %w", err)
	}
	return calls, nil
}

// DeleteCall removes a call with its messages and intel.
func (s *Store) DeleteCall(ctx context.Context, id string) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, q := range []string{
		`DELETE FROM intel WHERE call_id = ?`,
		`DELETE FROM messages WHERE call_id = ?`,
	} {
		if _, err := tx.ExecContext(ctx, tx.Rebind(q), id); err != nil {
			s.logger.Error(ctx, "failed to delete call data", err)
			return fmt.Errorf("failed to delete call data: %w", err)
		}
	}

	res, err := tx.ExecContext(ctx, tx.Rebind(`DELETE FROM calls WHERE id = ?`), id)
	if err != nil {
		s.logger.Error(ctx, "failed to delete call", err)
		return fmt.Errorf("failed to delete call: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return tx.Commit()
}

const sqlSaveSummary = `UPDATE calls SET summary = ? WHERE id = ?`

func (s *Store) SaveSummary(ctx context.Context, callID, summary string) error {
	res, err := s.db.ExecContext(ctx, s.db.Rebind(sqlSaveSummary), summary, callID)
	if err != nil {
		s.logger.Error(ctx, "failed to save summary", err)
		return fmt.Errorf("failed to save summary: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

const sqlListStaleCalls = `
SELECT id FROM calls WHERE status = 'active' AND start_time < ?`

// ExpireStaleCalls ends calls that have been active longer than olderThan and
// returns their ids.
func (s *Store) ExpireStaleCalls(ctx context.Context, olderThan time.Duration) ([]string, error) {
	cutoff := s.now().UTC().Add(-olderThan).Format(timeLayout)

	var ids []string
	if err := s.db.SelectContext(ctx, &ids, s.db.Rebind(sqlListStaleCalls), cutoff); err != nil {
		s.logger.Error(ctx, "failed to list stale calls", err)
		return nil, fmt.Errorf("failed to list stale calls: %w", err)
	}

	for _, id := range ids {
		if err := s.EndCall(ctx, id, CallStatusExpired); err != nil {
			return nil, err
		}
	}
	return ids, nil
}
