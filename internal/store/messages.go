package store

import (
	"context"
	"fmt"
)

const sqlSaveMessage = `
INSERT INTO messages (call_id, role, content, created_at) VALUES (?, ?, ?, ?)`

func (s *Store) SaveMessage(ctx context.Context, callID, role, content string) error {
	_, err := s.db.ExecContext(ctx, s.db.Rebind(sqlSaveMessage), callID, role, content, s.timestamp())
	if err != nil {
		s.logger.Error(ctx, "failed to save message", err)
		return fmt.Errorf("failed to save message: %w", err)
	}
	return nil
}

const sqlGetTranscript = `
SELECT role, content, created_at FROM messages WHERE call_id = ? ORDER BY id ASC`

// GetTranscript returns a call's messages in insertion order.
func (s *Store) GetTranscript(ctx context.Context, callID string) ([]Message, error) {
	messages := []Message{}
	if err := s.db.SelectContext(ctx, &messages, s.db.Rebind(sqlGetTranscript), callID); err != nil {
		s.logger.Error(ctx, "failed to get transcript", err)
		return nil, fmt.Errorf("failed to get transcript: %w", err)
	}
	return messages, nil
}

const sqlSaveIntel = `
INSERT INTO intel (call_id, field_name, field_value, confidence, created_at)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT (call_id, field_name, field_value) DO NOTHING`

// SaveIntel stores one extracted item and reports whether it was new.
func (s *Store) SaveIntel(ctx context.Context, callID, name, value string, confidence float64) (bool, error) {
	res, err := s.db.ExecContext(ctx, s.db.Rebind(sqlSaveIntel), callID, name, value, confidence, s.timestamp())
	if err != nil {
		s.logger.Error(ctx, "failed to save intel", err)
		return false, fmt.Errorf("failed to save intel: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, nil
	}
	return n > 0, nil
}

const sqlGetIntel = `
SELECT field_name, field_value, confidence, created_at FROM intel WHERE call_id = ? ORDER BY id ASC`

func (s *Store) GetIntel(ctx context.Context, callID string) ([]Intel, error) {
	intel := []Intel{}
	if err := s.db.SelectContext(ctx, &intel, s.db.Rebind(sqlGetIntel), callID); err != nil {
		s.logger.Error(ctx, "failed to get intel", err)
		return nil, fmt.Errorf("failed to get intel: %w", err)
	}
	return intel, nil
}
