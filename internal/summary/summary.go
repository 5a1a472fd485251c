// Package summary asks the language model for an analyst's write-up of a finished call.
package summary

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"karma-server/internal/ai"
	"karma-server/internal/observability"
	"karma-server/internal/store"
)

var ErrNoTranscript = errors.New("no transcript found")

const (
	temperature = 0.3

	systemPrompt = "You are a scam analyst. Summarize this scam call transcript. " +
		"Include: scammer's tactics, information extracted, how AI wasted their time, " +
		"and risk assessment. Keep it concise (3-5 bullet points). Respond in English."
)

// Store is the call data the summarizer reads and writes.
type Store interface {
	GetCall(ctx context.Context, id string) (store.Call, error)
	GetTranscript(ctx context.Context, callID string) ([]store.Message, error)
	GetIntel(ctx context.Context, callID string) ([]store.Intel, error)
	SaveSummary(ctx context.Context, callID, summary string) error
}

// Completer is the non-streaming half of a chat client.
type Completer interface {
	Complete(ctx context.Context, history []ai.Message, temperature float64) (string, error)
}

type Summarizer struct {
	store  Store
	llm    Completer
	logger *observability.Logger
}

func New(store Store, llm Completer, logger *observability.Logger) *Summarizer {
	return &Summarizer{store: store, llm: llm, logger: logger}
}

// Summarize generates and stores the summary of a call.
func (s *Summarizer) Summarize(ctx context.Context, callID string) (string, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "call_sid", Value: callID})

	messages, err := s.store.GetTranscript(ctx, callID)
	if err != nil {
		return "", err
	}
	transcript := FormatTranscript(messages)
	if transcript == "" {
		return "", ErrNoTranscript
	}

	text, err := s.llm.Complete(ctx, []ai.Message{
		{Role: ai.RoleSystem, Content: systemPrompt},
		{Role: ai.RoleUser, Content: "Transcript:\n" + transcript},
	}, temperature)
	if err != nil {
		s.logger.Error(ctx, "failed to generate call summary", err)
		return "", fmt.Errorf("failed to generate call summary: %w", err)
	}
	text = strings.TrimSpace(text)

	if err := s.store.SaveSummary(ctx, callID, text); err != nil {
		return "", err
	}
	s.logger.Info(ctx, "call summary stored")
	return text, nil
}

// FormatTranscript renders caller and agent turns one per line. System
// messages are left out.
func FormatTranscript(messages []store.Message) string {
	var b strings.Builder
	for _, m := range messages {
		var speaker string
		switch m.Role {
		case store.MessageRoleUser:
			speaker = "Scammer"
		case store.MessageRoleAssistant:
			speaker = "AI Dadi"
		default:
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(speaker)
		b.WriteString(": ")
		b.WriteString(m.Content)
	}
	return b.String()
}
