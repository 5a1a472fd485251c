// Package ai holds the types shared by the speech and language model clients
// and the call session that drives them.
package ai

import (
	"context"
	"strings"
)

type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one chat turn.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// TokenStream yields response text incrementally. It is finite and not restartable.
type TokenStream interface {
	Next() bool
	Token() string
	Err() error
	Close() error
}

// ChatClient is implemented by every LLM provider.
type ChatClient interface {
	ChatStream(ctx context.Context, history []Message, temperature float64) (TokenStream, error)
	Complete(ctx context.Context, history []Message, temperature float64) (string, error)
}

// Drain reads a stream to the end and returns the concatenated text.
func Drain(stream TokenStream) (string, error) {
	defer stream.Close()

	var b strings.Builder
	for stream.Next() {
		b.WriteString(stream.Token())
	}
	return b.String(), stream.Err()
}
