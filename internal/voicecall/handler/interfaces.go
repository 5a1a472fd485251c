package handler

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=handler

import (
	"context"

	"karma-server/internal/voicecall/twilio"
)

// CallLifecycle records calls announced by the telephony webhooks.
type CallLifecycle interface {
	StartCall(ctx context.Context, callID, caller, mode string) error
	EndCall(ctx context.Context, callID, status string) error
}

// MediaSessions runs a voice session over an accepted media stream.
type MediaSessions interface {
	Serve(ctx context.Context, conn *twilio.Conn) error
}

// SignatureChecker validates webhook request signatures.
type SignatureChecker interface {
	Valid(url string, params map[string]string, signature string) bool
}
