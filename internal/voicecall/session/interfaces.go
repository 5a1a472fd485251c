package session

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=session

import (
	"context"
	"time"

	"karma-server/internal/ai"
	"karma-server/internal/intel"
	"karma-server/internal/voice/vad"
)

// Relay is the outbound half of the telephony media connection.
type Relay interface {
	SendMedia(payload []byte) error
	SendMark(name string) error
	SendClear() error
}

// Transcriber turns a WAV utterance into text.
type Transcriber interface {
	Transcribe(ctx context.Context, wav []byte, language string) (string, error)
}

// Synthesizer opens a speech stream for one response.
type Synthesizer interface {
	Open(ctx context.Context, language string) (ai.SpeechStream, error)
}

// PromptSynthesizer renders a whole utterance to relay-ready mu-law.
type PromptSynthesizer interface {
	Synthesize(ctx context.Context, text, language string) ([]byte, error)
}

// ChatStreamer produces the agent's reply token by token.
type ChatStreamer interface {
	ChatStream(ctx context.Context, history []ai.Message, temperature float64) (ai.TokenStream, error)
}

// Classifier decides whether the caller's voice is synthetic. It never fails;
// any problem yields a human verdict.
type Classifier interface {
	Classify(ctx context.Context, wav []byte, timeout time.Duration) ai.Classification
}

// Reporter publishes session activity. Calls must not block.
type Reporter interface {
	ReportTranscript(callID, speaker, text string)
	ReportStatus(callID, status string)
	ReportIntel(callID string, items []intel.Item)
}

// Conversation keeps the chat history of each call.
type Conversation interface {
	AddUser(callID, text string) []ai.Message
	AddAssistant(callID, text string)
	End(callID string)
}

// MuteChecker reports whether an operator has muted the agent on a call.
type MuteChecker interface {
	IsMuted(callID string) bool
}

// DetectorFactory hands out a voice activity detector per session.
type DetectorFactory interface {
	New() vad.Detector
}
