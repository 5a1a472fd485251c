package ai

import (
	"context"
	"strings"
)

// SpeechStream is a synthesis connection scoped to one response.
type SpeechStream interface {
	// Speak synthesizes text and calls onChunk with relay-ready mu-law audio as it arrives.
	Speak(ctx context.Context, text string, onChunk func([]byte) error) error
	Close() error
}

type Label string

const (
	LabelHuman Label = "human"
	LabelAI    Label = "ai"
)

// Classification is the verdict on whether a caller's voice is synthetic.
type Classification struct {
	Label         Label              `json:"label"`
	Confidence    float64            `json:"confidence"`
	Probabilities map[string]float64 `json:"probabilities,omitempty"`
}

// HumanFallback is returned whenever classification cannot be trusted.
func HumanFallback() Classification {
	return Classification{Label: LabelHuman}
}

// ParseLabel maps a classifier prediction to a Label. Anything other than "ai" is human.
func ParseLabel(prediction string) Label {
	if strings.EqualFold(strings.TrimSpace(prediction), string(LabelAI)) {
		return LabelAI
	}
	return LabelHuman
}

// SpeechLanguage maps a locale such as hi-IN to the short code synthesis expects.
func SpeechLanguage(locale string) string {
	if i := strings.IndexAny(locale, "-_"); i > 0 {
		return strings.ToLower(locale[:i])
	}
	return strings.ToLower(locale)
}
