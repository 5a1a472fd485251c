package vad

import (
	"context"
	"fmt"

	"karma-server/internal/observability"
)

const (
	KindWebRTC = "webrtc"
	KindEnergy = "energy"
)

// Factory hands out one Detector per session. The detector kind is resolved
// once when the factory is built; sessions never retry a failed kind.
type Factory struct {
	kind           string
	aggressiveness int
	threshold      float64
}

// NewFactory resolves kind. When a webrtc detector cannot be built the factory
// degrades to the energy detector and logs a warning.
func NewFactory(ctx context.Context, kind string, aggressiveness int, threshold float64, logger *observability.Logger) (*Factory, error) {
	f := &Factory{kind: kind, aggressiveness: aggressiveness, threshold: threshold}

	switch kind {
	case KindEnergy:
	case KindWebRTC:
		if _, err := NewWebRTC(aggressiveness); err != nil {
			logger.Warn(ctx, fmt.Sprintf("webrtc vad unavailable, using energy detector: %v", err))
			f.kind = KindEnergy
		}
	default:
		return nil, fmt.Errorf("unsupported vad kind %q", kind)
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "vad_kind", Value: f.kind})
	logger.Info(ctx, "voice activity detector selected")
	return f, nil
}

// Kind reports the resolved detector kind.
func (f *Factory) Kind() string {
	return f.kind
}

// New returns a fresh detector for one session.
func (f *Factory) New() Detector {
	if f.kind == KindWebRTC {
		if d, err := NewWebRTC(f.aggressiveness); err == nil {
			return d
		}
	}
	return NewEnergy(f.threshold)
}
