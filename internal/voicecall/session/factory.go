package session

import (
	"context"

	"karma-server/internal/observability"
	"karma-server/internal/voicecall/twilio"
)

// Factory builds sessions that share collaborators and cached prompts.
type Factory struct {
	cfg       Config
	deps      Dependencies
	detectors DetectorFactory
	prompts   Prompts
	logger    *observability.Logger
}

func NewFactory(cfg Config, deps Dependencies, detectors DetectorFactory, prompts Prompts, logger *observability.Logger) *Factory {
	return &Factory{
		cfg:       cfg,
		deps:      deps,
		detectors: detectors,
		prompts:   prompts,
		logger:    logger,
	}
}

// New returns a session that writes to relay. Each session gets its own detector.
func (f *Factory) New(relay Relay) *Session {
	return newSession(f.cfg, f.deps, relay, f.detectors.New(), f.prompts, f.logger)
}

// Serve runs a session over an accepted media stream until it ends.
func (f *Factory) Serve(ctx context.Context, conn *twilio.Conn) error {
	return f.New(conn).Run(ctx, conn.Events(ctx))
}
