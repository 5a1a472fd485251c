package session

import (
	"context"

	"karma-server/internal/observability"
)

// Prompts holds the pre-rendered mu-law audio played at fixed points of every call.
// A nil prompt is synthesized live on each use.
type Prompts struct {
	Greeting     []byte
	Announcement []byte
}

// PreparePrompts renders the greeting and AI announcement once at startup.
// Failures are logged and leave the prompt empty.
func PreparePrompts(ctx context.Context, synth PromptSynthesizer, cfg Config, logger *observability.Logger) Prompts {
	var p Prompts
	var err error

	if p.Greeting, err = synth.Synthesize(ctx, cfg.GreetingText, cfg.Language); err != nil {
		logger.Error(ctx, "failed to cache greeting, will synthesize per call", err)
		p.Greeting = nil
	}
	if p.Announcement, err = synth.Synthesize(ctx, cfg.AnnouncementText, cfg.AnnouncementLanguage); err != nil {
		logger.Error(ctx, "failed to cache announcement, will synthesize per call", err)
		p.Announcement = nil
	}

	logger.Info(ctx, "call prompts prepared")
	return p
}
