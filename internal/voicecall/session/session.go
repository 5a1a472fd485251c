package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"karma-server/internal/ai"
	"karma-server/internal/config"
	"karma-server/internal/observability"
	"karma-server/internal/voice/audio"
	"karma-server/internal/voice/vad"
	"karma-server/internal/voicecall/twilio"
)

const defaultCaller = "unknown"

// Config tunes a call session.
type Config struct {
	SilenceThreshold     int
	MinSpeechFrames      int
	CooldownFrames       int
	ClassificationWindow time.Duration
	ClassifierTimeout    time.Duration
	MinClassifySpeech    int
	MinSentenceLength    int
	Temperature          float64
	Language             string
	AnnouncementLanguage string
	GreetingText         string
	AnnouncementText     string
}

// ConfigFromVoice maps the process configuration onto session tuning.
func ConfigFromVoice(v config.VoiceConfig) Config {
	return Config{
		SilenceThreshold:     v.SilenceThresholdFrames,
		MinSpeechFrames:      v.MinSpeechFrames,
		CooldownFrames:       v.CooldownFrames,
		ClassificationWindow: v.ClassificationWindow,
		ClassifierTimeout:    v.ClassifierTimeout,
		MinClassifySpeech:    v.MinClassifySpeech,
		MinSentenceLength:    v.MinSentenceLength,
		Temperature:          v.Temperature,
		Language:             v.Language,
		AnnouncementLanguage: v.AnnouncementLanguage,
		GreetingText:         v.GreetingText,
		AnnouncementText:     v.AnnouncementText,
	}
}

// Dependencies are the collaborators shared by every session.
type Dependencies struct {
	Transcriber  Transcriber
	Synthesizer  Synthesizer
	Chat         ChatStreamer
	Classifier   Classifier
	Reporter     Reporter
	Conversation Conversation
	Mutes        MuteChecker
}

type outcomeKind int

const (
	outcomeClassified outcomeKind = iota
	outcomeTurn
)

// outcome is the result of work done off the session goroutine.
type outcome struct {
	kind           outcomeKind
	classification ai.Classification
	err            error
}

// Session drives one telephony connection. All fields are owned by the
// goroutine executing Run; helper goroutines report back through results.
type Session struct {
	cfg       Config
	deps      Dependencies
	relay     Relay
	detector  vad.Detector
	prompts   Prompts
	logger    *observability.Logger
	now       func() time.Time
	gate      *Gate
	segmenter *Segmenter
	pipeline  *Pipeline

	callID   string
	streamID string
	caller   string

	phase      Phase
	cooldown   int
	pending    []byte
	processing bool

	results chan outcome
	wg      sync.WaitGroup
}

func newSession(cfg Config, deps Dependencies, relay Relay, detector vad.Detector, prompts Prompts, logger *observability.Logger) *Session {
	return &Session{
		cfg:       cfg,
		deps:      deps,
		relay:     relay,
		detector:  detector,
		prompts:   prompts,
		logger:    logger,
		now:       time.Now,
		gate:      NewGate(cfg, deps.Classifier),
		segmenter: NewSegmenter(cfg.SilenceThreshold, cfg.MinSpeechFrames),
		pipeline:  NewPipeline(cfg, deps, relay, logger),
		phase:     PhaseConnecting,
		results:   make(chan outcome, 1),
	}
}

// Phase reports the current phase. Only safe to call from the Run goroutine or after Run returns.
func (s *Session) Phase() Phase {
	return s.phase
}

// CallID is empty until the start event arrives.
func (s *Session) CallID() string {
	return s.callID
}

// Run consumes relay events until the stream stops, the channel closes or
// ctx is cancelled. In-flight work is cancelled and awaited before it returns.
func (s *Session) Run(ctx context.Context, events <-chan twilio.Event) error {
	ctx, cancel := context.WithCancel(ctx)
	defer func() {
		cancel()
		s.wg.Wait()
		if s.callID != "" {
			s.deps.Conversation.End(s.callID)
		}
		s.logger.Info(ctx, fmt.Sprintf("session ended in phase %s", s.phase))
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case out := <-s.results:
			s.apply(ctx, out)
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			s.settle(ctx)
			var done bool
			if ctx, done = s.handle(ctx, ev); done {
				return nil
			}
		}
	}
}

func (s *Session) handle(ctx context.Context, ev twilio.Event) (context.Context, bool) {
	switch e := ev.(type) {
	case twilio.StartEvent:
		return s.start(ctx, e), false
	case twilio.MediaEvent:
		s.media(ctx, e.Payload)
	case twilio.MarkEvent:
		s.logger.Debug(ctx, fmt.Sprintf("playback mark reached: %s", e.Name))
	case twilio.StopEvent:
		s.logger.Info(ctx, "media stream stopped")
		return ctx, true
	default:
		s.logger.Debug(ctx, fmt.Sprintf("ignoring %s event", ev.EventName()))
	}
	return ctx, false
}

func (s *Session) start(ctx context.Context, e twilio.StartEvent) context.Context {
	if s.phase != PhaseConnecting {
		s.logger.Warn(ctx, "duplicate start event ignored")
		return ctx
	}

	s.callID = e.CallID
	s.streamID = e.StreamID
	s.caller = e.CustomParams["caller"]
	if s.caller == "" {
		s.caller = defaultCaller
	}
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "call_sid", Value: s.callID},
		observability.Field{Key: "stream_sid", Value: s.streamID},
		observability.Field{Key: "caller", Value: s.caller},
	)
	s.logger.Info(ctx, "media stream started")

	s.phase = PhaseGreetingSent
	s.play(ctx, s.prompts.Greeting, s.cfg.GreetingText, s.cfg.Language, MarkGreetingEnd)

	s.cooldown = s.cfg.CooldownFrames
	s.phase = PhaseCooldownPreClassify
	s.deps.Reporter.ReportStatus(s.callID, StatusClassifying)
	return ctx
}

func (s *Session) media(ctx context.Context, payload []byte) {
	if s.phase == PhaseBlocked || s.processing {
		return
	}

	switch s.phase {
	case PhaseCooldownPreClassify:
		s.cooldown -= max(len(payload)/audio.MuLawFrameSize, 1)
		if s.cooldown <= 0 {
			s.cooldown = 0
			s.phase = PhaseClassifying
			s.gate.Open(s.now())
		}
	case PhaseClassifying:
		s.gate.Feed(audio.Decode(payload), s.isSpeech)
		if s.gate.Expired(s.now()) {
			s.classify(ctx)
		}
	case PhaseActive:
		s.listen(ctx, payload)
	}
}

func (s *Session) classify(ctx context.Context) {
	s.processing = true
	if !s.gate.Sufficient() {
		s.logger.Info(ctx, fmt.Sprintf("only %d speech frames heard, treating caller as human", s.gate.SpeechFrames()))
		s.applyClassification(ctx, ai.HumanFallback())
		return
	}

	wav := s.gate.WAV()
	s.spawn(ctx, func(ctx context.Context) outcome {
		return outcome{kind: outcomeClassified, classification: s.gate.Classify(ctx, wav)}
	})
}

func (s *Session) listen(ctx context.Context, payload []byte) {
	s.pending = append(s.pending, payload...)

	off := 0
	defer func() {
		if s.pending != nil {
			s.pending = append(s.pending[:0], s.pending[off:]...)
		}
	}()

	for ; off+audio.MuLawFrameSize <= len(s.pending); off += audio.MuLawFrameSize {
		if s.cooldown > 0 {
			s.cooldown--
			continue
		}

		pcm := audio.Decode(s.pending[off : off+audio.MuLawFrameSize])
		utt, ok := s.segmenter.Push(pcm, s.isSpeech(pcm))
		if !ok {
			continue
		}

		s.pending = nil
		s.processing = true
		callID := s.callID
		s.logger.Debug(ctx, fmt.Sprintf("utterance of %d speech frames", utt.SpeechFrames))
		s.spawn(ctx, func(ctx context.Context) outcome {
			return outcome{kind: outcomeTurn, err: s.pipeline.Run(ctx, callID, utt)}
		})
		return
	}
}

// settle applies a finished outcome before the next event so frames are
// never judged against a turn that has already ended.
func (s *Session) settle(ctx context.Context) {
	select {
	case out := <-s.results:
		s.apply(ctx, out)
	default:
	}
}

// spawn runs fn on a helper goroutine and hands its outcome back to the loop.
func (s *Session) spawn(ctx context.Context, fn func(context.Context) outcome) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		out := fn(ctx)
		select {
		case s.results <- out:
		case <-ctx.Done():
		}
	}()
}

func (s *Session) apply(ctx context.Context, out outcome) {
	switch out.kind {
	case outcomeClassified:
		s.applyClassification(ctx, out.classification)
	case outcomeTurn:
		if out.err != nil {
			s.logger.Error(ctx, "turn failed", out.err)
		}
		s.processing = false
		s.cooldown = s.cfg.CooldownFrames
	}
}

func (s *Session) applyClassification(ctx context.Context, c ai.Classification) {
	s.processing = false
	s.gate.Release()
	s.deps.Reporter.ReportTranscript(s.callID, SpeakerSystem, ClassificationMessage(c))

	if c.Label == ai.LabelAI {
		s.logger.Info(ctx, fmt.Sprintf("caller classified as ai (%.2f), blocking", c.Confidence))
		s.phase = PhaseBlocked
		s.deps.Reporter.ReportStatus(s.callID, StatusAIDetected)
		s.play(ctx, s.prompts.Announcement, s.cfg.AnnouncementText, s.cfg.AnnouncementLanguage, MarkAIDetectedEnd)
		return
	}

	s.logger.Info(ctx, fmt.Sprintf("caller classified as human (%.2f)", c.Confidence))
	s.phase = PhaseActive
	s.deps.Reporter.ReportStatus(s.callID, StatusDefending)
	s.play(ctx, s.prompts.Greeting, s.cfg.GreetingText, s.cfg.Language, MarkGreetingEnd)
	s.cooldown = s.cfg.CooldownFrames
}

// play sends a cached prompt, synthesizing it live when nothing was cached,
// and follows it with mark.
func (s *Session) play(ctx context.Context, cached []byte, text, language, mark string) {
	if len(cached) > 0 {
		for _, chunk := range audio.Chunk(cached, audio.PlaybackChunkSize) {
			if err := s.relay.SendMedia(chunk); err != nil {
				s.logger.Error(ctx, "failed to send prompt audio", err)
				return
			}
		}
	} else if err := s.speakLive(ctx, text, language); err != nil {
		s.logger.Error(ctx, "failed to synthesize prompt", err)
	}

	if err := s.relay.SendMark(mark); err != nil {
		s.logger.Error(ctx, "failed to send mark", err)
	}
}

func (s *Session) speakLive(ctx context.Context, text, language string) error {
	stream, err := s.deps.Synthesizer.Open(ctx, language)
	if err != nil {
		return err
	}
	defer stream.Close()
	return stream.Speak(ctx, text, s.relay.SendMedia)
}

func (s *Session) isSpeech(frame []byte) bool {
	speech, err := s.detector.IsSpeech(frame, audio.TelephonyRate)
	if err != nil {
		return false
	}
	return speech
}
