package session

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"karma-server/internal/ai"
	"karma-server/internal/intel"
	"karma-server/internal/observability"
	"karma-server/internal/voice/audio"
)

// TranscriptionRate is the sample rate utterances are upsampled to before transcription.
const TranscriptionRate = 16000

var ErrNoAudio = errors.New("utterance has no audio")

// Pipeline runs one conversational turn: transcribe, respond, speak.
type Pipeline struct {
	cfg    Config
	deps   Dependencies
	relay  Relay
	logger *observability.Logger
}

func NewPipeline(cfg Config, deps Dependencies, relay Relay, logger *observability.Logger) *Pipeline {
	return &Pipeline{
		cfg:    cfg,
		deps:   deps,
		relay:  relay,
		logger: logger,
	}
}

// Run handles a single utterance. An empty transcript ends the turn without a reply.
func (p *Pipeline) Run(ctx context.Context, callID string, utt Utterance) error {
	if len(utt.PCM) == 0 {
		return ErrNoAudio
	}

	pcm, err := audio.Resample(utt.PCM, audio.TelephonyRate, TranscriptionRate)
	if err != nil {
		return fmt.Errorf("failed to resample utterance: %w", err)
	}

	p.deps.Reporter.ReportStatus(callID, StatusAnalyzing)
	text, err := p.deps.Transcriber.Transcribe(ctx, audio.WrapWAV(pcm, TranscriptionRate), p.cfg.Language)
	if err != nil {
		return fmt.Errorf("failed to transcribe utterance: %w", err)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		p.logger.Debug(ctx, "empty transcript, skipping turn")
		return nil
	}

	p.deps.Reporter.ReportTranscript(callID, SpeakerScammer, text)
	if items := intel.Extract(text); len(items) > 0 {
		p.deps.Reporter.ReportIntel(callID, items)
	}

	if p.deps.Mutes.IsMuted(callID) {
		p.deps.Reporter.ReportStatus(callID, StatusMuted)
		return nil
	}

	p.deps.Reporter.ReportStatus(callID, StatusDefending)
	history := p.deps.Conversation.AddUser(callID, text)

	response, err := p.respond(ctx, history)
	if response = strings.TrimSpace(response); response != "" {
		p.deps.Conversation.AddAssistant(callID, response)
		p.deps.Reporter.ReportTranscript(callID, SpeakerAI, response)
	}
	if markErr := p.relay.SendMark(MarkResponseEnd); markErr != nil && err == nil {
		err = fmt.Errorf("failed to send response mark: %w", markErr)
	}
	return err
}

// respond streams the reply into synthesis sentence by sentence. It returns
// whatever text was generated, even when it fails part way.
func (p *Pipeline) respond(ctx context.Context, history []ai.Message) (string, error) {
	speech, err := p.deps.Synthesizer.Open(ctx, p.cfg.Language)
	if err != nil {
		return "", fmt.Errorf("failed to open speech stream: %w", err)
	}
	defer func() {
		if err := speech.Close(); err != nil {
			p.logger.Warn(ctx, fmt.Sprintf("failed to close speech stream: %v", err))
		}
	}()

	tokens, err := p.deps.Chat.ChatStream(ctx, history, p.cfg.Temperature)
	if err != nil {
		return "", fmt.Errorf("failed to start chat stream: %w", err)
	}
	defer tokens.Close()

	var response strings.Builder
	splitter := NewSentenceSplitter(p.cfg.MinSentenceLength)
	for tokens.Next() {
		token := tokens.Token()
		response.WriteString(token)
		for _, sentence := range splitter.Write(token) {
			if err := speech.Speak(ctx, sentence, p.relay.SendMedia); err != nil {
				return response.String(), fmt.Errorf("failed to speak sentence: %w", err)
			}
		}
	}
	if err := tokens.Err(); err != nil {
		return response.String(), fmt.Errorf("chat stream failed: %w", err)
	}

	if rest := splitter.Flush(); rest != "" {
		if err := speech.Speak(ctx, rest, p.relay.SendMedia); err != nil {
			return response.String(), fmt.Errorf("failed to speak sentence: %w", err)
		}
	}
	return response.String(), nil
}
