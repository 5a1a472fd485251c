package openai

import (
	"bytes"
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"karma-server/internal/ai"
	"karma-server/internal/observability"
)

// Transcriber uses the Whisper transcription endpoint.
type Transcriber struct {
	client openai.Client
	logger *observability.Logger
}

func NewTranscriber(apiKey string, logger *observability.Logger, opts ...option.RequestOption) (*Transcriber, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}
	options := append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)
	return &Transcriber{
		client: openai.NewClient(options...),
		logger: logger,
	}, nil
}

// Transcribe sends a WAV utterance. language is a locale such as hi-IN.
func (t *Transcriber) Transcribe(ctx context.Context, wav []byte, language string) (string, error) {
	params := openai.AudioTranscriptionNewParams{
		Model: openai.AudioModelWhisper1,
		File:  openai.File(bytes.NewReader(wav), "audio.wav", "audio/wav"),
	}
	if language != "" {
		params.Language = openai.String(ai.SpeechLanguage(language))
	}

	resp, err := t.client.Audio.Transcriptions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("whisper transcription failed: %w", err)
	}
	return resp.Text, nil
}
