package session

import (
	"context"
	"sync"

	"karma-server/internal/voice/audio"
)

// speechMuLaw is one 20 ms frame loud enough for the energy detector.
func speechMuLaw() []byte {
	samples := make([]int16, audio.MuLawFrameSize)
	for i := range samples {
		samples[i] = 3000
	}
	return audio.Encode(audio.FromSamples(samples))
}

// silenceMuLaw is one 20 ms frame of digital silence.
func silenceMuLaw() []byte {
	frame := make([]byte, audio.MuLawFrameSize)
	for i := range frame {
		frame[i] = 0xFF
	}
	return frame
}

func speechPCM() []byte  { return audio.Decode(speechMuLaw()) }
func silencePCM() []byte { return audio.Decode(silenceMuLaw()) }

type fakeTokens struct {
	tokens []string
	pos    int
	err    error
	closed bool
}

func (f *fakeTokens) Next() bool {
	if f.pos >= len(f.tokens) {
		return false
	}
	f.pos++
	return true
}
func (f *fakeTokens) Token() string { return f.tokens[f.pos-1] }
func (f *fakeTokens) Err() error    { return f.err }
func (f *fakeTokens) Close() error  { f.closed = true; return nil }

type fakeSpeech struct {
	mu      sync.Mutex
	spoken  []string
	closed  bool
	speakFn func(text string) error
}

func (f *fakeSpeech) Speak(_ context.Context, text string, onChunk func([]byte) error) error {
	f.mu.Lock()
	f.spoken = append(f.spoken, text)
	f.mu.Unlock()
	if f.speakFn != nil {
		if err := f.speakFn(text); err != nil {
			return err
		}
	}
	return onChunk([]byte(text))
}

func (f *fakeSpeech) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

func (f *fakeSpeech) Spoken() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.spoken...)
}

func (f *fakeSpeech) Closed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closed
}
