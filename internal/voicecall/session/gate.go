package session

import (
	"context"
	"fmt"
	"strings"
	"time"

	"karma-server/internal/ai"
	"karma-server/internal/voice/audio"
)

// Gate collects the opening seconds of caller audio and decides, once per
// call, whether the caller is a human or a synthetic voice.
type Gate struct {
	window       time.Duration
	timeout      time.Duration
	minSpeech    int
	classifier   Classifier
	started      time.Time
	pcm          []byte
	speechFrames int
}

func NewGate(cfg Config, classifier Classifier) *Gate {
	return &Gate{
		window:     cfg.ClassificationWindow,
		timeout:    cfg.ClassifierTimeout,
		minSpeech:  cfg.MinClassifySpeech,
		classifier: classifier,
	}
}

// Open starts the collection window.
func (g *Gate) Open(now time.Time) {
	g.started = now
	g.pcm = g.pcm[:0]
	g.speechFrames = 0
}

// Feed appends decoded PCM and tallies the full frames isSpeech accepts.
func (g *Gate) Feed(pcm []byte, isSpeech func(frame []byte) bool) {
	g.pcm = append(g.pcm, pcm...)
	for off := 0; off+audio.PCMFrameSize <= len(pcm); off += audio.PCMFrameSize {
		if isSpeech(pcm[off : off+audio.PCMFrameSize]) {
			g.speechFrames++
		}
	}
}

// Expired reports whether the window has elapsed at now.
func (g *Gate) Expired(now time.Time) bool {
	return now.Sub(g.started) >= g.window
}

// Sufficient reports whether enough speech was heard to be worth classifying.
func (g *Gate) Sufficient() bool {
	return g.speechFrames >= g.minSpeech
}

// SpeechFrames is the number of speech frames seen in the window.
func (g *Gate) SpeechFrames() int {
	return g.speechFrames
}

// WAV returns the collected audio as an 8 kHz WAV.
func (g *Gate) WAV() []byte {
	return audio.WrapWAV(g.pcm, audio.TelephonyRate)
}

// Classify sends wav to the classifier with the configured timeout.
func (g *Gate) Classify(ctx context.Context, wav []byte) ai.Classification {
	return g.classifier.Classify(ctx, wav, g.timeout)
}

// Release drops the collected audio. The gate does not reopen.
func (g *Gate) Release() {
	g.pcm = nil
}

// ClassificationMessage renders the verdict as a transcript line.
func ClassificationMessage(c ai.Classification) string {
	return fmt.Sprintf("Caller classified as %s (confidence: %.0f%%)", strings.ToUpper(string(c.Label)), c.Confidence*100)
}
