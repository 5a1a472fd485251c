package vad

import (
	"fmt"
	"sync"

	webrtcvad "github.com/maxhawkins/go-webrtcvad"
)

// WebRTC wraps the libfvad/webrtc detector. The underlying instance is not
// safe for concurrent use, so calls are serialized.
type WebRTC struct {
	mu  sync.Mutex
	vad *webrtcvad.VAD
}

// NewWebRTC creates a detector at the given aggressiveness (0-3).
func NewWebRTC(aggressiveness int) (*WebRTC, error) {
	if aggressiveness < 0 || aggressiveness > 3 {
		return nil, fmt.Errorf("invalid vad aggressiveness %d", aggressiveness)
	}
	v, err := webrtcvad.New()
	if err != nil {
		return nil, fmt.Errorf("failed to create webrtc vad: %w", err)
	}
	if err := v.SetMode(aggressiveness); err != nil {
		return nil, fmt.Errorf("failed to set webrtc vad mode: %w", err)
	}
	return &WebRTC{vad: v}, nil
}

// IsSpeech accepts 10, 20 or 30 ms frames at 8, 16, 32 or 48 kHz.
func (w *WebRTC) IsSpeech(frame []byte, sampleRate int) (bool, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.vad.ValidRateAndFrameLength(sampleRate, len(frame)/2) {
		return false, fmt.Errorf("unsupported frame: %d bytes at %d Hz", len(frame), sampleRate)
	}
	return w.vad.Process(sampleRate, frame)
}
