// Package vad decides whether a frame of 16-bit linear PCM contains speech.
package vad

import (
	"math"

	"karma-server/internal/voice/audio"
)

// Detector classifies a single frame of 16-bit little-endian PCM.
type Detector interface {
	IsSpeech(frame []byte, sampleRate int) (bool, error)
}

// DefaultEnergyThreshold is the RMS level above which a frame counts as speech.
const DefaultEnergyThreshold = 500.0

// Energy is the dependency-free detector. It compares the frame RMS against a fixed threshold.
type Energy struct {
	Threshold float64
}

// NewEnergy returns an Energy detector, falling back to DefaultEnergyThreshold when threshold <= 0.
func NewEnergy(threshold float64) *Energy {
	if threshold <= 0 {
		threshold = DefaultEnergyThreshold
	}
	return &Energy{Threshold: threshold}
}

// IsSpeech never fails. An empty frame is silence.
func (e *Energy) IsSpeech(frame []byte, _ int) (bool, error) {
	return RMS(frame) > e.Threshold, nil
}

// RMS returns the root mean square of the int16 samples in pcm.
func RMS(pcm []byte) float64 {
	samples := audio.Samples(pcm)
	if len(samples) == 0 {
		return 0
	}
	var sum float64
	for _, s := range samples {
		v := float64(s)
		sum += v * v
	}
	return math.Sqrt(sum / float64(len(samples)))
}
