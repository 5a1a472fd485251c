// Package audio adapts between the telephony wire format (8 kHz G.711 mu-law)
// and the 16-bit little-endian linear PCM used by VAD and speech services.
package audio

import (
	"encoding/base64"
	"encoding/binary"
	"fmt"
)

const (
	// TelephonyRate is the sample rate of the relay leg.
	TelephonyRate = 8000
	// FrameDuration in milliseconds of one relay frame.
	FrameDuration = 20
	// MuLawFrameSize is one 20 ms frame at 8 kHz, one byte per sample.
	MuLawFrameSize = TelephonyRate * FrameDuration / 1000
	// PCMFrameSize is the same frame decoded to 16-bit samples.
	PCMFrameSize = MuLawFrameSize * 2
	// PlaybackChunkSize is 80 ms of mu-law, the unit cached prompts are sent in.
	PlaybackChunkSize = 640
)

const (
	muLawBias = 0x84
	muLawClip = 32635
)

// Decode expands mu-law bytes to 16-bit little-endian PCM.
func Decode(mulaw []byte) []byte {
	pcm := make([]byte, len(mulaw)*2)
	for i, b := range mulaw {
		binary.LittleEndian.PutUint16(pcm[i*2:], uint16(DecodeSample(b)))
	}
	return pcm
}

// Encode compresses 16-bit little-endian PCM to mu-law. A trailing odd byte is ignored.
func Encode(pcm []byte) []byte {
	mulaw := make([]byte, len(pcm)/2)
	for i := range mulaw {
		mulaw[i] = EncodeSample(int16(binary.LittleEndian.Uint16(pcm[i*2:])))
	}
	return mulaw
}

// DecodeSample expands one G.711 mu-law byte.
func DecodeSample(u byte) int16 {
	u = ^u
	sign := u & 0x80
	exponent := int(u>>4) & 0x07
	mantissa := int(u & 0x0F)

	sample := ((mantissa << 3) + muLawBias) << exponent
	sample -= muLawBias
	if sign != 0 {
		sample = -sample
	}
	return int16(sample)
}

// EncodeSample compresses one linear sample to G.711 mu-law.
func EncodeSample(s int16) byte {
	sample := int(s)
	var sign int
	if sample < 0 {
		sample = -sample
		sign = 0x80
	}
	if sample > muLawClip {
		sample = muLawClip
	}
	sample += muLawBias

	exponent := 7
	for mask := 0x4000; sample&mask == 0 && exponent > 0; mask >>= 1 {
		exponent--
	}
	mantissa := (sample >> (exponent + 3)) & 0x0F

	return ^byte(sign | exponent<<4 | mantissa)
}

// Samples converts 16-bit little-endian PCM into int16 samples.
func Samples(pcm []byte) []int16 {
	out := make([]int16, len(pcm)/2)
	for i := range out {
		out[i] = int16(binary.LittleEndian.Uint16(pcm[i*2:]))
	}
	return out
}

// FromSamples converts int16 samples into 16-bit little-endian PCM.
func FromSamples(samples []int16) []byte {
	out := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(out[i*2:], uint16(s))
	}
	return out
}

// ToMono averages interleaved 16-bit PCM with the given channel count down to one channel.
func ToMono(pcm []byte, channels int) ([]byte, error) {
	if channels <= 0 {
		return nil, fmt.Errorf("invalid channel count %d", channels)
	}
	if channels == 1 {
		out := make([]byte, len(pcm))
		copy(out, pcm)
		return out, nil
	}

	samples := Samples(pcm)
	frames := len(samples) / channels
	mono := make([]int16, frames)
	for f := 0; f < frames; f++ {
		var sum int
		for c := 0; c < channels; c++ {
			sum += int(samples[f*channels+c])
		}
		mono[f] = int16(sum / channels)
	}
	return FromSamples(mono), nil
}

// Chunk splits data into pieces of at most size bytes. The pieces share data's backing array.
func Chunk(data []byte, size int) [][]byte {
	if size <= 0 || len(data) == 0 {
		return nil
	}
	chunks := make([][]byte, 0, (len(data)+size-1)/size)
	for start := 0; start < len(data); start += size {
		end := start + size
		if end > len(data) {
			end = len(data)
		}
		chunks = append(chunks, data[start:end])
	}
	return chunks
}

// Base64ToBytes decodes a base64 relay payload.
func Base64ToBytes(encoded string) ([]byte, error) {
	return base64.StdEncoding.DecodeString(encoded)
}

// BytesToBase64 encodes audio for a relay payload.
func BytesToBase64(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}
