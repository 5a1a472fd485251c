package audio

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
)

var (
	ErrNotWAV           = errors.New("not a RIFF/WAVE container")
	ErrUnsupportedWAV   = errors.New("unsupported WAV encoding")
	ErrMissingWAVChunks = errors.New("WAV is missing fmt or data chunk")
)

const wavHeaderSize = 44

// WrapWAV puts mono 16-bit PCM into a canonical 44-byte-header WAV container.
func WrapWAV(pcm []byte, sampleRate int) []byte {
	const (
		channels      = 1
		bitsPerSample = 16
	)
	blockAlign := channels * bitsPerSample / 8
	byteRate := sampleRate * blockAlign

	buf := bytes.NewBuffer(make([]byte, 0, wavHeaderSize+len(pcm)))
	buf.WriteString("RIFF")
	_ = binary.Write(buf, binary.LittleEndian, uint32(36+len(pcm)))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	_ = binary.Write(buf, binary.LittleEndian, uint32(16))
	_ = binary.Write(buf, binary.LittleEndian, uint16(1)) // PCM
	_ = binary.Write(buf, binary.LittleEndian, uint16(channels))
	_ = binary.Write(buf, binary.LittleEndian, uint32(sampleRate))
	_ = binary.Write(buf, binary.LittleEndian, uint32(byteRate))
	_ = binary.Write(buf, binary.LittleEndian, uint16(blockAlign))
	_ = binary.Write(buf, binary.LittleEndian, uint16(bitsPerSample))

	buf.WriteString("data")
	_ = binary.Write(buf, binary.LittleEndian, uint32(len(pcm)))
	buf.Write(pcm)

	return buf.Bytes()
}

// UnwrapWAV extracts 16-bit PCM from a WAV container and returns it as mono
// together with its sample rate. Multi-channel audio is averaged to mono.
func UnwrapWAV(wav []byte) ([]byte, int, error) {
	if len(wav) < 12 || string(wav[0:4]) != "RIFF" || string(wav[8:12]) != "WAVE" {
		return nil, 0, ErrNotWAV
	}

	var (
		format, channels, bits uint16
		sampleRate             uint32
		haveFmt                bool
		data                   []byte
		haveData               bool
	)

	for off := 12; off+8 <= len(wav); {
		id := string(wav[off : off+4])
		size := int(binary.LittleEndian.Uint32(wav[off+4 : off+8]))
		body := off + 8
		end := body + size
		if end > len(wav) {
			// Streaming writers leave a placeholder size; take what is there.
			end = len(wav)
		}

		switch id {
		case "fmt ":
			if end-body < 16 {
				return nil, 0, fmt.Errorf("%w: short fmt chunk", ErrUnsupportedWAV)
			}
			format = binary.LittleEndian.Uint16(wav[body:])
			channels = binary.LittleEndian.Uint16(wav[body+2:])
			sampleRate = binary.LittleEndian.Uint32(wav[body+4:])
			bits = binary.LittleEndian.Uint16(wav[body+14:])
			haveFmt = true
		case "data":
			data = wav[body:end]
			haveData = true
		}

		// Chunks are word aligned.
		off = end + (size & 1)
	}

	if !haveFmt || !haveData {
		return nil, 0, ErrMissingWAVChunks
	}
	// 0xFFFE is WAVE_FORMAT_EXTENSIBLE, which carries plain PCM for our purposes.
	if (format != 1 && format != 0xFFFE) || bits != 16 {
		return nil, 0, fmt.Errorf("%w: format=%d bits=%d", ErrUnsupportedWAV, format, bits)
	}

	mono, err := ToMono(data[:len(data)/2*2], int(channels))
	if err != nil {
		return nil, 0, err
	}
	return mono, int(sampleRate), nil
}
