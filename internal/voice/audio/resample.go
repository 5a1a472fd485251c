package audio

import (
	"fmt"
	"math"

	resampling "github.com/tphakala/go-audio-resampling"
)

// pcmScale maps 16-bit samples to and from [-1, 1).
const pcmScale = 32768.0

// Resample converts mono 16-bit PCM between sample rates. The output holds
// exactly len*toRate/fromRate samples.
func Resample(pcm []byte, fromRate, toRate int) ([]byte, error) {
	if fromRate <= 0 || toRate <= 0 {
		return nil, fmt.Errorf("invalid sample rates %d -> %d", fromRate, toRate)
	}
	if fromRate == toRate || len(pcm) < 2 {
		out := make([]byte, len(pcm)/2*2)
		copy(out, pcm)
		return out, nil
	}

	r, err := resampling.New(&resampling.Config{
		InputRate:  float64(fromRate),
		OutputRate: float64(toRate),
		Channels:   1,
		Quality:    resampling.QualitySpec{Preset: resampling.QualityHigh},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create resampler: %w", err)
	}

	samples := Samples(pcm)
	input := make([]float64, len(samples))
	for i, s := range samples {
		input[i] = float64(s) / pcmScale
	}

	output, err := r.Process(input)
	if err != nil {
		return nil, fmt.Errorf("failed to resample: %w", err)
	}
	// The filter holds back its delay line until flushed.
	tail, err := r.Flush()
	if err != nil {
		return nil, fmt.Errorf("failed to flush resampler: %w", err)
	}
	output = append(output, tail...)

	want := len(samples) * toRate / fromRate
	if len(output) > want {
		output = output[:want]
	}
	for len(output) < want {
		output = append(output, 0)
	}

	out := make([]int16, len(output))
	for i, s := range output {
		v := math.Round(s * pcmScale)
		switch {
		case v > math.MaxInt16:
			out[i] = math.MaxInt16
		case v < math.MinInt16:
			out[i] = math.MinInt16
		default:
			out[i] = int16(v)
		}
	}
	return FromSamples(out), nil
}
