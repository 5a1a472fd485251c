package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentenceSplitter_Write(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		want   []string
		rest   string
	}{
		{
			name:   "single sentence across tokens",
			tokens: []string{"Arre beta, ", "kaun bol raha", " hai? Main"},
			want:   []string{"Arre beta, kaun bol raha hai?"},
			rest:   "Main",
		},
		{
			name:   "short prefix waits for the next terminator",
			tokens: []string{"Haan ji. Aap kaun se bank se ho?"},
			want:   []string{"Haan ji. Aap kaun se bank se ho?"},
		},
		{
			name:   "ellipsis is not a terminator",
			tokens: []string{"Ruko ruko... mera chashma kahan gaya! "},
			want:   []string{"Ruko ruko... mera chashma kahan gaya!"},
		},
		{
			name:   "danda and pipe",
			tokens: []string{"Mujhe kuch samajh nahi aaya। Phir se boliye zara |"},
			want:   []string{"Mujhe kuch samajh nahi aaya।", "Phir se boliye zara |"},
		},
		{
			name:   "several sentences in one token",
			tokens: []string{"Ek minute ruko beta! Mera pota aata hai abhi. Ok"},
			want:   []string{"Ek minute ruko beta!", "Mera pota aata hai abhi."},
			rest:   "Ok",
		},
		{
			name:   "short first sentence stays with the next",
			tokens: []string{"Hello there. How are ", "you today?"},
			want:   []string{"Hello there. How are you today?"},
		},
		{
			name:   "short first sentence left for flush",
			tokens: []string{"Hello there. How are ", "you today"},
			rest:   "Hello there. How are you today",
		},
		{
			name:   "no terminator",
			tokens: []string{"Hello there"},
			rest:   "Hello there",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSentenceSplitter(15)
			var got []string
			for _, tok := range tt.tokens {
				got = append(got, s.Write(tok)...)
			}
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.rest, s.Flush())
			assert.Empty(t, s.Flush())
		})
	}
}

func TestSentenceSplitter_CountsCharactersNotBytes(t *testing.T) {
	// Ten runes, well over fifteen bytes.
	s := NewSentenceSplitter(15)
	assert.Empty(t, s.Write("नमस्ते जी।"))
	assert.Equal(t, "नमस्ते जी।", s.Flush())
}

func TestNewSentenceSplitter_Default(t *testing.T) {
	s := NewSentenceSplitter(0)
	assert.Equal(t, DefaultMinSentenceLength, s.minLength)
}
