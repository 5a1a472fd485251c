package session

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultMinSentenceLength is the shortest sentence, in characters, sent to synthesis on its own.
const DefaultMinSentenceLength = 15

// SentenceSplitter cuts a token stream into sentences for incremental synthesis.
// Terminators are . ! ? | and the Devanagari danda. A period followed by another
// period is part of an ellipsis, not a terminator.
type SentenceSplitter struct {
	minLength int
	pending   string
}

func NewSentenceSplitter(minLength int) *SentenceSplitter {
	if minLength <= 0 {
		minLength = DefaultMinSentenceLength
	}
	return &SentenceSplitter{minLength: minLength}
}

// Write appends a token and returns every sentence it completed.
func (s *SentenceSplitter) Write(token string) []string {
	s.pending += token

	var sentences []string
	for {
		sentence, ok := s.next()
		if !ok {
			return sentences
		}
		sentences = append(sentences, sentence)
	}
}

// Flush returns whatever text is left and resets the splitter.
func (s *SentenceSplitter) Flush() string {
	rest := strings.TrimSpace(s.pending)
	s.pending = ""
	return rest
}

func (s *SentenceSplitter) next() (string, bool) {
	for i, r := range s.pending {
		if !isTerminator(r) {
			continue
		}
		end := i + utf8.RuneLen(r)
		if r == '.' && end < len(s.pending) && s.pending[end] == '.' {
			continue
		}

		sentence := strings.TrimSpace(s.pending[:end])
		if utf8.RuneCountInString(sentence) < s.minLength {
			continue
		}
		s.pending = strings.TrimLeftFunc(s.pending[end:], unicode.IsSpace)
		return sentence, true
	}
	return "", false
}

func isTerminator(r rune) bool {
	switch r {
	case '.', '!', '?', '|', '।':
		return true
	}
	return false
}
