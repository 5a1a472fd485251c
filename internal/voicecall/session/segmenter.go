package session

// Utterance is a span of caller speech ready for transcription.
type Utterance struct {
	PCM          []byte
	SpeechFrames int
}

// Segmenter groups VAD-labelled frames into utterances. A run of silence
// after speech closes the utterance; short utterances are discarded.
type Segmenter struct {
	silenceThreshold int
	minSpeechFrames  int

	speechStarted bool
	silenceRun    int
	speechRun     int
	buffer        []byte
}

func NewSegmenter(silenceThreshold, minSpeechFrames int) *Segmenter {
	return &Segmenter{
		silenceThreshold: silenceThreshold,
		minSpeechFrames:  minSpeechFrames,
	}
}

// Push feeds one frame of linear PCM. It returns an utterance once enough
// trailing silence has been seen.
func (s *Segmenter) Push(frame []byte, speech bool) (Utterance, bool) {
	switch {
	case speech:
		s.buffer = append(s.buffer, frame...)
		s.speechStarted = true
		s.silenceRun = 0
		s.speechRun++
	case s.speechStarted:
		s.buffer = append(s.buffer, frame...)
		s.silenceRun++
		if s.silenceRun < s.silenceThreshold {
			return Utterance{}, false
		}

		utt := Utterance{PCM: s.buffer, SpeechFrames: s.speechRun}
		s.Reset()
		if utt.SpeechFrames >= s.minSpeechFrames {
			return utt, true
		}
	}
	return Utterance{}, false
}

// Reset drops any partial utterance.
func (s *Segmenter) Reset() {
	s.speechStarted = false
	s.silenceRun = 0
	s.speechRun = 0
	s.buffer = nil
}

// Buffered reports the number of PCM bytes held for the current utterance.
func (s *Segmenter) Buffered() int {
	return len(s.buffer)
}
