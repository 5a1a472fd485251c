package session

// Phase is the position of a session in the call lifecycle.
type Phase int

const (
	PhaseConnecting Phase = iota
	PhaseGreetingSent
	PhaseCooldownPreClassify
	PhaseClassifying
	PhaseActive
	PhaseBlocked
)

func (p Phase) String() string {
	switch p {
	case PhaseConnecting:
		return "connecting"
	case PhaseGreetingSent:
		return "greeting_sent"
	case PhaseCooldownPreClassify:
		return "cooldown_pre_classify"
	case PhaseClassifying:
		return "classifying"
	case PhaseActive:
		return "active"
	case PhaseBlocked:
		return "blocked"
	default:
		return "unknown"
	}
}

// Agent statuses shown to dashboard viewers.
const (
	StatusClassifying = "CLASSIFYING CALLER..."
	StatusAnalyzing   = "ANALYZING..."
	StatusMuted       = "MUTED"
	StatusDefending   = "DEFENDING"
	StatusAIDetected  = "AI CALLER DETECTED"
)

// Transcript speakers.
const (
	SpeakerScammer = "scammer"
	SpeakerAI      = "ai"
	SpeakerSystem  = "system"
)

// Playback marks sent to the relay after each prompt or response.
const (
	MarkGreetingEnd   = "greeting_end"
	MarkResponseEnd   = "response_end"
	MarkAIDetectedEnd = "ai_detected_end"
)
