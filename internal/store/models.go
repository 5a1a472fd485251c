package store

// Call statuses. Terminal Twilio statuses are stored as reported.
const (
	CallStatusActive    = "active"
	CallStatusCompleted = "completed"
	CallStatusFailed    = "failed"
	CallStatusBusy      = "busy"
	CallStatusNoAnswer  = "no-answer"
	CallStatusCanceled  = "canceled"
	CallStatusDropped   = "dropped"
	CallStatusExpired   = "expired"
)

// Call modes
const (
	CallModeTwilio  = "twilio"
	CallModeBrowser = "browser"
)

// Message roles
const (
	MessageRoleUser      = "user"
	MessageRoleAssistant = "assistant"
	MessageRoleSystem    = "system"
)

type Call struct {
	ID              string  `db:"id" json:"id"`
	CallerNumber    string  `db:"caller_number" json:"caller_number"`
	StartTime       string  `db:"start_time" json:"start_time"`
	EndTime         *string `db:"end_time" json:"end_time"`
	DurationSeconds int     `db:"duration_seconds" json:"duration_seconds"`
	Status          string  `db:"status" json:"status"`
	Mode            string  `db:"mode" json:"mode"`
	ThreatLevel     string  `db:"threat_level" json:"threat_level"`
	Summary         *string `db:"summary" json:"summary,omitempty"`
}

// CallSummary is a call row with its transcript and intel sizes.
type CallSummary struct {
	Call
	MessageCount int `db:"message_count" json:"message_count"`
	IntelCount   int `db:"intel_count" json:"intel_count"`
}

type Message struct {
	Role      string `db:"role" json:"role"`
	Content   string `db:"content" json:"content"`
	Timestamp string `db:"created_at" json:"timestamp"`
}

type Intel struct {
	FieldName  string  `db:"field_name" json:"field_name"`
	FieldValue string  `db:"field_value" json:"field_value"`
	Confidence float64 `db:"confidence" json:"confidence"`
	Timestamp  string  `db:"created_at" json:"timestamp"`
}

type Stats struct {
	TotalCalls             int     `json:"total_calls"`
	ActiveCalls            int     `json:"active_calls"`
	CompletedCalls         int     `json:"completed_calls"`
	AvgDurationSeconds     int     `json:"avg_duration_seconds"`
	TotalTimeWastedSeconds int     `json:"total_time_wasted_seconds"`
	IntelExtracted         int     `json:"intel_extracted"`
	SuccessRate            float64 `json:"success_rate"`
	CallsToday             int     `json:"calls_today"`
	// CallsThisWeek holds daily counts, oldest first, ending today.
	CallsThisWeek []int `json:"calls_this_week"`
}
