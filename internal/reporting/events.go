// Package reporting turns call activity into persisted records, dashboard
// broadcasts and streamed events.
package reporting

import (
	"karma-server/internal/intel"
	"karma-server/internal/store"
)

// Event types, shared by the dashboard socket and the Kafka topic.
const (
	EventCallStarted       = "call_started"
	EventCallEnded         = "call_ended"
	EventTranscriptMessage = "transcript_message"
	EventAIStatus          = "ai_status"
	EventIntelUpdate       = "intel_update"
	EventCallListUpdate    = "call_list_update"
)

// recentCallsLimit is how many past calls a call list update carries.
const recentCallsLimit = 10

// Transcript speakers.
const (
	SpeakerScammer = "scammer"
	SpeakerAI      = "ai"
	SpeakerSystem  = "system"
)

// roleFor maps a transcript speaker to the stored message role.
func roleFor(speaker string) string {
	switch speaker {
	case SpeakerScammer:
		return store.MessageRoleUser
	case SpeakerAI:
		return store.MessageRoleAssistant
	default:
		return store.MessageRoleSystem
	}
}

// intelUpdate flattens items into the dashboard's intel card. Fields the card
// has no slot for are omitted; a bank fills the organisation slot.
func intelUpdate(callID string, items []intel.Item) map[string]any {
	update := map[string]any{}
	for _, item := range items {
		switch item.FieldName {
		case intel.FieldScammerName, intel.FieldScamType, intel.FieldOrganization,
			intel.FieldUPIID, intel.FieldPhoneNumber:
			update[item.FieldName] = item.FieldValue
		case intel.FieldBank:
			update[intel.FieldOrganization] = item.FieldValue
		}
	}
	if len(update) == 0 {
		return nil
	}
	update["call_sid"] = callID
	return update
}
