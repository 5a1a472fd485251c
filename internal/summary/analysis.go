package summary

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"

	"karma-server/internal/ai"
	"karma-server/internal/intel"
	"karma-server/internal/observability"
	"karma-server/internal/store"
)

const (
	analysisTemperature = 0.2

	analysisPrompt = `You are a scam call analyst for Karma AI, a system that intercepts scam calls with an AI grandmother persona.
Analyze the following scam call transcript and return a JSON object with this EXACT structure (no markdown, no explanation, ONLY valid JSON):

{
  "scammer_profile": {
    "name": "name if mentioned, otherwise Unknown",
    "organization_claimed": "org they claim to represent",
    "phone_number": "if visible",
    "location_hints": "any location clues from speech patterns or mentions"
  },
  "scam_analysis": {
    "type": "KYC Fraud / Lottery / Bank Impersonation / Tech Support / Insurance / Refund / OTP / UPI / Other",
    "tactics_used": ["list", "of", "tactics"],
    "threat_level": "HIGH or MEDIUM or LOW",
    "sophistication": "HIGH or MEDIUM or LOW"
  },
  "extracted_data": {
    "upi_ids": [],
    "phone_numbers": [],
    "bank_accounts": [],
    "aadhaar_numbers": [],
    "banks_mentioned": []
  },
  "call_metrics": {
    "messages_exchanged": 0,
    "scammer_frustration_level": "LOW or MEDIUM or HIGH or EXTREME",
    "time_wasted_effectively": true
  },
  "summary": "2-3 sentence English summary of the call",
  "key_moments": ["moment 1", "moment 2", "moment 3"]
}

Rules:
- Respond with ONLY the JSON object, nothing else
- Fill every field based on the transcript
- For missing data, use empty strings or empty arrays
- Tactics include: urgency, authority impersonation, fear, fake deadlines, emotional manipulation, technical jargon, etc.
- Frustration level: judge from scammer's tone/caps/repetition/threats
- Key moments: 3-5 most important events in the call`
)

type ScammerProfile struct {
	Name                string `json:"name"`
	OrganizationClaimed string `json:"organization_claimed"`
	PhoneNumber         string `json:"phone_number"`
	LocationHints       string `json:"location_hints"`
}

type ScamAnalysis struct {
	Type           string   `json:"type"`
	TacticsUsed    []string `json:"tactics_used"`
	ThreatLevel    string   `json:"threat_level"`
	Sophistication string   `json:"sophistication"`
}

type ExtractedData struct {
	UPIIDs         []string `json:"upi_ids"`
	PhoneNumbers   []string `json:"phone_numbers"`
	BankAccounts   []string `json:"bank_accounts"`
	AadhaarNumbers []string `json:"aadhaar_numbers"`
	BanksMentioned []string `json:"banks_mentioned"`
}

type CallMetrics struct {
	MessagesExchanged       int    `json:"messages_exchanged"`
	ScammerFrustrationLevel string `json:"scammer_frustration_level"`
	TimeWastedEffectively   bool   `json:"time_wasted_effectively"`
	DurationSeconds         int    `json:"duration_seconds"`
	CallMode                string `json:"call_mode"`
	CallerNumber            string `json:"caller_number"`
}

// Analysis is the structured dossier of one scam call.
type Analysis struct {
	ScammerProfile ScammerProfile `json:"scammer_profile"`
	ScamAnalysis   ScamAnalysis   `json:"scam_analysis"`
	ExtractedData  ExtractedData  `json:"extracted_data"`
	CallMetrics    CallMetrics    `json:"call_metrics"`
	Summary        string         `json:"summary"`
	KeyMoments     []string       `json:"key_moments"`
}

// AnalysisResult carries the dossier, or the model's raw reply when it was
// not valid JSON, together with the stored intel.
type AnalysisResult struct {
	Analysis   *Analysis     `json:"analysis"`
	RawSummary string        `json:"raw_summary,omitempty"`
	Intel      []store.Intel `json:"intel"`
}

// Analyze asks the model for a structured dossier of a call. Call details and
// regex-extracted intel from the store override or extend what the model returns.
func (s *Summarizer) Analyze(ctx context.Context, callID string) (AnalysisResult, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "call_sid", Value: callID})

	messages, err := s.store.GetTranscript(ctx, callID)
	if err != nil {
		return AnalysisResult{}, err
	}
	transcript := FormatTranscript(messages)
	if transcript == "" {
		return AnalysisResult{}, ErrNoTranscript
	}

	call, err := s.store.GetCall(ctx, callID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return AnalysisResult{}, err
	}
	found := err == nil

	items, err := s.store.GetIntel(ctx, callID)
	if err != nil {
		return AnalysisResult{}, err
	}
	if items == nil {
		items = []store.Intel{}
	}

	raw, err := s.llm.Complete(ctx, []ai.Message{
		{Role: ai.RoleSystem, Content: analysisPrompt},
		{Role: ai.RoleUser, Content: "Transcript:\n" + transcript + intelContext(items)},
	}, analysisTemperature)
	if err != nil {
		s.logger.Error(ctx, "failed to generate call analysis", err)
		return AnalysisResult{}, fmt.Errorf("failed to generate call analysis: %w", err)
	}

	var analysis Analysis
	if err := json.Unmarshal([]byte(StripCodeFence(raw)), &analysis); err != nil {
		s.logger.Warn(ctx, "call analysis was not valid JSON, returning raw text")
		return AnalysisResult{RawSummary: raw, Intel: items}, nil
	}

	if found {
		analysis.CallMetrics.DurationSeconds = call.DurationSeconds
		analysis.CallMetrics.CallMode = call.Mode
		analysis.CallMetrics.CallerNumber = call.CallerNumber
	}
	analysis.CallMetrics.MessagesExchanged = countTurns(messages)
	mergeIntel(&analysis.ExtractedData, items)

	return AnalysisResult{Analysis: &analysis, Intel: items}, nil
}

// StripCodeFence removes a surrounding markdown code fence, with or without a
// language tag.
func StripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		text = text[i+1:]
	} else {
		text = text[3:]
	}
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}

func intelContext(items []store.Intel) string {
	if len(items) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("\n\nAlready extracted intel from regex:")
	for _, i := range items {
		fmt.Fprintf(&b, "\n- %s: %s (confidence: %.2f)", i.FieldName, i.FieldValue, i.Confidence)
	}
	return b.String()
}

func countTurns(messages []store.Message) int {
	n := 0
	for _, m := range messages {
		if m.Role != store.MessageRoleSystem {
			n++
		}
	}
	return n
}

func mergeIntel(data *ExtractedData, items []store.Intel) {
	add := func(list *[]string, value string) {
		if !slices.Contains(*list, value) {
			*list = append(*list, value)
		}
	}
	for _, i := range items {
		switch i.FieldName {
		case intel.FieldUPIID:
			add(&data.UPIIDs, i.FieldValue)
		case intel.FieldPhoneNumber:
			add(&data.PhoneNumbers, i.FieldValue)
		case intel.FieldAccountNumber:
			add(&data.BankAccounts, i.FieldValue)
		case intel.FieldAadhaarNumber:
			add(&data.AadhaarNumbers, i.FieldValue)
		case intel.FieldBank:
			add(&data.BanksMentioned, i.FieldValue)
		}
	}
}
