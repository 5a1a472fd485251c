package apierrors

import (
	"errors"
	"strings"

	"karma-server/internal/clients/twilio"
	"karma-server/internal/store"
	"karma-server/internal/summary"
	"karma-server/internal/voicecall/processor"
)

// MapError converts domain errors to APIErrors.
//
// An APIError is returned as-is. Known domain errors map to their status,
// anything else becomes a sanitized 500.
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	switch {
	// Call processor errors
	case errors.Is(err, processor.ErrMissingCallID):
		return BadRequest(CodeInvalidInput, "Call id is required")

	case errors.Is(err, processor.ErrCallNotFound):
		return NotFound(CodeCallNotFound, "Call not found")

	case errors.Is(err, processor.ErrCallNotActive):
		return Conflict(CodeCallNotActive, "Call is not active")

	// Summary errors
	case errors.Is(err, summary.ErrNoTranscript):
		return NotFound(CodeTranscriptEmpty, "No transcript available")

	// Telephony errors
	case errors.Is(err, twilio.ErrNotConfigured):
		return ServiceUnavailable(CodeTelephonyError, "Telephony provider is not configured", err)

	// Store errors
	case errors.Is(err, store.ErrNotFound):
		return NotFound(CodeNotFound, "Resource not found")

	default:
		return mapExternalServiceError(err)
	}
}

// mapExternalServiceError identifies external service failures by message content.
func mapExternalServiceError(err error) *APIError {
	errMsg := strings.ToLower(err.Error())

	if strings.Contains(errMsg, "resend") || strings.Contains(errMsg, "email service") {
		return ServiceUnavailable(
			CodeEmailServiceError,
			"Email service is temporarily unavailable. Please try again later.",
			err,
		)
	}

	if strings.Contains(errMsg, "openai") || strings.Contains(errMsg, "openrouter") ||
		strings.Contains(errMsg, "gemini") || strings.Contains(errMsg, "completion") {
		return ServiceUnavailable(
			CodeAIServiceError,
			"AI service is temporarily unavailable. Please try again later.",
			err,
		)
	}

	if strings.Contains(errMsg, "twilio") || strings.Contains(errMsg, "hang up") {
		return ServiceUnavailable(
			CodeTelephonyError,
			"Telephony provider is temporarily unavailable. Please try again later.",
			err,
		)
	}

	return InternalError(err)
}
