// Package twilio wraps the Twilio REST and webhook-signing APIs used outside the media stream.
package twilio

import (
	"context"
	"errors"
	"fmt"
	"strings"

	twiliogo "github.com/twilio/twilio-go"
	twclient "github.com/twilio/twilio-go/client"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"

	"karma-server/internal/observability"
)

// ErrNotConfigured is returned when no account credentials were supplied.
var ErrNotConfigured = errors.New("twilio credentials not configured")

type callUpdater interface {
	UpdateCall(sid string, params *openapi.UpdateCallParams) (*openapi.ApiV2010Call, error)
}

// Client hangs up live calls through the REST API.
type Client struct {
	calls  callUpdater
	logger *observability.Logger
}

// NewClient returns a REST client. With empty credentials every call returns ErrNotConfigured.
func NewClient(accountSID, authToken string, logger *observability.Logger) *Client {
	c := &Client{logger: logger}
	if accountSID != "" && authToken != "" {
		rest := twiliogo.NewRestClientWithParams(twiliogo.ClientParams{
			Username: accountSID,
			Password: authToken,
		})
		c.calls = rest.Api
	}
	return c
}

// IsProviderCall reports whether id looks like a Twilio call sid rather than a locally generated id.
func IsProviderCall(id string) bool {
	return strings.HasPrefix(id, "CA")
}

// Hangup ends a live call. Ids that are not provider call sids are ignored.
func (c *Client) Hangup(ctx context.Context, callSid string) error {
	if !IsProviderCall(callSid) {
		return nil
	}
	if c.calls == nil {
		return ErrNotConfigured
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "call_sid", Value: callSid})

	params := &openapi.UpdateCallParams{}
	params.SetStatus("completed")
	if _, err := c.calls.UpdateCall(callSid, params); err != nil {
		c.logger.Error(ctx, "failed to hang up call", err)
		return fmt.Errorf("failed to hang up call %s: %w", callSid, err)
	}

	c.logger.Info(ctx, "call hung up via REST")
	return nil
}

// SignatureValidator checks X-Twilio-Signature on webhook requests.
type SignatureValidator struct {
	validator twclient.RequestValidator
}

func NewSignatureValidator(authToken string) *SignatureValidator {
	return &SignatureValidator{validator: twclient.NewRequestValidator(authToken)}
}

// Valid reports whether signature matches url and the posted form params.
func (v *SignatureValidator) Valid(url string, params map[string]string, signature string) bool {
	if signature == "" {
		return false
	}
	return v.validator.Validate(url, params, signature)
}
