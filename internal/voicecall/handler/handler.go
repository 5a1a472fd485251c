// Package handler serves the Twilio voice webhooks and the bidirectional
// media stream.
package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/twilio/twilio-go/twiml"

	"karma-server/internal/apierrors"
	"karma-server/internal/observability"
	"karma-server/internal/store"
	"karma-server/internal/voicecall/processor"
	"karma-server/internal/voicecall/twilio"
)

const (
	mediaStreamPath = "/media-stream"
	unknownCaller   = "Unknown"
)

type Handler struct {
	calls      CallLifecycle
	sessions   MediaSessions
	signatures SignatureChecker
	publicHost string
	logger     *observability.Logger
}

// New creates the webhook handler. signatures may be nil to skip signature
// checks. publicHost overrides the request host in generated URLs.
func New(calls CallLifecycle, sessions MediaSessions, signatures SignatureChecker, publicHost string, logger *observability.Logger) Handler {
	return Handler{
		calls:      calls,
		sessions:   sessions,
		signatures: signatures,
		publicHost: publicHost,
		logger:     logger,
	}
}

// upgrader accepts any origin; the media stream is opened by Twilio, not a browser.
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

func (h *Handler) host(c *gin.Context) string {
	if h.publicHost != "" {
		return h.publicHost
	}
	return c.Request.Host
}

// HandleVoice answers an incoming call: it registers the call and connects
// the caller to the media stream.
func (h *Handler) HandleVoice(c *gin.Context) {
	ctx := c.Request.Context()

	callSid := c.PostForm("CallSid")
	caller := c.PostForm("From")
	if caller == "" {
		caller = unknownCaller
	}
	if callSid == "" {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "CallSid is required"))
		return
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "call_sid", Value: callSid},
		observability.Field{Key: "caller", Value: caller},
	)

	if err := h.calls.StartCall(ctx, callSid, caller, store.CallModeTwilio); err != nil {
		h.logger.Error(ctx, "failed to start call", err)
		apierrors.RespondWithError(c, err)
		return
	}

	stream := twiml.VoiceStream{
		Url: fmt.Sprintf("wss://%s%s", h.host(c), mediaStreamPath),
		InnerElements: []twiml.Element{
			twiml.VoiceParameter{Name: "caller", Value: caller},
		},
	}
	connect := twiml.VoiceConnect{
		InnerElements: []twiml.Element{stream},
	}

	twimlResult, err := twiml.Voice([]twiml.Element{connect})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	h.logger.Info(ctx, "incoming call connected to media stream")
	c.Header("Content-Type", "text/xml")
	c.String(http.StatusOK, twimlResult)
}

// HandleCallStatus ends the call when Twilio reports a terminal status.
func (h *Handler) HandleCallStatus(c *gin.Context) {
	ctx := c.Request.Context()

	callSid := c.PostForm("CallSid")
	status := c.PostForm("CallStatus")
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "call_sid", Value: callSid},
		observability.Field{Key: "call_status", Value: status},
	)
	h.logger.Info(ctx, "call status update")

	if callSid != "" && processor.IsTerminalStatus(status) {
		err := h.calls.EndCall(ctx, callSid, status)
		if err != nil && !errors.Is(err, processor.ErrCallNotFound) {
			h.logger.Error(ctx, "failed to end call", err)
		}
	}

	c.Status(http.StatusNoContent)
}

// HandleMediaStream upgrades to the Twilio media websocket and runs a voice
// session on it.
func (h *Handler) HandleMediaStream(c *gin.Context) {
	ctx := c.Request.Context()

	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error(ctx, "WebSocket upgrade failed", err)
		return
	}

	conn := twilio.NewConn(ws, h.logger)
	defer conn.Close()

	h.logger.Info(ctx, "media stream connected")
	if err := h.sessions.Serve(ctx, conn); err != nil && !errors.Is(err, context.Canceled) {
		h.logger.Error(ctx, "media stream session failed", err)
	}
}
