package dashboard

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"karma-server/internal/apierrors"
	"karma-server/internal/observability"
	"karma-server/internal/reporting"
	"karma-server/internal/store"
)

const (
	defaultPageSize = 50
	maxPageSize     = 200
)

type Handler struct {
	store      CallStore
	summarizer Summarizer
	controller Controller
	notifier   CallListNotifier
	hub        *Hub
	auth       *Authenticator
	limiter    gin.HandlerFunc
	upgrader   websocket.Upgrader
	logger     *observability.Logger
}

// New creates the dashboard handler. allowedOrigins restricts viewer
// websockets; an empty list or "*" accepts any origin.
func New(store CallStore, summarizer Summarizer, controller Controller, notifier CallListNotifier, hub *Hub, auth *Authenticator, allowedOrigins []string, logger *observability.Logger) Handler {
	return Handler{
		store:      store,
		summarizer: summarizer,
		controller: controller,
		notifier:   notifier,
		hub:        hub,
		auth:       auth,
		upgrader: websocket.Upgrader{
			CheckOrigin: originChecker(allowedOrigins),
		},
		logger: logger,
	}
}

func originChecker(allowed []string) func(r *http.Request) bool {
	set := make(map[string]bool, len(allowed))
	for _, o := range allowed {
		if o == "*" {
			return func(*http.Request) bool { return true }
		}
		set[o] = true
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		return len(set) == 0 || origin == "" || set[origin]
	}
}

// SetTokenLimiter guards the token endpoint, which checks the operator API key.
func (h *Handler) SetTokenLimiter(limiter gin.HandlerFunc) {
	h.limiter = limiter
}

// RegisterRoutes mounts the dashboard API under group.
func (h *Handler) RegisterRoutes(group *gin.RouterGroup) {
	if h.limiter != nil {
		group.POST("/auth/token", h.limiter, h.HandleIssueToken)
	} else {
		group.POST("/auth/token", h.HandleIssueToken)
	}

	protected := group.Group("", h.auth.Middleware())
	protected.GET("/stats", h.HandleGetStats)
	protected.GET("/calls", h.HandleListCalls)
	protected.GET("/calls/:id/transcript", h.HandleGetTranscript)
	protected.GET("/calls/:id/summary", h.HandleGetSummary)
	protected.GET("/calls/:id/analysis", h.HandleGetAnalysis)
	protected.DELETE("/calls/:id", h.HandleDeleteCall)
	protected.POST("/calls/:id/mute", h.HandleMuteCall)
	protected.POST("/calls/:id/drop", h.HandleDropCall)
	protected.GET("/active-calls", h.HandleListActiveCalls)
	protected.GET("/dashboard/ws", h.HandleViewerSocket)
}

type IssueTokenRequest struct {
	APIKey string `json:"api_key" binding:"required"`
}

type IssueTokenResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
}

func (h *Handler) HandleIssueToken(c *gin.Context) {
	ctx := c.Request.Context()

	var req IssueTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	token, expiresAt, err := h.auth.IssueToken(req.APIKey)
	if err != nil {
		switch {
		case errors.Is(err, ErrAuthNotEnabled):
			apierrors.RespondWithError(c, apierrors.NotFound(apierrors.CodeAuthNotConfigured, "Dashboard auth is not enabled"))
		case errors.Is(err, ErrInvalidAPIKey):
			h.logger.Warn(ctx, "rejected dashboard api key")
			apierrors.RespondWithError(c, apierrors.Unauthorized("Invalid API key"))
		default:
			apierrors.RespondWithError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, IssueTokenResponse{Token: token, ExpiresAt: expiresAt.Unix()})
}

func (h *Handler) HandleGetStats(c *gin.Context) {
	stats, err := h.store.GetStats(c.Request.Context())
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

type ListCallsResponse struct {
	Calls  []store.CallSummary `json:"calls"`
	Total  int                 `json:"total"`
	Limit  int                 `json:"limit"`
	Offset int                 `json:"offset"`
}

func (h *Handler) HandleListCalls(c *gin.Context) {
	ctx := c.Request.Context()

	limit, err := queryInt(c, "limit", defaultPageSize)
	if err != nil || limit < 1 || limit > maxPageSize {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "limit must be between 1 and 200"))
		return
	}
	offset, err := queryInt(c, "offset", 0)
	if err != nil || offset < 0 {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "offset must be a non-negative integer"))
		return
	}

	calls, err := h.store.ListCalls(ctx, limit, offset)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	total, err := h.store.CountCalls(ctx)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	if calls == nil {
		calls = []store.CallSummary{}
	}
	c.JSON(http.StatusOK, ListCallsResponse{Calls: calls, Total: total, Limit: limit, Offset: offset})
}

func queryInt(c *gin.Context, key string, def int) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}

type TranscriptResponse struct {
	Call     store.Call      `json:"call"`
	Messages []store.Message `json:"messages"`
	Intel    []store.Intel   `json:"intel"`
}

func (h *Handler) HandleGetTranscript(c *gin.Context) {
	ctx := c.Request.Context()
	callID := c.Param("id")

	call, err := h.store.GetCall(ctx, callID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			apierrors.RespondWithError(c, apierrors.NotFound(apierrors.CodeCallNotFound, "Call not found"))
			return
		}
		apierrors.RespondWithError(c, err)
		return
	}

	messages, err := h.store.GetTranscript(ctx, callID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	intel, err := h.store.GetIntel(ctx, callID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, TranscriptResponse{
		Call:     call,
		Messages: nonNil(messages),
		Intel:    nonNil(intel),
	})
}

type SummaryResponse struct {
	Summary string        `json:"summary"`
	Intel   []store.Intel `json:"intel"`
}

// HandleGetSummary returns the stored summary of a call, generating it on
// first request when the background job has not run yet.
func (h *Handler) HandleGetSummary(c *gin.Context) {
	ctx := c.Request.Context()
	callID := c.Param("id")

	call, err := h.store.GetCall(ctx, callID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			apierrors.RespondWithError(c, apierrors.NotFound(apierrors.CodeCallNotFound, "Call not found"))
			return
		}
		apierrors.RespondWithError(c, err)
		return
	}

	var text string
	if call.Summary != nil && *call.Summary != "" {
		text = *call.Summary
	} else {
		text, err = h.summarizer.Summarize(ctx, callID)
		if err != nil {
			apierrors.RespondWithError(c, err)
			return
		}
	}

	intel, err := h.store.GetIntel(ctx, callID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, SummaryResponse{Summary: text, Intel: nonNil(intel)})
}

// HandleGetAnalysis returns a structured dossier of the call built by the
// language model. It is generated on every request and not stored.
func (h *Handler) HandleGetAnalysis(c *gin.Context) {
	result, err := h.summarizer.Analyze(c.Request.Context(), c.Param("id"))
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) HandleListActiveCalls(c *gin.Context) {
	calls, err := h.store.ListActiveCalls(c.Request.Context())
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"calls": nonNil(calls)})
}

func (h *Handler) HandleDeleteCall(c *gin.Context) {
	ctx := c.Request.Context()
	callID := c.Param("id")

	if err := h.store.DeleteCall(ctx, callID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			apierrors.RespondWithError(c, apierrors.NotFound(apierrors.CodeCallNotFound, "Call not found"))
			return
		}
		apierrors.RespondWithError(c, err)
		return
	}

	h.logger.Info(observability.WithFields(ctx, observability.Field{Key: "call_sid", Value: callID}), "deleted call and related data")
	h.notifier.BroadcastCallList(ctx)

	c.JSON(http.StatusOK, gin.H{"ok": true, "deleted": callID})
}

type MuteRequest struct {
	Muted *bool `json:"muted" binding:"required"`
}

func (h *Handler) HandleMuteCall(c *gin.Context) {
	callID := c.Param("id")

	var req MuteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	if err := h.controller.SetMuted(c.Request.Context(), callID, *req.Muted); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "call_sid": callID, "muted": *req.Muted})
}

func (h *Handler) HandleDropCall(c *gin.Context) {
	callID := c.Param("id")

	if err := h.controller.DropCall(c.Request.Context(), callID); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "call_sid": callID})
}

// HandleViewerSocket upgrades to a viewer websocket. The viewer first
// receives a call_started event for each live call.
func (h *Handler) HandleViewerSocket(c *gin.Context) {
	ctx := c.Request.Context()

	active, err := h.store.ListActiveCalls(ctx)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error(ctx, "failed to upgrade dashboard websocket", err)
		return
	}

	viewer := newViewer(h.hub, conn, h.controller, h.logger)
	for _, call := range active {
		viewer.queue(reporting.EventCallStarted, map[string]any{
			"call_sid":  call.ID,
			"caller":    call.CallerNumber,
			"timestamp": call.StartTime,
		})
	}

	h.logger.Info(ctx, "dashboard viewer connected")
	viewer.Run(ctx)
	h.logger.Info(ctx, "dashboard viewer disconnected")
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
