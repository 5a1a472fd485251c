package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"karma-server/internal/dashboard"
	voiceCallHandler "karma-server/internal/voicecall/handler"
)

const healthCheckTimeout = 2 * time.Second

// ConversationCounter reports how many calls hold conversation state.
type ConversationCounter interface {
	Active() int
}

// HealthChecker reports whether a downstream service is reachable.
type HealthChecker interface {
	Healthy(ctx context.Context) bool
}

type API struct {
	router           *gin.RouterGroup
	voiceCallHandler voiceCallHandler.Handler
	dashboardHandler dashboard.Handler
	conversations    ConversationCounter
	classifier       HealthChecker
}

func New(router *gin.RouterGroup, voiceCallHandler voiceCallHandler.Handler, dashboardHandler dashboard.Handler, conversations ConversationCounter, classifier HealthChecker) API {
	return API{
		router:           router,
		voiceCallHandler: voiceCallHandler,
		dashboardHandler: dashboardHandler,
		conversations:    conversations,
		classifier:       classifier,
	}
}

func (a *API) RegisterRoutes() {
	a.Health()

	// Twilio webhooks
	webhookGroup := a.router.Group("", a.voiceCallHandler.ValidateSignature)
	{
		webhookGroup.POST("/voice", a.voiceCallHandler.HandleVoice)
		webhookGroup.POST("/call-status", a.voiceCallHandler.HandleCallStatus)
	}
	a.router.GET("/media-stream", a.voiceCallHandler.HandleMediaStream)

	// Operator dashboard
	apiGroup := a.router.Group("/api")
	a.dashboardHandler.RegisterRoutes(apiGroup)
}

func (a *API) Health() {
	a.router.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
		defer cancel()

		classifierStatus := "unavailable"
		if a.classifier.Healthy(ctx) {
			classifierStatus = "available"
		}

		c.JSON(http.StatusOK, gin.H{
			"status":               "ok",
			"service":              "karma-server",
			"active_conversations": a.conversations.Active(),
			"voice_classifier":     classifierStatus,
		})
	})
}
