package handler

import (
	"github.com/gin-gonic/gin"

	"karma-server/internal/apierrors"
)

const signatureHeader = "X-Twilio-Signature"

// ValidateSignature rejects webhook requests whose X-Twilio-Signature does
// not match. It is a no-op when no checker is configured.
func (h *Handler) ValidateSignature(c *gin.Context) {
	if h.signatures == nil {
		c.Next()
		return
	}

	ctx := c.Request.Context()
	if err := c.Request.ParseForm(); err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid form body"))
		return
	}

	params := make(map[string]string, len(c.Request.PostForm))
	for key, values := range c.Request.PostForm {
		if len(values) > 0 {
			params[key] = values[0]
		}
	}

	url := "https://" + h.host(c) + c.Request.URL.RequestURI()
	if !h.signatures.Valid(url, params, c.GetHeader(signatureHeader)) {
		h.logger.Warn(ctx, "rejected webhook with invalid signature")
		apierrors.RespondWithError(c, apierrors.Forbidden("Invalid request signature"))
		return
	}

	c.Next()
}
