// Package classifier talks to the voice classification service that tells
// synthetic callers from human ones.
package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"karma-server/internal/ai"
	"karma-server/internal/observability"
)

// Client calls POST {baseURL}/predict with a WAV file.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *observability.Logger
}

type predictResponse struct {
	Prediction    string             `json:"prediction"`
	Confidence    float64            `json:"confidence"`
	Probabilities map[string]float64 `json:"probabilities"`
}

func NewClient(baseURL string, logger *observability.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		logger:     logger,
	}
}

// Classify never fails. Transport errors, bad statuses and timeouts all yield a human verdict.
func (c *Client) Classify(ctx context.Context, wav []byte, timeout time.Duration) ai.Classification {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	result, err := c.predict(ctx, wav)
	if err != nil {
		c.logger.Warn(ctx, fmt.Sprintf("voice classification failed, assuming human: %v", err))
		return ai.HumanFallback()
	}
	return result
}

// Predict is Classify without the fallback, for operator tooling.
func (c *Client) Predict(ctx context.Context, wav []byte) (ai.Classification, error) {
	return c.predict(ctx, wav)
}

func (c *Client) predict(ctx context.Context, wav []byte) (ai.Classification, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="audio.wav"`)
	header.Set("Content-Type", "audio/wav")
	part, err := writer.CreatePart(header)
	if err != nil {
		return ai.Classification{}, err
	}
	if _, err := part.Write(wav); err != nil {
		return ai.Classification{}, err
	}
	if err := writer.Close(); err != nil {
		return ai.Classification{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict", &body)
	if err != nil {
		return ai.Classification{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ai.Classification{}, fmt.Errorf("classifier request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return ai.Classification{}, fmt.Errorf("classifier returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	var out predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return ai.Classification{}, fmt.Errorf("failed to decode classifier response: %w", err)
	}

	return ai.Classification{
		Label:         ai.ParseLabel(out.Prediction),
		Confidence:    out.Confidence,
		Probabilities: out.Probabilities,
	}, nil
}

// Healthy reports whether GET {baseURL}/health answers 200.
func (c *Client) Healthy(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return false
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}
