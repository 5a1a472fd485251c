package sarvam

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

	"karma-server/internal/observability"
)

const (
	DefaultURL   = "https://api.sarvam.ai/speech-to-text"
	DefaultModel = "saaras:v3"
)

// Client transcribes speech with the Sarvam speech-to-text API.
type Client struct {
	apiKey     string
	url        string
	model      string
	httpClient *http.Client
	logger     *observability.Logger
}

type transcriptResponse struct {
	Transcript   string `json:"transcript"`
	LanguageCode string `json:"language_code"`
}

func NewClient(apiKey, url, model string, logger *observability.Logger) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("sarvam API key is required")
	}
	if url == "" {
		url = DefaultURL
	}
	if model == "" {
		model = DefaultModel
	}
	return &Client{
		apiKey:     apiKey,
		url:        url,
		model:      model,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logger,
	}, nil
}

// Transcribe sends a WAV utterance and returns the recognised text.
func (c *Client) Transcribe(ctx context.Context, wav []byte, language string) (string, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="audio.wav"`)
	header.Set("Content-Type", "audio/wav")
	part, err := writer.CreatePart(header)
	if err != nil {
		return "", fmt.Errorf("failed to create file part: %w", err)
	}
	if _, err := part.Write(wav); err != nil {
		return "", fmt.Errorf("failed to write audio: %w", err)
	}
	if err := writer.WriteField("model", c.model); err != nil {
		return "", err
	}
	if err := writer.WriteField("language_code", language); err != nil {
		return "", err
	}
	if err := writer.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, &body)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("api-subscription-key", c.apiKey)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("sarvam request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("sarvam returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	var out transcriptResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("failed to decode sarvam response: %w", err)
	}

	c.logger.Metrics(ctx,
		observability.MetricField{Key: "stt_provider", Value: "sarvam"},
		observability.MetricField{Key: "stt_latency_ms", Value: time.Since(start).Milliseconds()},
	)
	return out.Transcript, nil
}
