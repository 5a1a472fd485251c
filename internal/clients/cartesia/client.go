// Package cartesia streams text-to-speech from Cartesia over a websocket,
// producing 8 kHz mu-law ready for the telephony relay.
package cartesia

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"karma-server/internal/ai"
	"karma-server/internal/observability"
	"karma-server/internal/voice/audio"
)

const (
	DefaultURL     = "wss://api.cartesia.ai/tts/websocket"
	DefaultModel   = "sonic-3"
	DefaultVoiceID = "3b554273-4299-48b9-9aaf-eefd438e3941"
	apiVersion     = "2025-04-16"
)

var ErrStreamClosed = errors.New("speech stream closed")

// Client opens synthesis streams.
type Client struct {
	apiKey  string
	voiceID string
	model   string
	baseURL string
	dialer  websocket.Dialer
	logger  *observability.Logger
}

type voice struct {
	Mode string `json:"mode"`
	ID   string `json:"id"`
}

type outputFormat struct {
	Container  string `json:"container"`
	Encoding   string `json:"encoding"`
	SampleRate int    `json:"sample_rate"`
}

type generationRequest struct {
	ModelID      string       `json:"model_id"`
	Transcript   string       `json:"transcript"`
	Voice        voice        `json:"voice"`
	Language     string       `json:"language"`
	ContextID    string       `json:"context_id"`
	OutputFormat outputFormat `json:"output_format"`
	Continue     bool         `json:"continue"`
}

type serverMessage struct {
	Type      string `json:"type"`
	ContextID string `json:"context_id"`
	Data      string `json:"data"`
	Done      bool   `json:"done"`
	Error     string `json:"error"`
}

func NewClient(apiKey, voiceID, model string, logger *observability.Logger) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("cartesia API key is required")
	}
	if voiceID == "" {
		voiceID = DefaultVoiceID
	}
	if model == "" {
		model = DefaultModel
	}
	return &Client{
		apiKey:  apiKey,
		voiceID: voiceID,
		model:   model,
		baseURL: DefaultURL,
		dialer:  websocket.Dialer{HandshakeTimeout: 10 * time.Second},
		logger:  logger,
	}, nil
}

// WithURL points the client at another endpoint.
func (c *Client) WithURL(baseURL string) *Client {
	c.baseURL = baseURL
	return c
}

// Open dials a websocket that lives for one response.
func (c *Client) Open(ctx context.Context, language string) (ai.SpeechStream, error) {
	return c.open(ctx, language)
}

func (c *Client) open(ctx context.Context, language string) (*Stream, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid cartesia url: %w", err)
	}
	q := u.Query()
	q.Set("api_key", c.apiKey)
	q.Set("cartesia_version", apiVersion)
	u.RawQuery = q.Encode()

	conn, resp, err := c.dialer.DialContext(ctx, u.String(), nil)
	if err != nil {
		if resp != nil {
			return nil, fmt.Errorf("cartesia dial failed (status %d): %w", resp.StatusCode, err)
		}
		return nil, fmt.Errorf("cartesia dial failed: %w", err)
	}

	return &Stream{
		conn:     conn,
		client:   c,
		language: ai.SpeechLanguage(language),
	}, nil
}

// Synthesize renders text in full. Used for prompts cached at startup.
func (c *Client) Synthesize(ctx context.Context, text, language string) ([]byte, error) {
	stream, err := c.open(ctx, language)
	if err != nil {
		return nil, err
	}
	defer stream.Close()

	var buf bytes.Buffer
	err = stream.Speak(ctx, text, func(chunk []byte) error {
		buf.Write(chunk)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Stream is one open synthesis connection. Speak calls are serialised.
type Stream struct {
	mu       sync.Mutex
	conn     *websocket.Conn
	client   *Client
	language string
	closed   bool
}

// Speak synthesizes text and hands each mu-law chunk to onChunk as it arrives.
// It returns when the server reports the context done.
func (s *Stream) Speak(ctx context.Context, text string, onChunk func([]byte) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrStreamClosed
	}

	// Unblock the read below if the caller gives up.
	stop := context.AfterFunc(ctx, func() {
		_ = s.conn.SetReadDeadline(time.Now())
	})
	defer stop()

	req := generationRequest{
		ModelID:    s.client.model,
		Transcript: text,
		Voice:      voice{Mode: "id", ID: s.client.voiceID},
		Language:   s.language,
		ContextID:  uuid.NewString(),
		OutputFormat: outputFormat{
			Container:  "raw",
			Encoding:   "pcm_mulaw",
			SampleRate: audio.TelephonyRate,
		},
	}
	if err := s.conn.WriteJSON(req); err != nil {
		return fmt.Errorf("failed to send generation request: %w", err)
	}

	for {
		var msg serverMessage
		if err := s.conn.ReadJSON(&msg); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("failed to read from cartesia: %w", err)
		}
		if msg.ContextID != "" && msg.ContextID != req.ContextID {
			continue
		}

		switch msg.Type {
		case "chunk":
			if msg.Data == "" {
				break
			}
			chunk, err := audio.Base64ToBytes(msg.Data)
			if err != nil {
				return fmt.Errorf("failed to decode audio chunk: %w", err)
			}
			if err := onChunk(chunk); err != nil {
				return err
			}
		case "error":
			return fmt.Errorf("cartesia error: %s", msg.Error)
		}

		if msg.Done || msg.Type == "done" {
			return nil
		}
	}
}

// Close is safe to call more than once.
func (s *Stream) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true

	_ = s.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(time.Second))
	return s.conn.Close()
}
