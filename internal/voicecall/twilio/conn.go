// Package twilio speaks the Twilio Media Streams websocket protocol.
package twilio

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"karma-server/internal/observability"
	"karma-server/internal/voice/audio"

	"github.com/gorilla/websocket"
)

// DefaultEventBuffer bounds how many inbound events wait for the session loop.
const DefaultEventBuffer = 256

var ErrNoStream = errors.New("stream has not started")

// Socket is the subset of *websocket.Conn the relay uses.
type Socket interface {
	ReadMessage() (int, []byte, error)
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// Conn is one Media Streams connection. Writes are serialized; reads happen
// on a single goroutine started by Events.
type Conn struct {
	ws     Socket
	logger *observability.Logger

	writeMu   sync.Mutex
	streamSid string

	bufferSize int
	once       sync.Once
	events     chan Event
}

// NewConn wraps an upgraded websocket.
func NewConn(ws Socket, logger *observability.Logger) *Conn {
	return &Conn{
		ws:         ws,
		logger:     logger,
		bufferSize: DefaultEventBuffer,
	}
}

// Events starts the reader and returns its channel. The channel is closed when
// the socket fails, a stop event is read, or ctx ends. Media frames are dropped
// when the channel is full so the socket is always drained.
func (c *Conn) Events(ctx context.Context) <-chan Event {
	c.once.Do(func() {
		c.events = make(chan Event, c.bufferSize)
		go c.readLoop(ctx)
	})
	return c.events
}

func (c *Conn) readLoop(ctx context.Context) {
	defer close(c.events)

	dropped := 0
	for {
		_, raw, err := c.ws.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) || ctx.Err() != nil {
				c.logger.Info(ctx, "media stream closed")
			} else {
				c.logger.Error(ctx, "media stream read failed", err)
			}
			return
		}

		event, err := ParseEvent(raw)
		if err != nil {
			c.logger.Warn(ctx, fmt.Sprintf("skipping malformed media stream message: %v", err))
			continue
		}

		if start, ok := event.(StartEvent); ok {
			c.setStreamSid(start.StreamID)
		}

		if _, ok := event.(MediaEvent); ok {
			select {
			case c.events <- event:
			case <-ctx.Done():
				return
			default:
				dropped++
				if dropped%50 == 1 {
					c.logger.Warn(ctx, fmt.Sprintf("inbound media buffer full, dropped %d frames", dropped))
				}
			}
			continue
		}

		select {
		case c.events <- event:
		case <-ctx.Done():
			return
		}

		if _, ok := event.(StopEvent); ok {
			return
		}
	}
}

func (c *Conn) setStreamSid(sid string) {
	c.writeMu.Lock()
	c.streamSid = sid
	c.writeMu.Unlock()
}

// StreamSid returns the stream id announced in the start event.
func (c *Conn) StreamSid() string {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.streamSid
}

type outboundMedia struct {
	Event     string `json:"event"`
	StreamSid string `json:"streamSid"`
	Media     struct {
		Payload string `json:"payload"`
	} `json:"media"`
}

type outboundMark struct {
	Event     string `json:"event"`
	StreamSid string `json:"streamSid"`
	Mark      struct {
		Name string `json:"name"`
	} `json:"mark"`
}

type outboundClear struct {
	Event     string `json:"event"`
	StreamSid string `json:"streamSid"`
}

// SendMedia queues mu-law audio for playback to the caller.
func (c *Conn) SendMedia(payload []byte) error {
	msg := outboundMedia{Event: "media"}
	msg.Media.Payload = audio.BytesToBase64(payload)
	return c.write(func(sid string) any { msg.StreamSid = sid; return msg })
}

// SendMark asks Twilio to echo name back once queued audio has played.
func (c *Conn) SendMark(name string) error {
	msg := outboundMark{Event: "mark"}
	msg.Mark.Name = name
	return c.write(func(sid string) any { msg.StreamSid = sid; return msg })
}

// SendClear drops any audio Twilio has buffered for playback.
func (c *Conn) SendClear() error {
	msg := outboundClear{Event: "clear"}
	return c.write(func(sid string) any { msg.StreamSid = sid; return msg })
}

func (c *Conn) write(build func(streamSid string) any) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	if c.streamSid == "" {
		return ErrNoStream
	}
	data, err := json.Marshal(build(c.streamSid))
	if err != nil {
		return fmt.Errorf("failed to marshal outbound message: %w", err)
	}
	if err := c.ws.WriteMessage(websocket.TextMessage, data); err != nil {
		return fmt.Errorf("failed to write to media stream: %w", err)
	}
	return nil
}

// Close sends a normal close frame and closes the socket.
func (c *Conn) Close() error {
	c.writeMu.Lock()
	_ = c.ws.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	c.writeMu.Unlock()
	return c.ws.Close()
}
