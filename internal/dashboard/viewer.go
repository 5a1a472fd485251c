package dashboard

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"

	"karma-server/internal/observability"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
	sendBuffer     = 256
)

// Viewer messages
const (
	MessageMuteAI   = "mute_ai"
	MessageDropCall = "drop_call"
)

// controlMessage is the payload of mute_ai and drop_call.
type controlMessage struct {
	CallSid string `json:"call_sid"`
	Muted   bool   `json:"muted"`
}

// Viewer is one connected dashboard websocket.
type Viewer struct {
	hub        *Hub
	conn       *websocket.Conn
	send       chan []byte
	controller Controller
	logger     *observability.Logger
}

func newViewer(hub *Hub, conn *websocket.Conn, controller Controller, logger *observability.Logger) *Viewer {
	return &Viewer{
		hub:        hub,
		conn:       conn,
		send:       make(chan []byte, sendBuffer),
		controller: controller,
		logger:     logger,
	}
}

// queue adds an event for this viewer only. It must be called before Run.
func (v *Viewer) queue(eventType string, data any) {
	msg, err := encodeEvent(eventType, data)
	if err != nil {
		return
	}
	select {
	case v.send <- msg:
	default:
	}
}

// Run registers the viewer and pumps messages until the connection closes.
func (v *Viewer) Run(ctx context.Context) {
	if !v.hub.add(ctx, v) {
		v.conn.Close()
		return
	}
	go v.writePump()
	v.readPump(ctx)
}

func (v *Viewer) readPump(ctx context.Context) {
	defer func() {
		v.hub.remove(v)
		v.conn.Close()
	}()

	v.conn.SetReadLimit(maxMessageSize)
	v.conn.SetReadDeadline(time.Now().Add(pongWait))
	v.conn.SetPongHandler(func(string) error {
		v.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := v.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				v.logger.Error(ctx, "dashboard viewer read failed", err)
			}
			return
		}
		v.handle(ctx, raw)
	}
}

func (v *Viewer) handle(ctx context.Context, raw []byte) {
	var ev Event
	if err := json.Unmarshal(raw, &ev); err != nil {
		v.logger.Warn(ctx, "ignoring malformed dashboard message")
		return
	}

	var msg controlMessage
	if len(ev.Data) > 0 {
		if err := json.Unmarshal(ev.Data, &msg); err != nil {
			v.logger.Warn(ctx, "ignoring malformed dashboard control payload")
			return
		}
	}
	if msg.CallSid == "" {
		return
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "call_sid", Value: msg.CallSid})

	var err error
	switch ev.Type {
	case MessageMuteAI:
		err = v.controller.SetMuted(ctx, msg.CallSid, msg.Muted)
	case MessageDropCall:
		v.logger.Info(ctx, "dashboard dropping call")
		err = v.controller.DropCall(ctx, msg.CallSid)
	default:
		v.logger.Warn(ctx, "ignoring unknown dashboard message "+ev.Type)
		return
	}
	if err != nil {
		v.logger.Error(ctx, "dashboard control failed", err)
	}
}

// writePump is the only writer on the connection.
func (v *Viewer) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		v.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-v.send:
			v.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				v.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := v.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}

		case <-ticker.C:
			v.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := v.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
