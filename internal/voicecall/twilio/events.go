package twilio

import (
	"encoding/json"
	"fmt"

	"karma-server/internal/voice/audio"
)

// Event is one inbound Media Streams message, decoded into a concrete type.
type Event interface {
	EventName() string
}

// ConnectedEvent is the first message on a new stream.
type ConnectedEvent struct {
	Protocol string
}

// StartEvent carries the stream metadata and the <Parameter> values set in TwiML.
type StartEvent struct {
	CallID       string
	StreamID     string
	CustomParams map[string]string
}

// MediaEvent carries one frame of inbound mu-law audio.
type MediaEvent struct {
	Track   string
	Payload []byte
}

// MarkEvent acknowledges playback of a mark we sent earlier.
type MarkEvent struct {
	Name string
}

// StopEvent signals the stream has ended.
type StopEvent struct {
	CallID string
}

// UnknownEvent is returned for event names this package does not model.
type UnknownEvent struct {
	Name string
}

func (ConnectedEvent) EventName() string { return "connected" }
func (StartEvent) EventName() string     { return "start" }
func (MediaEvent) EventName() string     { return "media" }
func (MarkEvent) EventName() string      { return "mark" }
func (StopEvent) EventName() string      { return "stop" }
func (e UnknownEvent) EventName() string { return e.Name }

type inboundMessage struct {
	Event     string `json:"event"`
	StreamSid string `json:"streamSid"`
	Protocol  string `json:"protocol"`
	Start     *struct {
		StreamSid        string            `json:"streamSid"`
		CallSid          string            `json:"callSid"`
		CustomParameters map[string]string `json:"customParameters"`
	} `json:"start"`
	Media *struct {
		Track   string `json:"track"`
		Payload string `json:"payload"`
	} `json:"media"`
	Mark *struct {
		Name string `json:"name"`
	} `json:"mark"`
	Stop *struct {
		CallSid string `json:"callSid"`
	} `json:"stop"`
}

// ParseEvent decodes a raw websocket text message.
func ParseEvent(raw []byte) (Event, error) {
	var msg inboundMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		return nil, fmt.Errorf("failed to parse media stream message: %w", err)
	}

	switch msg.Event {
	case "connected":
		return ConnectedEvent{Protocol: msg.Protocol}, nil
	case "start":
		if msg.Start == nil {
			return nil, fmt.Errorf("start event without start block")
		}
		streamID := msg.Start.StreamSid
		if streamID == "" {
			streamID = msg.StreamSid
		}
		params := msg.Start.CustomParameters
		if params == nil {
			params = map[string]string{}
		}
		return StartEvent{CallID: msg.Start.CallSid, StreamID: streamID, CustomParams: params}, nil
	case "media":
		if msg.Media == nil {
			return nil, fmt.Errorf("media event without media block")
		}
		payload, err := audio.Base64ToBytes(msg.Media.Payload)
		if err != nil {
			return nil, fmt.Errorf("failed to decode media payload: %w", err)
		}
		return MediaEvent{Track: msg.Media.Track, Payload: payload}, nil
	case "mark":
		var name string
		if msg.Mark != nil {
			name = msg.Mark.Name
		}
		return MarkEvent{Name: name}, nil
	case "stop":
		var callID string
		if msg.Stop != nil {
			callID = msg.Stop.CallSid
		}
		return StopEvent{CallID: callID}, nil
	default:
		return UnknownEvent{Name: msg.Event}, nil
	}
}
