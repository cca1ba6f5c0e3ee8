package ws

import (
	"encoding/json"
	"fmt"

	"github.com/plasmadinah/cms-backend/internal/service"
)

// MessageContext provides all dependencies needed for message processing
type MessageContext struct {
	ConnID   string
	Hub      *Hub
	Comments *service.CommentService
}

// Message interface for all WebSocket message types
type Message interface {
	GetType() string
	Process(ctx *MessageContext) error
}

// SerializedMessage is the wire envelope in both directions: a type tag and a
// raw payload decoded by the registered constructor for that tag.
type SerializedMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// ErrorResponse is sent when message processing fails
type ErrorResponse struct {
	Type    string `json:"type"`
	Error   string `json:"error"`
	Code    string `json:"code"`
	Details string `json:"details,omitempty"`
}

// Encode wraps a message in the wire envelope.
func Encode(msg Message) ([]byte, error) {
	payload, err := json.Marshal(msg)
	if err != nil {
		return nil, err
	}
	return json.Marshal(SerializedMessage{Type: msg.GetType(), Payload: payload})
}

// Decode parses the envelope and builds the registered message type.
func Decode(data []byte) (Message, error) {
	var envelope SerializedMessage
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, err
	}

	newMsg, ok := registry[envelope.Type]
	if !ok {
		return nil, fmt.Errorf("unknown message type %q", envelope.Type)
	}
	msg := newMsg()
	if len(envelope.Payload) > 0 {
		if err := json.Unmarshal(envelope.Payload, msg); err != nil {
			return nil, err
		}
	}
	return msg, nil
}

// SendError queues an error response to the submitting connection only.
// It goes through the connection's send queue so it never races the writer.
func SendError(ctx *MessageContext, code, message, details string) error {
	data, err := json.Marshal(ErrorResponse{
		Type:    "error",
		Error:   message,
		Code:    code,
		Details: details,
	})
	if err != nil {
		return err
	}
	ctx.Hub.SendTo(ctx.ConnID, data)
	return nil
}
