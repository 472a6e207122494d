package ws

import "encoding/json"

// MessageType discriminates the WebSocket messages the server handles.
type MessageType string

const (
	MessageTypeMove      MessageType = "move"
	MessageTypeGameState MessageType = "gameState"
	MessageTypeError     MessageType = "error"
)

// Message is the envelope for every WebSocket frame.
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// MovePayload carries one coordinate move, e.g. {"move": "e2e4"}.
type MovePayload struct {
	Move string `json:"move"`
}

// ErrorPayload reports a rejected request back to the client.
type ErrorPayload struct {
	Error string `json:"error"`
}
