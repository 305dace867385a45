package websocket

import (
	"github.com/ottodot/mathpal-backend/internal/model"
)

// ─── Events (Server → Client) ───────────────────────────────────────

type Event string

const (
	EventError          Event = "error"
	EventSessionCreated Event = "session_created"
	EventPong           Event = "pong"
)

// SessionCreatedEvent announces a newly generated problem session.
type SessionCreatedEvent struct {
	Event   Event                `json:"event"`
	Session model.ProblemSession `json:"session"`
}

type ErrorResponse struct {
	Event Event  `json:"event"`
	Error string `json:"error"`
}

type PongResponse struct {
	Event Event `json:"event"`
}

// ─── Actions (Client → Server) ──────────────────────────────────────

type Action string

const (
	ActionPing Action = "ping"
)

// RequestEnvelope is used to peek at the action before full parsing.
type RequestEnvelope struct {
	Action Action `json:"action"`
}
