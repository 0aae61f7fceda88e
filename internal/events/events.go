// Package events publishes chat activity to NATS JetStream for downstream
// analytics. Publishing is best-effort: a missing or unhealthy broker never
// affects a chat turn.
package events

import "time"

// Stream and subject names.
const (
	StreamEvents = "KISANCONNECT_EVENTS"

	SubjectTurnEvent    = "kisanconnect.events.turn"
	SubjectDiseaseEvent = "kisanconnect.events.disease"
)

// TurnEvent is published after each completed chat turn.
type TurnEvent struct {
	SessionID  string    `json:"session_id"`
	Intent     string    `json:"intent"`
	Language   string    `json:"language"`
	Confidence float64   `json:"confidence"`
	Guardrail  bool      `json:"guardrail"`
	Timestamp  time.Time `json:"timestamp"`
}

// DiseaseEvent is published after a disease model result is interpreted.
type DiseaseEvent struct {
	SessionID  string    `json:"session_id"`
	Label      string    `json:"label"`
	Confidence float64   `json:"confidence"`
	NeededSlot string    `json:"needed_slot,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}
