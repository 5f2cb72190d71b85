package events

// Event types broadcast to connected clients
const (
	EventRoundStarted = "round-started"
	EventRoundSold    = "round-sold"
	EventRoundSkipped = "round-skipped"
	EventItemAssigned = "item-assigned"
	EventSessionEnded = "session-ended"
)

// Event is the wire envelope pushed to clients of a session
type Event struct {
	Type    string         `json:"type"`
	Payload map[string]any `json:"payload"`
}

// Publisher broadcasts state-change notifications to a session's connected
// clients. Delivery is fire-and-forget, at most once; the game core never
// depends on an event having arrived.
type Publisher interface {
	Publish(sessionCode, eventType string, payload map[string]any)
}

// NopPublisher discards all events. Used in tests and offline tooling.
type NopPublisher struct{}

// Publish does nothing
func (NopPublisher) Publish(sessionCode, eventType string, payload map[string]any) {}
