package entity

// Event types pushed to subscribers.
const (
	EventPaired    = "match:paired"
	EventUpdated   = "match:updated"
	EventCompleted = "match:completed"
)

type Event struct {
	Type  string `json:"type"`
	Match *Match `json:"match"`
}
