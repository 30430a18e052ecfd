package kafka

import "time"

// FetchSettledMessage - Kafka message for dashboard.fetch.settled
type FetchSettledMessage struct {
	SessionID  string    `json:"session_id"`
	Operation  string    `json:"operation"`
	Token      uint64    `json:"token"`
	Outcome    string    `json:"outcome"`
	DurationMs int64     `json:"duration_ms"`
	Error      string    `json:"error,omitempty"`
	SettledAt  time.Time `json:"settled_at"`
}
