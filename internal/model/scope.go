package model

// Scope identifies the dashboard session a request acts on.
type Scope struct {
	SessionID string `json:"session_id"`
}
