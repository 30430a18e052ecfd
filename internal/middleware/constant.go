package middleware

const (
	// HeaderSessionID lets API clients without cookies pick their session.
	HeaderSessionID = "X-Session-ID"
	HeaderRequestID = "X-Request-ID"
)
