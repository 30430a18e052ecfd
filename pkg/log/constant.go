package log

const (
	ModeProduction  = "production"
	ModeDevelopment = "development"

	EncodingConsole = "console"
	EncodingJSON    = "json"

	// RequestIDField is the structured field carrying the request ID.
	RequestIDField = "request_id"
)
