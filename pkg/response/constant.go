package response

const (
	DateFormat     = "2006-01-02"
	DateTimeFormat = "2006-01-02T15:04:05Z07:00"

	MessageSuccess       = "Success"
	MessageBadRequest    = "Bad request"
	MessageNotFound      = "Not found"
	MessageInternalError = "Something went wrong"
)
