package response

const (
	MessageSuccess          = "Success"
	DefaultErrorMessage     = "Something went wrong"
	InternalServerErrorCode = 500
	TooManyRequestsCode     = 429

	DateFormat     = "2006-01-02"
	DateTimeFormat = "2006-01-02 15:04:05"
)
