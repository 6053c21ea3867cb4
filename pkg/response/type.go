package response

// Resp is the standard JSON response body.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

const (
	// MessageSuccess is the message attached to every successful response.
	MessageSuccess = "Success"

	// DefaultErrorMessage hides internal details from API consumers.
	DefaultErrorMessage = "Something went wrong"

	// InternalServerErrorCode is the error code for unclassified failures.
	InternalServerErrorCode = 500
)
