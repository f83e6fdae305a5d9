package models

// Response is the success envelope of every JSON endpoint.
type Response struct {
	// Message is a human-readable description of the outcome.
	Message string `json:"message"`

	// Data carries the payload; omitted when the endpoint returns none.
	Data any `json:"data,omitempty"`
}

// ErrorResponse is the error envelope written by the HTTP layer.
//
// Status is "fail" for client errors (4xx) and "error" for server errors (5xx).
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Error status values of [ErrorResponse].
const (
	StatusFail  = "fail"
	StatusError = "error"
)
