package errors

import "medimart/internal/errors"

// ServerError carries a message the remote API returned alongside a non-2xx
// status. The message is surfaced to the customer verbatim, so transports
// must only construct it from a successfully decoded JSON error body.
type ServerError struct {
	StatusCode int
	ServerMsg  string
}

// Error implements the error interface.
func (e *ServerError) Error() string {
	return e.ServerMsg
}

// NewServerError builds a ServerError for the given status and message.
func NewServerError(statusCode int, message string) *ServerError {
	return &ServerError{StatusCode: statusCode, ServerMsg: message}
}

// MessageOf extracts the customer-facing message from an error chain:
// the server's own message when present, an AppError message otherwise,
// and the fallback for anything unrecognized (transport failures, bugs).
func MessageOf(err error, fallback string) string {
	if err == nil {
		return ""
	}

	var serverErr *ServerError
	if errors.As(err, &serverErr) && serverErr.ServerMsg != "" {
		return serverErr.ServerMsg
	}

	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr.Message()
	}

	return fallback
}
