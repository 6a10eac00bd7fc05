// Package usecase contains the application-specific business rules.
// It is the operation surface of the session/cart state container: every
// screen-level action maps to exactly one method here.
package usecase

// Result is the uniform outcome of a mutating operation. Failures of any
// kind (transport, HTTP status, malformed body) are normalized into it;
// callers never see an error value, let alone a panic.
type Result struct {
	Success bool
	Message string
}

// OK builds a successful Result.
func OK(message string) Result {
	return Result{Success: true, Message: message}
}

// Fail builds a failed Result.
func Fail(message string) Result {
	return Result{Success: false, Message: message}
}

// Canonical customer-facing messages.
const (
	// MsgPleaseLogIn is returned by authenticated operations invoked
	// without a session.
	MsgPleaseLogIn = "Please log in"

	// MsgOrderCancelled acknowledges a successful cancellation.
	MsgOrderCancelled = "Order cancelled successfully."

	// MsgProfileNonJSON is returned when the profile endpoint answers an
	// update with something that is not JSON (typically an HTML error page).
	MsgProfileNonJSON = "Failed to update profile. Server returned a non-JSON response."

	// MsgRegistered instructs the customer to verify their email; the
	// account is not signed in by registration.
	MsgRegistered = "Registration successful! Please check your email to verify your account."

	// MsgPasswordChanged doubles as the explanation for the forced logout
	// that follows every successful password change.
	MsgPasswordChanged = "Password updated successfully. Please log in again."
)
