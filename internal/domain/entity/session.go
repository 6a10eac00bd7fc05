// Package entity contains the core business objects of the project.
package entity

// Session is the client-wide snapshot of who is signed in, with what token,
// and what their cart currently mirrors. Token and User are paired: either
// both are set or both are empty, never one without the other.
type Session struct {
	User      *User      // The signed-in account, nil when anonymous.
	Token     string     // The opaque bearer token, empty when anonymous.
	Loading   bool       // Whether an operation is currently in flight.
	LastError string     // Message of the most recent failed operation.
	Cart      []CartLine // Mirror of the server-side cart.
	Addresses []Address  // Last fetched address book.
}

// Authenticated reports whether the session carries a signed-in account.
func (s Session) Authenticated() bool {
	return s.User != nil && s.Token != ""
}

// Stack returns the navigation branch for this session.
func (s Session) Stack() Stack {
	return StackFor(s.User)
}
