// Package service defines contracts for capabilities the use cases depend on
// but the domain does not implement itself.
package service

import "medimart/internal/domain/entity"

// Unsubscribe detaches a listener registered with SessionStore.Subscribe.
type Unsubscribe func()

// SessionStore is the single shared mutable resource of the client: the
// session/cart snapshot plus a notification mechanism for whoever renders
// it. Consumers receive the store by injection and read it through
// Snapshot; all writes go through the use case services.
type SessionStore interface {
	// Snapshot returns a copy of the current session state.
	Snapshot() entity.Session

	// SetCredentials adopts a signed-in user and token as a pair.
	// Ignored unless both are present; credentials never arrive halfway.
	SetCredentials(user *entity.User, token string)

	// SetUser replaces the user snapshot while keeping the current token.
	// Used after a profile refetch; ignored when the session is anonymous.
	SetUser(user *entity.User)

	// SetCart replaces the cart mirror wholesale.
	SetCart(lines []entity.CartLine)

	// SetAddresses replaces the address book snapshot wholesale.
	SetAddresses(addresses []entity.Address)

	// SetLoading flips the coarse in-flight flag.
	SetLoading(loading bool)

	// SetLastError records the message of the most recent failure,
	// or clears it when passed the empty string.
	SetLastError(message string)

	// Clear resets the session to the anonymous state: no user, no token,
	// empty cart, empty address book.
	Clear()

	// Subscribe registers a listener invoked with a snapshot after every
	// mutation. The returned function removes the listener.
	Subscribe(listener func(entity.Session)) Unsubscribe
}
