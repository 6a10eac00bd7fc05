// Package state holds the in-memory session/cart store shared across the
// client. It is the only mutable state the module owns; everything else is
// refetched from the server.
package state

import (
	"sync"

	"medimart/internal/domain/entity"
	"medimart/internal/domain/service"
)

// Store implements service.SessionStore with an RWMutex-guarded snapshot and
// an observer list. Overlapping operations are not serialized beyond memory
// safety: the last write wins, matching the re-fetch-after-mutate strategy
// where the server copy is authoritative anyway.
type Store struct {
	mu        sync.RWMutex
	session   entity.Session
	listeners map[int]func(entity.Session)
	nextID    int
}

// NewStore creates an empty, anonymous session store.
func NewStore() service.SessionStore {
	return &Store{
		listeners: make(map[int]func(entity.Session)),
	}
}

// Snapshot returns a copy of the current session state. Slices are cloned so
// a consumer can never mutate the shared snapshot through a read.
func (s *Store) Snapshot() entity.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneSession(s.session)
}

// SetCredentials adopts a signed-in user and token as a pair. Adoption is
// all-or-nothing: a nil user or empty token is ignored so a partial result
// can never break the user/token pairing invariant.
func (s *Store) SetCredentials(user *entity.User, token string) {
	if user == nil || token == "" {
		return
	}
	s.mutate(func(session *entity.Session) {
		session.User = cloneUser(user)
		session.Token = token
	})
}

// SetUser replaces the user snapshot while keeping the current token.
// A nil user or an anonymous session leaves the state untouched, preserving
// the user/token pairing invariant.
func (s *Store) SetUser(user *entity.User) {
	if user == nil {
		return
	}
	s.mutate(func(session *entity.Session) {
		if session.Token == "" {
			return
		}
		session.User = cloneUser(user)
	})
}

// SetCart replaces the cart mirror wholesale.
func (s *Store) SetCart(lines []entity.CartLine) {
	s.mutate(func(session *entity.Session) {
		session.Cart = append([]entity.CartLine(nil), lines...)
	})
}

// SetAddresses replaces the address book snapshot wholesale.
func (s *Store) SetAddresses(addresses []entity.Address) {
	s.mutate(func(session *entity.Session) {
		session.Addresses = append([]entity.Address(nil), addresses...)
	})
}

// SetLoading flips the coarse in-flight flag.
func (s *Store) SetLoading(loading bool) {
	s.mutate(func(session *entity.Session) {
		session.Loading = loading
	})
}

// SetLastError records the most recent failure message.
func (s *Store) SetLastError(message string) {
	s.mutate(func(session *entity.Session) {
		session.LastError = message
	})
}

// Clear resets the session to the anonymous state.
func (s *Store) Clear() {
	s.mutate(func(session *entity.Session) {
		*session = entity.Session{}
	})
}

// Subscribe registers a listener invoked with a snapshot after every
// mutation. The returned function removes the listener.
func (s *Store) Subscribe(listener func(entity.Session)) service.Unsubscribe {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = listener
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

// mutate applies fn under the write lock, then notifies listeners outside it
// so a listener reading the store cannot deadlock.
func (s *Store) mutate(fn func(*entity.Session)) {
	s.mu.Lock()
	fn(&s.session)
	snapshot := cloneSession(s.session)
	listeners := make([]func(entity.Session), 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.mu.Unlock()

	for _, l := range listeners {
		l(snapshot)
	}
}

func cloneSession(session entity.Session) entity.Session {
	cloned := session
	cloned.User = cloneUser(session.User)
	cloned.Cart = append([]entity.CartLine(nil), session.Cart...)
	cloned.Addresses = append([]entity.Address(nil), session.Addresses...)

	return cloned
}

func cloneUser(user *entity.User) *entity.User {
	if user == nil {
		return nil
	}

	cloned := *user
	cloned.Profile.Addresses = append([]entity.Address(nil), user.Profile.Addresses...)

	return &cloned
}
