package impl

import "medimart/internal/domain/service"

// sessionToken returns the current bearer token, or false when the session
// is anonymous. Authenticated operations call this before doing anything
// else, so an anonymous call never reaches the network.
func sessionToken(store service.SessionStore) (string, bool) {
	snapshot := store.Snapshot()
	if !snapshot.Authenticated() {
		return "", false
	}

	return snapshot.Token, true
}
