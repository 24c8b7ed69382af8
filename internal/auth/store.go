package auth

import "sync"

// CredentialStore holds the session's current credential behind a lock.
// Credentials are swapped as whole values, never mutated in place, so readers
// never observe a torn token.
type CredentialStore struct {
	mu         sync.RWMutex
	credential *Credential
}

// NewCredentialStore creates an empty store.
func NewCredentialStore() *CredentialStore {
	return &CredentialStore{}
}

// Get returns the current credential, nil when none is set.
func (s *CredentialStore) Get() *Credential {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.credential
}

// Set replaces the current credential.
func (s *CredentialStore) Set(credential *Credential) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.credential = credential
}

// Clear removes the current credential.
func (s *CredentialStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.credential = nil
}
