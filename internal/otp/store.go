// Package otp keeps pending one-time codes between the send and verify steps.
package otp

import (
	"sync"
	"time"
)

// PendingChallengeStore maps an email to its pending code. Put overwrites any
// prior code for the same email; Get must not return expired entries.
type PendingChallengeStore interface {
	Put(email, code string, ttl time.Duration)
	Get(email string) (string, bool)
	Delete(email string)
}

type entry struct {
	code      string
	expiresAt time.Time
}

// MemoryStore is the volatile single-process implementation. The mutex makes
// concurrent send/verify for the same email last-write-wins instead of racy.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]entry
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

func (s *MemoryStore) Put(email, code string, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[email] = entry{
		code:      code,
		expiresAt: s.now().Add(ttl),
	}
}

func (s *MemoryStore) Get(email string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[email]
	if !ok {
		return "", false
	}
	if s.now().After(e.expiresAt) {
		delete(s.entries, email)
		return "", false
	}

	return e.code, true
}

func (s *MemoryStore) Delete(email string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, email)
}
