package app

import (
	"sync"
	"time"
)

// revocations remembers signed-out session tokens until they expire.
type revocations struct {
	mu     sync.Mutex
	tokens map[string]time.Time
	now    func() time.Time
}

func newRevocations() *revocations {
	return &revocations{tokens: make(map[string]time.Time), now: time.Now}
}

// revoke rejects token until expiresAt. A zero expiresAt never lapses.
func (r *revocations) revoke(token string, expiresAt time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.now()
	for t, exp := range r.tokens {
		if expired(exp, now) {
			delete(r.tokens, t)
		}
	}
	r.tokens[token] = expiresAt
}

func (r *revocations) revoked(token string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	exp, ok := r.tokens[token]
	if !ok {
		return false
	}
	if expired(exp, r.now()) {
		delete(r.tokens, token)
		return false
	}
	return true
}

func (r *revocations) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.tokens)
}

func expired(exp, now time.Time) bool {
	return !exp.IsZero() && now.After(exp)
}
