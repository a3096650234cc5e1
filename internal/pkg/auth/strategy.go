package auth

import "time"

// Session describes an authenticated staff member.
type Session struct {
	StaffID   int64
	ExpiresAt time.Time
}

// Strategy issues and verifies staff session tokens.
type Strategy interface {
	IssueToken(staffID int64) (string, Session, error)
	ParseToken(token string) (Session, error)
	Name() string
}

type Options struct {
	TTL time.Duration
	// Now overrides the clock, mostly for tests.
	Now func() time.Time
}
