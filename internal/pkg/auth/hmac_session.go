package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"strconv"
	"strings"
	"time"
)

var ErrInvalidToken = errors.New("invalid session token")

const defaultSessionTTL = 12 * time.Hour

// HMACStrategy signs "<staff id>.<expiry>" with HMAC-SHA256.
// Tokens are URL-safe so they can travel in cookies and headers unchanged.
type HMACStrategy struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewHMACStrategy builds HMACStrategy with provided secret and options.
func NewHMACStrategy(secret string, opts Options) *HMACStrategy {
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &HMACStrategy{secret: []byte(secret), ttl: ttl, now: now}
}

// IssueToken generates a signed session token for the staff member.
func (s *HMACStrategy) IssueToken(staffID int64) (string, Session, error) {
	session := Session{StaffID: staffID, ExpiresAt: s.now().Add(s.ttl).Truncate(time.Second)}
	payload := strconv.FormatInt(staffID, 10) + "." + strconv.FormatInt(session.ExpiresAt.Unix(), 10)
	return payload + "." + s.sign(payload), session, nil
}

// ParseToken validates token and returns the session it encodes.
func (s *HMACStrategy) ParseToken(token string) (Session, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return Session{}, ErrInvalidToken
	}

	payload := parts[0] + "." + parts[1]
	if !hmac.Equal([]byte(s.sign(payload)), []byte(parts[2])) {
		return Session{}, ErrInvalidToken
	}

	staffID, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil || staffID <= 0 {
		return Session{}, ErrInvalidToken
	}

	expires, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return Session{}, ErrInvalidToken
	}

	expiresAt := time.Unix(expires, 0)
	if !expiresAt.After(s.now()) {
		return Session{}, ErrInvalidToken
	}

	return Session{StaffID: staffID, ExpiresAt: expiresAt}, nil
}

// TTL returns the lifetime of issued tokens.
func (s *HMACStrategy) TTL() time.Duration {
	return s.ttl
}

func (s *HMACStrategy) Name() string {
	return "hmac"
}

func (s *HMACStrategy) sign(payload string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(payload))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
