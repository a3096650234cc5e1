package dto

import "time"

// LoginRequest describes login/password payload.
type LoginRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SessionResponse is returned after a successful login.
type SessionResponse struct {
	StaffID   int64     `json:"staff_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

// HealthResponse reports console and backend availability.
type HealthResponse struct {
	Status  string `json:"status"`
	Backend string `json:"backend"`
}
