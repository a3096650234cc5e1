package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/orderdesk/internal/domain/errors"
	"github.com/polkiloo/orderdesk/internal/server/http/dto"
	"github.com/polkiloo/orderdesk/internal/server/http/middleware"
)

// SessionHandler processes staff login and logout.
type SessionHandler struct {
	facade SessionFacade
	logger *slog.Logger
}

// NewSessionHandler creates SessionHandler instance.
func NewSessionHandler(facade SessionFacade, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{facade: facade, logger: logger}
}

// Login handles POST /api/session/login.
func (h *SessionHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	token, session, err := h.facade.Login(c.Request.Context(), req.Login, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidCredentials):
			c.Status(http.StatusUnauthorized)
		default:
			h.logger.Error("login failed", slog.String("error", err.Error()))
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	middleware.SetSessionCookie(c, token, session.ExpiresAt)
	c.JSON(http.StatusOK, dto.SessionResponse{StaffID: session.StaffID, ExpiresAt: session.ExpiresAt})
}

// Logout handles POST /api/session/logout.
func (h *SessionHandler) Logout(c *gin.Context) {
	h.facade.Logout(CurrentStaffID(c), c.GetString(middleware.SessionTokenContextKey))
	middleware.ClearSessionCookie(c)
	c.Status(http.StatusNoContent)
}
