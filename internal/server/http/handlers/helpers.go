package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/orderdesk/internal/domain/errors"
	"github.com/polkiloo/orderdesk/internal/server/http/middleware"
)

// CurrentStaffID extracts authenticated staff identifier from context.
func CurrentStaffID(c *gin.Context) int64 {
	val, ok := c.Get(middleware.StaffIDContextKey)
	if !ok {
		return 0
	}
	id, _ := val.(int64)
	return id
}

// StatusFor maps an error kind to the HTTP status of a view response.
func StatusFor(kind domainErrors.Kind, success int) int {
	switch kind {
	case domainErrors.KindNone:
		return success
	case domainErrors.KindValidation:
		return http.StatusUnprocessableEntity
	case domainErrors.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusBadGateway
	}
}
