package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/orderdesk/internal/server/http/dto"
	"github.com/polkiloo/orderdesk/internal/store"
)

// SettingsHandler serves category and status maintenance.
type SettingsHandler struct {
	facade SettingsFacade
}

// NewSettingsHandler constructs SettingsHandler.
func NewSettingsHandler(facade SettingsFacade) *SettingsHandler {
	return &SettingsHandler{facade: facade}
}

// Show handles GET /api/console/settings.
func (h *SettingsHandler) Show(c *gin.Context) {
	respondSettings(c, h.facade.Settings(c.Request.Context(), CurrentStaffID(c)), http.StatusOK)
}

// AddCategory handles POST /api/console/settings/categories.
func (h *SettingsHandler) AddCategory(c *gin.Context) {
	var req dto.LabelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	respondSettings(c, h.facade.AddCategory(c.Request.Context(), CurrentStaffID(c), req.Label), http.StatusCreated)
}

// DeleteCategory handles DELETE /api/console/settings/categories/:id.
func (h *SettingsHandler) DeleteCategory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	respondSettings(c, h.facade.DeleteCategory(c.Request.Context(), CurrentStaffID(c), id), http.StatusOK)
}

// AddStatus handles POST /api/console/settings/statuses.
func (h *SettingsHandler) AddStatus(c *gin.Context) {
	var req dto.LabelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	respondSettings(c, h.facade.AddStatus(c.Request.Context(), CurrentStaffID(c), req.Label), http.StatusCreated)
}

// DeleteStatus handles DELETE /api/console/settings/statuses/:id.
func (h *SettingsHandler) DeleteStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	respondSettings(c, h.facade.DeleteStatus(c.Request.Context(), CurrentStaffID(c), id), http.StatusOK)
}

func respondSettings(c *gin.Context, state store.SettingsState, success int) {
	c.JSON(StatusFor(state.Kind, success), dto.NewSettingsResponse(state))
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.Status(http.StatusBadRequest)
		return 0, false
	}
	return id, true
}
