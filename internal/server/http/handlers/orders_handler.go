package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/orderdesk/internal/server/http/dto"
	"github.com/polkiloo/orderdesk/internal/store"
)

// OrdersHandler serves the order overview and the order creation form.
type OrdersHandler struct {
	facade OrdersFacade
}

// NewOrdersHandler constructs OrdersHandler.
func NewOrdersHandler(facade OrdersFacade) *OrdersHandler {
	return &OrdersHandler{facade: facade}
}

// List handles GET /api/console/orders.
func (h *OrdersHandler) List(c *gin.Context) {
	h.respondList(c, h.facade.Orders(c.Request.Context(), CurrentStaffID(c)))
}

// Reload handles POST /api/console/orders/reload.
func (h *OrdersHandler) Reload(c *gin.Context) {
	h.respondList(c, h.facade.ReloadOrders(c.Request.Context(), CurrentStaffID(c)))
}

// ApplyFilters handles PUT /api/console/orders/filters.
func (h *OrdersHandler) ApplyFilters(c *gin.Context) {
	var req dto.FiltersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	h.respondList(c, h.facade.ApplyFilters(c.Request.Context(), CurrentStaffID(c), req.Criteria()))
}

// ResetFilters handles DELETE /api/console/orders/filters.
func (h *OrdersHandler) ResetFilters(c *gin.Context) {
	h.respondList(c, h.facade.ResetFilters(c.Request.Context(), CurrentStaffID(c)))
}

// NewForm handles GET /api/console/orders/new.
func (h *OrdersHandler) NewForm(c *gin.Context) {
	state := h.facade.NewOrder(c.Request.Context(), CurrentStaffID(c))
	c.JSON(StatusFor(state.Kind, http.StatusOK), dto.NewOrderFormResponse(state))
}

// Create handles POST /api/console/orders.
func (h *OrdersHandler) Create(c *gin.Context) {
	var req dto.OrderFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	state := h.facade.CreateOrder(c.Request.Context(), CurrentStaffID(c), req.Form())
	c.JSON(StatusFor(state.Kind, http.StatusCreated), dto.NewOrderFormResponse(state))
}

func (h *OrdersHandler) respondList(c *gin.Context, state store.OrderListState) {
	c.JSON(StatusFor(state.Kind, http.StatusOK), dto.NewOrderListResponse(state))
}
