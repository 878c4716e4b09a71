package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"fabshop-backend/internal/models"
	"fabshop-backend/internal/statusref"
	"fabshop-backend/internal/supabase"
)

type OrdersHandler struct {
	dbClient       OrderStore
	refClient      ReferenceSource
	realtimeClient *supabase.RealtimeClient
}

func NewOrdersHandler(dbClient OrderStore, refClient ReferenceSource, realtimeClient *supabase.RealtimeClient) *OrdersHandler {
	return &OrdersHandler{
		dbClient:       dbClient,
		refClient:      refClient,
		realtimeClient: realtimeClient,
	}
}

// ListOrders godoc
// @Summary     List all orders
// @Description Returns all orders, newest first, each joined with its originating quote and margin figures
// @Tags        orders
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Success     200 {object} models.OrderListResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /orders [get]
func (h *OrdersHandler) ListOrders(c *gin.Context) {
	if h.dbClient == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	orders, err := h.dbClient.ListOrders()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to list orders",
			Message: err.Error(),
		})
		return
	}

	orderResolver, quoteResolver := h.resolvers()

	responses := make([]models.OrderResponse, len(orders))
	for i, o := range orders {
		responses[i] = orderResponse(&o.Order, o.Quote, orderResolver, quoteResolver)
	}

	c.JSON(http.StatusOK, models.OrderListResponse{Orders: responses})
}

// GetOrder godoc
// @Summary     Get an order
// @Description Returns a single order joined with its originating quote
// @Tags        orders
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       order_id path int true "Order ID"
// @Success     200 {object} models.OrderResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /orders/{order_id} [get]
func (h *OrdersHandler) GetOrder(c *gin.Context) {
	if h.dbClient == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	orderID, ok := parseID(c, "order_id")
	if !ok {
		return
	}

	order, err := h.dbClient.GetOrder(orderID)
	if errors.Is(err, supabase.ErrNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "order not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to get order",
			Message: err.Error(),
		})
		return
	}

	orderResolver, quoteResolver := h.resolvers()
	c.JSON(http.StatusOK, orderResponse(&order.Order, order.Quote, orderResolver, quoteResolver))
}

// UpdateOrder godoc
// @Summary     Update an order
// @Description Updates an order's status, paid flag, and notes. Omitted fields keep their stored values.
// @Tags        orders
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       order_id path int true "Order ID"
// @Param       request body models.UpdateOrderRequest true "Fields to change"
// @Success     200 {object} models.OrderResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Failure     503 {object} models.ErrorResponse
// @Router      /orders/{order_id} [patch]
func (h *OrdersHandler) UpdateOrder(c *gin.Context) {
	if h.dbClient == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	orderID, ok := parseID(c, "order_id")
	if !ok {
		return
	}

	existing, err := h.dbClient.GetOrder(orderID)
	if errors.Is(err, supabase.ErrNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "order not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to get order",
			Message: err.Error(),
		})
		return
	}

	var req models.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request body",
			Message: err.Error(),
		})
		return
	}

	statusID := existing.StatusID
	if req.OrderStatusID != nil {
		statuses, err := h.refClient.OrderStatuses()
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{
				Error:   "reference data unavailable",
				Message: "order statuses could not be loaded; please retry: " + err.Error(),
			})
			return
		}
		if !statusref.NewResolver(statuses).Contains(*req.OrderStatusID) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "unknown order_status_id"})
			return
		}
		statusID = *req.OrderStatusID
	}

	isPaid := existing.IsPaid
	if req.IsPaid != nil {
		isPaid = *req.IsPaid
	}

	notes := existing.Notes
	if req.Notes != nil {
		notes = strings.TrimSpace(*req.Notes)
		if len(notes) > models.MaxOrderNotesLength {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "notes too long",
				Message: "notes must be 500 characters or fewer",
			})
			return
		}
	}

	updated, err := h.dbClient.UpdateOrder(orderID, statusID, isPaid, notes)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to update order",
			Message: err.Error(),
		})
		return
	}

	if h.realtimeClient != nil {
		if err := h.realtimeClient.PublishOrderEvent(orderID, "status_changed", supabase.OrderStatusChangedPayload(orderID, statusID, isPaid)); err != nil {
			log.Printf("Warning: failed to publish status event for order %d: %v", orderID, err)
		}
	}

	orderResolver, quoteResolver := h.resolvers()
	c.JSON(http.StatusOK, orderResponse(updated, existing.Quote, orderResolver, quoteResolver))
}

// resolvers loads both status resolvers for display purposes, degrading to
// empty resolvers (names render as "Unknown") when reference data is down.
func (h *OrdersHandler) resolvers() (*statusref.Resolver, *statusref.Resolver) {
	orderStatuses, err := h.refClient.OrderStatuses()
	if err != nil {
		log.Printf("Warning: failed to load order statuses: %v", err)
	}
	quoteStatuses, err := h.refClient.QuoteStatuses()
	if err != nil {
		log.Printf("Warning: failed to load quote statuses: %v", err)
	}
	return statusref.NewResolver(orderStatuses), statusref.NewResolver(quoteStatuses)
}

func orderResponse(o *models.Order, quote *models.Quote, orderResolver, quoteResolver *statusref.Resolver) models.OrderResponse {
	resp := models.OrderResponse{
		ID:         o.ID,
		QuoteID:    o.QuoteID,
		StatusID:   o.StatusID,
		StatusName: orderResolver.Name(o.StatusID),
		IsPaid:     o.IsPaid,
		Notes:      o.Notes,
		CreatedOn:  o.CreatedOn,
		UpdatedOn:  o.UpdatedOn,
	}
	if quote != nil {
		q := quoteResponse(quote, quoteResolver)
		resp.Quote = &q
	}
	return resp
}
