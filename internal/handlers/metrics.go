package handlers

import (
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"fabshop-backend/internal/models"
	"fabshop-backend/internal/reporting"
	"fabshop-backend/internal/supabase"
)

type MetricsHandler struct {
	dbClient  *supabase.DatabaseClient
	refClient *supabase.ReferenceClient
}

func NewMetricsHandler(dbClient *supabase.DatabaseClient, refClient *supabase.ReferenceClient) *MetricsHandler {
	return &MetricsHandler{
		dbClient:  dbClient,
		refClient: refClient,
	}
}

// GetDashboard godoc
// @Summary     Dashboard metrics
// @Description Aggregates revenue, expense breakdown, profit, and margin over the orders in a date range. The filter date is the quote's order date, falling back to the order's creation time.
// @Tags        metrics
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       range query string false "Date range" Enums(all, mtd, last-month, ytd, last-year) default(all)
// @Success     200 {object} models.DashboardResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /metrics/dashboard [get]
func (h *MetricsHandler) GetDashboard(c *gin.Context) {
	if h.dbClient == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	key, err := reporting.ParseRangeKey(c.Query("range"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid range",
			Message: err.Error(),
		})
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

	completed, err := h.completedStatusIDs()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{
			Error:   "reference data unavailable",
			Message: err.Error(),
		})
		return
	}

	rng := reporting.ResolveRange(key, time.Now())
	stats := reporting.Aggregate(orders, completed, rng)

	c.JSON(http.StatusOK, models.DashboardResponse{
		Range:           string(key),
		RangeStart:      rng.Start,
		RangeEnd:        rng.End,
		OrdersReceived:  stats.OrdersReceived,
		OrdersCompleted: stats.OrdersCompleted,
		Revenue:         stats.Revenue,
		Expenses: models.ExpenseBreakdown{
			Material: stats.MaterialCost,
			Print:    stats.PrintCost,
			Labor:    stats.LaborCost,
			Total:    stats.MaterialCost + stats.PrintCost + stats.LaborCost,
		},
		Profit:        stats.Profit,
		MarginPercent: math.Round(stats.MarginPercent),
		MarginBand:    string(stats.MarginBand),
	})
}

// completedStatusIDs resolves which order statuses count as completed, by
// name rather than hard-coded ids.
func (h *MetricsHandler) completedStatusIDs() (map[int64]bool, error) {
	statuses, err := h.refClient.OrderStatuses()
	if err != nil {
		return nil, err
	}
	completed := make(map[int64]bool)
	for _, s := range statuses {
		name := strings.ToLower(s.Name)
		if name == "complete" || name == "completed" {
			completed[s.ID] = true
		}
	}
	return completed, nil
}
