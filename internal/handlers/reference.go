package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fabshop-backend/internal/models"
	"fabshop-backend/internal/statusref"
	"fabshop-backend/internal/supabase"
)

type ReferenceHandler struct {
	refClient *supabase.ReferenceClient
}

func NewReferenceHandler(refClient *supabase.ReferenceClient) *ReferenceHandler {
	return &ReferenceHandler{refClient: refClient}
}

// GetQuoteStatuses godoc
// @Summary     List quote statuses
// @Description Returns the quote status reference list. The selectable subset excludes the converted status, which only the convert operation assigns.
// @Tags        reference
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Success     200 {object} models.StatusListResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     503 {object} models.ErrorResponse
// @Router      /reference/quote-statuses [get]
func (h *ReferenceHandler) GetQuoteStatuses(c *gin.Context) {
	statuses, err := h.refClient.QuoteStatuses()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{
			Error:   "reference data unavailable",
			Message: err.Error(),
		})
		return
	}

	resolver := statusref.NewResolver(statuses)
	c.JSON(http.StatusOK, models.StatusListResponse{
		Statuses:   statuses,
		Selectable: resolver.Selectable(),
	})
}

// GetOrderStatuses godoc
// @Summary     List order statuses
// @Description Returns the order status reference list
// @Tags        reference
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Success     200 {object} models.StatusListResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     503 {object} models.ErrorResponse
// @Router      /reference/order-statuses [get]
func (h *ReferenceHandler) GetOrderStatuses(c *gin.Context) {
	statuses, err := h.refClient.OrderStatuses()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{
			Error:   "reference data unavailable",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.StatusListResponse{Statuses: statuses})
}

// GetPrintTypes godoc
// @Summary     List print types
// @Description Returns the print type reference list with per-hour rates (power + maintenance cost)
// @Tags        reference
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Success     200 {object} models.PrintTypeListResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     503 {object} models.ErrorResponse
// @Router      /reference/print-types [get]
func (h *ReferenceHandler) GetPrintTypes(c *gin.Context) {
	printTypes, err := h.refClient.PrintTypes()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{
			Error:   "reference data unavailable",
			Message: err.Error(),
		})
		return
	}

	responses := make([]models.PrintTypeResponse, len(printTypes))
	for i, pt := range printTypes {
		responses[i] = models.PrintTypeResponse{
			PrintType: pt,
			PrintRate: pt.PrintRate(),
		}
	}

	c.JSON(http.StatusOK, models.PrintTypeListResponse{PrintTypes: responses})
}
