package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"fabshop-backend/internal/config"
	"fabshop-backend/internal/models"
	"fabshop-backend/internal/pricing"
	"fabshop-backend/internal/statusref"
	"fabshop-backend/internal/supabase"
)

const orderDateLayout = "2006-01-02"

type QuotesHandler struct {
	cfg            *config.Config
	dbClient       QuoteStore
	refClient      ReferenceSource
	realtimeClient *supabase.RealtimeClient
}

func NewQuotesHandler(cfg *config.Config, dbClient QuoteStore, refClient ReferenceSource, realtimeClient *supabase.RealtimeClient) *QuotesHandler {
	return &QuotesHandler{
		cfg:            cfg,
		dbClient:       dbClient,
		refClient:      refClient,
		realtimeClient: realtimeClient,
	}
}

// ListQuotes godoc
// @Summary     List all quotes
// @Description Returns all quotes, newest first, with status names and margin figures
// @Tags        quotes
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Success     200 {object} models.QuoteListResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /quotes [get]
func (h *QuotesHandler) ListQuotes(c *gin.Context) {
	if h.dbClient == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	quotes, err := h.dbClient.ListQuotes()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to list quotes",
			Message: err.Error(),
		})
		return
	}

	// Status names are cosmetic on the list view; a reference fetch failure
	// degrades to "Unknown" rather than failing the request.
	resolver := h.quoteStatusResolver()

	responses := make([]models.QuoteResponse, len(quotes))
	for i, q := range quotes {
		responses[i] = quoteResponse(&q, resolver)
	}

	c.JSON(http.StatusOK, models.QuoteListResponse{Quotes: responses})
}

// GetQuote godoc
// @Summary     Get a quote
// @Description Returns a single quote with derived pricing and margin fields
// @Tags        quotes
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       quote_id path int true "Quote ID"
// @Success     200 {object} models.QuoteResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /quotes/{quote_id} [get]
func (h *QuotesHandler) GetQuote(c *gin.Context) {
	if h.dbClient == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	quoteID, ok := parseID(c, "quote_id")
	if !ok {
		return
	}

	quote, err := h.dbClient.GetQuote(quoteID)
	if errors.Is(err, supabase.ErrNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "quote not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to get quote",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, quoteResponse(quote, h.quoteStatusResolver()))
}

// CreateQuote godoc
// @Summary     Create a quote
// @Description Creates a quote in the default status. Costs and the suggested price are computed server-side from the material cost, print/labor hours, and the selected print type's hourly rate.
// @Tags        quotes
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       request body models.QuoteRequest true "Quote fields"
// @Success     201 {object} models.QuoteResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Failure     503 {object} models.ErrorResponse
// @Router      /quotes [post]
func (h *QuotesHandler) CreateQuote(c *gin.Context) {
	if h.dbClient == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	var req models.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request body",
			Message: err.Error(),
		})
		return
	}

	// New quotes must land in a real status; without reference data there is
	// no valid status id to write, so the submission is blocked rather than
	// stored with a made-up id.
	statuses, err := h.refClient.QuoteStatuses()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{
			Error:   "reference data unavailable",
			Message: "quote statuses could not be loaded; please retry: " + err.Error(),
		})
		return
	}
	resolver := statusref.NewResolver(statuses)
	statusID, ok := resolver.DefaultStatusID()
	if !ok {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{
			Error:   "reference data unavailable",
			Message: "no quote statuses are configured; please retry once reference data loads",
		})
		return
	}

	quote, errResp := h.buildQuote(&req)
	if errResp != nil {
		c.JSON(http.StatusBadRequest, *errResp)
		return
	}
	quote.StatusID = statusID

	created, err := h.dbClient.CreateQuote(quote)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to create quote",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, quoteResponse(created, resolver))
}

// UpdateQuote godoc
// @Summary     Update a quote
// @Description Updates an unconverted quote and recomputes its derived pricing. Converted quotes are immutable: the submission is dropped and the stored row returned unchanged.
// @Tags        quotes
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       quote_id path int true "Quote ID"
// @Param       request body models.QuoteRequest true "Quote fields"
// @Success     200 {object} models.QuoteResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Failure     503 {object} models.ErrorResponse
// @Router      /quotes/{quote_id} [put]
func (h *QuotesHandler) UpdateQuote(c *gin.Context) {
	if h.dbClient == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	quoteID, ok := parseID(c, "quote_id")
	if !ok {
		return
	}

	existing, err := h.dbClient.GetQuote(quoteID)
	if errors.Is(err, supabase.ErrNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "quote not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to get quote",
			Message: err.Error(),
		})
		return
	}

	statuses, err := h.refClient.QuoteStatuses()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{
			Error:   "reference data unavailable",
			Message: "quote statuses could not be loaded; please retry: " + err.Error(),
		})
		return
	}
	resolver := statusref.NewResolver(statuses)

	// Converted quotes are read-only. The edit is dropped without error and
	// the stored row comes back unchanged.
	if resolver.IsReadOnly(existing.StatusID) {
		c.JSON(http.StatusOK, quoteResponse(existing, resolver))
		return
	}

	var req models.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request body",
			Message: err.Error(),
		})
		return
	}

	quote, errResp := h.buildQuote(&req)
	if errResp != nil {
		c.JSON(http.StatusBadRequest, *errResp)
		return
	}
	quote.ID = existing.ID

	updated, err := h.dbClient.UpdateQuote(quote)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to update quote",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, quoteResponse(updated, resolver))
}

// ConvertQuote godoc
// @Summary     Convert a quote to an order
// @Description Flips the quote to the converted status and creates a production order referencing it, in one transaction. Conversion is one-way.
// @Tags        quotes
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       quote_id path int true "Quote ID"
// @Success     201 {object} models.ConvertResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     409 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Failure     503 {object} models.ErrorResponse
// @Router      /quotes/{quote_id}/convert [post]
func (h *QuotesHandler) ConvertQuote(c *gin.Context) {
	if h.dbClient == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	quoteID, ok := parseID(c, "quote_id")
	if !ok {
		return
	}

	quote, err := h.dbClient.GetQuote(quoteID)
	if errors.Is(err, supabase.ErrNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "quote not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to get quote",
			Message: err.Error(),
		})
		return
	}

	quoteStatuses, err := h.refClient.QuoteStatuses()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{
			Error:   "reference data unavailable",
			Message: "quote statuses could not be loaded; please retry: " + err.Error(),
		})
		return
	}
	quoteResolver := statusref.NewResolver(quoteStatuses)

	convertedID, ok := quoteResolver.ConvertedStatusID()
	if !ok {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{
			Error:   "reference data unavailable",
			Message: "no 'converted' quote status is configured",
		})
		return
	}
	if quote.StatusID == convertedID {
		c.JSON(http.StatusConflict, models.ErrorResponse{Error: "quote is already converted"})
		return
	}

	orderStatuses, err := h.refClient.OrderStatuses()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{
			Error:   "reference data unavailable",
			Message: "order statuses could not be loaded; please retry: " + err.Error(),
		})
		return
	}
	orderResolver := statusref.NewResolver(orderStatuses)
	orderStatusID, ok := orderResolver.DefaultStatusID()
	if !ok {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{
			Error:   "reference data unavailable",
			Message: "no order statuses are configured; please retry once reference data loads",
		})
		return
	}

	order, err := h.dbClient.ConvertQuote(quoteID, convertedID, orderStatusID)
	if errors.Is(err, supabase.ErrAlreadyConverted) {
		c.JSON(http.StatusConflict, models.ErrorResponse{Error: "quote is already converted"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to convert quote",
			Message: err.Error(),
		})
		return
	}

	if h.realtimeClient != nil {
		if err := h.realtimeClient.PublishQuoteEvent(quoteID, "converted", supabase.QuoteConvertedPayload(quoteID, order.ID)); err != nil {
			log.Printf("Warning: failed to publish conversion event for quote %d: %v", quoteID, err)
		}
	}

	converted, err := h.dbClient.GetQuote(quoteID)
	if err != nil {
		converted = quote
		converted.StatusID = convertedID
	}

	c.JSON(http.StatusCreated, models.ConvertResponse{
		Order: orderResponse(order, nil, orderResolver, quoteResolver),
		Quote: quoteResponse(converted, quoteResolver),
	})
}

// buildQuote validates the request and derives the persisted pricing fields.
func (h *QuotesHandler) buildQuote(req *models.QuoteRequest) (*models.Quote, *models.ErrorResponse) {
	orderDate := time.Now()
	if req.OrderDate != "" {
		parsed, err := time.Parse(orderDateLayout, req.OrderDate)
		if err != nil {
			return nil, &models.ErrorResponse{
				Error:   "invalid order_date",
				Message: "order_date must be YYYY-MM-DD",
			}
		}
		orderDate = parsed
	}

	quote := &models.Quote{
		CustomerName:   req.CustomerName,
		OrderDate:      orderDate,
		ProjectSummary: req.ProjectSummary,
		MaterialCost:   req.MaterialCost,
		PrintTime:      req.PrintTime,
		LaborTime:      req.LaborTime,
	}

	// The print rate is data-driven per print type; a quote without a print
	// type prices machine time at zero.
	var printRate float64
	if req.PrintTypeID != nil {
		printTypes, err := h.refClient.PrintTypes()
		if err != nil {
			return nil, &models.ErrorResponse{
				Error:   "reference data unavailable",
				Message: "print types could not be loaded; please retry: " + err.Error(),
			}
		}
		found := false
		for _, pt := range printTypes {
			if pt.ID == *req.PrintTypeID {
				printRate = pt.PrintRate()
				found = true
				break
			}
		}
		if !found {
			return nil, &models.ErrorResponse{Error: "unknown print_type_id"}
		}
		quote.PrintTypeID.Int64 = *req.PrintTypeID
		quote.PrintTypeID.Valid = true
	}

	out := pricing.Calculate(pricing.Input{
		MaterialCost: req.MaterialCost,
		PrintTime:    req.PrintTime,
		LaborTime:    req.LaborTime,
		PrintRate:    printRate,
	}, h.cfg.PricingParams())
	quote.PrintCost = out.PrintCost
	quote.LaborCost = out.LaborCost
	quote.TotalCost = out.TotalCost
	quote.SuggestedPrice = out.SuggestedPrice

	if req.ActualPrice != nil {
		quote.ActualPrice.Float64 = pricing.RoundCents(*req.ActualPrice)
		quote.ActualPrice.Valid = true
	}

	return quote, nil
}

func (h *QuotesHandler) quoteStatusResolver() *statusref.Resolver {
	statuses, err := h.refClient.QuoteStatuses()
	if err != nil {
		log.Printf("Warning: failed to load quote statuses: %v", err)
		return statusref.NewResolver(nil)
	}
	return statusref.NewResolver(statuses)
}

func quoteResponse(q *models.Quote, resolver *statusref.Resolver) models.QuoteResponse {
	resp := models.QuoteResponse{
		ID:             q.ID,
		CustomerName:   q.CustomerName,
		OrderDate:      q.OrderDate.Format(orderDateLayout),
		ProjectSummary: q.ProjectSummary,
		MaterialCost:   q.MaterialCost,
		PrintTime:      q.PrintTime,
		LaborTime:      q.LaborTime,
		StatusID:       q.StatusID,
		StatusName:     resolver.Name(q.StatusID),
		ReadOnly:       resolver.IsReadOnly(q.StatusID),
		PrintCost:      q.PrintCost,
		LaborCost:      q.LaborCost,
		TotalCost:      q.TotalCost,
		SuggestedPrice: q.SuggestedPrice,
		CreatedOn:      q.CreatedOn,
		UpdatedOn:      q.UpdatedOn,
	}
	if q.PrintTypeID.Valid {
		id := q.PrintTypeID.Int64
		resp.PrintTypeID = &id
	}
	var actual *float64
	if q.ActualPrice.Valid {
		price := q.ActualPrice.Float64
		actual = &price
		resp.ActualPrice = &price
	}
	if margin := pricing.Margin(actual, pricing.ParseNumeric(q.TotalCost)); margin != nil {
		resp.MarginPercent = margin
		resp.MarginBand = string(pricing.ClassifyMargin(*margin))
	}
	return resp
}

func parseID(c *gin.Context, param string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid " + param})
		return 0, false
	}
	return id, true
}
