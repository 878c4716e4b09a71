package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"fabshop-backend/internal/config"
	"fabshop-backend/internal/handlers"
	"fabshop-backend/internal/models"
	"fabshop-backend/internal/supabase"
)

type stubQuoteStore struct {
	quote        *models.Quote
	updateCalls  int
	convertCalls int
	convertErr   error
}

func (s *stubQuoteStore) GetQuote(quoteID int64) (*models.Quote, error) {
	if s.quote == nil || s.quote.ID != quoteID {
		return nil, supabase.ErrNotFound
	}
	q := *s.quote
	return &q, nil
}

func (s *stubQuoteStore) ListQuotes() ([]models.Quote, error) {
	if s.quote == nil {
		return nil, nil
	}
	return []models.Quote{*s.quote}, nil
}

func (s *stubQuoteStore) CreateQuote(q *models.Quote) (*models.Quote, error) {
	created := *q
	created.ID = 1
	return &created, nil
}

func (s *stubQuoteStore) UpdateQuote(q *models.Quote) (*models.Quote, error) {
	s.updateCalls++
	updated := *q
	updated.StatusID = s.quote.StatusID
	s.quote = &updated
	return &updated, nil
}

func (s *stubQuoteStore) ConvertQuote(quoteID, convertedStatusID, orderStatusID int64) (*models.Order, error) {
	s.convertCalls++
	if s.convertErr != nil {
		return nil, s.convertErr
	}
	s.quote.StatusID = convertedStatusID
	return &models.Order{ID: 7, QuoteID: quoteID, StatusID: orderStatusID}, nil
}

type stubReferenceSource struct {
	quoteStatuses []models.StatusRef
	orderStatuses []models.StatusRef
	printTypes    []models.PrintType
}

func (s *stubReferenceSource) QuoteStatuses() ([]models.StatusRef, error) {
	return s.quoteStatuses, nil
}

func (s *stubReferenceSource) OrderStatuses() ([]models.StatusRef, error) {
	return s.orderStatuses, nil
}

func (s *stubReferenceSource) PrintTypes() ([]models.PrintType, error) {
	return s.printTypes, nil
}

func fabShopStatuses() *stubReferenceSource {
	return &stubReferenceSource{
		quoteStatuses: []models.StatusRef{
			{ID: 1, Name: "New"},
			{ID: 2, Name: "Submitted"},
			{ID: 3, Name: "Converted"},
		},
		orderStatuses: []models.StatusRef{
			{ID: 1, Name: "Queue"},
			{ID: 4, Name: "Complete"},
		},
	}
}

func storedQuote(statusID int64) *models.Quote {
	return &models.Quote{
		ID:             1,
		CustomerName:   "Ada",
		OrderDate:      time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		ProjectSummary: "bracket run",
		MaterialCost:   10,
		PrintTime:      5,
		LaborTime:      2,
		StatusID:       statusID,
		PrintCost:      0.70,
		LaborCost:      30,
		TotalCost:      40.70,
		SuggestedPrice: 58.14,
	}
}

func newQuotesRouter(store *stubQuoteStore, refs *stubReferenceSource) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{LaborHourlyRate: 15, TargetCostRatio: 0.7}
	h := handlers.NewQuotesHandler(cfg, store, refs, nil)

	router := gin.New()
	router.PUT("/quotes/:quote_id", h.UpdateQuote)
	router.POST("/quotes/:quote_id/convert", h.ConvertQuote)
	return router
}

func putQuote(router *gin.Engine, path string, req models.QuoteRequest) *httptest.ResponseRecorder {
	body, _ := json.Marshal(req)
	httpReq, _ := http.NewRequest("PUT", path, bytes.NewReader(body))
	httpReq.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httpReq)
	return w
}

func TestUpdateQuote_ConvertedQuoteIsImmutable(t *testing.T) {
	store := &stubQuoteStore{quote: storedQuote(3)}
	router := newQuotesRouter(store, fabShopStatuses())

	w := putQuote(router, "/quotes/1", models.QuoteRequest{
		CustomerName:   "Changed",
		ProjectSummary: "changed",
		MaterialCost:   99,
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, store.updateCalls)

	var resp models.QuoteResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Ada", resp.CustomerName)
	assert.InDelta(t, 10, resp.MaterialCost, 1e-9)
	assert.True(t, resp.ReadOnly)
}

func TestUpdateQuote_UnconvertedQuoteIsWritten(t *testing.T) {
	store := &stubQuoteStore{quote: storedQuote(1)}
	router := newQuotesRouter(store, fabShopStatuses())

	w := putQuote(router, "/quotes/1", models.QuoteRequest{
		CustomerName:   "Changed",
		ProjectSummary: "changed",
		MaterialCost:   99,
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, store.updateCalls)

	var resp models.QuoteResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Changed", resp.CustomerName)
	assert.False(t, resp.ReadOnly)
}

func TestConvertQuote_AlreadyConvertedConflict(t *testing.T) {
	store := &stubQuoteStore{quote: storedQuote(3)}
	router := newQuotesRouter(store, fabShopStatuses())

	req, _ := http.NewRequest("POST", "/quotes/1/convert", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, 0, store.convertCalls)
}

func TestConvertQuote_ConcurrentConversionConflict(t *testing.T) {
	store := &stubQuoteStore{quote: storedQuote(1), convertErr: supabase.ErrAlreadyConverted}
	router := newQuotesRouter(store, fabShopStatuses())

	req, _ := http.NewRequest("POST", "/quotes/1/convert", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, 1, store.convertCalls)
}

func TestConvertQuote_Succeeds(t *testing.T) {
	store := &stubQuoteStore{quote: storedQuote(1)}
	router := newQuotesRouter(store, fabShopStatuses())

	req, _ := http.NewRequest("POST", "/quotes/1/convert", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp models.ConvertResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(7), resp.Order.ID)
	assert.Equal(t, int64(1), resp.Order.QuoteID)
	assert.Equal(t, "Converted", resp.Quote.StatusName)
	assert.True(t, resp.Quote.ReadOnly)
}
