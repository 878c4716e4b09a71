package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"fabshop-backend/internal/handlers"
	"fabshop-backend/internal/models"
	"fabshop-backend/internal/supabase"
)

type stubOrderStore struct {
	order       *models.OrderWithQuote
	updateCalls int
	lastStatus  int64
	lastPaid    bool
	lastNotes   string
}

func (s *stubOrderStore) GetOrder(orderID int64) (*models.OrderWithQuote, error) {
	if s.order == nil || s.order.ID != orderID {
		return nil, supabase.ErrNotFound
	}
	o := *s.order
	return &o, nil
}

func (s *stubOrderStore) ListOrders() ([]models.OrderWithQuote, error) {
	if s.order == nil {
		return nil, nil
	}
	return []models.OrderWithQuote{*s.order}, nil
}

func (s *stubOrderStore) UpdateOrder(orderID, statusID int64, isPaid bool, notes string) (*models.Order, error) {
	s.updateCalls++
	s.lastStatus = statusID
	s.lastPaid = isPaid
	s.lastNotes = notes

	updated := s.order.Order
	updated.StatusID = statusID
	updated.IsPaid = isPaid
	updated.Notes = notes
	return &updated, nil
}

func storedOrder() *models.OrderWithQuote {
	return &models.OrderWithQuote{
		Order: models.Order{ID: 1, QuoteID: 1, StatusID: 1, Notes: "as quoted"},
		Quote: storedQuote(3),
	}
}

func newOrdersRouter(store *stubOrderStore, refs *stubReferenceSource) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := handlers.NewOrdersHandler(store, refs, nil)

	router := gin.New()
	router.PATCH("/orders/:order_id", h.UpdateOrder)
	return router
}

func patchOrder(router *gin.Engine, path string, req models.UpdateOrderRequest) *httptest.ResponseRecorder {
	body, _ := json.Marshal(req)
	httpReq, _ := http.NewRequest("PATCH", path, bytes.NewReader(body))
	httpReq.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httpReq)
	return w
}

func TestUpdateOrder_TrimsNotes(t *testing.T) {
	store := &stubOrderStore{order: storedOrder()}
	router := newOrdersRouter(store, fabShopStatuses())

	notes := "  check tolerances before shipping  "
	w := patchOrder(router, "/orders/1", models.UpdateOrderRequest{Notes: &notes})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, store.updateCalls)
	assert.Equal(t, "check tolerances before shipping", store.lastNotes)
}

func TestUpdateOrder_NotesAtCapAccepted(t *testing.T) {
	store := &stubOrderStore{order: storedOrder()}
	router := newOrdersRouter(store, fabShopStatuses())

	notes := strings.Repeat("a", models.MaxOrderNotesLength)
	w := patchOrder(router, "/orders/1", models.UpdateOrderRequest{Notes: &notes})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, store.updateCalls)
	assert.Len(t, store.lastNotes, models.MaxOrderNotesLength)
}

func TestUpdateOrder_NotesOverCapRejected(t *testing.T) {
	store := &stubOrderStore{order: storedOrder()}
	router := newOrdersRouter(store, fabShopStatuses())

	notes := strings.Repeat("a", models.MaxOrderNotesLength+1)
	w := patchOrder(router, "/orders/1", models.UpdateOrderRequest{Notes: &notes})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, store.updateCalls)
}

func TestUpdateOrder_OmittedFieldsKeepStoredValues(t *testing.T) {
	store := &stubOrderStore{order: storedOrder()}
	router := newOrdersRouter(store, fabShopStatuses())

	paid := true
	w := patchOrder(router, "/orders/1", models.UpdateOrderRequest{IsPaid: &paid})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, store.updateCalls)
	assert.True(t, store.lastPaid)
	assert.Equal(t, int64(1), store.lastStatus)
	assert.Equal(t, "as quoted", store.lastNotes)
}

func TestUpdateOrder_UnknownStatusRejected(t *testing.T) {
	store := &stubOrderStore{order: storedOrder()}
	router := newOrdersRouter(store, fabShopStatuses())

	statusID := int64(99)
	w := patchOrder(router, "/orders/1", models.UpdateOrderRequest{OrderStatusID: &statusID})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, store.updateCalls)
}
