package supabase

import (
	"fmt"

	"github.com/supabase-community/supabase-go"
)

// RealtimeClient groups the change events the web client listens for. Row
// updates through Postgres already trigger Supabase Realtime broadcasts; the
// explicit publish here is a hook for events that have no backing row change.
type RealtimeClient struct {
	client *supabase.Client
}

func NewRealtimeClient(client *supabase.Client) *RealtimeClient {
	return &RealtimeClient{client: client}
}

func (r *RealtimeClient) PublishEvent(channel string, event string, payload map[string]interface{}) error {
	// Database writes reach subscribers through Supabase's own replication
	// stream, so there is nothing to send explicitly yet.
	return nil
}

func (r *RealtimeClient) PublishQuoteEvent(quoteID int64, event string, payload map[string]interface{}) error {
	return r.PublishEvent(fmt.Sprintf("quote:%d", quoteID), event, payload)
}

func (r *RealtimeClient) PublishOrderEvent(orderID int64, event string, payload map[string]interface{}) error {
	return r.PublishEvent(fmt.Sprintf("order:%d", orderID), event, payload)
}

// Event payloads

func QuoteConvertedPayload(quoteID, orderID int64) map[string]interface{} {
	return map[string]interface{}{
		"quote_id": quoteID,
		"order_id": orderID,
		"status":   "converted",
	}
}

func OrderStatusChangedPayload(orderID, statusID int64, isPaid bool) map[string]interface{} {
	return map[string]interface{}{
		"order_id":        orderID,
		"order_status_id": statusID,
		"is_paid":         isPaid,
	}
}

func AttachmentUploadedPayload(quoteID int64, fileID, filename string) map[string]interface{} {
	return map[string]interface{}{
		"quote_id": quoteID,
		"file_id":  fileID,
		"filename": filename,
	}
}
