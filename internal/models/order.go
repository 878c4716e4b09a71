package models

import "time"

// MaxOrderNotesLength caps the free-text notes field on an order.
const MaxOrderNotesLength = 500

// Order is a production job spawned from a converted quote. Pricing is never
// duplicated here; display joins the originating quote.
type Order struct {
	ID        int64
	QuoteID   int64
	StatusID  int64
	IsPaid    bool
	Notes     string
	CreatedOn time.Time
	UpdatedOn time.Time
}

type OrderWithQuote struct {
	Order
	Quote *Quote
}
