package models

import "time"

type QuoteResponse struct {
	ID             int64    `json:"quote_id"`
	CustomerName   string   `json:"customer_name"`
	OrderDate      string   `json:"order_date"`
	ProjectSummary string   `json:"project_summary"`
	PrintTypeID    *int64   `json:"print_type_id,omitempty"`
	MaterialCost   float64  `json:"material_cost"`
	PrintTime      float64  `json:"print_time"`
	LaborTime      float64  `json:"labor_time"`
	StatusID       int64    `json:"quote_status_id"`
	StatusName     string   `json:"status_name"`
	ReadOnly       bool     `json:"read_only"`
	PrintCost      float64  `json:"print_cost"`
	LaborCost      float64  `json:"labor_cost"`
	TotalCost      float64  `json:"total_cost"`
	SuggestedPrice float64  `json:"suggested_price"`
	ActualPrice    *float64 `json:"actual_price,omitempty"`
	// MarginPercent is nil when unknown (no actual price yet); clients render
	// a placeholder, not 0%.
	MarginPercent *float64  `json:"margin_percent,omitempty"`
	MarginBand    string    `json:"margin_band,omitempty"`
	CreatedOn     time.Time `json:"created_on"`
	UpdatedOn     time.Time `json:"updated_on"`
}

type QuoteListResponse struct {
	Quotes []QuoteResponse `json:"quotes"`
}

type OrderResponse struct {
	ID         int64          `json:"order_id"`
	QuoteID    int64          `json:"quote_id"`
	StatusID   int64          `json:"order_status_id"`
	StatusName string         `json:"status_name"`
	IsPaid     bool           `json:"is_paid"`
	Notes      string         `json:"notes,omitempty"`
	Quote      *QuoteResponse `json:"quote,omitempty"`
	CreatedOn  time.Time      `json:"created_on"`
	UpdatedOn  time.Time      `json:"updated_on"`
}

type OrderListResponse struct {
	Orders []OrderResponse `json:"orders"`
}

type ConvertResponse struct {
	Order OrderResponse `json:"order"`
	Quote QuoteResponse `json:"quote"`
}

type StatusListResponse struct {
	Statuses []StatusRef `json:"statuses"`
	// Selectable lists the statuses a user may pick directly; for quotes this
	// excludes "converted", which only the convert operation assigns.
	Selectable []StatusRef `json:"selectable,omitempty"`
}

type PrintTypeListResponse struct {
	PrintTypes []PrintTypeResponse `json:"print_types"`
}

type PrintTypeResponse struct {
	PrintType
	PrintRate float64 `json:"print_rate"`
}

type ExpenseBreakdown struct {
	Material float64 `json:"material"`
	Print    float64 `json:"print"`
	Labor    float64 `json:"labor"`
	Total    float64 `json:"total"`
}

type DashboardResponse struct {
	Range           string           `json:"range"`
	RangeStart      *time.Time       `json:"range_start,omitempty"`
	RangeEnd        *time.Time       `json:"range_end,omitempty"`
	OrdersReceived  int              `json:"orders_received"`
	OrdersCompleted int              `json:"orders_completed"`
	Revenue         float64          `json:"revenue"`
	Expenses        ExpenseBreakdown `json:"expenses"`
	Profit          float64          `json:"profit"`
	MarginPercent   float64          `json:"margin_percent"`
	MarginBand      string           `json:"margin_band"`
}

type FileResponse struct {
	ID         string    `json:"id"`
	QuoteID    int64     `json:"quote_id"`
	Filename   string    `json:"filename"`
	StorageURL string    `json:"storage_url"`
	FileSize   int64     `json:"file_size"`
	MimeType   string    `json:"mime_type"`
	CreatedOn  time.Time `json:"created_on"`
}

type FileListResponse struct {
	Files []FileResponse `json:"files"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
