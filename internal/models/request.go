package models

type QuoteRequest struct {
	CustomerName   string `json:"customer_name" binding:"required"`
	ProjectSummary string `json:"project_summary" binding:"required"`
	// OrderDate in YYYY-MM-DD form; defaults to today when omitted.
	OrderDate    string   `json:"order_date,omitempty" example:"2026-08-28"`
	PrintTypeID  *int64   `json:"print_type_id,omitempty"`
	MaterialCost float64  `json:"material_cost"`
	PrintTime    float64  `json:"print_time"`
	LaborTime    float64  `json:"labor_time"`
	// ActualPrice is the price actually quoted to the customer, independent of
	// the suggested price. Rounded to cents on commit.
	ActualPrice *float64 `json:"actual_price,omitempty"`
}

type UpdateOrderRequest struct {
	OrderStatusID *int64  `json:"order_status_id,omitempty"`
	IsPaid        *bool   `json:"is_paid,omitempty"`
	Notes         *string `json:"notes,omitempty"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
