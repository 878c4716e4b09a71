package handlers

import "fabshop-backend/internal/models"

// QuoteStore is the slice of the database client the quote handlers use.
type QuoteStore interface {
	GetQuote(quoteID int64) (*models.Quote, error)
	ListQuotes() ([]models.Quote, error)
	CreateQuote(q *models.Quote) (*models.Quote, error)
	UpdateQuote(q *models.Quote) (*models.Quote, error)
	ConvertQuote(quoteID, convertedStatusID, orderStatusID int64) (*models.Order, error)
}

// OrderStore is the slice of the database client the order handlers use.
type OrderStore interface {
	GetOrder(orderID int64) (*models.OrderWithQuote, error)
	ListOrders() ([]models.OrderWithQuote, error)
	UpdateOrder(orderID, statusID int64, isPaid bool, notes string) (*models.Order, error)
}

// ReferenceSource provides the normalized status and print-type tables.
type ReferenceSource interface {
	QuoteStatuses() ([]models.StatusRef, error)
	OrderStatuses() ([]models.StatusRef, error)
	PrintTypes() ([]models.PrintType, error)
}
