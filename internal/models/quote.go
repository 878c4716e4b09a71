package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

type Quote struct {
	ID             int64
	CustomerName   string
	OrderDate      time.Time
	ProjectSummary string
	PrintTypeID    sql.NullInt64
	MaterialCost   float64
	PrintTime      float64
	LaborTime      float64
	StatusID       int64
	ActualPrice    sql.NullFloat64
	PrintCost      float64
	LaborCost      float64
	TotalCost      float64
	SuggestedPrice float64
	CreatedOn      time.Time
	UpdatedOn      time.Time
}

// QuoteFile is a model/reference file attached to a quote. The blob lives in
// Supabase Storage; this row tracks where.
type QuoteFile struct {
	ID          uuid.UUID
	QuoteID     int64
	Filename    string
	StoragePath string
	StorageURL  string
	FileSize    sql.NullInt64
	MimeType    string
	UploadedBy  uuid.UUID
	CreatedOn   time.Time
}
