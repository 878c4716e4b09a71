package supabase

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"fabshop-backend/internal/models"
)

// ErrNotFound is returned when a row lookup matches nothing.
var ErrNotFound = errors.New("not found")

// ErrAlreadyConverted is returned when a conversion targets a quote that is
// already in the converted status.
var ErrAlreadyConverted = errors.New("quote already converted")

type DatabaseClient struct {
	db *sql.DB
}

func NewDatabaseClient(connectionString string) (*DatabaseClient, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DatabaseClient{db: db}, nil
}

func (d *DatabaseClient) Close() error {
	return d.db.Close()
}

const quoteColumns = `id, customer_name, order_date, project_summary, print_type_id,
		material_cost, print_time, labor_time, quote_status_id, actual_price,
		print_cost, labor_cost, total_cost, suggested_price, created_on, updated_on`

func scanQuote(row interface{ Scan(...interface{}) error }) (*models.Quote, error) {
	var q models.Quote
	err := row.Scan(
		&q.ID, &q.CustomerName, &q.OrderDate, &q.ProjectSummary, &q.PrintTypeID,
		&q.MaterialCost, &q.PrintTime, &q.LaborTime, &q.StatusID, &q.ActualPrice,
		&q.PrintCost, &q.LaborCost, &q.TotalCost, &q.SuggestedPrice, &q.CreatedOn, &q.UpdatedOn,
	)
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func (d *DatabaseClient) CreateQuote(q *models.Quote) (*models.Quote, error) {
	row := d.db.QueryRow(`
		INSERT INTO quotes (customer_name, order_date, project_summary, print_type_id,
			material_cost, print_time, labor_time, quote_status_id, actual_price,
			print_cost, labor_cost, total_cost, suggested_price)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING `+quoteColumns+`
	`, q.CustomerName, q.OrderDate, q.ProjectSummary, q.PrintTypeID,
		q.MaterialCost, q.PrintTime, q.LaborTime, q.StatusID, q.ActualPrice,
		q.PrintCost, q.LaborCost, q.TotalCost, q.SuggestedPrice)

	created, err := scanQuote(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create quote: %w", err)
	}
	return created, nil
}

func (d *DatabaseClient) GetQuote(quoteID int64) (*models.Quote, error) {
	row := d.db.QueryRow(`
		SELECT `+quoteColumns+`
		FROM quotes
		WHERE id = $1
	`, quoteID)

	q, err := scanQuote(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get quote: %w", err)
	}
	return q, nil
}

func (d *DatabaseClient) ListQuotes() ([]models.Quote, error) {
	rows, err := d.db.Query(`
		SELECT ` + quoteColumns + `
		FROM quotes
		ORDER BY created_on DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list quotes: %w", err)
	}
	defer rows.Close()

	var quotes []models.Quote
	for rows.Next() {
		q, err := scanQuote(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan quote: %w", err)
		}
		quotes = append(quotes, *q)
	}
	return quotes, rows.Err()
}

// UpdateQuote rewrites the editable and derived fields of a quote. The status
// id is deliberately not touched here: status changes flow through
// ConvertQuote only.
func (d *DatabaseClient) UpdateQuote(q *models.Quote) (*models.Quote, error) {
	row := d.db.QueryRow(`
		UPDATE quotes
		SET customer_name = $1, order_date = $2, project_summary = $3, print_type_id = $4,
			material_cost = $5, print_time = $6, labor_time = $7, actual_price = $8,
			print_cost = $9, labor_cost = $10, total_cost = $11, suggested_price = $12,
			updated_on = NOW()
		WHERE id = $13
		RETURNING `+quoteColumns+`
	`, q.CustomerName, q.OrderDate, q.ProjectSummary, q.PrintTypeID,
		q.MaterialCost, q.PrintTime, q.LaborTime, q.ActualPrice,
		q.PrintCost, q.LaborCost, q.TotalCost, q.SuggestedPrice, q.ID)

	updated, err := scanQuote(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update quote: %w", err)
	}
	return updated, nil
}

// ConvertQuote flips a quote to the converted status and creates its order in
// one transaction, so a half-converted quote can never be observed.
func (d *DatabaseClient) ConvertQuote(quoteID, convertedStatusID, orderStatusID int64) (*models.Order, error) {
	tx, err := d.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(`
		UPDATE quotes
		SET quote_status_id = $1, updated_on = NOW()
		WHERE id = $2 AND quote_status_id <> $1
	`, convertedStatusID, quoteID)
	if err != nil {
		return nil, fmt.Errorf("failed to mark quote converted: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to mark quote converted: %w", err)
	}
	if affected == 0 {
		return nil, fmt.Errorf("quote %d: %w", quoteID, ErrAlreadyConverted)
	}

	var order models.Order
	err = tx.QueryRow(`
		INSERT INTO orders (quote_id, order_status_id)
		VALUES ($1, $2)
		RETURNING id, quote_id, order_status_id, is_paid, notes, created_on, updated_on
	`, quoteID, orderStatusID).Scan(
		&order.ID, &order.QuoteID, &order.StatusID, &order.IsPaid, &order.Notes,
		&order.CreatedOn, &order.UpdatedOn,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit conversion: %w", err)
	}
	return &order, nil
}

const orderJoinQuery = `
	SELECT o.id, o.quote_id, o.order_status_id, o.is_paid, o.notes, o.created_on, o.updated_on,
		q.id, q.customer_name, q.order_date, q.project_summary, q.print_type_id,
		q.material_cost, q.print_time, q.labor_time, q.quote_status_id, q.actual_price,
		q.print_cost, q.labor_cost, q.total_cost, q.suggested_price, q.created_on, q.updated_on
	FROM orders o
	JOIN quotes q ON q.id = o.quote_id`

func scanOrderWithQuote(row interface{ Scan(...interface{}) error }) (*models.OrderWithQuote, error) {
	var o models.OrderWithQuote
	var q models.Quote
	err := row.Scan(
		&o.ID, &o.QuoteID, &o.StatusID, &o.IsPaid, &o.Notes, &o.CreatedOn, &o.UpdatedOn,
		&q.ID, &q.CustomerName, &q.OrderDate, &q.ProjectSummary, &q.PrintTypeID,
		&q.MaterialCost, &q.PrintTime, &q.LaborTime, &q.StatusID, &q.ActualPrice,
		&q.PrintCost, &q.LaborCost, &q.TotalCost, &q.SuggestedPrice, &q.CreatedOn, &q.UpdatedOn,
	)
	if err != nil {
		return nil, err
	}
	o.Quote = &q
	return &o, nil
}

func (d *DatabaseClient) GetOrder(orderID int64) (*models.OrderWithQuote, error) {
	row := d.db.QueryRow(orderJoinQuery+` WHERE o.id = $1`, orderID)

	o, err := scanOrderWithQuote(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return o, nil
}

func (d *DatabaseClient) ListOrders() ([]models.OrderWithQuote, error) {
	rows, err := d.db.Query(orderJoinQuery + ` ORDER BY o.created_on DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	var orders []models.OrderWithQuote
	for rows.Next() {
		o, err := scanOrderWithQuote(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, *o)
	}
	return orders, rows.Err()
}

func (d *DatabaseClient) UpdateOrder(orderID, statusID int64, isPaid bool, notes string) (*models.Order, error) {
	var order models.Order
	err := d.db.QueryRow(`
		UPDATE orders
		SET order_status_id = $1, is_paid = $2, notes = $3, updated_on = NOW()
		WHERE id = $4
		RETURNING id, quote_id, order_status_id, is_paid, notes, created_on, updated_on
	`, statusID, isPaid, notes, orderID).Scan(
		&order.ID, &order.QuoteID, &order.StatusID, &order.IsPaid, &order.Notes,
		&order.CreatedOn, &order.UpdatedOn,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update order: %w", err)
	}
	return &order, nil
}

func (d *DatabaseClient) CreateQuoteFile(f *models.QuoteFile) error {
	_, err := d.db.Exec(`
		INSERT INTO quote_files (id, quote_id, filename, storage_path, storage_url, file_size, mime_type, uploaded_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, f.ID, f.QuoteID, f.Filename, f.StoragePath, f.StorageURL, f.FileSize, f.MimeType, f.UploadedBy)
	if err != nil {
		return fmt.Errorf("failed to create quote file: %w", err)
	}
	return nil
}

func (d *DatabaseClient) GetQuoteFiles(quoteID int64) ([]models.QuoteFile, error) {
	rows, err := d.db.Query(`
		SELECT id, quote_id, filename, storage_path, storage_url, file_size, mime_type, uploaded_by, created_on
		FROM quote_files
		WHERE quote_id = $1
		ORDER BY created_on DESC
	`, quoteID)
	if err != nil {
		return nil, fmt.Errorf("failed to get quote files: %w", err)
	}
	defer rows.Close()

	var files []models.QuoteFile
	for rows.Next() {
		var f models.QuoteFile
		err := rows.Scan(&f.ID, &f.QuoteID, &f.Filename, &f.StoragePath, &f.StorageURL,
			&f.FileSize, &f.MimeType, &f.UploadedBy, &f.CreatedOn)
		if err != nil {
			return nil, fmt.Errorf("failed to scan quote file: %w", err)
		}
		files = append(files, f)
	}
	return files, rows.Err()
}

func (d *DatabaseClient) GetQuoteFile(fileID uuid.UUID) (*models.QuoteFile, error) {
	var f models.QuoteFile
	err := d.db.QueryRow(`
		SELECT id, quote_id, filename, storage_path, storage_url, file_size, mime_type, uploaded_by, created_on
		FROM quote_files
		WHERE id = $1
	`, fileID).Scan(&f.ID, &f.QuoteID, &f.Filename, &f.StoragePath, &f.StorageURL,
		&f.FileSize, &f.MimeType, &f.UploadedBy, &f.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get quote file: %w", err)
	}
	return &f, nil
}

func (d *DatabaseClient) DeleteQuoteFile(fileID uuid.UUID) error {
	_, err := d.db.Exec(`
		DELETE FROM quote_files
		WHERE id = $1
	`, fileID)
	return err
}
