package supabase

import (
	"encoding/json"
	"fmt"
	"sort"

	"fabshop-backend/internal/models"
)

// ReferenceClient reads the status and print-type reference tables through
// PostgREST, the same surface the web client uses. Rows are normalized at
// this boundary (legacy column aliases included) so nothing downstream ever
// sees raw backend rows.
type ReferenceClient struct {
	client *Client
}

func NewReferenceClient(client *Client) *ReferenceClient {
	return &ReferenceClient{client: client}
}

func (r *ReferenceClient) QuoteStatuses() ([]models.StatusRef, error) {
	return r.fetchStatuses("quote_status_ref")
}

func (r *ReferenceClient) OrderStatuses() ([]models.StatusRef, error) {
	return r.fetchStatuses("order_status_ref")
}

func (r *ReferenceClient) PrintTypes() ([]models.PrintType, error) {
	rows, err := r.fetchRows("print_type_ref")
	if err != nil {
		return nil, err
	}

	printTypes := make([]models.PrintType, 0, len(rows))
	for _, row := range rows {
		pt, err := models.PrintTypeFromRow(row)
		if err != nil {
			return nil, fmt.Errorf("print_type_ref: %w", err)
		}
		printTypes = append(printTypes, pt)
	}
	sort.Slice(printTypes, func(i, j int) bool { return printTypes[i].ID < printTypes[j].ID })
	return printTypes, nil
}

func (r *ReferenceClient) fetchStatuses(table string) ([]models.StatusRef, error) {
	rows, err := r.fetchRows(table)
	if err != nil {
		return nil, err
	}

	statuses := make([]models.StatusRef, 0, len(rows))
	for _, row := range rows {
		status, err := models.StatusRefFromRow(row)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", table, err)
		}
		statuses = append(statuses, status)
	}
	sort.Slice(statuses, func(i, j int) bool { return statuses[i].ID < statuses[j].ID })
	return statuses, nil
}

func (r *ReferenceClient) fetchRows(table string) ([]map[string]interface{}, error) {
	// No server-side ordering: legacy deployments name the id column
	// <table>_id, so rows are sorted after normalization instead.
	data, _, err := r.client.Supabase.From(table).
		Select("*", "", false).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", table, err)
	}

	var rows []map[string]interface{}
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode %s rows: %w", table, err)
	}
	return rows, nil
}
