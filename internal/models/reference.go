package models

import (
	"fmt"
	"strconv"
)

// StatusRef is a reference row for either quote or order statuses. Statuses
// are configured in the backend, not compiled in; the only names this codebase
// matches on are "new" and "converted", case-insensitively.
type StatusRef struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// PrintType is a fabrication method with its per-hour machine cost components.
type PrintType struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description,omitempty"`
	PowerCost       float64 `json:"power_cost"`
	MaintenanceCost float64 `json:"maintenance_cost"`
}

// PrintRate is the per-hour rate charged for machine time.
func (p PrintType) PrintRate() float64 {
	return p.PowerCost + p.MaintenanceCost
}

// Reference rows come back from PostgREST as loose JSON and the hosted schema
// has gone through a column rename: older deployments use *_ref_id / *_name
// columns where current ones use id / name. Normalization happens here, once,
// so nothing downstream sees raw rows.

var statusIDAliases = []string{"id", "quote_status_ref_id", "order_status_ref_id"}
var statusNameAliases = []string{"name", "status_name"}
var printTypeIDAliases = []string{"id", "print_type_ref_id"}
var printTypeNameAliases = []string{"name", "type_name"}

func StatusRefFromRow(row map[string]interface{}) (StatusRef, error) {
	id, ok := intField(row, statusIDAliases)
	if !ok {
		return StatusRef{}, fmt.Errorf("status row has no id column")
	}
	name, ok := stringField(row, statusNameAliases)
	if !ok {
		return StatusRef{}, fmt.Errorf("status row %d has no name column", id)
	}
	desc, _ := stringField(row, []string{"description"})
	return StatusRef{ID: id, Name: name, Description: desc}, nil
}

func PrintTypeFromRow(row map[string]interface{}) (PrintType, error) {
	id, ok := intField(row, printTypeIDAliases)
	if !ok {
		return PrintType{}, fmt.Errorf("print type row has no id column")
	}
	name, ok := stringField(row, printTypeNameAliases)
	if !ok {
		return PrintType{}, fmt.Errorf("print type row %d has no name column", id)
	}
	desc, _ := stringField(row, []string{"description"})
	power, _ := floatField(row, []string{"power_cost"})
	maintenance, _ := floatField(row, []string{"maintenance_cost"})
	return PrintType{
		ID:              id,
		Name:            name,
		Description:     desc,
		PowerCost:       power,
		MaintenanceCost: maintenance,
	}, nil
}

func intField(row map[string]interface{}, aliases []string) (int64, bool) {
	f, ok := floatField(row, aliases)
	if !ok {
		return 0, false
	}
	return int64(f), true
}

func floatField(row map[string]interface{}, aliases []string) (float64, bool) {
	for _, key := range aliases {
		v, present := row[key]
		if !present || v == nil {
			continue
		}
		switch n := v.(type) {
		case float64:
			return n, true
		case string:
			f, err := strconv.ParseFloat(n, 64)
			if err == nil {
				return f, true
			}
		}
	}
	return 0, false
}

func stringField(row map[string]interface{}, aliases []string) (string, bool) {
	for _, key := range aliases {
		if s, ok := row[key].(string); ok && s != "" {
			return s, true
		}
	}
	return "", false
}
