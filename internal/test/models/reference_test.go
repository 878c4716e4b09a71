package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fabshop-backend/internal/models"
)

func TestStatusRefFromRow_CurrentColumns(t *testing.T) {
	status, err := models.StatusRefFromRow(map[string]interface{}{
		"id":   float64(3),
		"name": "Converted",
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(3), status.ID)
	assert.Equal(t, "Converted", status.Name)
}

func TestStatusRefFromRow_LegacyColumns(t *testing.T) {
	status, err := models.StatusRefFromRow(map[string]interface{}{
		"quote_status_ref_id": float64(2),
		"status_name":         "Submitted",
		"description":         "Quote sent to the customer",
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(2), status.ID)
	assert.Equal(t, "Submitted", status.Name)
	assert.Equal(t, "Quote sent to the customer", status.Description)
}

func TestStatusRefFromRow_OrderStatusAlias(t *testing.T) {
	status, err := models.StatusRefFromRow(map[string]interface{}{
		"order_status_ref_id": float64(4),
		"status_name":         "Complete",
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(4), status.ID)
	assert.Equal(t, "Complete", status.Name)
}

func TestStatusRefFromRow_StringEncodedID(t *testing.T) {
	status, err := models.StatusRefFromRow(map[string]interface{}{
		"id":   "7",
		"name": "Abandoned",
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(7), status.ID)
}

func TestStatusRefFromRow_MissingColumns(t *testing.T) {
	_, err := models.StatusRefFromRow(map[string]interface{}{"name": "New"})
	assert.Error(t, err)

	_, err = models.StatusRefFromRow(map[string]interface{}{"id": float64(1)})
	assert.Error(t, err)
}

func TestPrintTypeFromRow(t *testing.T) {
	pt, err := models.PrintTypeFromRow(map[string]interface{}{
		"id":               float64(1),
		"name":             "FDM",
		"power_cost":       0.10,
		"maintenance_cost": 0.04,
	})
	assert.NoError(t, err)
	assert.Equal(t, "FDM", pt.Name)
	assert.InDelta(t, 0.14, pt.PrintRate(), 1e-9)
}

func TestPrintTypeFromRow_LegacyColumns(t *testing.T) {
	pt, err := models.PrintTypeFromRow(map[string]interface{}{
		"print_type_ref_id": float64(2),
		"type_name":         "Resin",
		"power_cost":        "0.15",
		"maintenance_cost":  "0.10",
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(2), pt.ID)
	assert.Equal(t, "Resin", pt.Name)
	assert.InDelta(t, 0.25, pt.PrintRate(), 1e-9)
}

func TestPrintTypeFromRow_MissingCostsDefaultToZero(t *testing.T) {
	pt, err := models.PrintTypeFromRow(map[string]interface{}{
		"id":   float64(3),
		"name": "SLS",
	})
	assert.NoError(t, err)
	assert.InDelta(t, 0, pt.PrintRate(), 1e-9)
}
