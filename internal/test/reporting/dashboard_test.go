package reporting_test

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"fabshop-backend/internal/models"
	"fabshop-backend/internal/pricing"
	"fabshop-backend/internal/reporting"
)

func orderWithQuote(id int64, statusID int64, orderDate time.Time, actual float64, material, printCost, labor float64) models.OrderWithQuote {
	return models.OrderWithQuote{
		Order: models.Order{ID: id, QuoteID: id, StatusID: statusID, CreatedOn: orderDate},
		Quote: &models.Quote{
			ID:           id,
			OrderDate:    orderDate,
			ActualPrice:  sql.NullFloat64{Float64: actual, Valid: true},
			MaterialCost: material,
			PrintCost:    printCost,
			LaborCost:    labor,
		},
	}
}

func TestParseRangeKey(t *testing.T) {
	key, err := reporting.ParseRangeKey("")
	assert.NoError(t, err)
	assert.Equal(t, reporting.RangeAll, key)

	key, err = reporting.ParseRangeKey("mtd")
	assert.NoError(t, err)
	assert.Equal(t, reporting.RangeMonthToDate, key)

	_, err = reporting.ParseRangeKey("fortnight")
	assert.Error(t, err)
}

func TestResolveRange_MonthToDate(t *testing.T) {
	now := time.Date(2026, time.August, 28, 14, 30, 0, 0, time.UTC)
	rng := reporting.ResolveRange(reporting.RangeMonthToDate, now)

	assert.Equal(t, time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC), *rng.Start)
	assert.Equal(t, 28, rng.End.Day())
	assert.Equal(t, 23, rng.End.Hour())
}

func TestResolveRange_LastMonth(t *testing.T) {
	now := time.Date(2026, time.August, 28, 14, 30, 0, 0, time.UTC)
	rng := reporting.ResolveRange(reporting.RangeLastMonth, now)

	assert.Equal(t, time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC), *rng.Start)
	assert.Equal(t, time.July, rng.End.Month())
	assert.Equal(t, 31, rng.End.Day())
}

func TestResolveRange_LastMonthAcrossYearBoundary(t *testing.T) {
	now := time.Date(2026, time.January, 15, 10, 0, 0, 0, time.UTC)
	rng := reporting.ResolveRange(reporting.RangeLastMonth, now)

	assert.Equal(t, time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC), *rng.Start)
	assert.Equal(t, 31, rng.End.Day())
	assert.Equal(t, 2025, rng.End.Year())
}

func TestResolveRange_LastYear(t *testing.T) {
	now := time.Date(2026, time.August, 28, 0, 0, 0, 0, time.UTC)
	rng := reporting.ResolveRange(reporting.RangeLastYear, now)

	assert.Equal(t, 2025, rng.Start.Year())
	assert.Equal(t, time.January, rng.Start.Month())
	assert.Equal(t, time.December, rng.End.Month())
	assert.Equal(t, 31, rng.End.Day())
}

func TestResolveRange_AllIsUnbounded(t *testing.T) {
	rng := reporting.ResolveRange(reporting.RangeAll, time.Now())
	assert.Nil(t, rng.Start)
	assert.Nil(t, rng.End)
}

func TestAggregate_Totals(t *testing.T) {
	day := time.Date(2026, time.August, 10, 0, 0, 0, 0, time.UTC)
	orders := []models.OrderWithQuote{
		orderWithQuote(1, 4, day, 100, 20, 10, 30),
		orderWithQuote(2, 1, day, 50, 5, 2.5, 7.5),
	}
	completed := map[int64]bool{4: true}

	stats := reporting.Aggregate(orders, completed, reporting.DateRange{})

	assert.Equal(t, 2, stats.OrdersReceived)
	assert.Equal(t, 1, stats.OrdersCompleted)
	assert.InDelta(t, 150, stats.Revenue, 1e-9)
	assert.InDelta(t, 25, stats.MaterialCost, 1e-9)
	assert.InDelta(t, 12.5, stats.PrintCost, 1e-9)
	assert.InDelta(t, 37.5, stats.LaborCost, 1e-9)
	assert.InDelta(t, 75, stats.Profit, 1e-9)
	assert.InDelta(t, 50, stats.MarginPercent, 1e-9)
	assert.Equal(t, pricing.MarginGood, stats.MarginBand)
}

func TestAggregate_FiltersByQuoteOrderDate(t *testing.T) {
	inRange := time.Date(2026, time.August, 10, 0, 0, 0, 0, time.UTC)
	outOfRange := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)
	orders := []models.OrderWithQuote{
		orderWithQuote(1, 1, inRange, 100, 20, 10, 30),
		orderWithQuote(2, 1, outOfRange, 500, 50, 50, 50),
	}

	start := time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.August, 31, 23, 59, 59, 0, time.UTC)
	stats := reporting.Aggregate(orders, nil, reporting.DateRange{Start: &start, End: &end})

	assert.Equal(t, 1, stats.OrdersReceived)
	assert.InDelta(t, 100, stats.Revenue, 1e-9)
}

func TestAggregate_MissingQuoteFallsBackToOrderDate(t *testing.T) {
	created := time.Date(2026, time.August, 10, 0, 0, 0, 0, time.UTC)
	orders := []models.OrderWithQuote{
		{Order: models.Order{ID: 1, StatusID: 1, CreatedOn: created}},
	}

	start := time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.August, 31, 23, 59, 59, 0, time.UTC)
	stats := reporting.Aggregate(orders, nil, reporting.DateRange{Start: &start, End: &end})

	assert.Equal(t, 1, stats.OrdersReceived)
	assert.InDelta(t, 0, stats.Revenue, 1e-9)
	assert.InDelta(t, 0, stats.Profit, 1e-9)
}

func TestAggregate_UnpricedQuoteContributesCostsOnly(t *testing.T) {
	day := time.Date(2026, time.August, 10, 0, 0, 0, 0, time.UTC)
	order := orderWithQuote(1, 1, day, 0, 20, 10, 30)
	order.Quote.ActualPrice = sql.NullFloat64{}

	stats := reporting.Aggregate([]models.OrderWithQuote{order}, nil, reporting.DateRange{})

	assert.InDelta(t, 0, stats.Revenue, 1e-9)
	assert.InDelta(t, -60, stats.Profit, 1e-9)
	assert.InDelta(t, 0, stats.MarginPercent, 1e-9)
}

func TestAggregate_EmptyInput(t *testing.T) {
	stats := reporting.Aggregate(nil, nil, reporting.DateRange{})
	assert.Equal(t, 0, stats.OrdersReceived)
	assert.InDelta(t, 0, stats.MarginPercent, 1e-9)
	assert.Equal(t, pricing.MarginLow, stats.MarginBand)
}
