// Package reporting aggregates revenue, cost, and margin figures across
// orders for the dashboard views.
package reporting

import (
	"fmt"
	"time"

	"fabshop-backend/internal/models"
	"fabshop-backend/internal/pricing"
)

type RangeKey string

const (
	RangeAll         RangeKey = "all"
	RangeMonthToDate RangeKey = "mtd"
	RangeLastMonth   RangeKey = "last-month"
	RangeYearToDate  RangeKey = "ytd"
	RangeLastYear    RangeKey = "last-year"
)

func ParseRangeKey(s string) (RangeKey, error) {
	switch RangeKey(s) {
	case RangeAll, RangeMonthToDate, RangeLastMonth, RangeYearToDate, RangeLastYear:
		return RangeKey(s), nil
	case "":
		return RangeAll, nil
	}
	return "", fmt.Errorf("unknown date range %q", s)
}

// DateRange bounds are inclusive; nil bounds mean unbounded ("all").
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// ResolveRange turns a range key into concrete day-granular bounds relative
// to now, in now's location.
func ResolveRange(key RangeKey, now time.Time) DateRange {
	loc := now.Location()
	switch key {
	case RangeMonthToDate:
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
		end := endOfDay(now)
		return DateRange{Start: &start, End: &end}
	case RangeLastMonth:
		start := time.Date(now.Year(), now.Month()-1, 1, 0, 0, 0, 0, loc)
		end := endOfDay(time.Date(now.Year(), now.Month(), 0, 0, 0, 0, 0, loc))
		return DateRange{Start: &start, End: &end}
	case RangeYearToDate:
		start := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, loc)
		end := endOfDay(now)
		return DateRange{Start: &start, End: &end}
	case RangeLastYear:
		start := time.Date(now.Year()-1, 1, 1, 0, 0, 0, 0, loc)
		end := endOfDay(time.Date(now.Year()-1, 12, 31, 0, 0, 0, 0, loc))
		return DateRange{Start: &start, End: &end}
	}
	return DateRange{}
}

func (r DateRange) contains(t time.Time) bool {
	if r.Start != nil && t.Before(*r.Start) {
		return false
	}
	if r.End != nil && t.After(*r.End) {
		return false
	}
	return true
}

type Stats struct {
	OrdersReceived  int
	OrdersCompleted int
	Revenue         float64
	MaterialCost    float64
	PrintCost       float64
	LaborCost       float64
	Profit          float64
	MarginPercent   float64
	MarginBand      pricing.MarginBand
}

// Aggregate rolls up the orders falling inside the range. The filter date is
// the originating quote's order date, falling back to the order's creation
// time. Revenue sums quote actual prices; the profit contribution of an
// order treats any missing component as zero, matching how partially priced
// quotes have always been counted.
func Aggregate(orders []models.OrderWithQuote, completedStatusIDs map[int64]bool, rng DateRange) Stats {
	var stats Stats
	for _, order := range orders {
		when := order.CreatedOn
		if order.Quote != nil && !order.Quote.OrderDate.IsZero() {
			when = order.Quote.OrderDate
		}
		if !rng.contains(when) {
			continue
		}

		stats.OrdersReceived++
		if completedStatusIDs[order.StatusID] {
			stats.OrdersCompleted++
		}

		var actual, material, printCost, labor *float64
		if q := order.Quote; q != nil {
			if q.ActualPrice.Valid {
				actual = pricing.ParseNumeric(q.ActualPrice.Float64)
			}
			material = pricing.ParseNumeric(q.MaterialCost)
			printCost = pricing.ParseNumeric(q.PrintCost)
			labor = pricing.ParseNumeric(q.LaborCost)
		}

		if actual != nil {
			stats.Revenue += *actual
		}
		if material != nil {
			stats.MaterialCost += *material
		}
		if printCost != nil {
			stats.PrintCost += *printCost
		}
		if labor != nil {
			stats.LaborCost += *labor
		}
		stats.Profit += orZero(actual) - orZero(material) - orZero(printCost) - orZero(labor)
	}

	if stats.Revenue > 0 {
		stats.MarginPercent = (stats.Profit / stats.Revenue) * 100
	}
	stats.MarginBand = pricing.ClassifyMargin(stats.MarginPercent)
	return stats
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

func orZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
