package pricing

import (
	"encoding/json"
	"strconv"
)

// MarginBand classifies a profit margin for display.
type MarginBand string

const (
	MarginGood    MarginBand = "good"    // >= 30%
	MarginCaution MarginBand = "caution" // 25% - 29.999%
	MarginLow     MarginBand = "low"     // < 25%
)

// ParseNumeric defensively parses a backend value that may arrive as a
// number, a string-encoded number, or nothing at all. Missing or non-numeric
// values yield nil rather than zero so that "unknown" stays distinguishable
// from "free".
func ParseNumeric(v interface{}) *float64 {
	switch n := v.(type) {
	case nil:
		return nil
	case float64:
		return finitePtr(n)
	case float32:
		return finitePtr(float64(n))
	case int:
		return finitePtr(float64(n))
	case int64:
		return finitePtr(float64(n))
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return nil
		}
		return finitePtr(f)
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return nil
		}
		return finitePtr(f)
	default:
		return nil
	}
}

// Margin computes the profit margin percentage of the quoted price over total
// cost. A missing value on either side, or a zero quoted price, makes the
// margin unknown (nil) - callers render a placeholder, never 0%.
func Margin(actualPrice, totalCost *float64) *float64 {
	if actualPrice == nil || totalCost == nil {
		return nil
	}
	actual := *actualPrice
	total := *totalCost
	if !isFinite(actual) || !isFinite(total) || actual == 0 {
		return nil
	}
	m := ((actual - total) / actual) * 100
	return &m
}

// ClassifyMargin maps a margin percentage onto its display band. Both the
// order views and the dashboard use this single classification.
func ClassifyMargin(marginPercent float64) MarginBand {
	if marginPercent >= 30 {
		return MarginGood
	}
	if marginPercent >= 25 {
		return MarginCaution
	}
	return MarginLow
}

func finitePtr(v float64) *float64 {
	if !isFinite(v) {
		return nil
	}
	return &v
}
