package pricing

import "math"

// Params holds the shop-wide pricing constants. The labor rate is charged per
// hour of hands-on time; TargetCostRatio is the fraction of the suggested
// price that total cost should represent (0.7 targets a ~30% margin).
type Params struct {
	LaborHourlyRate float64
	TargetCostRatio float64
}

func DefaultParams() Params {
	return Params{
		LaborHourlyRate: 15.0,
		TargetCostRatio: 0.7,
	}
}

// Input carries the raw quote figures. PrintRate is the per-hour machine rate
// of the selected print type (power cost + maintenance cost).
type Input struct {
	MaterialCost float64
	PrintTime    float64
	LaborTime    float64
	PrintRate    float64
}

type Output struct {
	PrintCost      float64
	LaborCost      float64
	TotalCost      float64
	SuggestedPrice float64
}

// Calculate derives the cost breakdown and suggested price for a quote.
// Non-finite inputs are coerced to zero before arithmetic, so the function
// never fails and never produces NaN/Inf.
func Calculate(in Input, p Params) Output {
	material := sanitize(in.MaterialCost)
	printTime := sanitize(in.PrintTime)
	laborTime := sanitize(in.LaborTime)
	printRate := sanitize(in.PrintRate)

	printCost := printTime * printRate
	laborCost := laborTime * sanitize(p.LaborHourlyRate)
	totalCost := material + printCost + laborCost

	ratio := sanitize(p.TargetCostRatio)
	suggested := totalCost
	if ratio > 0 {
		suggested = totalCost / ratio
	}

	return Output{
		PrintCost:      printCost,
		LaborCost:      laborCost,
		TotalCost:      totalCost,
		SuggestedPrice: suggested,
	}
}

// RoundCents normalizes a currency amount to cent granularity. Applied to
// actual_price on commit; derived costs are stored unrounded.
func RoundCents(v float64) float64 {
	if !isFinite(v) {
		return 0
	}
	return math.Round(v*100) / 100
}

func sanitize(v float64) float64 {
	if !isFinite(v) {
		return 0
	}
	return v
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
