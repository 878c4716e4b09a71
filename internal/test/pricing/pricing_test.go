package pricing_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"fabshop-backend/internal/pricing"
)

const tolerance = 1e-9

func TestCalculate_WorkedScenario(t *testing.T) {
	// $10 material, 5h print on a 0.10+0.04 $/h machine, 2h labor at $15/h
	out := pricing.Calculate(pricing.Input{
		MaterialCost: 10,
		PrintTime:    5,
		LaborTime:    2,
		PrintRate:    0.10 + 0.04,
	}, pricing.DefaultParams())

	assert.InDelta(t, 0.70, out.PrintCost, tolerance)
	assert.InDelta(t, 30.0, out.LaborCost, tolerance)
	assert.InDelta(t, 40.70, out.TotalCost, tolerance)
	assert.InDelta(t, 40.70/0.7, out.SuggestedPrice, 1e-6)
}

func TestCalculate_TotalIsSumOfParts(t *testing.T) {
	cases := []pricing.Input{
		{MaterialCost: 0, PrintTime: 0, LaborTime: 0, PrintRate: 0},
		{MaterialCost: 12.34, PrintTime: 7.5, LaborTime: 0.25, PrintRate: 0.5},
		{MaterialCost: 999.99, PrintTime: 100, LaborTime: 40, PrintRate: 1.75},
	}

	for _, in := range cases {
		out := pricing.Calculate(in, pricing.DefaultParams())
		assert.InDelta(t, in.MaterialCost+out.PrintCost+out.LaborCost, out.TotalCost, tolerance)
	}
}

func TestCalculate_SuggestedPriceCoversCost(t *testing.T) {
	out := pricing.Calculate(pricing.Input{
		MaterialCost: 25,
		PrintTime:    3,
		LaborTime:    1,
		PrintRate:    0.2,
	}, pricing.DefaultParams())

	assert.InDelta(t, out.TotalCost/0.7, out.SuggestedPrice, tolerance)
	assert.GreaterOrEqual(t, out.SuggestedPrice, out.TotalCost)
}

func TestCalculate_CoercesNonFiniteInputs(t *testing.T) {
	out := pricing.Calculate(pricing.Input{
		MaterialCost: math.NaN(),
		PrintTime:    math.Inf(1),
		LaborTime:    2,
		PrintRate:    math.Inf(-1),
	}, pricing.DefaultParams())

	assert.InDelta(t, 0, out.PrintCost, tolerance)
	assert.InDelta(t, 30, out.LaborCost, tolerance)
	assert.InDelta(t, 30, out.TotalCost, tolerance)
	assert.False(t, math.IsNaN(out.SuggestedPrice))
	assert.False(t, math.IsInf(out.SuggestedPrice, 0))
}

func TestCalculate_Idempotent(t *testing.T) {
	in := pricing.Input{MaterialCost: 10, PrintTime: 5, LaborTime: 2, PrintRate: 0.14}
	first := pricing.Calculate(in, pricing.DefaultParams())
	second := pricing.Calculate(in, pricing.DefaultParams())
	assert.Equal(t, first, second)
}

func TestCalculate_ParamsAreConfigurable(t *testing.T) {
	params := pricing.Params{LaborHourlyRate: 20, TargetCostRatio: 0.5}
	out := pricing.Calculate(pricing.Input{LaborTime: 2}, params)

	assert.InDelta(t, 40, out.LaborCost, tolerance)
	assert.InDelta(t, 80, out.SuggestedPrice, tolerance)
}

func TestCalculate_ZeroRatioFallsBackToCost(t *testing.T) {
	params := pricing.Params{LaborHourlyRate: 15, TargetCostRatio: 0}
	out := pricing.Calculate(pricing.Input{MaterialCost: 50}, params)
	assert.InDelta(t, 50, out.SuggestedPrice, tolerance)
}

func TestRoundCents(t *testing.T) {
	assert.InDelta(t, 58.14, pricing.RoundCents(58.142857), tolerance)
	assert.InDelta(t, 58.15, pricing.RoundCents(58.145), tolerance)
	assert.InDelta(t, 0, pricing.RoundCents(math.NaN()), tolerance)
	assert.InDelta(t, 0, pricing.RoundCents(math.Inf(1)), tolerance)
}
