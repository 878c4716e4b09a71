package pricing_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"fabshop-backend/internal/pricing"
)

func ptr(v float64) *float64 { return &v }

func TestMargin_KnownValues(t *testing.T) {
	margin := pricing.Margin(ptr(100), ptr(70))
	if assert.NotNil(t, margin) {
		assert.InDelta(t, 30, *margin, 1e-9)
	}
}

func TestMargin_UnknownWhenActualIsZero(t *testing.T) {
	assert.Nil(t, pricing.Margin(ptr(0), ptr(70)))
}

func TestMargin_UnknownWhenEitherMissing(t *testing.T) {
	assert.Nil(t, pricing.Margin(nil, ptr(70)))
	assert.Nil(t, pricing.Margin(ptr(100), nil))
	assert.Nil(t, pricing.Margin(nil, nil))
}

func TestMargin_UnknownWhenNonFinite(t *testing.T) {
	assert.Nil(t, pricing.Margin(ptr(math.NaN()), ptr(70)))
	assert.Nil(t, pricing.Margin(ptr(100), ptr(math.Inf(1))))
}

func TestMargin_NegativeWhenSoldBelowCost(t *testing.T) {
	margin := pricing.Margin(ptr(50), ptr(75))
	if assert.NotNil(t, margin) {
		assert.InDelta(t, -50, *margin, 1e-9)
	}
}

func TestParseNumeric(t *testing.T) {
	if v := pricing.ParseNumeric(42.5); assert.NotNil(t, v) {
		assert.InDelta(t, 42.5, *v, 1e-9)
	}
	if v := pricing.ParseNumeric("19.99"); assert.NotNil(t, v) {
		assert.InDelta(t, 19.99, *v, 1e-9)
	}
	if v := pricing.ParseNumeric(int64(7)); assert.NotNil(t, v) {
		assert.InDelta(t, 7, *v, 1e-9)
	}

	assert.Nil(t, pricing.ParseNumeric(nil))
	assert.Nil(t, pricing.ParseNumeric("not a number"))
	assert.Nil(t, pricing.ParseNumeric(""))
	assert.Nil(t, pricing.ParseNumeric(math.NaN()))
	assert.Nil(t, pricing.ParseNumeric(true))
}

func TestClassifyMargin_Bands(t *testing.T) {
	assert.Equal(t, pricing.MarginGood, pricing.ClassifyMargin(45))
	assert.Equal(t, pricing.MarginGood, pricing.ClassifyMargin(30))
	assert.Equal(t, pricing.MarginCaution, pricing.ClassifyMargin(29.999))
	assert.Equal(t, pricing.MarginCaution, pricing.ClassifyMargin(25))
	assert.Equal(t, pricing.MarginLow, pricing.ClassifyMargin(24.999))
	assert.Equal(t, pricing.MarginLow, pricing.ClassifyMargin(0))
	assert.Equal(t, pricing.MarginLow, pricing.ClassifyMargin(-10))
}
