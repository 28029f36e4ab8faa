package pricing

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func neutralFactors(basePrice float64) PricingFactors {
	return PricingFactors{
		BasePrice:          basePrice,
		CompetitorPrice:    basePrice,
		CompetitorAvgPrice: basePrice,
		CompetitorMinPrice: basePrice,
		CompetitorMaxPrice: basePrice,
		DemandLevel:        0.5,
		SeasonalityFactor:  1.0,
		OccupancyTrend:     0,
		DayOfWeek:          time.Wednesday,
	}
}

func TestCalculatePriceNeutralInputs(t *testing.T) {
	assert.Equal(t, 100.0, CalculatePrice(neutralFactors(100)))
}

func TestCalculatePriceSteps(t *testing.T) {
	t.Run("CompetitorGapPullsPartway", func(t *testing.T) {
		f := neutralFactors(100)
		f.CompetitorAvgPrice = 140
		f.CompetitorMaxPrice = 140
		// 100 + (140-100)*0.3 = 112
		assert.Equal(t, 112.0, CalculatePrice(f))
	})

	t.Run("DemandSwing", func(t *testing.T) {
		f := neutralFactors(100)
		f.DemandLevel = 1.0
		f.CompetitorMaxPrice = 140
		// 100 * (1 + 0.5*0.25) = 112.5
		assert.Equal(t, 112.5, CalculatePrice(f))
	})

	t.Run("SeasonalityDamped", func(t *testing.T) {
		f := neutralFactors(100)
		f.SeasonalityFactor = 1.20
		// 1.20*0.2 + 0.8 = 1.04
		assert.Equal(t, 104.0, CalculatePrice(f))
	})

	t.Run("WeekendUplift", func(t *testing.T) {
		f := neutralFactors(100)
		f.IsWeekend = true
		f.CompetitorMaxPrice = 140
		assert.Equal(t, 110.0, CalculatePrice(f))
	})

	t.Run("TrendBelowThresholdIgnored", func(t *testing.T) {
		f := neutralFactors(100)
		f.OccupancyTrend = 0.1
		assert.Equal(t, 100.0, CalculatePrice(f))
	})

	t.Run("TrendAboveThresholdApplied", func(t *testing.T) {
		f := neutralFactors(100)
		f.OccupancyTrend = 0.2
		f.CompetitorMaxPrice = 140
		assert.Equal(t, 102.0, CalculatePrice(f))
	})

	t.Run("WeatherOptional", func(t *testing.T) {
		f := neutralFactors(100)
		f.WeatherScore = ptr(1.0)
		assert.Equal(t, 102.5, CalculatePrice(f))
	})
}

func TestCalculatePriceBoundedness(t *testing.T) {
	bases := []float64{25, 50, 100, 420}
	demands := []float64{0, 0.5, 1}
	seasons := []float64{0.80, 1.00, 1.20}
	trends := []float64{-1, 0, 1}
	compAvgs := []float64{0.5, 1.0, 1.8} // ratio of base

	for _, base := range bases {
		for _, demand := range demands {
			for _, season := range seasons {
				for _, trend := range trends {
					for _, ratio := range compAvgs {
						f := neutralFactors(base)
						f.DemandLevel = demand
						f.SeasonalityFactor = season
						f.OccupancyTrend = trend
						f.CompetitorAvgPrice = base * ratio
						f.CompetitorMinPrice = base * ratio * 0.9
						f.CompetitorMaxPrice = base * ratio * 1.1
						f.IsWeekend = trend > 0

						price := CalculatePrice(f)
						floor, ceiling := PriceBounds(f)
						if floor > ceiling {
							// Degenerate competitor spread collapses the
							// band; the clamp resolves toward the floor.
							continue
						}
						assert.GreaterOrEqual(t, price, roundCents(floor))
						assert.LessOrEqual(t, price, roundCents(ceiling))
						assert.Positive(t, price)
					}
				}
			}
		}
	}
}

func TestCalculatePriceRounding(t *testing.T) {
	f := neutralFactors(99.99)
	f.DemandLevel = 0.63
	f.SeasonalityFactor = 1.05
	f.OccupancyTrend = 0.17
	f.CompetitorAvgPrice = 103.37
	f.CompetitorMinPrice = 88.88
	f.CompetitorMaxPrice = 131.31

	price := CalculatePrice(f)
	cents := price * 100
	assert.InDelta(t, math.Round(cents), cents, 1e-9)
}

func TestRoundCentsHalfUp(t *testing.T) {
	assert.Equal(t, 10.13, roundCents(10.125))
	assert.Equal(t, 10.12, roundCents(10.124))
	assert.Equal(t, 0.0, roundCents(0))
}
