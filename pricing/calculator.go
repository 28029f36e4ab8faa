package pricing

import "math"

// Blend weights for the sequential price adjustment. The step order below
// is part of the pricing contract: each step adjusts the running price, so
// the result is order-sensitive and must not be refactored into a single
// weighted average.
const (
	competitorGapWeight  = 0.3
	demandSwing          = 0.25
	seasonalityDamping   = 0.2
	weekendUplift        = 1.10
	trendThreshold       = 0.1
	trendWeight          = 0.1
	weatherSwing         = 0.05
	floorBaseRatio       = 0.7
	floorCompetitorRatio = 0.9
	ceilBaseRatio        = 1.5
	ceilCompetitorRatio  = 1.1
)

// CalculatePrice blends the extracted factors into one bounded recommended
// price. Pure and deterministic: same factors, same price. Callers must
// guarantee BasePrice > 0; the floor is a positive fraction of it, so the
// result is always positive.
func CalculatePrice(f PricingFactors) float64 {
	price := f.BasePrice

	// Pull 30% of the way toward the competitor average.
	price += (f.CompetitorAvgPrice - f.BasePrice) * competitorGapWeight

	// Demand above neutral raises the price, below lowers it (±12.5% at
	// the extremes).
	price *= 1 + (f.DemandLevel-neutralDemand)*demandSwing

	// Seasonality is damped: the table's [0.8,1.2] range compresses to
	// roughly [0.96,1.04] around neutral.
	price *= f.SeasonalityFactor*seasonalityDamping + (1 - seasonalityDamping)

	if f.IsWeekend {
		price *= weekendUplift
	}

	if math.Abs(f.OccupancyTrend) > trendThreshold {
		price *= 1 + f.OccupancyTrend*trendWeight
	}

	if f.WeatherScore != nil {
		price *= 1 + (*f.WeatherScore-0.5)*weatherSwing
	}

	floor := math.Max(f.BasePrice*floorBaseRatio, f.CompetitorMinPrice*floorCompetitorRatio)
	ceiling := math.Min(f.BasePrice*ceilBaseRatio, f.CompetitorMaxPrice*ceilCompetitorRatio)
	price = clamp(price, floor, ceiling)

	return roundCents(price)
}

// PriceBounds returns the floor and ceiling the calculator clamps into for
// the given factors. Exposed for callers that want to display or assert
// the guaranteed range.
func PriceBounds(f PricingFactors) (floor, ceiling float64) {
	floor = math.Max(f.BasePrice*floorBaseRatio, f.CompetitorMinPrice*floorCompetitorRatio)
	ceiling = math.Min(f.BasePrice*ceilBaseRatio, f.CompetitorMaxPrice*ceilCompetitorRatio)
	return floor, ceiling
}
