package pricing

import "time"

const (
	// CompetitorWindowDays is how many of the most recent records on or
	// before the target date feed the competitor price statistics.
	CompetitorWindowDays = 30

	// TrendWindowDays is the per-side width of the occupancy trend
	// comparison (most recent 7 records vs the 7 before them).
	TrendWindowDays = 7

	// neutralDemand is the demand level assumed when there is no history
	// to derive one from.
	neutralDemand = 0.5
)

// PricingFactors is the structured input to the price calculator, derived
// from the historical series and the target date. Constructed fresh per
// request and never mutated afterwards.
type PricingFactors struct {
	BasePrice          float64
	CompetitorPrice    float64
	CompetitorAvgPrice float64
	CompetitorMinPrice float64
	CompetitorMaxPrice float64
	DemandLevel        float64 // [0,1]
	SeasonalityFactor  float64 // roughly [0.8,1.2]
	OccupancyTrend     float64 // [-1,1], positive means rising
	DayOfWeek          time.Weekday
	IsWeekend          bool
	IsHoliday          bool
	WeatherScore       *float64
	EventImpactScore   *float64
}

// ExtractFactors derives pricing factors from a hotel's historical series
// for the given target date and current base price. The input slice may be
// unordered and may be empty; missing data degrades to neutral defaults
// (0.5 demand, 0 trend, base price for all competitor fields) rather than
// failing.
func ExtractFactors(points []HistoryPoint, targetDate time.Time, basePrice float64) PricingFactors {
	sorted := sortedByDate(points)
	window := competitorWindow(sorted, targetDate)

	f := PricingFactors{
		BasePrice:         basePrice,
		DemandLevel:       demandLevel(sorted, targetDate),
		SeasonalityFactor: SeasonalityFactor(int(targetDate.Month())),
		OccupancyTrend:    occupancyTrend(sorted),
		DayOfWeek:         targetDate.Weekday(),
		IsWeekend:         targetDate.Weekday() == time.Saturday || targetDate.Weekday() == time.Sunday,
		// Holiday detection has no calendar source yet and stays false.
		IsHoliday: false,
	}

	f.CompetitorPrice, f.CompetitorAvgPrice, f.CompetitorMinPrice, f.CompetitorMaxPrice = competitorPrices(window, basePrice)

	if len(window) > 0 {
		latest := window[len(window)-1]
		f.WeatherScore = latest.WeatherScore
		f.EventImpactScore = latest.EventImpactScore
	}

	return f
}

// demandLevel estimates expected demand in [0,1] from historical occupancy.
// It prefers records matching the target's weekday within one calendar
// month of the target month, falls back to the all-history average, and
// defaults to neutral when there is no history at all.
func demandLevel(sorted []HistoryPoint, targetDate time.Time) float64 {
	targetWeekday := targetDate.Weekday()
	targetMonth := int(targetDate.Month())

	var similar []float64
	for _, p := range sorted {
		monthDelta := int(p.Date.Month()) - targetMonth
		if monthDelta < 0 {
			monthDelta = -monthDelta
		}
		if p.Date.Weekday() == targetWeekday && monthDelta <= 1 {
			similar = append(similar, p.OccupancyRate)
		}
	}

	if len(similar) > 0 {
		return clamp(mean(similar)/100, 0, 1)
	}

	if len(sorted) == 0 {
		return neutralDemand
	}

	all := make([]float64, len(sorted))
	for i, p := range sorted {
		all[i] = p.OccupancyRate
	}
	return clamp(mean(all)/100, 0, 1)
}

// occupancyTrend compares the mean occupancy of the most recent 7 records
// against the 7 before them, normalized to [-1,1]. Fewer than 14 records
// reads as stable (0).
func occupancyTrend(sorted []HistoryPoint) float64 {
	if len(sorted) < 2*TrendWindowDays {
		return 0
	}

	recent := make([]float64, 0, TrendWindowDays)
	prior := make([]float64, 0, TrendWindowDays)
	n := len(sorted)
	for _, p := range sorted[n-TrendWindowDays:] {
		recent = append(recent, p.OccupancyRate)
	}
	for _, p := range sorted[n-2*TrendWindowDays : n-TrendWindowDays] {
		prior = append(prior, p.OccupancyRate)
	}

	return clamp((mean(recent)-mean(prior))/100, -1, 1)
}

// competitorWindow selects the most recent CompetitorWindowDays records on
// or before the target date, oldest first.
func competitorWindow(sorted []HistoryPoint, targetDate time.Time) []HistoryPoint {
	eligible := onOrBefore(sorted, targetDate)
	if len(eligible) > CompetitorWindowDays {
		eligible = eligible[len(eligible)-CompetitorWindowDays:]
	}
	return eligible
}

// competitorPrices derives the four competitor price fields from the
// window. Each record missing a competitor field contributes the base
// price instead; an empty window collapses everything to the base price.
func competitorPrices(window []HistoryPoint, basePrice float64) (latest, avg, min, max float64) {
	if len(window) == 0 {
		return basePrice, basePrice, basePrice, basePrice
	}

	latest = basePrice
	if last := window[len(window)-1]; last.CompetitorAvg != nil {
		latest = *last.CompetitorAvg
	}

	avgs := make([]float64, 0, len(window))
	min = valueOr(window[0].CompetitorMin, basePrice)
	max = valueOr(window[0].CompetitorMax, basePrice)
	for _, p := range window {
		avgs = append(avgs, valueOr(p.CompetitorAvg, basePrice))
		if lo := valueOr(p.CompetitorMin, basePrice); lo < min {
			min = lo
		}
		if hi := valueOr(p.CompetitorMax, basePrice); hi > max {
			max = hi
		}
	}

	return latest, mean(avgs), min, max
}

func valueOr(v *float64, fallback float64) float64 {
	if v == nil {
		return fallback
	}
	return *v
}
