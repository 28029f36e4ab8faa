package pricing

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// ConfidenceSaturationDays is the amount of history on or before the
// target date at which confidence reaches 1.0.
const ConfidenceSaturationDays = 30

// Demand and trend display labels.
const (
	DemandHigh   = "high"
	DemandMedium = "medium"
	DemandLow    = "low"

	TrendIncreasing = "increasing"
	TrendStable     = "stable"
	TrendDecreasing = "decreasing"
)

// FactorSummary is the display subset of PricingFactors attached to a
// recommendation.
type FactorSummary struct {
	DemandLevel        string       `json:"demand_level"`
	CompetitorAvgPrice float64      `json:"competitor_avg_price"`
	SeasonalityFactor  float64      `json:"seasonality_factor"`
	OccupancyTrend     string       `json:"occupancy_trend"`
	DayOfWeek          time.Weekday `json:"day_of_week"`
	IsWeekend          bool         `json:"is_weekend"`
	IsHoliday          bool         `json:"is_holiday"`
}

// PriceRecommendation is the engine's output contract. All monetary fields
// carry at most 2 decimal digits and MinPrice <= RecommendedPrice <=
// MaxPrice always holds.
type PriceRecommendation struct {
	TargetDate       time.Time     `json:"target_date"`
	CurrentPrice     float64       `json:"current_price"`
	RecommendedPrice float64       `json:"recommended_price"`
	MinPrice         float64       `json:"min_price"`
	MaxPrice         float64       `json:"max_price"`
	Confidence       float64       `json:"confidence"`
	Reasoning        string        `json:"reasoning"`
	Factors          FactorSummary `json:"factors"`
}

// Recommend runs the full pipeline: extract factors from the historical
// series, calculate the bounded price, and compose the recommendation with
// confidence, price range, and reasoning. It is total over its input
// domain: empty history and missing fields degrade to neutral defaults.
// Callers must validate currentPrice > 0 before invoking.
func Recommend(points []HistoryPoint, targetDate time.Time, currentPrice float64) PriceRecommendation {
	factors := ExtractFactors(points, targetDate, currentPrice)
	recommended := CalculatePrice(factors)

	minPrice, maxPrice := priceRange(factors, recommended, currentPrice)

	return PriceRecommendation{
		TargetDate:       targetDate,
		CurrentPrice:     roundCents(currentPrice),
		RecommendedPrice: recommended,
		MinPrice:         minPrice,
		MaxPrice:         maxPrice,
		Confidence:       confidence(points, targetDate),
		Reasoning:        reasoning(factors, recommended, currentPrice),
		Factors: FactorSummary{
			DemandLevel:        DemandLabel(factors.DemandLevel),
			CompetitorAvgPrice: roundCents(factors.CompetitorAvgPrice),
			SeasonalityFactor:  factors.SeasonalityFactor,
			OccupancyTrend:     TrendLabel(factors.OccupancyTrend),
			DayOfWeek:          factors.DayOfWeek,
			IsWeekend:          factors.IsWeekend,
			IsHoliday:          factors.IsHoliday,
		},
	}
}

// confidence ramps linearly with the amount of history on or before the
// target date, saturating at ConfidenceSaturationDays.
func confidence(points []HistoryPoint, targetDate time.Time) float64 {
	count := 0
	for _, p := range points {
		if !p.Date.After(targetDate) {
			count++
		}
	}
	return math.Min(1, float64(count)/ConfidenceSaturationDays)
}

// priceRange suggests a band around the recommended price, bounded by the
// competitor extremes. The raw formula can exclude the recommended price
// itself for degenerate competitor spreads, so the band is widened to
// always contain it.
func priceRange(f PricingFactors, recommended, currentPrice float64) (minPrice, maxPrice float64) {
	diff := math.Abs(recommended - currentPrice)
	minPrice = math.Max(f.CompetitorMinPrice*floorCompetitorRatio, recommended-diff*0.5)
	maxPrice = math.Min(f.CompetitorMaxPrice*ceilCompetitorRatio, recommended+diff*0.5)

	if minPrice > recommended {
		minPrice = recommended
	}
	if maxPrice < recommended {
		maxPrice = recommended
	}

	return roundCents(minPrice), roundCents(maxPrice)
}

// DemandLabel maps a normalized demand level to its display label.
func DemandLabel(demand float64) string {
	switch {
	case demand > 0.7:
		return DemandHigh
	case demand < 0.4:
		return DemandLow
	default:
		return DemandMedium
	}
}

// TrendLabel maps a normalized occupancy trend to its display label.
func TrendLabel(trend float64) string {
	switch {
	case trend > 0.1:
		return TrendIncreasing
	case trend < -0.1:
		return TrendDecreasing
	default:
		return TrendStable
	}
}

// reasoning builds the human-readable explanation as an ordered list of
// short clauses. Clause order is fixed; each clause appears only when its
// condition holds.
func reasoning(f PricingFactors, recommended, currentPrice float64) string {
	var clauses []string

	priceDiff := recommended - currentPrice
	if math.Abs(priceDiff) < 1 {
		clauses = append(clauses, "Current price already optimal")
	} else {
		changePct := math.Abs(priceDiff) / currentPrice * 100
		direction := "Increase"
		if priceDiff < 0 {
			direction = "Decrease"
		}
		clauses = append(clauses, fmt.Sprintf("%s suggested of %.1f%%", direction, changePct))
	}

	if f.DemandLevel > 0.7 {
		clauses = append(clauses, "High expected demand based on historical occupancy")
	} else if f.DemandLevel < 0.4 {
		clauses = append(clauses, "Low expected demand based on historical occupancy")
	}

	if f.SeasonalityFactor > 1.1 {
		clauses = append(clauses, "High season for this time of year")
	} else if f.SeasonalityFactor < 0.9 {
		clauses = append(clauses, "Low season for this time of year")
	}

	if f.IsWeekend {
		clauses = append(clauses, "Weekend day with typically stronger demand")
	}

	if f.OccupancyTrend > 0.1 {
		clauses = append(clauses, "Occupancy trend is rising over the last two weeks")
	} else if f.OccupancyTrend < -0.1 {
		clauses = append(clauses, "Occupancy trend is falling over the last two weeks")
	}

	if math.Abs(f.CompetitorAvgPrice-currentPrice) > currentPrice*0.1 {
		gapPct := math.Abs(f.CompetitorAvgPrice-currentPrice) / currentPrice * 100
		relation := "higher"
		if f.CompetitorAvgPrice < currentPrice {
			relation = "lower"
		}
		clauses = append(clauses, fmt.Sprintf("Competitors are on average %.1f%% %s", gapPct, relation))
	}

	return strings.Join(clauses, ". ") + "."
}
