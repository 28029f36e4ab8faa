package pricing

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommendEmptyHistory(t *testing.T) {
	target := time.Date(2025, time.April, 9, 0, 0, 0, 0, time.UTC)
	rec := Recommend(nil, target, 100)

	assert.Equal(t, 0.0, rec.Confidence)
	assert.Equal(t, DemandMedium, rec.Factors.DemandLevel)
	assert.Equal(t, TrendStable, rec.Factors.OccupancyTrend)
	assert.Equal(t, 100.0, rec.Factors.CompetitorAvgPrice)
	assert.Equal(t, 100.0, rec.RecommendedPrice)
	assert.Contains(t, rec.Reasoning, "already optimal")
}

func TestRecommendConfidence(t *testing.T) {
	target := time.Date(2025, time.April, 9, 0, 0, 0, 0, time.UTC)

	t.Run("SingleRecord", func(t *testing.T) {
		points := []HistoryPoint{{Date: target.AddDate(0, 0, -1), OccupancyRate: 60}}
		rec := Recommend(points, target, 50)
		assert.InDelta(t, 1.0/30, rec.Confidence, 1e-9)
	})

	t.Run("MonotonicAndSaturating", func(t *testing.T) {
		prev := 0.0
		for n := 0; n <= 40; n++ {
			rec := Recommend(histDays(target, n, 50), target, 100)
			assert.GreaterOrEqual(t, rec.Confidence, prev)
			prev = rec.Confidence
		}
		assert.Equal(t, 1.0, Recommend(histDays(target, 30, 50), target, 100).Confidence)
	})

	t.Run("FutureRecordsDoNotCount", func(t *testing.T) {
		points := []HistoryPoint{{Date: target.AddDate(0, 0, 5), OccupancyRate: 60}}
		rec := Recommend(points, target, 50)
		assert.Equal(t, 0.0, rec.Confidence)
	})
}

func TestRecommendFlatDemandScenario(t *testing.T) {
	// 30 flat days, no competitor data, April weekday: the engine should
	// stay close to the current price.
	target := time.Date(2025, time.April, 9, 0, 0, 0, 0, time.UTC) // Wednesday
	points := histDays(target, 30, 50)

	rec := Recommend(points, target, 100)
	assert.GreaterOrEqual(t, rec.RecommendedPrice, 85.0)
	assert.LessOrEqual(t, rec.RecommendedPrice, 115.0)
	assert.Equal(t, DemandMedium, rec.Factors.DemandLevel)
	assert.Equal(t, 1.0, rec.Confidence)
}

func TestRecommendWeekendCompetitorScenario(t *testing.T) {
	// Saturday target with competitors consistently at 140: both the
	// competitor pull and the weekend uplift push above the current price.
	target := time.Date(2025, time.April, 5, 0, 0, 0, 0, time.UTC) // Saturday
	points := histDays(target, 30, 50)
	for i := range points {
		points[i].CompetitorAvg = ptr(140)
		points[i].CompetitorMin = ptr(140)
		points[i].CompetitorMax = ptr(140)
	}

	rec := Recommend(points, target, 100)
	assert.Greater(t, rec.RecommendedPrice, 100.0)
	assert.True(t, rec.Factors.IsWeekend)
	assert.Contains(t, rec.Reasoning, "Weekend")
	assert.Contains(t, rec.Reasoning, "higher")
}

func TestRecommendRangeContainsPrice(t *testing.T) {
	targets := []time.Time{
		time.Date(2025, time.January, 11, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.April, 9, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.July, 19, 0, 0, 0, 0, time.UTC),
	}
	prices := []float64{40, 100, 310}

	for _, target := range targets {
		for _, price := range prices {
			points := histDays(target, 30, 65)
			for i := range points {
				points[i].CompetitorAvg = ptr(price * 1.4)
				points[i].CompetitorMin = ptr(price * 1.3)
				points[i].CompetitorMax = ptr(price * 1.5)
			}
			rec := Recommend(points, target, price)
			assert.LessOrEqual(t, rec.MinPrice, rec.RecommendedPrice)
			assert.GreaterOrEqual(t, rec.MaxPrice, rec.RecommendedPrice)
		}
	}
}

func TestRecommendMonetaryRounding(t *testing.T) {
	target := time.Date(2025, time.June, 13, 0, 0, 0, 0, time.UTC)
	points := histDays(target, 21, 73.4)
	for i := range points {
		points[i].CompetitorAvg = ptr(117.77)
	}

	rec := Recommend(points, target, 99.99)
	for name, v := range map[string]float64{
		"recommended": rec.RecommendedPrice,
		"min":         rec.MinPrice,
		"max":         rec.MaxPrice,
		"current":     rec.CurrentPrice,
		"competitor":  rec.Factors.CompetitorAvgPrice,
	} {
		cents := v * 100
		assert.InDelta(t, math.Round(cents), cents, 1e-6, "field %s carries more than 2 decimals: %v", name, v)
	}
}

func TestReasoningClauses(t *testing.T) {
	t.Run("OrderedAndTerminated", func(t *testing.T) {
		f := neutralFactors(100)
		f.DemandLevel = 0.9
		f.SeasonalityFactor = 1.20
		f.IsWeekend = true
		f.OccupancyTrend = 0.3
		f.CompetitorAvgPrice = 150

		text := reasoning(f, 130, 100)
		require.True(t, strings.HasSuffix(text, "."))

		clauses := strings.Split(strings.TrimSuffix(text, "."), ". ")
		require.Len(t, clauses, 6)
		assert.Contains(t, clauses[0], "Increase suggested of 30.0%")
		assert.Contains(t, clauses[1], "High expected demand")
		assert.Contains(t, clauses[2], "High season")
		assert.Contains(t, clauses[3], "Weekend")
		assert.Contains(t, clauses[4], "rising")
		assert.Contains(t, clauses[5], "50.0% higher")
	})

	t.Run("Decrease", func(t *testing.T) {
		f := neutralFactors(100)
		f.DemandLevel = 0.2
		f.OccupancyTrend = -0.3
		text := reasoning(f, 85, 100)
		assert.Contains(t, text, "Decrease suggested of 15.0%")
		assert.Contains(t, text, "Low expected demand")
		assert.Contains(t, text, "falling")
	})

	t.Run("NearlyOptimal", func(t *testing.T) {
		text := reasoning(neutralFactors(100), 100.6, 100)
		assert.Equal(t, "Current price already optimal.", text)
	})
}

func TestDemandAndTrendLabels(t *testing.T) {
	assert.Equal(t, DemandHigh, DemandLabel(0.71))
	assert.Equal(t, DemandMedium, DemandLabel(0.7))
	assert.Equal(t, DemandMedium, DemandLabel(0.4))
	assert.Equal(t, DemandLow, DemandLabel(0.39))

	assert.Equal(t, TrendIncreasing, TrendLabel(0.11))
	assert.Equal(t, TrendStable, TrendLabel(0.1))
	assert.Equal(t, TrendStable, TrendLabel(-0.1))
	assert.Equal(t, TrendDecreasing, TrendLabel(-0.11))
}
