// Package pricing implements the dynamic pricing recommendation engine.
// It is a pure computation layer: no I/O, no persistence, no shared mutable
// state. A recommendation is a deterministic function of the historical
// series snapshot, the target date, and the current price.
package pricing

import (
	"sort"
	"time"
)

// HistoryPoint is one historical day for a hotel as the engine sees it.
// Competitor prices and weather/event scores are optional; nil means the
// field was never recorded for that day.
type HistoryPoint struct {
	Date             time.Time
	OccupancyRate    float64 // percentage, expected range [0,100]
	ADR              float64
	TotalRevenue     float64
	TotalCosts       float64
	CompetitorAvg    *float64
	CompetitorMin    *float64
	CompetitorMax    *float64
	WeatherScore     *float64 // [0,1]
	EventImpactScore *float64 // [0,1]
	IsWeekend        bool
	IsHoliday        bool
}

// sortedByDate returns a copy of points ordered oldest first. The engine
// never mutates its input slice.
func sortedByDate(points []HistoryPoint) []HistoryPoint {
	sorted := make([]HistoryPoint, len(points))
	copy(sorted, points)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})
	return sorted
}

// onOrBefore filters sorted points down to those dated on or before target.
func onOrBefore(sorted []HistoryPoint, target time.Time) []HistoryPoint {
	// Points are ordered, so find the cut from the end.
	cut := len(sorted)
	for cut > 0 && sorted[cut-1].Date.After(target) {
		cut--
	}
	return sorted[:cut]
}
