package pricing

// seasonalityTable holds the monthly demand multiplier for a coastal
// leisure property, indexed by calendar month (January = 0). The curve
// bottoms out in winter, climbs through spring, peaks in July, and
// recedes through autumn. This is a static policy constant, not a value
// learned from data.
var seasonalityTable = [12]float64{
	0.80, // January
	0.82, // February
	0.88, // March
	1.00, // April
	1.05, // May
	1.12, // June
	1.20, // July
	1.18, // August
	1.05, // September
	0.95, // October
	0.85, // November
	0.83, // December
}

// SeasonalityFactor returns the static multiplier for a calendar month
// (time.Month, i.e. January = 1).
func SeasonalityFactor(month int) float64 {
	if month < 1 || month > 12 {
		return 1.0
	}
	return seasonalityTable[month-1]
}
