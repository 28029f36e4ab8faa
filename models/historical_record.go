package models

import (
	"time"

	"gorm.io/gorm"
)

// HistoricalRecord is one day of performance data for a hotel. One row per
// hotel per date; imports upsert on the (hotel_id, date) pair. Competitor
// prices and weather/event scores are nullable because not every source
// provides them.
// Table: historical_records
type HistoricalRecord struct {
	ID      uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	HotelID uint      `gorm:"not null;uniqueIndex:idx_historical_records_hotel_date,priority:1" json:"hotel_id"`
	Date    time.Time `gorm:"type:date;not null;uniqueIndex:idx_historical_records_hotel_date,priority:2" json:"date"`

	// Occupancy and revenue
	OccupancyRate float64 `gorm:"type:numeric(5,2);not null;default:0" json:"occupancy_rate"` // percentage [0,100]
	ADR           float64 `gorm:"column:adr;type:numeric(10,2);not null;default:0" json:"adr"`
	RoomsSold     int     `gorm:"not null;default:0" json:"rooms_sold"`
	TotalRevenue  float64 `gorm:"type:numeric(12,2);not null;default:0" json:"total_revenue"`
	TotalCosts    float64 `gorm:"type:numeric(12,2);not null;default:0" json:"total_costs"`

	// Competitor prices observed that day (nullable)
	CompetitorAvgPrice *float64 `gorm:"type:numeric(10,2)" json:"competitor_avg_price,omitempty"`
	CompetitorMinPrice *float64 `gorm:"type:numeric(10,2)" json:"competitor_min_price,omitempty"`
	CompetitorMaxPrice *float64 `gorm:"type:numeric(10,2)" json:"competitor_max_price,omitempty"`

	// External signals (nullable, [0,1])
	WeatherScore     *float64 `gorm:"type:numeric(3,2)" json:"weather_score,omitempty"`
	EventImpactScore *float64 `gorm:"type:numeric(3,2)" json:"event_impact_score,omitempty"`

	IsWeekend bool `gorm:"not null;default:false" json:"is_weekend"`
	IsHoliday bool `gorm:"not null;default:false" json:"is_holiday"`

	// Audit fields
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`

	// Relationships
	Hotel Hotel `gorm:"foreignKey:HotelID;constraint:OnDelete:CASCADE" json:"hotel,omitempty"`
}

// BeforeSave derives the weekend flag from the record date
func (r *HistoricalRecord) BeforeSave(tx *gorm.DB) error {
	wd := r.Date.Weekday()
	r.IsWeekend = wd == time.Saturday || wd == time.Sunday
	return nil
}

// RevPAR returns revenue per available room (ADR x occupancy)
func (r *HistoricalRecord) RevPAR() float64 {
	return r.ADR * r.OccupancyRate / 100
}

// GrossMargin returns revenue minus costs for the day
func (r *HistoricalRecord) GrossMargin() float64 {
	return r.TotalRevenue - r.TotalCosts
}

func (HistoricalRecord) TableName() string {
	return "historical_records"
}

type HistoricalRecordFilter struct {
	HotelID  *uint      `json:"hotel_id,omitempty"`
	DateFrom *time.Time `json:"date_from,omitempty"`
	DateTo   *time.Time `json:"date_to,omitempty"`
	Weekend  *bool      `json:"weekend,omitempty"`
}
