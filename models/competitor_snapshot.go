package models

import (
	"time"
)

// Competitor snapshot sources
const (
	SnapshotSourceScraper = "scraper"
	SnapshotSourceImport  = "import"
	SnapshotSourceManual  = "manual"
)

// CompetitorSnapshot is one observed competitor rate set for a hotel and
// stay date, as returned by the scraper service. Snapshots are append-only;
// the sync scheduler folds the latest ones into historical_records.
// Table: competitor_snapshots
type CompetitorSnapshot struct {
	ID       uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	HotelID  uint      `gorm:"not null;index:idx_competitor_snapshots_hotel_date,priority:1" json:"hotel_id"`
	StayDate time.Time `gorm:"type:date;not null;index:idx_competitor_snapshots_hotel_date,priority:2" json:"stay_date"`

	// Aggregated rates across scraped competitors
	AvgPrice    float64 `gorm:"type:numeric(10,2);not null" json:"avg_price"`
	MinPrice    float64 `gorm:"type:numeric(10,2);not null" json:"min_price"`
	MaxPrice    float64 `gorm:"type:numeric(10,2);not null" json:"max_price"`
	SampleCount int     `gorm:"not null;default:0" json:"sample_count"`
	Currency    string  `gorm:"size:3;not null;default:'EUR'" json:"currency"`

	Source    string    `gorm:"type:varchar(20);not null;default:'scraper'" json:"source"`
	ScrapedAt time.Time `gorm:"not null" json:"scraped_at"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`

	Hotel Hotel `gorm:"foreignKey:HotelID;constraint:OnDelete:CASCADE" json:"hotel,omitempty"`
}

func (CompetitorSnapshot) TableName() string {
	return "competitor_snapshots"
}

type CompetitorSnapshotFilter struct {
	HotelID      *uint      `json:"hotel_id,omitempty"`
	StayDateFrom *time.Time `json:"stay_date_from,omitempty"`
	StayDateTo   *time.Time `json:"stay_date_to,omitempty"`
	Source       *string    `json:"source,omitempty"`
}
