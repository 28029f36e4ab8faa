package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PriceRecommendationLog is an immutable audit row for every recommendation
// the engine served. Never updated after creation; the factors payload
// preserves the exact inputs so past recommendations stay explainable.
// Table: price_recommendation_logs
type PriceRecommendationLog struct {
	ID      uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UUID    uuid.UUID `gorm:"type:uuid;uniqueIndex;not null;default:gen_random_uuid()" json:"uuid"`
	HotelID uint      `gorm:"not null;index:idx_price_recommendation_logs_hotel_target,priority:1" json:"hotel_id"`

	TargetDate time.Time `gorm:"type:date;not null;index:idx_price_recommendation_logs_hotel_target,priority:2" json:"target_date"`

	// Engine output
	CurrentPrice     float64 `gorm:"type:numeric(10,2);not null" json:"current_price"`
	RecommendedPrice float64 `gorm:"type:numeric(10,2);not null" json:"recommended_price"`
	MinPrice         float64 `gorm:"type:numeric(10,2);not null" json:"min_price"`
	MaxPrice         float64 `gorm:"type:numeric(10,2);not null" json:"max_price"`
	Confidence       float64 `gorm:"type:numeric(4,3);not null" json:"confidence"`
	Reasoning        string  `gorm:"type:text;not null" json:"reasoning"`

	// Factor snapshot serialized at recommendation time
	Factors json.RawMessage `gorm:"type:jsonb;default:'{}'" json:"factors"`

	// Whether the answer came from the cache rather than a fresh run
	ServedFromCache bool `gorm:"not null;default:false" json:"served_from_cache"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`

	Hotel Hotel `gorm:"foreignKey:HotelID;constraint:OnDelete:CASCADE" json:"hotel,omitempty"`
}

// BeforeCreate ensures the UUID is set
func (l *PriceRecommendationLog) BeforeCreate(tx *gorm.DB) error {
	if l.UUID == uuid.Nil {
		l.UUID = uuid.New()
	}
	return nil
}

func (PriceRecommendationLog) TableName() string {
	return "price_recommendation_logs"
}

type PriceRecommendationLogFilter struct {
	HotelID        *uint      `json:"hotel_id,omitempty"`
	TargetDateFrom *time.Time `json:"target_date_from,omitempty"`
	TargetDateTo   *time.Time `json:"target_date_to,omitempty"`
}
