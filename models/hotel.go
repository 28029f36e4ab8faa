package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Hotel property categories
const (
	HotelCategoryBudget   = "budget"
	HotelCategoryMidscale = "midscale"
	HotelCategoryUpscale  = "upscale"
	HotelCategoryLuxury   = "luxury"
)

// Hotel represents a property enrolled in the pricing platform.
// BasePrice is the reference nightly rate the recommendation engine
// anchors its floor and ceiling on.
type Hotel struct {
	ID   uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UUID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null;default:gen_random_uuid()" json:"uuid"`

	// Property information
	Name      string  `gorm:"size:255;not null" json:"name"`
	City      string  `gorm:"size:100;not null;index" json:"city"`
	Country   string  `gorm:"size:2;not null" json:"country"` // ISO 3166-1 alpha-2
	Category  string  `gorm:"type:varchar(20);not null;default:'midscale'" json:"category"`
	RoomCount int     `gorm:"not null" json:"room_count"`
	BasePrice float64 `gorm:"type:numeric(10,2);not null" json:"base_price"`
	Currency  string  `gorm:"size:3;not null;default:'EUR'" json:"currency"`

	// Competitor scraping configuration
	ScrapeEnabled *bool   `gorm:"default:true" json:"scrape_enabled"`
	ScrapeQuery   *string `gorm:"size:500" json:"scrape_query,omitempty"`

	IsActive *bool `gorm:"default:true" json:"is_active"`

	// Audit fields
	CreatedAt time.Time      `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

// BeforeCreate ensures the UUID is set
func (h *Hotel) BeforeCreate(tx *gorm.DB) error {
	if h.UUID == uuid.Nil {
		h.UUID = uuid.New()
	}
	return nil
}

func (Hotel) TableName() string {
	return "hotels"
}

type HotelFilter struct {
	UUID     *uuid.UUID `json:"uuid,omitempty"`
	City     *string    `json:"city,omitempty"`
	Category *string    `json:"category,omitempty"`
	IsActive *bool      `json:"is_active,omitempty"`
}
