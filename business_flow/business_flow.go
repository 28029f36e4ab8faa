// Package businessflow contains the business logic for the application.
package businessflow

import (
	"time"

	"github.com/rately/rately/app/dto"
	"github.com/rately/rately/models"
)

const RequestIDKey = "X-Request-ID"

// ClientMetadata holds all client-related information for audit logging and session tracking
type ClientMetadata struct {
	IPAddress  string            `json:"ip_address"`
	UserAgent  string            `json:"user_agent"`
	RequestID  string            `json:"request_id,omitempty"`
	Additional map[string]string `json:"additional,omitempty"`
}

// NewClientMetadata creates a new ClientMetadata instance with basic information
func NewClientMetadata(ipAddress, userAgent string) *ClientMetadata {
	return &ClientMetadata{
		IPAddress:  ipAddress,
		UserAgent:  userAgent,
		Additional: make(map[string]string),
	}
}

// AddAdditional adds additional custom information to the metadata
func (cm *ClientMetadata) AddAdditional(key, value string) {
	if cm.Additional == nil {
		cm.Additional = make(map[string]string)
	}
	cm.Additional[key] = value
}

// SetRequestID sets the request ID
func (cm *ClientMetadata) SetRequestID(requestID string) {
	cm.RequestID = requestID
}

// ToHotelDTO converts a hotel model to its API representation
func ToHotelDTO(hotel models.Hotel) dto.HotelDTO {
	return dto.HotelDTO{
		ID:            hotel.ID,
		UUID:          hotel.UUID.String(),
		Name:          hotel.Name,
		City:          hotel.City,
		Country:       hotel.Country,
		Category:      hotel.Category,
		RoomCount:     hotel.RoomCount,
		BasePrice:     hotel.BasePrice,
		Currency:      hotel.Currency,
		ScrapeEnabled: hotel.ScrapeEnabled,
		IsActive:      hotel.IsActive,
		CreatedAt:     hotel.CreatedAt.Format(time.RFC3339),
	}
}

// ToHistoricalRecordDTO converts a historical record model to its API representation
func ToHistoricalRecordDTO(record models.HistoricalRecord) dto.HistoricalRecordDTO {
	return dto.HistoricalRecordDTO{
		ID:                 record.ID,
		HotelID:            record.HotelID,
		Date:               record.Date.Format("2006-01-02"),
		OccupancyRate:      record.OccupancyRate,
		ADR:                record.ADR,
		RoomsSold:          record.RoomsSold,
		TotalRevenue:       record.TotalRevenue,
		TotalCosts:         record.TotalCosts,
		RevPAR:             record.RevPAR(),
		CompetitorAvgPrice: record.CompetitorAvgPrice,
		CompetitorMinPrice: record.CompetitorMinPrice,
		CompetitorMaxPrice: record.CompetitorMaxPrice,
		WeatherScore:       record.WeatherScore,
		EventImpactScore:   record.EventImpactScore,
		IsWeekend:          record.IsWeekend,
		IsHoliday:          record.IsHoliday,
	}
}

// ToCompetitorSnapshotDTO converts a competitor snapshot model to its API representation
func ToCompetitorSnapshotDTO(snapshot models.CompetitorSnapshot) dto.CompetitorSnapshotDTO {
	return dto.CompetitorSnapshotDTO{
		ID:          snapshot.ID,
		HotelID:     snapshot.HotelID,
		StayDate:    snapshot.StayDate.Format("2006-01-02"),
		AvgPrice:    snapshot.AvgPrice,
		MinPrice:    snapshot.MinPrice,
		MaxPrice:    snapshot.MaxPrice,
		SampleCount: snapshot.SampleCount,
		Currency:    snapshot.Currency,
		Source:      snapshot.Source,
		ScrapedAt:   snapshot.ScrapedAt.Format(time.RFC3339),
	}
}
