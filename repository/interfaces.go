// Package repository provides data access layer implementations and interfaces for database operations
package repository

import (
	"context"
	"time"

	"github.com/rately/rately/models"
)

// RepositoryContext key for transaction in context
type contextKey string

const TxContextKey contextKey = "tx"

type Repository[T any, F any] interface {
	ByID(ctx context.Context, id uint) (*T, error)
	ByFilter(ctx context.Context, filter F, orderBy string, limit, offset int) ([]*T, error)
	Save(ctx context.Context, entity *T) error
	SaveBatch(ctx context.Context, entities []*T) error
	Count(ctx context.Context, filter F) (int64, error)
	Exists(ctx context.Context, filter F) (bool, error)
}

// HotelRepository defines operations for hotels
type HotelRepository interface {
	Repository[models.Hotel, models.HotelFilter]
	ByUUID(ctx context.Context, uuid string) (*models.Hotel, error)
	Update(ctx context.Context, hotel *models.Hotel) error
	ListActive(ctx context.Context, limit, offset int) ([]*models.Hotel, error)
	ListScrapeEnabled(ctx context.Context) ([]*models.Hotel, error)
	UpdateBasePrice(ctx context.Context, hotelID uint, basePrice float64) error
}

// HistoricalRecordRepository defines operations for daily historical records
type HistoricalRecordRepository interface {
	Repository[models.HistoricalRecord, models.HistoricalRecordFilter]
	ByHotelAndDate(ctx context.Context, hotelID uint, date time.Time) (*models.HistoricalRecord, error)
	ListByHotelAndRange(ctx context.Context, hotelID uint, from, to time.Time) ([]*models.HistoricalRecord, error)
	Upsert(ctx context.Context, record *models.HistoricalRecord) error
	UpsertBatch(ctx context.Context, records []*models.HistoricalRecord) error
	ApplyCompetitorPrices(ctx context.Context, hotelID uint, date time.Time, avg, min, max float64) error
	DailyStats(ctx context.Context, hotelID uint, from, to time.Time) (*DailyStats, error)
}

// DailyStats aggregates a hotel's historical records over a date range
type DailyStats struct {
	Days            int64   `json:"days"`
	AvgOccupancy    float64 `json:"avg_occupancy"`
	AvgADR          float64 `json:"avg_adr"`
	TotalRevenue    float64 `json:"total_revenue"`
	TotalCosts      float64 `json:"total_costs"`
	WeekendAvgOcc   float64 `json:"weekend_avg_occ"`
	WeekdayAvgOcc   float64 `json:"weekday_avg_occ"`
	DaysWithScrapes int64   `json:"days_with_scrapes"`
}

// CompetitorSnapshotRepository defines operations for scraped competitor rates
type CompetitorSnapshotRepository interface {
	Repository[models.CompetitorSnapshot, models.CompetitorSnapshotFilter]
	LatestByHotelAndStayDate(ctx context.Context, hotelID uint, stayDate time.Time) (*models.CompetitorSnapshot, error)
	ListByHotelAndRange(ctx context.Context, hotelID uint, from, to time.Time) ([]*models.CompetitorSnapshot, error)
}

// PriceRecommendationLogRepository defines operations for recommendation audit rows
type PriceRecommendationLogRepository interface {
	Repository[models.PriceRecommendationLog, models.PriceRecommendationLogFilter]
	ListByHotel(ctx context.Context, hotelID uint, limit, offset int) ([]*models.PriceRecommendationLog, error)
	LatestByHotelAndTargetDate(ctx context.Context, hotelID uint, targetDate time.Time) (*models.PriceRecommendationLog, error)
}
