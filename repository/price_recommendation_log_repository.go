package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rately/rately/models"
	"gorm.io/gorm"
)

// PriceRecommendationLogRepositoryImpl implements PriceRecommendationLogRepository
type PriceRecommendationLogRepositoryImpl struct {
	*BaseRepository[models.PriceRecommendationLog, models.PriceRecommendationLogFilter]
}

// NewPriceRecommendationLogRepository creates a new repository for recommendation audit rows
func NewPriceRecommendationLogRepository(db *gorm.DB) PriceRecommendationLogRepository {
	return &PriceRecommendationLogRepositoryImpl{
		BaseRepository: NewBaseRepository[models.PriceRecommendationLog, models.PriceRecommendationLogFilter](db),
	}
}

// applyFilter applies filter conditions to the GORM query
func (r *PriceRecommendationLogRepositoryImpl) applyFilter(db *gorm.DB, filter models.PriceRecommendationLogFilter) *gorm.DB {
	if filter.HotelID != nil {
		db = db.Where("hotel_id = ?", *filter.HotelID)
	}
	if filter.TargetDateFrom != nil {
		db = db.Where("target_date >= ?", *filter.TargetDateFrom)
	}
	if filter.TargetDateTo != nil {
		db = db.Where("target_date <= ?", *filter.TargetDateTo)
	}
	return db
}

// ByFilter retrieves recommendation logs based on filter criteria
func (r *PriceRecommendationLogRepositoryImpl) ByFilter(ctx context.Context, filter models.PriceRecommendationLogFilter, orderBy string, limit, offset int) ([]*models.PriceRecommendationLog, error) {
	db := r.getDB(ctx)
	query := r.applyFilter(db.Model(&models.PriceRecommendationLog{}), filter)

	if orderBy == "" {
		orderBy = "created_at DESC"
	}
	query = query.Order(orderBy)

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var rows []*models.PriceRecommendationLog
	if err := query.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to find recommendation logs by filter: %w", err)
	}
	return rows, nil
}

// Count returns the number of recommendation logs matching the filter
func (r *PriceRecommendationLogRepositoryImpl) Count(ctx context.Context, filter models.PriceRecommendationLogFilter) (int64, error) {
	db := r.getDB(ctx)
	query := r.applyFilter(db.Model(&models.PriceRecommendationLog{}), filter)

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count recommendation logs: %w", err)
	}
	return count, nil
}

// Exists checks if any recommendation log matching the filter exists
func (r *PriceRecommendationLogRepositoryImpl) Exists(ctx context.Context, filter models.PriceRecommendationLogFilter) (bool, error) {
	count, err := r.Count(ctx, filter)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListByHotel returns a hotel's recommendation history, newest first
func (r *PriceRecommendationLogRepositoryImpl) ListByHotel(ctx context.Context, hotelID uint, limit, offset int) ([]*models.PriceRecommendationLog, error) {
	db := r.getDB(ctx)

	query := db.Where("hotel_id = ?", hotelID).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var rows []*models.PriceRecommendationLog
	if err := query.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list recommendation logs for hotel %d: %w", hotelID, err)
	}
	return rows, nil
}

// LatestByHotelAndTargetDate returns the most recent recommendation served
// for a hotel and target date
func (r *PriceRecommendationLogRepositoryImpl) LatestByHotelAndTargetDate(ctx context.Context, hotelID uint, targetDate time.Time) (*models.PriceRecommendationLog, error) {
	db := r.getDB(ctx)

	var row models.PriceRecommendationLog
	err := db.Where("hotel_id = ? AND target_date = ?", hotelID, targetDate.Format("2006-01-02")).
		Order("created_at DESC").
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find latest recommendation for hotel %d: %w", hotelID, err)
	}
	return &row, nil
}
