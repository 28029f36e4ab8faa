package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rately/rately/models"
	"gorm.io/gorm"
)

// CompetitorSnapshotRepositoryImpl implements CompetitorSnapshotRepository
type CompetitorSnapshotRepositoryImpl struct {
	*BaseRepository[models.CompetitorSnapshot, models.CompetitorSnapshotFilter]
}

// NewCompetitorSnapshotRepository creates a new repository for competitor snapshots
func NewCompetitorSnapshotRepository(db *gorm.DB) CompetitorSnapshotRepository {
	return &CompetitorSnapshotRepositoryImpl{
		BaseRepository: NewBaseRepository[models.CompetitorSnapshot, models.CompetitorSnapshotFilter](db),
	}
}

// applyFilter applies filter conditions to the GORM query
func (r *CompetitorSnapshotRepositoryImpl) applyFilter(db *gorm.DB, filter models.CompetitorSnapshotFilter) *gorm.DB {
	if filter.HotelID != nil {
		db = db.Where("hotel_id = ?", *filter.HotelID)
	}
	if filter.StayDateFrom != nil {
		db = db.Where("stay_date >= ?", *filter.StayDateFrom)
	}
	if filter.StayDateTo != nil {
		db = db.Where("stay_date <= ?", *filter.StayDateTo)
	}
	if filter.Source != nil {
		db = db.Where("source = ?", *filter.Source)
	}
	return db
}

// ByFilter retrieves competitor snapshots based on filter criteria
func (r *CompetitorSnapshotRepositoryImpl) ByFilter(ctx context.Context, filter models.CompetitorSnapshotFilter, orderBy string, limit, offset int) ([]*models.CompetitorSnapshot, error) {
	db := r.getDB(ctx)
	query := r.applyFilter(db.Model(&models.CompetitorSnapshot{}), filter)

	if orderBy == "" {
		orderBy = "scraped_at DESC"
	}
	query = query.Order(orderBy)

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var rows []*models.CompetitorSnapshot
	if err := query.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to find competitor snapshots by filter: %w", err)
	}
	return rows, nil
}

// Count returns the number of competitor snapshots matching the filter
func (r *CompetitorSnapshotRepositoryImpl) Count(ctx context.Context, filter models.CompetitorSnapshotFilter) (int64, error) {
	db := r.getDB(ctx)
	query := r.applyFilter(db.Model(&models.CompetitorSnapshot{}), filter)

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count competitor snapshots: %w", err)
	}
	return count, nil
}

// Exists checks if any competitor snapshot matching the filter exists
func (r *CompetitorSnapshotRepositoryImpl) Exists(ctx context.Context, filter models.CompetitorSnapshotFilter) (bool, error) {
	count, err := r.Count(ctx, filter)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// LatestByHotelAndStayDate returns the freshest snapshot for a stay date
func (r *CompetitorSnapshotRepositoryImpl) LatestByHotelAndStayDate(ctx context.Context, hotelID uint, stayDate time.Time) (*models.CompetitorSnapshot, error) {
	db := r.getDB(ctx)

	var snapshot models.CompetitorSnapshot
	err := db.Where("hotel_id = ? AND stay_date = ?", hotelID, stayDate.Format("2006-01-02")).
		Order("scraped_at DESC").
		First(&snapshot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find latest snapshot for hotel %d: %w", hotelID, err)
	}
	return &snapshot, nil
}

// ListByHotelAndRange returns the latest snapshot per stay date within [from, to]
func (r *CompetitorSnapshotRepositoryImpl) ListByHotelAndRange(ctx context.Context, hotelID uint, from, to time.Time) ([]*models.CompetitorSnapshot, error) {
	db := r.getDB(ctx)

	var rows []*models.CompetitorSnapshot
	err := db.Raw(`
		SELECT DISTINCT ON (stay_date) *
		FROM competitor_snapshots
		WHERE hotel_id = ? AND stay_date >= ? AND stay_date <= ?
		ORDER BY stay_date ASC, scraped_at DESC
	`, hotelID, from.Format("2006-01-02"), to.Format("2006-01-02")).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots for hotel %d: %w", hotelID, err)
	}
	return rows, nil
}
