package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rately/rately/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// HistoricalRecordRepositoryImpl implements HistoricalRecordRepository
type HistoricalRecordRepositoryImpl struct {
	*BaseRepository[models.HistoricalRecord, models.HistoricalRecordFilter]
}

// NewHistoricalRecordRepository creates a new repository for historical records
func NewHistoricalRecordRepository(db *gorm.DB) HistoricalRecordRepository {
	return &HistoricalRecordRepositoryImpl{
		BaseRepository: NewBaseRepository[models.HistoricalRecord, models.HistoricalRecordFilter](db),
	}
}

// applyFilter applies filter conditions to the GORM query
func (r *HistoricalRecordRepositoryImpl) applyFilter(db *gorm.DB, filter models.HistoricalRecordFilter) *gorm.DB {
	if filter.HotelID != nil {
		db = db.Where("hotel_id = ?", *filter.HotelID)
	}
	if filter.DateFrom != nil {
		db = db.Where("date >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		db = db.Where("date <= ?", *filter.DateTo)
	}
	if filter.Weekend != nil {
		db = db.Where("is_weekend = ?", *filter.Weekend)
	}
	return db
}

// ByFilter retrieves historical records based on filter criteria
func (r *HistoricalRecordRepositoryImpl) ByFilter(ctx context.Context, filter models.HistoricalRecordFilter, orderBy string, limit, offset int) ([]*models.HistoricalRecord, error) {
	db := r.getDB(ctx)
	query := r.applyFilter(db.Model(&models.HistoricalRecord{}), filter)

	if orderBy == "" {
		orderBy = "date ASC"
	}
	query = query.Order(orderBy)

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var rows []*models.HistoricalRecord
	if err := query.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to find historical records by filter: %w", err)
	}
	return rows, nil
}

// Count returns the number of historical records matching the filter
func (r *HistoricalRecordRepositoryImpl) Count(ctx context.Context, filter models.HistoricalRecordFilter) (int64, error) {
	db := r.getDB(ctx)
	query := r.applyFilter(db.Model(&models.HistoricalRecord{}), filter)

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count historical records: %w", err)
	}
	return count, nil
}

// Exists checks if any historical record matching the filter exists
func (r *HistoricalRecordRepositoryImpl) Exists(ctx context.Context, filter models.HistoricalRecordFilter) (bool, error) {
	count, err := r.Count(ctx, filter)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ByHotelAndDate retrieves the single record for a hotel and date
func (r *HistoricalRecordRepositoryImpl) ByHotelAndDate(ctx context.Context, hotelID uint, date time.Time) (*models.HistoricalRecord, error) {
	db := r.getDB(ctx)

	var record models.HistoricalRecord
	err := db.Where("hotel_id = ? AND date = ?", hotelID, date.Format("2006-01-02")).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find record for hotel %d on %s: %w", hotelID, date.Format("2006-01-02"), err)
	}
	return &record, nil
}

// ListByHotelAndRange returns a hotel's records within [from, to], oldest first
func (r *HistoricalRecordRepositoryImpl) ListByHotelAndRange(ctx context.Context, hotelID uint, from, to time.Time) ([]*models.HistoricalRecord, error) {
	db := r.getDB(ctx)

	var rows []*models.HistoricalRecord
	err := db.Where("hotel_id = ? AND date >= ? AND date <= ?", hotelID, from.Format("2006-01-02"), to.Format("2006-01-02")).
		Order("date ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list records for hotel %d: %w", hotelID, err)
	}
	return rows, nil
}

// Upsert inserts the record or updates the existing row for the same
// (hotel_id, date) pair. Imports re-run safely because of this.
func (r *HistoricalRecordRepositoryImpl) Upsert(ctx context.Context, record *models.HistoricalRecord) error {
	return r.UpsertBatch(ctx, []*models.HistoricalRecord{record})
}

// UpsertBatch upserts multiple records in a single statement
func (r *HistoricalRecordRepositoryImpl) UpsertBatch(ctx context.Context, records []*models.HistoricalRecord) error {
	if len(records) == 0 {
		return nil
	}

	db, shouldCommit, err := r.getDBForWrite(ctx)
	if err != nil {
		return err
	}

	if shouldCommit {
		defer func() {
			if err != nil {
				db.Rollback()
			} else {
				db.Commit()
			}
		}()
	}

	err = db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "hotel_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"occupancy_rate", "adr", "rooms_sold", "total_revenue", "total_costs",
			"competitor_avg_price", "competitor_min_price", "competitor_max_price",
			"weather_score", "event_impact_score", "is_weekend", "is_holiday", "updated_at",
		}),
	}).CreateInBatches(records, 100).Error
	if err != nil {
		return fmt.Errorf("failed to upsert historical records: %w", err)
	}

	return nil
}

// ApplyCompetitorPrices folds scraped competitor rates into the day's
// record, creating a minimal row when the day has no record yet
func (r *HistoricalRecordRepositoryImpl) ApplyCompetitorPrices(ctx context.Context, hotelID uint, date time.Time, avg, min, max float64) error {
	db, shouldCommit, err := r.getDBForWrite(ctx)
	if err != nil {
		return err
	}

	if shouldCommit {
		defer func() {
			if err != nil {
				db.Rollback()
			} else {
				db.Commit()
			}
		}()
	}

	err = db.Exec(`
		INSERT INTO historical_records (hotel_id, date, competitor_avg_price, competitor_min_price, competitor_max_price, is_weekend, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, EXTRACT(ISODOW FROM ?::date) IN (6, 7), CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		ON CONFLICT (hotel_id, date) DO UPDATE SET
			competitor_avg_price = EXCLUDED.competitor_avg_price,
			competitor_min_price = EXCLUDED.competitor_min_price,
			competitor_max_price = EXCLUDED.competitor_max_price,
			updated_at = CURRENT_TIMESTAMP
	`, hotelID, date.Format("2006-01-02"), avg, min, max, date.Format("2006-01-02")).Error
	if err != nil {
		return fmt.Errorf("failed to apply competitor prices for hotel %d: %w", hotelID, err)
	}

	return nil
}

// DailyStats aggregates occupancy, rate, and revenue figures over a range
func (r *HistoricalRecordRepositoryImpl) DailyStats(ctx context.Context, hotelID uint, from, to time.Time) (*DailyStats, error) {
	db := r.getDB(ctx)

	var stats DailyStats
	err := db.Raw(`
		SELECT
			COUNT(*) AS days,
			COALESCE(AVG(occupancy_rate), 0) AS avg_occupancy,
			COALESCE(AVG(adr), 0) AS avg_adr,
			COALESCE(SUM(total_revenue), 0) AS total_revenue,
			COALESCE(SUM(total_costs), 0) AS total_costs,
			COALESCE(AVG(occupancy_rate) FILTER (WHERE is_weekend), 0) AS weekend_avg_occ,
			COALESCE(AVG(occupancy_rate) FILTER (WHERE NOT is_weekend), 0) AS weekday_avg_occ,
			COUNT(*) FILTER (WHERE competitor_avg_price IS NOT NULL) AS days_with_scrapes
		FROM historical_records
		WHERE hotel_id = ? AND date >= ? AND date <= ?
	`, hotelID, from.Format("2006-01-02"), to.Format("2006-01-02")).Scan(&stats).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate daily stats for hotel %d: %w", hotelID, err)
	}

	return &stats, nil
}
