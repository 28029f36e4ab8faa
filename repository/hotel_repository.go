package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/rately/rately/models"
	"github.com/rately/rately/utils"
	"gorm.io/gorm"
)

// HotelRepositoryImpl implements HotelRepository
type HotelRepositoryImpl struct {
	*BaseRepository[models.Hotel, models.HotelFilter]
}

// NewHotelRepository creates a new repository for hotels
func NewHotelRepository(db *gorm.DB) HotelRepository {
	return &HotelRepositoryImpl{
		BaseRepository: NewBaseRepository[models.Hotel, models.HotelFilter](db),
	}
}

// applyFilter applies filter conditions to the GORM query
func (r *HotelRepositoryImpl) applyFilter(db *gorm.DB, filter models.HotelFilter) *gorm.DB {
	if filter.UUID != nil {
		db = db.Where("uuid = ?", *filter.UUID)
	}
	if filter.City != nil {
		db = db.Where("city = ?", *filter.City)
	}
	if filter.Category != nil {
		db = db.Where("category = ?", *filter.Category)
	}
	if filter.IsActive != nil {
		db = db.Where("is_active = ?", *filter.IsActive)
	}
	return db
}

// ByFilter retrieves hotels based on filter criteria
func (r *HotelRepositoryImpl) ByFilter(ctx context.Context, filter models.HotelFilter, orderBy string, limit, offset int) ([]*models.Hotel, error) {
	db := r.getDB(ctx)
	query := r.applyFilter(db.Model(&models.Hotel{}), filter)

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

	var rows []*models.Hotel
	if err := query.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to find hotels by filter: %w", err)
	}
	return rows, nil
}

// Count returns the number of hotels matching the filter
func (r *HotelRepositoryImpl) Count(ctx context.Context, filter models.HotelFilter) (int64, error) {
	db := r.getDB(ctx)
	query := r.applyFilter(db.Model(&models.Hotel{}), filter)

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count hotels: %w", err)
	}
	return count, nil
}

// Exists checks if any hotel matching the filter exists
func (r *HotelRepositoryImpl) Exists(ctx context.Context, filter models.HotelFilter) (bool, error) {
	count, err := r.Count(ctx, filter)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ByUUID retrieves a hotel by its UUID
func (r *HotelRepositoryImpl) ByUUID(ctx context.Context, uuid string) (*models.Hotel, error) {
	db := r.getDB(ctx)

	var hotel models.Hotel
	err := db.Where("uuid = ?", uuid).First(&hotel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find hotel by UUID %s: %w", uuid, err)
	}
	return &hotel, nil
}

// ListActive returns active hotels ordered by creation time
func (r *HotelRepositoryImpl) ListActive(ctx context.Context, limit, offset int) ([]*models.Hotel, error) {
	db := r.getDB(ctx)

	query := db.Where("is_active = ?", true).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var hotels []*models.Hotel
	if err := query.Find(&hotels).Error; err != nil {
		return nil, fmt.Errorf("failed to list active hotels: %w", err)
	}
	return hotels, nil
}

// ListScrapeEnabled returns active hotels whose competitor scraping is on
func (r *HotelRepositoryImpl) ListScrapeEnabled(ctx context.Context) ([]*models.Hotel, error) {
	db := r.getDB(ctx)

	var hotels []*models.Hotel
	err := db.Where("is_active = ? AND scrape_enabled = ?", true, true).
		Order("id ASC").
		Find(&hotels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list scrape-enabled hotels: %w", err)
	}
	return hotels, nil
}

// Update persists changes to an existing hotel
func (r *HotelRepositoryImpl) Update(ctx context.Context, hotel *models.Hotel) error {
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

	hotel.UpdatedAt = utils.UTCNow()

	err = db.Save(hotel).Error
	if err != nil {
		return fmt.Errorf("failed to update hotel %d: %w", hotel.ID, err)
	}

	return nil
}

// UpdateBasePrice sets the hotel's reference nightly rate
func (r *HotelRepositoryImpl) UpdateBasePrice(ctx context.Context, hotelID uint, basePrice float64) error {
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

	err = db.Model(&models.Hotel{}).
		Where("id = ?", hotelID).
		Update("base_price", basePrice).Error
	if err != nil {
		return fmt.Errorf("failed to update base price for hotel %d: %w", hotelID, err)
	}

	return nil
}
