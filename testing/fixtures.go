// Package testing provides test utilities and database setup for testing the pricing platform
package testing

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/rately/rately/models"
	"github.com/rately/rately/utils"
)

// TestFixtures provides helper methods for creating test data
type TestFixtures struct {
	DB *TestDB
}

// NewTestFixtures creates a new test fixtures instance
func NewTestFixtures(db *TestDB) *TestFixtures {
	return &TestFixtures{DB: db}
}

// CreateTestHotel creates a test hotel in the given category
func (tf *TestFixtures) CreateTestHotel(category string) (*models.Hotel, error) {
	suffix := rand.Intn(1000000)
	query := fmt.Sprintf("hotels near test-city-%d", suffix)

	hotel := &models.Hotel{
		Name:          fmt.Sprintf("Test Hotel %d", suffix),
		City:          "Lisbon",
		Country:       "PT",
		Category:      category,
		RoomCount:     80,
		BasePrice:     120.00,
		Currency:      "EUR",
		ScrapeEnabled: utils.ToPtr(true),
		ScrapeQuery:   &query,
		IsActive:      utils.ToPtr(true),
	}

	err := tf.DB.DB.Create(hotel).Error
	if err != nil {
		return nil, fmt.Errorf("failed to create test hotel: %w", err)
	}

	return hotel, nil
}

// CreateTestRecord creates one day of performance data for a hotel
func (tf *TestFixtures) CreateTestRecord(hotelID uint, date time.Time, occupancyRate, adr float64) (*models.HistoricalRecord, error) {
	roomsSold := int(occupancyRate * 80 / 100)

	record := &models.HistoricalRecord{
		HotelID:       hotelID,
		Date:          date,
		OccupancyRate: occupancyRate,
		ADR:           adr,
		RoomsSold:     roomsSold,
		TotalRevenue:  adr * float64(roomsSold),
		TotalCosts:    adr * float64(roomsSold) * 0.4,
	}

	err := tf.DB.DB.Create(record).Error
	if err != nil {
		return nil, fmt.Errorf("failed to create test record: %w", err)
	}

	return record, nil
}

// CreateTestRecordRange creates a contiguous run of daily records ending the
// day before start+days, all with the same occupancy and rate
func (tf *TestFixtures) CreateTestRecordRange(hotelID uint, start time.Time, days int, occupancyRate, adr float64) ([]*models.HistoricalRecord, error) {
	var records []*models.HistoricalRecord
	for i := 0; i < days; i++ {
		record, err := tf.CreateTestRecord(hotelID, start.AddDate(0, 0, i), occupancyRate, adr)
		if err != nil {
			return nil, fmt.Errorf("failed to create record %d: %w", i, err)
		}
		records = append(records, record)
	}
	return records, nil
}

// CreateTestSnapshot creates a competitor rate snapshot for a hotel and stay date
func (tf *TestFixtures) CreateTestSnapshot(hotelID uint, stayDate time.Time, avgPrice float64) (*models.CompetitorSnapshot, error) {
	snapshot := &models.CompetitorSnapshot{
		HotelID:     hotelID,
		StayDate:    stayDate,
		AvgPrice:    avgPrice,
		MinPrice:    avgPrice * 0.8,
		MaxPrice:    avgPrice * 1.25,
		SampleCount: 6,
		Currency:    "EUR",
		Source:      models.SnapshotSourceScraper,
		ScrapedAt:   utils.UTCNow(),
	}

	err := tf.DB.DB.Create(snapshot).Error
	if err != nil {
		return nil, fmt.Errorf("failed to create test snapshot: %w", err)
	}

	return snapshot, nil
}

// CreateTestRecommendationLog creates an audit row for a served recommendation
func (tf *TestFixtures) CreateTestRecommendationLog(hotelID uint, targetDate time.Time, currentPrice, recommendedPrice float64) (*models.PriceRecommendationLog, error) {
	entry := &models.PriceRecommendationLog{
		HotelID:          hotelID,
		TargetDate:       targetDate,
		CurrentPrice:     currentPrice,
		RecommendedPrice: recommendedPrice,
		MinPrice:         currentPrice * 0.7,
		MaxPrice:         currentPrice * 1.5,
		Confidence:       0.5,
		Reasoning:        "Current price already optimal.",
		Factors:          []byte(`{}`),
	}

	err := tf.DB.DB.Create(entry).Error
	if err != nil {
		return nil, fmt.Errorf("failed to create test recommendation log: %w", err)
	}

	return entry, nil
}

// CreateMultipleTestHotels creates one test hotel per category
func (tf *TestFixtures) CreateMultipleTestHotels() ([]*models.Hotel, error) {
	categories := []string{
		models.HotelCategoryBudget,
		models.HotelCategoryMidscale,
		models.HotelCategoryUpscale,
		models.HotelCategoryLuxury,
	}

	var hotels []*models.Hotel
	for i, category := range categories {
		hotel, err := tf.CreateTestHotel(category)
		if err != nil {
			return nil, fmt.Errorf("failed to create hotel %d: %w", i, err)
		}
		hotels = append(hotels, hotel)
	}

	return hotels, nil
}

// CreateInactiveTestHotel creates a hotel that has been disabled on the platform
func (tf *TestFixtures) CreateInactiveTestHotel() (*models.Hotel, error) {
	hotel, err := tf.CreateTestHotel(models.HotelCategoryMidscale)
	if err != nil {
		return nil, err
	}

	hotel.IsActive = utils.ToPtr(false)
	if err := tf.DB.DB.Save(hotel).Error; err != nil {
		return nil, fmt.Errorf("failed to deactivate test hotel: %w", err)
	}

	return hotel, nil
}
