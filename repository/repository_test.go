package repository_test

import (
	"testing"
	"time"

	"github.com/rately/rately/models"
	"github.com/rately/rately/repository"
	testingutil "github.com/rately/rately/testing"
	"github.com/rately/rately/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withTestDB provisions a dedicated database for the test and skips when
// no PostgreSQL server is reachable.
func withTestDB(t *testing.T, fn func(testDB *testingutil.TestDB)) {
	t.Helper()

	testDB, err := testingutil.SetupTestDB()
	if err != nil {
		t.Skipf("test database unavailable: %v", err)
	}
	defer func() {
		if cleanupErr := testDB.TeardownTestDB(); cleanupErr != nil {
			t.Logf("Warning: failed to cleanup test database: %v", cleanupErr)
		}
	}()

	fn(testDB)
}

func TestHotelRepository(t *testing.T) {
	withTestDB(t, func(testDB *testingutil.TestDB) {
		repo := repository.NewHotelRepository(testDB.DB)
		fixtures := testingutil.NewTestFixtures(testDB)
		ctx := testingutil.CreateTestContext()

		t.Run("Save", func(t *testing.T) {
			hotel, err := fixtures.CreateTestHotel(models.HotelCategoryMidscale)
			require.NoError(t, err)
			assert.NotZero(t, hotel.ID)
			assert.NotEmpty(t, hotel.UUID)
		})

		t.Run("ByID", func(t *testing.T) {
			original, err := fixtures.CreateTestHotel(models.HotelCategoryUpscale)
			require.NoError(t, err)

			hotel, err := repo.ByID(ctx, original.ID)
			require.NoError(t, err)
			assert.NotNil(t, hotel)
			assert.Equal(t, original.ID, hotel.ID)
			assert.Equal(t, original.Name, hotel.Name)
		})

		t.Run("ByUUID", func(t *testing.T) {
			original, err := fixtures.CreateTestHotel(models.HotelCategoryBudget)
			require.NoError(t, err)

			hotel, err := repo.ByUUID(ctx, original.UUID.String())
			require.NoError(t, err)
			assert.NotNil(t, hotel)
			assert.Equal(t, original.ID, hotel.ID)
		})

		t.Run("ByUUIDNotFound", func(t *testing.T) {
			hotel, err := repo.ByUUID(ctx, "00000000-0000-0000-0000-000000000000")
			assert.NoError(t, err)
			assert.Nil(t, hotel)
		})

		t.Run("ByFilter", func(t *testing.T) {
			_, err := fixtures.CreateTestHotel(models.HotelCategoryLuxury)
			require.NoError(t, err)

			category := models.HotelCategoryLuxury
			hotels, err := repo.ByFilter(ctx, models.HotelFilter{Category: &category}, "", 0, 0)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, len(hotels), 1)
			for _, h := range hotels {
				assert.Equal(t, models.HotelCategoryLuxury, h.Category)
			}
		})

		t.Run("ListActive", func(t *testing.T) {
			_, err := fixtures.CreateTestHotel(models.HotelCategoryMidscale)
			require.NoError(t, err)

			inactive, err := fixtures.CreateInactiveTestHotel()
			require.NoError(t, err)

			hotels, err := repo.ListActive(ctx, 0, 0)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, len(hotels), 1)
			for _, h := range hotels {
				assert.NotEqual(t, inactive.ID, h.ID)
			}
		})

		t.Run("ListScrapeEnabled", func(t *testing.T) {
			hotel, err := fixtures.CreateTestHotel(models.HotelCategoryMidscale)
			require.NoError(t, err)

			hotel.ScrapeEnabled = utils.ToPtr(false)
			require.NoError(t, repo.Update(ctx, hotel))

			hotels, err := repo.ListScrapeEnabled(ctx)
			require.NoError(t, err)
			for _, h := range hotels {
				assert.NotEqual(t, hotel.ID, h.ID)
			}
		})

		t.Run("Update", func(t *testing.T) {
			hotel, err := fixtures.CreateTestHotel(models.HotelCategoryMidscale)
			require.NoError(t, err)

			hotel.Name = "Renamed Hotel"
			hotel.RoomCount = 120
			require.NoError(t, repo.Update(ctx, hotel))

			updated, err := repo.ByID(ctx, hotel.ID)
			require.NoError(t, err)
			assert.Equal(t, "Renamed Hotel", updated.Name)
			assert.Equal(t, 120, updated.RoomCount)
		})

		t.Run("UpdateBasePrice", func(t *testing.T) {
			hotel, err := fixtures.CreateTestHotel(models.HotelCategoryMidscale)
			require.NoError(t, err)

			require.NoError(t, repo.UpdateBasePrice(ctx, hotel.ID, 145.50))

			updated, err := repo.ByID(ctx, hotel.ID)
			require.NoError(t, err)
			assert.InDelta(t, 145.50, updated.BasePrice, 0.001)
		})

		t.Run("CountAndExists", func(t *testing.T) {
			hotel, err := fixtures.CreateTestHotel(models.HotelCategoryMidscale)
			require.NoError(t, err)

			count, err := repo.Count(ctx, models.HotelFilter{UUID: &hotel.UUID})
			require.NoError(t, err)
			assert.Equal(t, int64(1), count)

			exists, err := repo.Exists(ctx, models.HotelFilter{UUID: &hotel.UUID})
			require.NoError(t, err)
			assert.True(t, exists)
		})
	})
}

func TestHistoricalRecordRepository(t *testing.T) {
	withTestDB(t, func(testDB *testingutil.TestDB) {
		repo := repository.NewHistoricalRecordRepository(testDB.DB)
		fixtures := testingutil.NewTestFixtures(testDB)
		ctx := testingutil.CreateTestContext()

		hotel, err := fixtures.CreateTestHotel(models.HotelCategoryMidscale)
		require.NoError(t, err)

		day := func(offset int) time.Time {
			return time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
		}

		t.Run("UpsertCreatesAndUpdates", func(t *testing.T) {
			record := &models.HistoricalRecord{
				HotelID:       hotel.ID,
				Date:          day(0),
				OccupancyRate: 72.5,
				ADR:           110.00,
				RoomsSold:     58,
				TotalRevenue:  6380.00,
				TotalCosts:    2552.00,
			}
			require.NoError(t, repo.Upsert(ctx, record))

			// Re-running for the same day overwrites the figures
			record2 := &models.HistoricalRecord{
				HotelID:       hotel.ID,
				Date:          day(0),
				OccupancyRate: 80.0,
				ADR:           115.00,
				RoomsSold:     64,
				TotalRevenue:  7360.00,
				TotalCosts:    2944.00,
			}
			require.NoError(t, repo.Upsert(ctx, record2))

			stored, err := repo.ByHotelAndDate(ctx, hotel.ID, day(0))
			require.NoError(t, err)
			require.NotNil(t, stored)
			assert.InDelta(t, 80.0, stored.OccupancyRate, 0.001)
			assert.InDelta(t, 115.00, stored.ADR, 0.001)

			count, err := repo.Count(ctx, models.HistoricalRecordFilter{HotelID: &hotel.ID})
			require.NoError(t, err)
			assert.Equal(t, int64(1), count)
		})

		t.Run("WeekendFlagDerivedFromDate", func(t *testing.T) {
			// 2026-03-07 is a Saturday
			saturday := time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC)
			record, err := fixtures.CreateTestRecord(hotel.ID, saturday, 85.0, 130.00)
			require.NoError(t, err)
			assert.True(t, record.IsWeekend)

			stored, err := repo.ByHotelAndDate(ctx, hotel.ID, saturday)
			require.NoError(t, err)
			require.NotNil(t, stored)
			assert.True(t, stored.IsWeekend)
		})

		t.Run("ByHotelAndDateNotFound", func(t *testing.T) {
			record, err := repo.ByHotelAndDate(ctx, hotel.ID, day(300))
			assert.NoError(t, err)
			assert.Nil(t, record)
		})

		t.Run("ListByHotelAndRange", func(t *testing.T) {
			rangeHotel, err := fixtures.CreateTestHotel(models.HotelCategoryMidscale)
			require.NoError(t, err)

			_, err = fixtures.CreateTestRecordRange(rangeHotel.ID, day(0), 5, 70.0, 105.00)
			require.NoError(t, err)

			records, err := repo.ListByHotelAndRange(ctx, rangeHotel.ID, day(1), day(3))
			require.NoError(t, err)
			require.Len(t, records, 3)
			// Oldest first
			assert.True(t, records[0].Date.Before(records[2].Date))
		})

		t.Run("ApplyCompetitorPrices", func(t *testing.T) {
			// Existing record keeps its occupancy figures
			_, err := fixtures.CreateTestRecord(hotel.ID, day(10), 60.0, 95.00)
			require.NoError(t, err)

			require.NoError(t, repo.ApplyCompetitorPrices(ctx, hotel.ID, day(10), 102.00, 88.00, 125.00))

			stored, err := repo.ByHotelAndDate(ctx, hotel.ID, day(10))
			require.NoError(t, err)
			require.NotNil(t, stored)
			require.NotNil(t, stored.CompetitorAvgPrice)
			assert.InDelta(t, 102.00, *stored.CompetitorAvgPrice, 0.001)
			assert.InDelta(t, 60.0, stored.OccupancyRate, 0.001)

			// A day with no record yet gets a minimal row
			require.NoError(t, repo.ApplyCompetitorPrices(ctx, hotel.ID, day(11), 99.00, 85.00, 120.00))

			created, err := repo.ByHotelAndDate(ctx, hotel.ID, day(11))
			require.NoError(t, err)
			require.NotNil(t, created)
			require.NotNil(t, created.CompetitorAvgPrice)
			assert.InDelta(t, 99.00, *created.CompetitorAvgPrice, 0.001)
		})

		t.Run("DailyStats", func(t *testing.T) {
			statsHotel, err := fixtures.CreateTestHotel(models.HotelCategoryMidscale)
			require.NoError(t, err)

			// Mon 2026-03-02 through Sun 2026-03-08
			_, err = fixtures.CreateTestRecordRange(statsHotel.ID, day(0), 7, 70.0, 100.00)
			require.NoError(t, err)

			stats, err := repo.DailyStats(ctx, statsHotel.ID, day(0), day(6))
			require.NoError(t, err)
			require.NotNil(t, stats)
			assert.Equal(t, int64(7), stats.Days)
			assert.InDelta(t, 70.0, stats.AvgOccupancy, 0.001)
			assert.InDelta(t, 100.00, stats.AvgADR, 0.001)
			assert.Equal(t, int64(0), stats.DaysWithScrapes)
		})
	})
}

func TestCompetitorSnapshotRepository(t *testing.T) {
	withTestDB(t, func(testDB *testingutil.TestDB) {
		repo := repository.NewCompetitorSnapshotRepository(testDB.DB)
		fixtures := testingutil.NewTestFixtures(testDB)
		ctx := testingutil.CreateTestContext()

		hotel, err := fixtures.CreateTestHotel(models.HotelCategoryMidscale)
		require.NoError(t, err)

		stayDate := time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC)

		t.Run("Save", func(t *testing.T) {
			snapshot, err := fixtures.CreateTestSnapshot(hotel.ID, stayDate, 110.00)
			require.NoError(t, err)
			assert.NotZero(t, snapshot.ID)
		})

		t.Run("LatestByHotelAndStayDate", func(t *testing.T) {
			older := &models.CompetitorSnapshot{
				HotelID:     hotel.ID,
				StayDate:    stayDate,
				AvgPrice:    100.00,
				MinPrice:    85.00,
				MaxPrice:    120.00,
				SampleCount: 4,
				Currency:    "EUR",
				Source:      models.SnapshotSourceScraper,
				ScrapedAt:   time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC),
			}
			require.NoError(t, repo.Save(ctx, older))

			newer := &models.CompetitorSnapshot{
				HotelID:     hotel.ID,
				StayDate:    stayDate,
				AvgPrice:    108.00,
				MinPrice:    90.00,
				MaxPrice:    130.00,
				SampleCount: 5,
				Currency:    "EUR",
				Source:      models.SnapshotSourceScraper,
				ScrapedAt:   time.Date(2026, 4, 2, 8, 0, 0, 0, time.UTC),
			}
			require.NoError(t, repo.Save(ctx, newer))

			latest, err := repo.LatestByHotelAndStayDate(ctx, hotel.ID, stayDate)
			require.NoError(t, err)
			require.NotNil(t, latest)
			assert.InDelta(t, 108.00, latest.AvgPrice, 0.001)
		})

		t.Run("LatestByHotelAndStayDateNotFound", func(t *testing.T) {
			latest, err := repo.LatestByHotelAndStayDate(ctx, hotel.ID, stayDate.AddDate(1, 0, 0))
			assert.NoError(t, err)
			assert.Nil(t, latest)
		})

		t.Run("ListByHotelAndRange", func(t *testing.T) {
			rangeHotel, err := fixtures.CreateTestHotel(models.HotelCategoryMidscale)
			require.NoError(t, err)

			for i := 0; i < 4; i++ {
				_, err := fixtures.CreateTestSnapshot(rangeHotel.ID, stayDate.AddDate(0, 0, i), 100.00+float64(i))
				require.NoError(t, err)
			}

			snapshots, err := repo.ListByHotelAndRange(ctx, rangeHotel.ID, stayDate, stayDate.AddDate(0, 0, 2))
			require.NoError(t, err)
			assert.Len(t, snapshots, 3)
		})
	})
}

func TestPriceRecommendationLogRepository(t *testing.T) {
	withTestDB(t, func(testDB *testingutil.TestDB) {
		repo := repository.NewPriceRecommendationLogRepository(testDB.DB)
		fixtures := testingutil.NewTestFixtures(testDB)
		ctx := testingutil.CreateTestContext()

		hotel, err := fixtures.CreateTestHotel(models.HotelCategoryMidscale)
		require.NoError(t, err)

		targetDate := time.Date(2026, 5, 20, 0, 0, 0, 0, time.UTC)

		t.Run("Save", func(t *testing.T) {
			entry, err := fixtures.CreateTestRecommendationLog(hotel.ID, targetDate, 100.00, 108.00)
			require.NoError(t, err)
			assert.NotZero(t, entry.ID)
			assert.NotEmpty(t, entry.UUID)
		})

		t.Run("ListByHotel", func(t *testing.T) {
			listHotel, err := fixtures.CreateTestHotel(models.HotelCategoryMidscale)
			require.NoError(t, err)

			for i := 0; i < 3; i++ {
				_, err := fixtures.CreateTestRecommendationLog(listHotel.ID, targetDate.AddDate(0, 0, i), 100.00, 105.00)
				require.NoError(t, err)
			}

			entries, err := repo.ListByHotel(ctx, listHotel.ID, 2, 0)
			require.NoError(t, err)
			assert.Len(t, entries, 2)

			all, err := repo.ListByHotel(ctx, listHotel.ID, 0, 0)
			require.NoError(t, err)
			assert.Len(t, all, 3)
		})

		t.Run("LatestByHotelAndTargetDate", func(t *testing.T) {
			_, err := fixtures.CreateTestRecommendationLog(hotel.ID, targetDate, 100.00, 104.00)
			require.NoError(t, err)

			latest, err := repo.LatestByHotelAndTargetDate(ctx, hotel.ID, targetDate)
			require.NoError(t, err)
			require.NotNil(t, latest)
			assert.InDelta(t, 104.00, latest.RecommendedPrice, 0.001)
		})

		t.Run("LatestByHotelAndTargetDateNotFound", func(t *testing.T) {
			latest, err := repo.LatestByHotelAndTargetDate(ctx, hotel.ID, targetDate.AddDate(2, 0, 0))
			assert.NoError(t, err)
			assert.Nil(t, latest)
		})
	})
}
