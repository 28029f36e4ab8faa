package businessflow_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rately/rately/app/dto"
	"github.com/rately/rately/app/services"
	businessflow "github.com/rately/rately/business_flow"
	"github.com/rately/rately/models"
	"github.com/rately/rately/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCompetitorFlow(hotelRepo *fakeHotelRepo, snapshotRepo *fakeSnapshotRepo, recordRepo *fakeRecordRepo, scraper services.ScraperClient) businessflow.CompetitorFlow {
	return businessflow.NewCompetitorFlow(hotelRepo, snapshotRepo, recordRepo, scraper)
}

func TestRecordCompetitorSnapshot(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		hotelRepo := newFakeHotelRepo()
		hotel := activeTestHotel(hotelRepo)
		snapshotRepo := &fakeSnapshotRepo{}
		recordRepo := &fakeRecordRepo{}
		flow := newCompetitorFlow(hotelRepo, snapshotRepo, recordRepo, nil)

		resp, err := flow.RecordSnapshot(ctx, &dto.RecordCompetitorSnapshotRequest{
			HotelUUID:   hotel.UUID.String(),
			StayDate:    "2026-04-10",
			AvgPrice:    108.00,
			MinPrice:    90.00,
			MaxPrice:    130.00,
			SampleCount: 5,
		}, testMetadata())
		require.NoError(t, err)
		assert.Equal(t, "2026-04-10", resp.Snapshot.StayDate)
		assert.Equal(t, models.SnapshotSourceManual, resp.Snapshot.Source)
		assert.Equal(t, "EUR", resp.Snapshot.Currency)

		// Rates are folded into the day's historical record
		require.Len(t, recordRepo.applied, 1)
		assert.Equal(t, hotel.ID, recordRepo.applied[0].hotelID)
		assert.InDelta(t, 108.00, recordRepo.applied[0].avg, 0.001)
	})

	t.Run("PricesInvalid", func(t *testing.T) {
		hotelRepo := newFakeHotelRepo()
		hotel := activeTestHotel(hotelRepo)
		flow := newCompetitorFlow(hotelRepo, &fakeSnapshotRepo{}, &fakeRecordRepo{}, nil)

		_, err := flow.RecordSnapshot(ctx, &dto.RecordCompetitorSnapshotRequest{
			HotelUUID: hotel.UUID.String(),
			StayDate:  "2026-04-10",
			AvgPrice:  80.00,
			MinPrice:  90.00,
			MaxPrice:  130.00,
		}, testMetadata())
		require.Error(t, err)
		assert.True(t, businessflow.IsSnapshotPricesInvalid(err))
	})

	t.Run("StayDateInvalid", func(t *testing.T) {
		hotelRepo := newFakeHotelRepo()
		hotel := activeTestHotel(hotelRepo)
		flow := newCompetitorFlow(hotelRepo, &fakeSnapshotRepo{}, &fakeRecordRepo{}, nil)

		_, err := flow.RecordSnapshot(ctx, &dto.RecordCompetitorSnapshotRequest{
			HotelUUID: hotel.UUID.String(),
			StayDate:  "10/04/2026",
			AvgPrice:  108.00,
			MinPrice:  90.00,
			MaxPrice:  130.00,
		}, testMetadata())
		require.Error(t, err)
	})

	t.Run("HotelNotFound", func(t *testing.T) {
		flow := newCompetitorFlow(newFakeHotelRepo(), &fakeSnapshotRepo{}, &fakeRecordRepo{}, nil)

		_, err := flow.RecordSnapshot(ctx, &dto.RecordCompetitorSnapshotRequest{
			HotelUUID: "00000000-0000-0000-0000-000000000001",
			StayDate:  "2026-04-10",
			AvgPrice:  108.00,
			MinPrice:  90.00,
			MaxPrice:  130.00,
		}, testMetadata())
		require.Error(t, err)
		assert.True(t, businessflow.IsHotelNotFound(err))
	})
}

func TestListCompetitorSnapshots(t *testing.T) {
	ctx := context.Background()

	hotelRepo := newFakeHotelRepo()
	hotel := activeTestHotel(hotelRepo)
	snapshotRepo := &fakeSnapshotRepo{}
	flow := newCompetitorFlow(hotelRepo, snapshotRepo, &fakeRecordRepo{}, nil)

	stayDate := utils.DateOnly(utils.UTCNow()).AddDate(0, 0, 3)
	require.NoError(t, snapshotRepo.Save(ctx, &models.CompetitorSnapshot{
		HotelID:   hotel.ID,
		StayDate:  stayDate,
		AvgPrice:  100.00,
		MinPrice:  85.00,
		MaxPrice:  120.00,
		Currency:  "EUR",
		Source:    models.SnapshotSourceScraper,
		ScrapedAt: utils.UTCNow(),
	}))

	resp, err := flow.ListSnapshots(ctx, &dto.ListCompetitorSnapshotsRequest{
		HotelUUID: hotel.UUID.String(),
	})
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.InDelta(t, 100.00, resp.Items[0].AvgPrice, 0.001)
}

func TestSyncCompetitorPrices(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		hotelRepo := newFakeHotelRepo()
		hotel := activeTestHotel(hotelRepo)
		snapshotRepo := &fakeSnapshotRepo{}
		recordRepo := &fakeRecordRepo{}
		scraper := &fakeScraper{rates: &services.CompetitorRates{
			AvgPrice:    112.00,
			MinPrice:    95.00,
			MaxPrice:    140.00,
			SampleCount: 8,
			Currency:    "EUR",
		}}
		flow := newCompetitorFlow(hotelRepo, snapshotRepo, recordRepo, scraper)

		resp, err := flow.SyncCompetitorPrices(ctx, 3)
		require.NoError(t, err)
		assert.Equal(t, 1, resp.HotelsSynced)
		assert.Equal(t, 3, resp.DatesCovered)
		assert.Equal(t, 0, resp.ScrapeErrors)
		assert.Len(t, snapshotRepo.snapshots, 3)
		assert.Len(t, recordRepo.applied, 3)
		for _, s := range snapshotRepo.snapshots {
			assert.Equal(t, hotel.ID, s.HotelID)
			assert.Equal(t, models.SnapshotSourceScraper, s.Source)
		}
	})

	t.Run("UsesScrapeQueryWhenSet", func(t *testing.T) {
		hotelRepo := newFakeHotelRepo()
		hotel := activeTestHotel(hotelRepo)
		hotel.ScrapeQuery = utils.ToPtr("boutique hotels alfama lisbon")
		scraper := &fakeScraper{rates: &services.CompetitorRates{AvgPrice: 100, MinPrice: 90, MaxPrice: 110}}
		flow := newCompetitorFlow(hotelRepo, &fakeSnapshotRepo{}, &fakeRecordRepo{}, scraper)

		_, err := flow.SyncCompetitorPrices(ctx, 1)
		require.NoError(t, err)
		require.NotEmpty(t, scraper.requests)
		assert.Equal(t, "boutique hotels alfama lisbon", scraper.requests[0])
	})

	t.Run("SkipsScrapeDisabledHotels", func(t *testing.T) {
		hotelRepo := newFakeHotelRepo()
		hotel := activeTestHotel(hotelRepo)
		hotel.ScrapeEnabled = utils.ToPtr(false)
		scraper := &fakeScraper{rates: &services.CompetitorRates{AvgPrice: 100, MinPrice: 90, MaxPrice: 110}}
		flow := newCompetitorFlow(hotelRepo, &fakeSnapshotRepo{}, &fakeRecordRepo{}, scraper)

		resp, err := flow.SyncCompetitorPrices(ctx, 3)
		require.NoError(t, err)
		assert.Equal(t, 0, resp.HotelsSynced)
		assert.Empty(t, scraper.requests)
	})

	t.Run("CountsScrapeErrors", func(t *testing.T) {
		hotelRepo := newFakeHotelRepo()
		activeTestHotel(hotelRepo)
		scraper := &fakeScraper{err: errors.New("scraper timeout")}
		flow := newCompetitorFlow(hotelRepo, &fakeSnapshotRepo{}, &fakeRecordRepo{}, scraper)

		resp, err := flow.SyncCompetitorPrices(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, 0, resp.HotelsSynced)
		assert.Equal(t, 0, resp.DatesCovered)
		assert.Equal(t, 2, resp.ScrapeErrors)
	})

	t.Run("ScraperUnavailable", func(t *testing.T) {
		flow := newCompetitorFlow(newFakeHotelRepo(), &fakeSnapshotRepo{}, &fakeRecordRepo{}, nil)

		_, err := flow.SyncCompetitorPrices(ctx, 3)
		require.Error(t, err)
		assert.True(t, businessflow.IsScraperUnavailable(err))
	})
}
